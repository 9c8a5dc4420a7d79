package editor

// Part identifies which piece of a node's on-screen representation an
// interaction targets.
type Part int

const (
	PartNone Part = iota
	PartMain
	PartHandleIn
	PartHandleOut
)

// String returns the string representation of a Part.
func (p Part) String() string {
	switch p {
	case PartNone:
		return "None"
	case PartMain:
		return "Main"
	case PartHandleIn:
		return "HandleIn"
	case PartHandleOut:
		return "HandleOut"
	default:
		return "Unknown"
	}
}

// PartRef pairs a part kind with a node index in the active channel.
type PartRef struct {
	Part  Part
	Index int
}

// noPart is the empty drag target.
var noPart = PartRef{PartNone, -1}

// Button identifies which mouse button an event carries.
type Button int

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonRight
)

// Modifiers is the set of modifier keys held during an input event.
type Modifiers uint8

const (
	// ModToggle is the selection-toggling modifier (shift in the
	// terminal front-end). A modified click toggles an anchor's
	// selection membership instead of replacing the selection, and a
	// modified box-select unions into the selection.
	ModToggle Modifiers = 1 << iota
)
