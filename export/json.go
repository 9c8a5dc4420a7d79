// Package export implements the external surfaces of the curve editor:
// versioned JSON persistence of curves and settings, LUT builders (1-D
// strips, HALD-style cubes, .cube text files) driven purely by the
// sampling API, and PNG rendering of curve previews.
package export

import (
	"encoding/json"
	"fmt"
	"os"

	"curved/curve"
)

// FormatVersion is written into saved curve files.
const FormatVersion = "1.1"

// Settings is the persisted tool configuration block.
type Settings struct {
	LUTWidth       int  `json:"lut_width"`
	ExportBitDepth int  `json:"export_bit_depth"`
	PreviewRGB     bool `json:"preview_rgb_combined"`
	DrawInactive   bool `json:"draw_inactive"`
	ClampHandles   bool `json:"clamp_handles"`
}

// DefaultSettings returns the settings used when no file overrides
// them.
func DefaultSettings() Settings {
	return Settings{
		LUTWidth:       256,
		ExportBitDepth: 8,
		PreviewRGB:     true,
		DrawInactive:   false,
		ClampHandles:   true,
	}
}

type document struct {
	Version  string                `json:"file_format_version"`
	Settings Settings              `json:"settings"`
	Channels map[string][]wireNode `json:"channels"`
}

// wirePoint is a coordinate pair on the wire. It rejects arrays that do
// not hold exactly two numbers, which plain [2]float64 decoding would
// silently zero-fill.
type wirePoint [2]float64

func (p *wirePoint) UnmarshalJSON(data []byte) error {
	var vals []float64
	if err := json.Unmarshal(data, &vals); err != nil {
		return err
	}
	if len(vals) != 2 {
		return fmt.Errorf("point needs 2 coordinates, has %d", len(vals))
	}
	p[0], p[1] = vals[0], vals[1]
	return nil
}

// wireNode uses pointer fields so a missing key is distinguishable from
// a zero value; the format treats absent members as malformed.
type wireNode struct {
	Main  *wirePoint `json:"main"`
	In    *wirePoint `json:"in"`
	Out   *wirePoint `json:"out"`
	Align *int       `json:"align"`
}

// MarshalCurves renders a channel set plus settings into the versioned
// JSON format.
func MarshalCurves(set curve.Set, settings Settings) ([]byte, error) {
	doc := document{
		Version:  FormatVersion,
		Settings: settings,
		Channels: make(map[string][]wireNode, len(set)),
	}
	for _, ch := range curve.Channels() {
		nodes, ok := set[ch]
		if !ok {
			return nil, fmt.Errorf("marshal curves: channel %s missing", ch.Key())
		}
		wire := make([]wireNode, len(nodes))
		for i, n := range nodes {
			main := wirePoint{n.Main.X, n.Main.Y}
			in := wirePoint{n.In.X, n.In.Y}
			out := wirePoint{n.Out.X, n.Out.Y}
			align := int(n.Align)
			wire[i] = wireNode{Main: &main, In: &in, Out: &out, Align: &align}
		}
		doc.Channels[ch.Key()] = wire
	}
	return json.MarshalIndent(doc, "", "  ")
}

// UnmarshalCurves parses the versioned JSON format. The load is
// all-or-nothing: a missing channel, malformed point, or out-of-range
// alignment code fails the whole call with a descriptive reason and
// returns no partial state. Settings absent from the file keep their
// defaults.
func UnmarshalCurves(data []byte) (curve.Set, Settings, error) {
	doc := document{Settings: DefaultSettings()}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, Settings{}, fmt.Errorf("parse curve file: %w", err)
	}
	if doc.Channels == nil {
		return nil, Settings{}, fmt.Errorf("curve file has no channels object")
	}

	set := make(curve.Set, len(curve.Channels()))
	for _, ch := range curve.Channels() {
		wire, ok := doc.Channels[ch.Key()]
		if !ok {
			return nil, Settings{}, fmt.Errorf("channel %s missing", ch.Key())
		}
		nodes := make([]curve.Node, len(wire))
		for i, w := range wire {
			if w.Main == nil || w.In == nil || w.Out == nil {
				return nil, Settings{}, fmt.Errorf("channel %s node %d: malformed point data", ch.Key(), i)
			}
			if w.Align == nil {
				return nil, Settings{}, fmt.Errorf("channel %s node %d: missing alignment", ch.Key(), i)
			}
			align, err := curve.AlignmentFromInt(*w.Align)
			if err != nil {
				return nil, Settings{}, fmt.Errorf("channel %s node %d: %w", ch.Key(), i, err)
			}
			nodes[i] = curve.Node{
				Main:  curve.Point{X: w.Main[0], Y: w.Main[1]},
				In:    curve.Point{X: w.In[0], Y: w.In[1]},
				Out:   curve.Point{X: w.Out[0], Y: w.Out[1]},
				Align: align,
			}
		}
		if err := curve.ValidateNodes(nodes); err != nil {
			return nil, Settings{}, fmt.Errorf("channel %s: %w", ch.Key(), err)
		}
		set[ch] = nodes
	}
	return set, doc.Settings, nil
}

// SaveCurves writes the channel set and settings to a file.
func SaveCurves(filename string, set curve.Set, settings Settings) error {
	data, err := MarshalCurves(set, settings)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}

// LoadCurves reads a curve file from disk.
func LoadCurves(filename string) (curve.Set, Settings, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, Settings{}, err
	}
	return UnmarshalCurves(data)
}
