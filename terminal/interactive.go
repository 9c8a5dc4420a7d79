package terminal

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"curved/curve"
	"curved/editor"
	"curved/export"
)

// Options configures an interactive session.
type Options struct {
	Filename string // target for the save key; empty disables saving
	Settings export.Settings
	Dark     bool
}

// animation timing for the easing preview lane: a 2 second loop at
// ~60 ticks per second.
const (
	previewTick = 16 * time.Millisecond
	previewLoop = 2 * time.Second
)

// session carries the per-run presentation state around the event loop.
type session struct {
	screen   tcell.Screen
	ed       *editor.Editor
	opts     Options
	mapper   CellMapper
	buttons  tcell.ButtonMask
	status   string
	preview  bool
	previewT float64
	quit     bool
}

// Run starts the interactive editor and blocks until the user quits.
func Run(ed *editor.Editor, opts Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	s := &session{
		screen:  screen,
		ed:      ed,
		opts:    opts,
		preview: true,
	}
	ed.SetClampHandles(opts.Settings.ClampHandles)
	s.layout()

	// The preview lane animates on a fixed tick; the poster goroutine
	// stops when the screen is finalized.
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		t := time.NewTicker(previewTick)
		defer t.Stop()
		for {
			select {
			case <-stop:
				return
			case <-t.C:
				screen.PostEvent(tcell.NewEventInterrupt(nil))
			}
		}
	}()

	for !s.quit {
		s.draw()
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			s.layout()
			screen.Sync()
		case *tcell.EventMouse:
			s.handleMouse(ev)
		case *tcell.EventKey:
			s.handleKey(ev)
		case *tcell.EventInterrupt:
			if s.preview {
				s.previewT += float64(previewTick) / float64(previewLoop)
				if s.previewT >= 1 {
					s.previewT -= 1
				}
			}
		case nil:
			return nil
		}
	}
	return nil
}

// layout recomputes the plot rectangle from the screen size. The right
// edge keeps a lane for the animated preview, the bottom line is the
// status bar.
func (s *session) layout() {
	w, h := s.screen.Size()
	lane := 6
	if w < 40 {
		lane = 0
	}
	s.mapper = CellMapper{
		X0: 2,
		Y0: 1,
		W:  float64(w - 4 - lane),
		H:  float64(h - 3),
	}
	s.ed.SetMapper(s.mapper)
	s.ed.SetRadii(2.0, 1.5, 3.0)
}

func (s *session) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	fx, fy := float64(x), float64(y)
	var mods editor.Modifiers
	if ev.Modifiers()&tcell.ModShift != 0 {
		mods |= editor.ModToggle
	}

	prev := s.buttons
	cur := ev.Buttons() & (tcell.ButtonPrimary | tcell.ButtonSecondary)
	s.buttons = cur

	switch {
	case cur&tcell.ButtonPrimary != 0 && prev&tcell.ButtonPrimary == 0:
		s.ed.MousePress(fx, fy, editor.ButtonLeft, mods)
	case cur&tcell.ButtonPrimary == 0 && prev&tcell.ButtonPrimary != 0:
		s.ed.MouseRelease(fx, fy, editor.ButtonLeft, mods)
	case cur&tcell.ButtonSecondary != 0 && prev&tcell.ButtonSecondary == 0:
		s.ed.MousePress(fx, fy, editor.ButtonRight, mods)
	default:
		s.ed.MouseMove(fx, fy)
	}
}

func (s *session) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		s.quit = true
		return
	case tcell.KeyDelete, tcell.KeyBackspace, tcell.KeyBackspace2:
		if s.ed.DeleteSelected() {
			s.status = "deleted selection"
		}
		return
	case tcell.KeyCtrlZ:
		s.undo()
		return
	case tcell.KeyCtrlR:
		s.redo()
		return
	}

	switch ev.Rune() {
	case 'q':
		s.quit = true
	case 'f':
		s.setAlignment(curve.Free)
	case 'a':
		s.setAlignment(curve.Aligned)
	case 'm':
		s.setAlignment(curve.Mirrored)
	case 'u':
		s.undo()
	case 'y':
		s.redo()
	case 'R':
		if s.ed.ResetChannel() {
			s.status = "channel reset"
		}
	case '1':
		s.ed.SetActiveChannel(curve.Red)
	case '2':
		s.ed.SetActiveChannel(curve.Green)
	case '3':
		s.ed.SetActiveChannel(curve.Blue)
	case 'c':
		s.ed.SetClampHandles(!s.ed.ClampHandles())
		s.opts.Settings.ClampHandles = s.ed.ClampHandles()
	case 'i':
		s.opts.Settings.DrawInactive = !s.opts.Settings.DrawInactive
	case 'p':
		s.preview = !s.preview
	case 's':
		s.save()
	case 'e':
		s.exportPreview()
	}
}

func (s *session) setAlignment(mode curve.HandleAlignment) {
	if s.ed.SetSelectedAlignment(mode) {
		s.status = "alignment: " + mode.String()
	}
}

func (s *session) undo() {
	if s.ed.Undo() {
		s.status = "undo"
	} else {
		s.status = "nothing to undo"
	}
}

func (s *session) redo() {
	if s.ed.Redo() {
		s.status = "redo"
	} else {
		s.status = "nothing to redo"
	}
}

func (s *session) exportPreview() {
	const out = "curves_preview.png"
	err := export.SavePreviewPNG(out, s.ed.Channels(), s.ed.ActiveChannel(), 512, 512, s.opts.Dark)
	if err != nil {
		s.status = "preview export failed: " + err.Error()
		return
	}
	s.status = "wrote " + out
}

func (s *session) save() {
	if s.opts.Filename == "" {
		s.status = "no file to save to"
		return
	}
	if err := export.SaveCurves(s.opts.Filename, s.ed.Channels(), s.opts.Settings); err != nil {
		s.status = "save failed: " + err.Error()
		return
	}
	s.status = "saved " + s.opts.Filename
}
