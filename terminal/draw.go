package terminal

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"curved/curve"
	"curved/editor"
	"curved/export"
)

// channelStyle converts a channel's display color to a tcell style.
func channelStyle(ch curve.ChannelID) tcell.Style {
	c := export.ChannelColor(ch)
	r, g, b := c.RGB255()
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
}

var (
	dimStyle      = tcell.StyleDefault.Foreground(tcell.ColorGray)
	selectedStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	handleStyle   = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	anchorStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	statusStyle   = tcell.StyleDefault.Reverse(true)
)

func (s *session) draw() {
	s.screen.Clear()
	s.drawGrid()
	if s.opts.Settings.DrawInactive {
		for _, ch := range curve.Channels() {
			if ch != s.ed.ActiveChannel() {
				s.drawCurve(ch, '·', channelStyle(ch).Dim(true))
			}
		}
	}
	active := s.ed.ActiveChannel()
	s.drawCurve(active, '•', channelStyle(active))
	s.drawNodes()
	s.drawBox()
	if s.preview {
		s.drawPreviewLane()
	}
	s.drawStatus()
	s.screen.Show()
}

func (s *session) drawGrid() {
	for i := 0; i <= 10; i++ {
		r := float64(i) / 10
		for j := 0; j <= 10; j++ {
			q := float64(j) / 10
			x, y := s.mapper.ToView(curve.Point{X: r, Y: q})
			s.screen.SetContent(int(math.Round(x)), int(math.Round(y)), '·', nil, dimStyle)
		}
	}
}

// drawCurve samples the channel once per plot column. Rendering reads
// the engine purely through the sampling API and node copies.
func (s *session) drawCurve(ch curve.ChannelID, r rune, style tcell.Style) {
	cols := int(s.mapper.W)
	for c := 0; c <= cols; c++ {
		x := float64(c) / float64(cols)
		y := s.ed.Sample(ch, x)
		vx, vy := s.mapper.ToView(curve.Point{X: x, Y: y})
		s.screen.SetContent(int(math.Round(vx)), int(math.Round(vy)), r, nil, style)
	}
}

func (s *session) drawNodes() {
	nodes := s.ed.Nodes(s.ed.ActiveChannel())
	drag := s.ed.DragTarget()
	for i, n := range nodes {
		if i > 0 {
			s.drawMarker(n.In, '+', s.partStyle(drag, editor.PartHandleIn, i, handleStyle))
		}
		if i < len(nodes)-1 {
			s.drawMarker(n.Out, '+', s.partStyle(drag, editor.PartHandleOut, i, handleStyle))
		}
		style := anchorStyle
		if s.ed.IsSelected(i) {
			style = selectedStyle
		}
		s.drawMarker(n.Main, 'o', style)
	}
}

func (s *session) partStyle(drag editor.PartRef, part editor.Part, idx int, base tcell.Style) tcell.Style {
	if drag.Part == part && drag.Index == idx {
		return selectedStyle
	}
	return base
}

func (s *session) drawMarker(p curve.Point, r rune, style tcell.Style) {
	x, y := s.mapper.ToView(p)
	s.screen.SetContent(int(math.Round(x)), int(math.Round(y)), r, nil, style)
}

func (s *session) drawBox() {
	x0, y0, x1, y1, active := s.ed.BoxSelecting()
	if !active {
		return
	}
	for x := int(x0); x <= int(x1); x++ {
		s.screen.SetContent(x, int(y0), '-', nil, dimStyle)
		s.screen.SetContent(x, int(y1), '-', nil, dimStyle)
	}
	for y := int(y0); y <= int(y1); y++ {
		s.screen.SetContent(int(x0), y, '|', nil, dimStyle)
		s.screen.SetContent(int(x1), y, '|', nil, dimStyle)
	}
}

// drawPreviewLane animates a marker whose vertical position is the
// active channel's eased response at the looping time parameter.
func (s *session) drawPreviewLane() {
	w, h := s.screen.Size()
	lane := w - 3
	top, bottom := 1, h-3
	if bottom <= top {
		return
	}
	for y := top; y <= bottom; y++ {
		s.screen.SetContent(lane, y, '|', nil, dimStyle)
	}
	active := s.ed.ActiveChannel()
	eased := s.ed.Sample(active, s.previewT)
	y := bottom - int(math.Round(eased*float64(bottom-top)))
	s.screen.SetContent(lane, y, '●', nil, channelStyle(active))
}

func (s *session) drawStatus() {
	w, h := s.screen.Size()
	line := h - 1

	sel := s.ed.SelectedIndices()
	align := "-"
	if len(sel) == 1 {
		align = s.ed.Alignment(sel[0]).String()
	}
	clamp := "off"
	if s.ed.ClampHandles() {
		clamp = "on"
	}
	text := fmt.Sprintf(" %s | nodes %d | sel %d | align %s | clamp %s | undo %d | %s",
		s.ed.ActiveChannel(), s.ed.ActiveNodeCount(), len(sel), align, clamp,
		s.ed.History().Len(), s.status)
	for x := 0; x < w; x++ {
		r := ' '
		if x < len(text) {
			r = rune(text[x])
		}
		s.screen.SetContent(x, line, r, nil, statusStyle)
	}
	help := " f/a/m align | del | u/y undo/redo | 1-3 channel | R reset | c clamp | i inactive | p preview | s save | e png | q quit"
	for x := 0; x < w; x++ {
		r := ' '
		if x < len(help) {
			r = rune(help[x])
		}
		s.screen.SetContent(x, line-1, r, nil, dimStyle)
	}
}
