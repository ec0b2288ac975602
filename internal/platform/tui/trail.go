package tui

import (
	"github.com/vovakirdan/lightcycle/internal/core"
	"github.com/vovakirdan/lightcycle/internal/games/lightcycle"
)

// Trail glyphs.
const (
	glyphHorizontal = '─'
	glyphVertical   = '│'
	glyphCrash      = '✕'
)

// straightGlyph returns the segment glyph for a rider travelling along h.
func straightGlyph(h core.Heading) rune {
	if h.Vertical() {
		return glyphVertical
	}
	return glyphHorizontal
}

// cornerGlyph returns the glyph joining a rider that was heading prev and
// now heads cur. It is drawn on the cell where the turn happened.
// The second return value is false when the rider did not turn.
func cornerGlyph(prev, cur core.Heading) (rune, bool) {
	switch cur {
	case core.HeadingLeft:
		switch prev {
		case core.HeadingUp:
			return '┐', true
		case core.HeadingDown:
			return '┘', true
		}
	case core.HeadingRight:
		switch prev {
		case core.HeadingUp:
			return '┌', true
		case core.HeadingDown:
			return '└', true
		}
	case core.HeadingUp:
		switch prev {
		case core.HeadingLeft:
			return '└', true
		case core.HeadingRight:
			return '┘', true
		}
	case core.HeadingDown:
		switch prev {
		case core.HeadingLeft:
			return '┌', true
		case core.HeadingRight:
			return '┐', true
		}
	}
	return 0, false
}

// paintSegment draws a committed move. Grid rows map to screen y and grid
// columns to screen x.
func paintSegment(s *core.Screen, ev lightcycle.SegmentEvent) {
	if r, ok := cornerGlyph(ev.PrevHeading, ev.Heading); ok {
		s.SetCell(ev.PrevCell.Col, ev.PrevCell.Row, r, ev.Color)
	}
	s.SetCell(ev.Cell.Col, ev.Cell.Row, straightGlyph(ev.Heading), ev.Color)
}

// paintCrash marks the cell a rider crashed into.
func paintCrash(s *core.Screen, ev lightcycle.CollisionEvent) {
	s.SetCell(ev.Cell.Col, ev.Cell.Row, glyphCrash, ev.Color)
}

// paintStart draws a rider's start cell, which is committed without a move.
func paintStart(s *core.Screen, a lightcycle.AgentState, c core.Color) {
	s.SetCell(a.Position.Col, a.Position.Row, straightGlyph(a.Heading), c)
}

// paintArena clears the screen and draws the boundary ring.
func paintArena(s *core.Screen) {
	s.Clear()
	s.DrawBox(core.NewRect(0, 0, s.Width(), s.Height()), core.ColorGray)
}
