// Package core provides fundamental types and utilities shared by the game
// engine and the terminal platform. It contains no external dependencies
// (especially no Bubble Tea) to keep game logic pure and testable.
package core

import "fmt"

// Cell is a grid coordinate. Row grows downward, Col grows to the right.
type Cell struct {
	Row, Col int
}

// Add returns the cell shifted by one step in the given heading.
func (c Cell) Add(h Heading) Cell {
	dr, dc := h.Delta()
	return Cell{Row: c.Row + dr, Col: c.Col + dc}
}

// String returns "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Heading is a direction of travel.
type Heading int

const (
	HeadingUp Heading = iota
	HeadingDown
	HeadingLeft
	HeadingRight
)

// Headings lists all headings in canonical order.
// The AI planner depends on this order when building candidate moves.
var Headings = [4]Heading{HeadingUp, HeadingDown, HeadingLeft, HeadingRight}

// Delta returns the (row, col) offset of a single step in this heading.
func (h Heading) Delta() (int, int) {
	switch h {
	case HeadingUp:
		return -1, 0
	case HeadingDown:
		return 1, 0
	case HeadingLeft:
		return 0, -1
	case HeadingRight:
		return 0, 1
	default:
		return 0, 0
	}
}

// Reverse returns the opposite heading.
func (h Heading) Reverse() Heading {
	switch h {
	case HeadingUp:
		return HeadingDown
	case HeadingDown:
		return HeadingUp
	case HeadingLeft:
		return HeadingRight
	default:
		return HeadingLeft
	}
}

// Vertical reports whether the heading moves along rows.
func (h Heading) Vertical() bool {
	return h == HeadingUp || h == HeadingDown
}

// Horizontal reports whether the heading moves along columns.
func (h Heading) Horizontal() bool {
	return h == HeadingLeft || h == HeadingRight
}

// String returns a human-readable name for the heading.
func (h Heading) String() string {
	switch h {
	case HeadingUp:
		return "Up"
	case HeadingDown:
		return "Down"
	case HeadingLeft:
		return "Left"
	case HeadingRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Rect represents an axis-aligned box in screen coordinates.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
