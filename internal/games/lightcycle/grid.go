// Package lightcycle implements the movement, collision and opponent-decision
// engine of the light cycle game: a human and an AI ride across a grid, each
// leaving a permanent wall behind, and the first to hit a wall, the boundary
// or the opponent's trail loses the round.
//
// The engine never draws. It reports committed segments, collisions and round
// results to a Sink and asks a Pacer for the inter-tick delays.
package lightcycle

import "github.com/vovakirdan/lightcycle/internal/core"

// Grid is the authoritative set of occupied cells for one round.
type Grid struct {
	height  int
	width   int
	visited map[core.Cell]struct{}
}

// NewGrid creates an empty grid with the given bounds.
func NewGrid(height, width int) *Grid {
	return &Grid{
		height:  height,
		width:   width,
		visited: make(map[core.Cell]struct{}),
	}
}

// Height returns the grid height in cells.
func (g *Grid) Height() int {
	return g.height
}

// Width returns the grid width in cells.
func (g *Grid) Width() int {
	return g.width
}

// IsOccupied reports whether a trail already covers the cell.
func (g *Grid) IsOccupied(c core.Cell) bool {
	_, ok := g.visited[c]
	return ok
}

// InBounds reports whether the cell lies inside the playable area.
// A one-cell margin on every side is never playable.
func (g *Grid) InBounds(c core.Cell) bool {
	return c.Row > 0 && c.Row < g.height-1 && c.Col > 0 && c.Col < g.width-1
}

// Commit marks the cell as occupied. Callers validate first; committing an
// occupied cell changes nothing.
func (g *Grid) Commit(c core.Cell) {
	g.visited[c] = struct{}{}
}

// Len returns the number of occupied cells.
func (g *Grid) Len() int {
	return len(g.visited)
}

// Reset discards every occupied cell.
func (g *Grid) Reset() {
	clear(g.visited)
}
