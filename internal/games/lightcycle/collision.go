package lightcycle

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/lightcycle/internal/core"
)

// ErrInvalidMove is the parent of every terminal move error.
var ErrInvalidMove = errors.New("lightcycle: invalid move")

var (
	// ErrOutOfBounds means the cell lies in the margin or outside the grid.
	ErrOutOfBounds = fmt.Errorf("%w: out of bounds", ErrInvalidMove)
	// ErrCellOccupied means a trail already covers the cell.
	ErrCellOccupied = fmt.Errorf("%w: cell occupied", ErrInvalidMove)
)

// Board is a read-only view of the grid.
type Board interface {
	IsOccupied(c core.Cell) bool
	InBounds(c core.Cell) bool
}

// Validate checks a proposed cell against the board.
// It returns nil for a free in-bounds cell.
func Validate(c core.Cell, g Board) error {
	if !g.InBounds(c) {
		return ErrOutOfBounds
	}
	if g.IsOccupied(c) {
		return ErrCellOccupied
	}
	return nil
}

// valid is Validate as a predicate, used by the planner's look-ahead.
func valid(c core.Cell, g Board) bool {
	return Validate(c, g) == nil
}
