// Package universe implements the Invaders simulation core: a deterministic,
// tick-driven world that owns the player, the alien formation, missiles and
// bombs, and rasterizes them into a flat cell buffer for the host renderer.
//
// The package has no knowledge of terminals or input devices. Hosts call
// Tick at their own cadence and read the committed buffer through Cells.
package universe

import (
	"errors"
	"fmt"
)

// Cell is one unit of the render grid.
type Cell uint8

const (
	CellEmpty  Cell = 0
	CellFilled Cell = 1
	CellIndex  Cell = 2 // reserved for hosts, never produced by the built-in sprites
)

// ErrInvalidCell is returned when a sprite mask holds a glyph that does not
// map to a Cell.
var ErrInvalidCell = errors.New("invalid cell")

// String returns the mask glyph for the cell.
func (c Cell) String() string {
	switch c {
	case CellEmpty:
		return "."
	case CellFilled:
		return "@"
	case CellIndex:
		return "+"
	default:
		return "?"
	}
}

// ParseCell decodes a sprite mask glyph.
//
//	'.' -> CellEmpty, '@' -> CellFilled, '+' -> CellIndex
func ParseCell(r rune) (Cell, error) {
	switch r {
	case '.':
		return CellEmpty, nil
	case '@':
		return CellFilled, nil
	case '+':
		return CellIndex, nil
	}
	return CellEmpty, fmt.Errorf("universe: glyph %q: %w", r, ErrInvalidCell)
}

// newGrid allocates an all-empty row-major grid.
func newGrid(width, height int) []Cell {
	return make([]Cell, width*height)
}

// index converts a coordinate to a flat grid index.
func index(x, y, width int) int {
	return y*width + x
}
