package universe

import (
	"fmt"
	"unicode/utf8"
)

// Sprite is an immutable, pre-decoded pixel mask.
// Sprites are shared by value; the mask slice is never written after
// construction.
type Sprite struct {
	width  int
	height int
	mask   []Cell
}

// NewSprite decodes a mask given as one string per row.
// Every row must be exactly width glyphs long and there must be height rows.
func NewSprite(width, height int, rows ...string) (Sprite, error) {
	if width <= 0 || height <= 0 {
		return Sprite{}, fmt.Errorf("universe: sprite size %dx%d must be positive", width, height)
	}
	if len(rows) != height {
		return Sprite{}, fmt.Errorf("universe: sprite has %d rows, want %d", len(rows), height)
	}

	mask := make([]Cell, 0, width*height)
	for y, row := range rows {
		if n := utf8.RuneCountInString(row); n != width {
			return Sprite{}, fmt.Errorf("universe: sprite row %d has %d glyphs, want %d", y, n, width)
		}
		for _, r := range row {
			c, err := ParseCell(r)
			if err != nil {
				return Sprite{}, fmt.Errorf("universe: sprite row %d: %w", y, err)
			}
			mask = append(mask, c)
		}
	}

	return Sprite{width: width, height: height, mask: mask}, nil
}

// mustSprite is NewSprite for the built-in asset table.
func mustSprite(width, height int, rows ...string) Sprite {
	s, err := NewSprite(width, height, rows...)
	if err != nil {
		panic(err)
	}
	return s
}

// Width returns the sprite width in cells.
func (s Sprite) Width() int {
	return s.width
}

// Height returns the sprite height in cells.
func (s Sprite) Height() int {
	return s.height
}

// At returns the mask cell at (x, y). Out-of-range coordinates read as empty.
func (s Sprite) At(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return CellEmpty
	}
	return s.mask[index(x, y, s.width)]
}

// Draw stamps the sprite into grid with its top-left corner at (x, y).
// Every mask cell is written, empty ones included, so a sprite fully replaces
// the rectangle it covers.
// Pixels that fall outside [0,gridW)x[0,gridH) are clipped.
func Draw(grid []Cell, gridW, gridH, x, y int, s Sprite) {
	for yi := 0; yi < s.height; yi++ {
		gy := y + yi
		if gy < 0 || gy >= gridH {
			continue
		}
		for xi := 0; xi < s.width; xi++ {
			gx := x + xi
			if gx < 0 || gx >= gridW {
				continue
			}
			grid[index(gx, gy, gridW)] = s.mask[index(xi, yi, s.width)]
		}
	}
}
