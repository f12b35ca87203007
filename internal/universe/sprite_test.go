package universe

import (
	"errors"
	"testing"
)

func TestParseCell(t *testing.T) {
	tests := []struct {
		glyph   rune
		want    Cell
		wantErr bool
	}{
		{'.', CellEmpty, false},
		{'@', CellFilled, false},
		{'+', CellIndex, false},
		{'#', CellEmpty, true},
		{'3', CellEmpty, true},
		{' ', CellEmpty, true},
	}

	for _, tc := range tests {
		t.Run(string(tc.glyph), func(t *testing.T) {
			got, err := ParseCell(tc.glyph)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidCell) {
					t.Fatalf("ParseCell(%q) error = %v, expected ErrInvalidCell", tc.glyph, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCell(%q) unexpected error: %v", tc.glyph, err)
			}
			if got != tc.want {
				t.Errorf("ParseCell(%q) = %v, expected %v", tc.glyph, got, tc.want)
			}
		})
	}
}

func TestNewSpriteRejectsBadMasks(t *testing.T) {
	tests := []struct {
		name   string
		w, h   int
		rows   []string
		isCell bool
	}{
		{"zero width", 0, 1, []string{""}, false},
		{"missing row", 2, 2, []string{"@@"}, false},
		{"short row", 3, 1, []string{"@@"}, false},
		{"bad glyph", 2, 1, []string{"@x"}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewSprite(tc.w, tc.h, tc.rows...)
			if err == nil {
				t.Fatal("expected an error")
			}
			if errors.Is(err, ErrInvalidCell) != tc.isCell {
				t.Errorf("errors.Is(err, ErrInvalidCell) = %v, expected %v (%v)", !tc.isCell, tc.isCell, err)
			}
		})
	}
}

func TestNewSprite(t *testing.T) {
	s, err := NewSprite(3, 2, "@.+", ".@.")
	if err != nil {
		t.Fatalf("NewSprite() failed: %v", err)
	}
	if s.Width() != 3 || s.Height() != 2 {
		t.Errorf("size = %dx%d, expected 3x2", s.Width(), s.Height())
	}
	if s.At(0, 0) != CellFilled || s.At(1, 0) != CellEmpty || s.At(2, 0) != CellIndex || s.At(1, 1) != CellFilled {
		t.Error("mask decoded incorrectly")
	}
	if s.At(5, 5) != CellEmpty {
		t.Error("out-of-range At should read empty")
	}
}

func TestAssetDimensions(t *testing.T) {
	tests := []struct {
		id   SpriteID
		w, h int
	}{
		{SpriteAlienA1, 12, 8},
		{SpriteAlienA2, 12, 8},
		{SpriteAlienB1, 12, 8},
		{SpriteAlienB2, 12, 8},
		{SpriteAlienC1, 12, 8},
		{SpriteAlienC2, 12, 8},
		{SpriteExplosion, 12, 8},
		{SpritePlayer, 11, 7},
		{SpritePlayerExplosion, 11, 7},
		{SpriteMissile, 1, 3},
		{SpriteBomb, 3, 3},
	}

	for _, tc := range tests {
		s := Asset(tc.id)
		if s.Width() != tc.w || s.Height() != tc.h {
			t.Errorf("sprite %d is %dx%d, expected %dx%d", tc.id, s.Width(), s.Height(), tc.w, tc.h)
		}
	}
}

func TestAlienSpriteSelection(t *testing.T) {
	if got := AlienSprite(AlienB, true, true); got.At(2, 0) != Asset(SpriteAlienB1).At(2, 0) || got.At(1, 0) != CellEmpty {
		t.Error("phase true should select the first frame")
	}
	if got := AlienSprite(AlienB, false, true); got.At(1, 0) != CellFilled {
		t.Error("phase false should select the second frame")
	}
	dead := AlienSprite(AlienC, true, false)
	expl := Asset(SpriteExplosion)
	for y := 0; y < AlienHeight; y++ {
		for x := 0; x < AlienWidth; x++ {
			if dead.At(x, y) != expl.At(x, y) {
				t.Fatal("dead aliens should use the explosion sprite")
			}
		}
	}
	if PlayerSprite(false).At(0, 0) != CellFilled || PlayerSprite(true).At(0, 0) != CellEmpty {
		t.Error("player sprite selection is wrong")
	}
}

func TestDraw(t *testing.T) {
	grid := newGrid(10, 10)
	Draw(grid, 10, 10, 2, 3, Asset(SpriteBomb))

	want := map[[2]int]Cell{
		{2, 3}: CellFilled, {3, 3}: CellFilled, {4, 3}: CellFilled,
		{2, 4}: CellEmpty, {3, 4}: CellFilled, {4, 4}: CellEmpty,
		{2, 5}: CellEmpty, {3, 5}: CellFilled, {4, 5}: CellEmpty,
	}
	for pos, c := range want {
		if got := grid[index(pos[0], pos[1], 10)]; got != c {
			t.Errorf("cell %v = %v, expected %v", pos, got, c)
		}
	}
}

func TestDrawOverwritesWithEmptyPixels(t *testing.T) {
	grid := newGrid(5, 5)
	for i := range grid {
		grid[i] = CellFilled
	}
	Draw(grid, 5, 5, 0, 0, Asset(SpriteBomb))

	if grid[index(0, 1, 5)] != CellEmpty {
		t.Error("empty mask pixels should overwrite what was there")
	}
}

func TestDrawClipsAtArenaEdges(t *testing.T) {
	tests := []struct {
		name string
		x, y int
	}{
		{"right edge", 8, 2},
		{"bottom edge", 2, 8},
		{"bottom-right corner", 9, 9},
		{"negative origin", -2, -2},
		{"fully outside", 40, 40},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			grid := newGrid(10, 10)
			Draw(grid, 10, 10, tc.x, tc.y, Asset(SpriteBomb))

			if len(grid) != 100 {
				t.Fatalf("grid length changed to %d", len(grid))
			}
			s := Asset(SpriteBomb)
			for y := 0; y < 10; y++ {
				for x := 0; x < 10; x++ {
					want := s.At(x-tc.x, y-tc.y)
					if got := grid[index(x, y, 10)]; got != want {
						t.Errorf("cell (%d,%d) = %v, expected %v", x, y, got, want)
					}
				}
			}
		})
	}
}
