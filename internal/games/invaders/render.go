package invaders

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/universe"
)

const (
	hudRows  = 2 // status line and separator
	maxScale = 4 // coarsest downsampling before the screen counts as too small

	dotsX = 2 // Braille dots per character, horizontally
	dotsY = 4 // and vertically
)

// brailleBits holds the dot bit for each position of a 2x4 Braille cell.
var brailleBits = [dotsY][dotsX]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// fitScale returns the smallest downsampling factor that fits an arena of
// w x h cells into cols x rows characters, and whether one exists.
func fitScale(w, h, cols, rows int) (int, bool) {
	for s := 1; s <= maxScale; s++ {
		if ceilDiv(w, dotsX*s) <= cols && ceilDiv(h, dotsY*s) <= rows {
			return s, true
		}
	}
	return maxScale, false
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderArena(dst)

	switch {
	case g.Cleared():
		g.renderOverlay(dst, "YOU WIN", fmt.Sprintf("Score %d  -  press R to restart", g.uni.Score()))
	case !g.uni.Running():
		g.renderOverlay(dst, "GAME OVER", fmt.Sprintf("Score %d  -  press R to restart", g.uni.Score()))
	case g.paused:
		g.renderOverlay(dst, "PAUSED", "Press P to continue")
	}
}

// renderHUD draws the status line and separator.
func (g *Game) renderHUD(dst *core.Screen) {
	x := 1
	dst.DrawTextColored(x, 0, "SCORE ", core.ColorWhite)
	x += 6
	score := fmt.Sprintf("%06d", g.uni.Score())
	dst.DrawTextColored(x, 0, score, core.ColorYellow)
	x += len(score) + 3

	dst.DrawTextColored(x, 0, "LIVES ", core.ColorWhite)
	x += 6
	lives := strings.Repeat("♥", g.uni.Lives())
	dst.DrawTextColored(x, 0, lives, core.ColorBrightRed)
	x += g.uni.Lives() + 3

	dst.DrawTextColored(x, 0, "HI ", core.ColorWhite)
	x += 3
	dst.DrawTextColored(x, 0, fmt.Sprintf("%06d", max(g.highScore, g.uni.Score())), core.ColorYellow)

	for i := range dst.Width() {
		dst.SetColored(i, 1, '─', core.ColorGray)
	}
}

// renderArena packs the cell grid into Braille characters, centred below
// the HUD. At scale s each dot stands for an s x s block of cells and is
// raised when any cell in the block is non-empty.
func (g *Game) renderArena(dst *core.Screen) {
	w, h := g.uni.Width(), g.uni.Height()
	cells := g.uni.Cells()
	s := g.scale

	cols := ceilDiv(w, dotsX*s)
	rows := ceilDiv(h, dotsY*s)
	offX := (dst.Width() - cols) / 2
	offY := hudRows + (dst.Height()-hudRows-rows)/2

	shipRow := g.uni.Player().Y

	for cy := range rows {
		color := core.ColorBrightGreen
		if cy*dotsY*s+dotsY*s > shipRow {
			color = core.ColorCyan
		}
		for cx := range cols {
			if r := brailleRune(cells, w, h, cx, cy, s); r != 0 {
				dst.SetColored(offX+cx, offY+cy, r, color)
			}
		}
	}
}

// brailleRune returns the Braille character for character cell (cx, cy) at
// scale s, or 0 when no dot is raised.
func brailleRune(cells []universe.Cell, w, h, cx, cy, s int) rune {
	var bits rune
	for dy := range dotsY {
		for dx := range dotsX {
			if blockFilled(cells, w, h, (cx*dotsX+dx)*s, (cy*dotsY+dy)*s, s) {
				bits |= brailleBits[dy][dx]
			}
		}
	}
	if bits == 0 {
		return 0
	}
	return 0x2800 + bits
}

// blockFilled reports whether any cell of the s x s block at (x, y) is set.
func blockFilled(cells []universe.Cell, w, h, x, y, s int) bool {
	for yy := y; yy < y+s && yy < h; yy++ {
		for xx := x; xx < x+s && xx < w; xx++ {
			if cells[yy*w+xx] != universe.CellEmpty {
				return true
			}
		}
	}
	return false
}

// renderOverlay draws a centered boxed message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := core.Max(len(line1), len(line2)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.FillRect(box)
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorBrightRed)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorWhite)
}
