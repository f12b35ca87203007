package universe

import "github.com/vovakirdan/tui-invaders/internal/core"

// Hit boxes are inclusive on both edges, so each is one cell wider and
// taller than the reach it describes.
const (
	alienReachX  = 12
	alienReachY  = 8
	playerReachX = 11
	playerReachY = 7
)

// alienBox returns the area in which a missile counts as a hit.
func alienBox(a *Alien) core.Rect {
	return core.NewRect(a.X, a.Y, alienReachX+1, alienReachY+1)
}

// playerBox returns the area in which a bomb counts as a hit.
func playerBox(p *Player) core.Rect {
	return core.NewRect(p.X, p.Y, playerReachX+1, playerReachY+1)
}

// IsHit reports whether missile m is inside the box of a living alien a.
func IsHit(a *Alien, m *Missile) bool {
	return a.Alive && alienBox(a).Contains(m.X, m.Y)
}

// bombHitsPlayer reports whether bomb b is inside the player's box.
// The player's alive flag is not consulted.
func bombHitsPlayer(b *Bomb, p *Player) bool {
	return playerBox(p).Contains(b.X, b.Y)
}
