package universe

// Tick advances the world by one frame and commits a freshly drawn grid.
//
// With no aliens left the game ends and nothing else changes, including the
// grid, which keeps showing the previous frame.
func (u *Universe) Tick() {
	if len(u.aliens) == 0 {
		if u.running {
			u.logger.Info("game over", "score", u.player.Score)
		}
		u.running = false
		return
	}

	grid := newGrid(u.width, u.height)

	u.advanceMissiles()

	if u.anim.Counter%BombEvery == 0 {
		u.DropBomb()
	}

	u.movePlayer()
	playerSprite := u.animatePlayer()

	if u.advanceBombs(grid) {
		playerSprite = assets[SpritePlayerExplosion]
	}

	Draw(grid, u.width, u.height, u.player.X, u.player.Y, playerSprite)

	u.advanceFormation(grid)

	u.aliens = removeFlagged(u.aliens, func(a *Alien) bool { return a.Remove })
	u.missiles = removeFlagged(u.missiles, func(m *Missile) bool { return m.Remove })
	u.cells = grid

	u.anim.Counter++
	if u.anim.Counter > WrapAfter {
		u.anim.Counter = 0
		u.reverseFormation()
	}
}

// advanceMissiles moves every missile up, flagging those at the top edge.
func (u *Universe) advanceMissiles() {
	for i := range u.missiles {
		m := &u.missiles[i]
		if m.Y > missileSpeed {
			m.Y -= missileSpeed
		} else {
			m.Remove = true
		}
	}
}

const (
	missileSpeed = 3
	playerSpeed  = 2
	playerMinX   = 3
)

// movePlayer applies the heading, clamped to the arena.
func (u *Universe) movePlayer() {
	p := &u.player
	switch {
	case p.Heading == PlayerRight && p.X+PlayerWidth < u.width:
		p.X += playerSpeed
	case p.Heading == PlayerLeft && p.X > playerMinX:
		p.X -= playerSpeed
	}
}

// animatePlayer runs the death animation and respawns the ship when it ends.
// It returns the sprite to draw this tick; the wreck is shown on the respawn
// tick as well.
func (u *Universe) animatePlayer() Sprite {
	p := &u.player
	if p.Alive {
		return assets[SpritePlayer]
	}
	p.AnimCounter++
	if p.AnimCounter > respawnTicks {
		u.respawnPlayer()
	}
	return assets[SpritePlayerExplosion]
}

// respawnPlayer re-centres and revives the ship, spending a life.
// Lives saturate at zero.
func (u *Universe) respawnPlayer() {
	p := &u.player
	p.X = u.width / 2
	p.Alive = true
	if p.Lives > 0 {
		p.Lives--
	}
	p.AnimCounter = 0
}

// advanceBombs moves bombs still above the floor, checks them against the
// player and draws the ones that missed. It reports whether the player was hit.
func (u *Universe) advanceBombs(grid []Cell) bool {
	hit := false
	bomb := assets[SpriteBomb]
	for i := range u.bombs {
		b := &u.bombs[i]
		if b.Y+bomb.Height() >= u.height {
			continue
		}
		b.Y++
		if bombHitsPlayer(b, &u.player) {
			u.logger.Info("player hit", "lives", u.player.Lives)
			hit = true
			u.player.Alive = false
			if u.player.Lives < 1 {
				u.running = false
			}
			continue
		}
		Draw(grid, u.width, u.height, b.X, b.Y, bomb)
	}
	return hit
}

// removeFlagged filters s in place, keeping entries for which flagged is false.
func removeFlagged[T any](s []T, flagged func(*T) bool) []T {
	kept := s[:0]
	for i := range s {
		if !flagged(&s[i]) {
			kept = append(kept, s[i])
		}
	}
	clear(s[len(kept):])
	return kept
}
