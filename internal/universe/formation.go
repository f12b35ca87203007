package universe

// Heading is the shared direction of the alien formation.
type Heading uint8

const (
	HeadingRight Heading = iota
	HeadingDown
	HeadingLeft
)

// String returns a human-readable heading name.
func (h Heading) String() string {
	switch h {
	case HeadingRight:
		return "Right"
	case HeadingDown:
		return "Down"
	case HeadingLeft:
		return "Left"
	default:
		return "Unknown"
	}
}

// Reverse returns the heading the formation takes after a counter wrap.
// Only Right and Left have a successor; Down has none and ok is false.
func (h Heading) Reverse() (next Heading, ok bool) {
	switch h {
	case HeadingRight:
		return HeadingLeft, true
	case HeadingLeft:
		return HeadingRight, true
	default:
		return h, false
	}
}

// Formation timing and step sizes.
const (
	StepEvery   = 20  // ticks between formation steps
	WrapAfter   = 100 // counter resets to 0 once it exceeds this
	StepSize    = 5   // cells moved per step
	DropOnWrap  = 5   // cells every alien moves down on a wrap
	BombEvery   = 40  // ticks between bomb drops
	landingSlop = 5   // an alien has landed once y+landingSlop passes the floor
)

// landed reports whether an alien has reached the floor.
func landed(a *Alien, floor int) bool {
	return a.Y+landingSlop > floor
}

// stepAlien moves one alien a single step along heading.
// It returns true without moving when the alien has landed.
func stepAlien(h Heading, a *Alien, floor int) bool {
	if landed(a, floor) {
		return true
	}
	switch h {
	case HeadingRight:
		a.X += StepSize
	case HeadingLeft:
		a.X -= StepSize
	case HeadingDown:
		a.Y += StepSize
	}
	a.Phase = !a.Phase
	if !a.Alive {
		// the explosion frame has been shown once
		a.Remove = true
	}
	return false
}

// reverseFormation drops every alien a row and flips the shared heading.
func (u *Universe) reverseFormation() {
	for i := range u.aliens {
		u.aliens[i].Y += DropOnWrap
	}
	next, ok := u.anim.Heading.Reverse()
	if !ok {
		u.logger.Warn("formation cannot reverse", "heading", u.anim.Heading)
		return
	}
	u.anim.Heading = next
}

// advanceFormation steps, hit-tests and draws every alien into grid.
// Missiles are drawn once per alien visited; a missile that scores is not
// drawn for that alien and is removed at the end of the tick.
func (u *Universe) advanceFormation(grid []Cell) {
	step := u.anim.Counter%StepEvery == 0
	missile := assets[SpriteMissile]

	for i := range u.aliens {
		a := &u.aliens[i]
		sprite := AlienSprite(a.Kind, a.Phase, a.Alive)

		if step && stepAlien(u.anim.Heading, a, u.height) {
			u.running = false
			u.logger.Info("aliens landed", "y", a.Y)
			return
		}

		for j := range u.missiles {
			m := &u.missiles[j]
			if IsHit(a, m) {
				a.Alive = false
				m.Remove = true
				u.player.Score += a.Value
				continue
			}
			Draw(grid, u.width, u.height, m.X, m.Y, missile)
		}

		Draw(grid, u.width, u.height, a.X, a.Y, sprite)
	}
}
