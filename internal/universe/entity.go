package universe

// AlienKind selects an alien's look and row value.
type AlienKind uint8

const (
	AlienA AlienKind = iota + 1
	AlienB
	AlienC
)

// String returns the kind letter.
func (k AlienKind) String() string {
	switch k {
	case AlienA:
		return "A"
	case AlienB:
		return "B"
	case AlienC:
		return "C"
	default:
		return "?"
	}
}

// PlayerHeading is the player's movement intent.
type PlayerHeading uint8

const (
	PlayerLeft PlayerHeading = iota
	PlayerRight
	PlayerStill
)

// String returns a human-readable heading name.
func (h PlayerHeading) String() string {
	switch h {
	case PlayerLeft:
		return "Left"
	case PlayerRight:
		return "Right"
	case PlayerStill:
		return "Still"
	default:
		return "Unknown"
	}
}

// Player is the ship at the bottom of the arena.
type Player struct {
	X, Y        int
	Alive       bool
	AnimCounter int // ticks spent dead, respawn after respawnTicks
	Heading     PlayerHeading
	Lives       int
	Score       int
}

// Alien is one member of the formation.
type Alien struct {
	X, Y        int
	Value       int
	Phase       bool // walk-cycle frame, toggled on every step
	Alive       bool
	Remove      bool
	Kind        AlienKind
	AnimCounter int
}

// Missile is a player shot travelling up.
type Missile struct {
	X, Y   int
	Remove bool
}

// Bomb is an alien shot travelling down.
type Bomb struct {
	X, Y   int
	Remove bool
}

// AnimationInfo holds the free-running frame counter and the formation's
// shared heading.
type AnimationInfo struct {
	Counter int
	Heading Heading
}

func newPlayer(x, y int) Player {
	return Player{
		X:       x,
		Y:       y,
		Alive:   true,
		Heading: PlayerStill,
		Lives:   StartLives,
	}
}

func newAlien(x, y, value int, kind AlienKind) Alien {
	return Alien{
		X:     x,
		Y:     y,
		Value: value,
		Kind:  kind,
		Alive: true,
	}
}
