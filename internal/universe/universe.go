package universe

import (
	"io"

	"github.com/charmbracelet/log"
)

// Player lifecycle constants.
const (
	StartLives   = 3
	respawnTicks = 10 // dead ticks before the ship comes back
	playerFloor  = PlayerHeight + 1
)

// Universe is the whole game world. It is not safe for concurrent use.
type Universe struct {
	width   int
	height  int
	running bool
	cells   []Cell

	aliens   []Alien
	missiles []Missile
	bombs    []Bomb
	player   Player
	anim     AnimationInfo

	logger *log.Logger
}

// Option configures a Universe.
type Option func(*Universe)

// WithLogger routes game events to l. The default logger discards.
func WithLogger(l *log.Logger) Option {
	return func(u *Universe) {
		if l != nil {
			u.logger = l
		}
	}
}

// New creates an empty arena of width x height cells with the ship centred on
// the bottom row band. Aliens are added separately with AddAliens.
func New(width, height int, opts ...Option) *Universe {
	u := &Universe{
		width:   width,
		height:  height,
		running: true,
		cells:   newGrid(width, height),
		player:  newPlayer(width/2, height-playerFloor),
		anim:    AnimationInfo{Heading: HeadingRight},
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Width returns the arena width in cells.
func (u *Universe) Width() int {
	return u.width
}

// Height returns the arena height in cells.
func (u *Universe) Height() int {
	return u.height
}

// Running reports whether the game is still in progress.
func (u *Universe) Running() bool {
	return u.running
}

// Score returns the player's score.
func (u *Universe) Score() int {
	return u.player.Score
}

// Lives returns the player's remaining lives.
func (u *Universe) Lives() int {
	return u.player.Lives
}

// Cells returns the last committed frame, row-major.
// The slice is shared with the universe and must not be modified; it stays
// valid until the next Tick replaces it.
func (u *Universe) Cells() []Cell {
	return u.cells
}

// Aliens returns a copy of the formation.
func (u *Universe) Aliens() []Alien {
	out := make([]Alien, len(u.aliens))
	copy(out, u.aliens)
	return out
}

// Missiles returns the number of missiles in flight.
func (u *Universe) Missiles() int {
	return len(u.missiles)
}

// Bombs returns the number of bombs tracked.
func (u *Universe) Bombs() int {
	return len(u.bombs)
}

// Player returns a copy of the player.
func (u *Universe) Player() Player {
	return u.player
}

// Animation returns the frame counter and formation heading.
func (u *Universe) Animation() AnimationInfo {
	return u.anim
}
