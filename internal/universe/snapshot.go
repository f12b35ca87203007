package universe

// Snapshot captures the observable world state for determinism tests and
// debugging. It is not a save format.
type Snapshot struct {
	Counter  int
	Heading  Heading
	Running  bool
	Score    int
	Lives    int
	PlayerX  int
	PlayerY  int
	Alive    bool
	Aliens   int
	Missiles int
	Bombs    int
	Filled   int // filled cells in the committed grid
}

// Snapshot returns the current world snapshot.
func (u *Universe) Snapshot() Snapshot {
	filled := 0
	for _, c := range u.cells {
		if c != CellEmpty {
			filled++
		}
	}
	return Snapshot{
		Counter:  u.anim.Counter,
		Heading:  u.anim.Heading,
		Running:  u.running,
		Score:    u.player.Score,
		Lives:    u.player.Lives,
		PlayerX:  u.player.X,
		PlayerY:  u.player.Y,
		Alive:    u.player.Alive,
		Aliens:   len(u.aliens),
		Missiles: len(u.missiles),
		Bombs:    len(u.bombs),
		Filled:   filled,
	}
}
