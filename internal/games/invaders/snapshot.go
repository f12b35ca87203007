package invaders

import "github.com/vovakirdan/tui-invaders/internal/universe"

// Snapshot captures the adapter and world state for determinism testing.
type Snapshot struct {
	Tick     uint64
	Paused   bool
	TooSmall bool
	Hold     int
	World    universe.Snapshot
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.tick,
		Paused:   g.paused,
		TooSmall: g.tooSmall,
		Hold:     g.hold,
		World:    g.uni.Snapshot(),
	}
}
