package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW   int // Screen width in characters
	ScreenH   int // Screen height in characters
	ArenaW    int // Simulation arena width in cells
	ArenaH    int // Simulation arena height in cells
	TickRate  int // Simulation ticks per second (default 60)
	HoldTicks int // Ticks a movement key keeps the ship moving
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   132,
		ScreenH:   52,
		ArenaW:    256,
		ArenaH:    192,
		TickRate:  60,
		HoldTicks: 8,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Lives    int  // Remaining lives
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
