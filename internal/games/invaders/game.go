// Package invaders adapts the universe simulation to the platform's game
// lifecycle: input actions steer the ship, each Step advances one tick and
// Render draws the cell grid as Braille characters.
package invaders

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/universe"
)

// ID is the game identifier used for registry lookups and score storage.
const ID = "invaders"

// Game implements registry.Game around a universe.
type Game struct {
	uni    *universe.Universe
	logger *log.Logger
	cfg    core.RuntimeConfig

	tick      uint64
	hold      int // ticks left before a steering key wears off
	paused    bool
	tooSmall  bool
	scale     int
	highScore int
}

// Option configures a Game.
type Option func(*Game)

// WithLogger routes game and universe events to l.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// New creates a game. Reset must be called before the first Step.
func New(opts ...Option) *Game {
	g := &Game{logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func init() {
	registry.Register(ID, func(logger *log.Logger) registry.Game {
		return New(WithLogger(logger))
	})
}

var _ registry.Game = (*Game)(nil)

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Invaders"
}

// Reset starts a new game with a full formation.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	def := core.DefaultConfig()
	if cfg.ArenaW <= 0 || cfg.ArenaH <= 0 {
		cfg.ArenaW, cfg.ArenaH = def.ArenaW, def.ArenaH
	}
	if cfg.HoldTicks <= 0 {
		cfg.HoldTicks = def.HoldTicks
	}
	g.cfg = cfg

	g.uni = universe.New(cfg.ArenaW, cfg.ArenaH, universe.WithLogger(g.logger))
	g.uni.AddAliens()

	g.tick = 0
	g.hold = 0
	g.paused = false
	g.Resize(cfg.ScreenW, cfg.ScreenH)

	g.logger.Debug("new game", "width", cfg.ArenaW, "height", cfg.ArenaH, "scale", g.scale)
}

// Resize adapts rendering to a new terminal size without restarting.
// The simulation is held while the arena cannot be shown.
func (g *Game) Resize(screenW, screenH int) {
	g.cfg.ScreenW = screenW
	g.cfg.ScreenH = screenH
	scale, ok := fitScale(g.cfg.ArenaW, g.cfg.ArenaH, screenW, screenH-hudRows)
	g.scale = scale
	g.tooSmall = !ok
}

// SetHighScore sets the best stored score shown on the HUD.
func (g *Game) SetHighScore(score int) {
	g.highScore = score
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionPause) && g.uni.Running() {
		g.paused = !g.paused
	}

	if g.paused || g.tooSmall || !g.uni.Running() {
		return core.StepResult{State: g.State()}
	}

	g.steer(in)
	if in.Has(core.ActionFire) {
		g.uni.FireMissile()
	}

	g.uni.Tick()

	if !g.uni.Running() {
		g.logger.Info("game finished", "score", g.uni.Score(), "cleared", len(g.uni.Aliens()) == 0)
	}
	return core.StepResult{State: g.State()}
}

// steer maps movement actions to a ship heading. Terminals report key
// presses but not releases, so a heading lasts HoldTicks after the last
// press unless renewed by key repeat.
func (g *Game) steer(in core.InputFrame) {
	switch {
	case in.Has(core.ActionStop):
		g.hold = 0
		g.uni.SetPlayerHeading(universe.PlayerStill)
	case in.Has(core.ActionLeft):
		g.hold = g.cfg.HoldTicks
		g.uni.SetPlayerHeading(universe.PlayerLeft)
	case in.Has(core.ActionRight):
		g.hold = g.cfg.HoldTicks
		g.uni.SetPlayerHeading(universe.PlayerRight)
	case g.hold > 0:
		g.hold--
		if g.hold == 0 {
			g.uni.SetPlayerHeading(universe.PlayerStill)
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.uni.Score(),
		Lives:    g.uni.Lives(),
		GameOver: !g.uni.Running(),
		Paused:   g.paused,
	}
}

// Cleared reports whether the game ended with every alien destroyed.
func (g *Game) Cleared() bool {
	return !g.uni.Running() && len(g.uni.Aliens()) == 0
}
