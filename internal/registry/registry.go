// Package registry provides a global registry for game factories.
// Games register themselves in init() functions so the platform can build a
// fresh instance per local run or SSH session without importing them directly.
package registry

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Game is the lifecycle the terminal platform drives.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "invaders").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start and again when restarting after game over.
	// The RuntimeConfig provides screen and arena dimensions.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	// Input is abstracted to platform-level actions (Fire, Pause, etc.).
	// Returns the result of this tick including current game state.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// Resize adapts the game to a new terminal size without restarting it.
	Resize(screenW, screenH int)

	// State returns the current game state (score, lives, game over, paused).
	State() core.GameState
}

// Factory creates a new instance of a game that logs to logger.
// A nil logger means the game logs nowhere.
type Factory func(logger *log.Logger) Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	g := f(nil)
	titles[id] = g.Title()
}

// Title returns the display name of a registered game.
// Unknown IDs return the ID itself.
func Title(id string) string {
	mu.RLock()
	defer mu.RUnlock()

	if title, ok := titles[id]; ok {
		return title
	}
	return id
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string, logger *log.Logger) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(logger), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
