package tui

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// fakeGame ends after endAt steps with a fixed score.
type fakeGame struct {
	steps     int
	endAt     int
	score     int
	resets    int
	resizedW  int
	resizedH  int
	highScore int
	lastInput core.InputFrame
}

func (f *fakeGame) ID() string    { return "fake" }
func (f *fakeGame) Title() string { return "Fake" }

func (f *fakeGame) Reset(core.RuntimeConfig) {
	f.steps = 0
	f.resets++
}

func (f *fakeGame) Step(in core.InputFrame) core.StepResult {
	f.lastInput = core.NewInputFrame()
	for a, on := range in.Actions {
		if on {
			f.lastInput.Set(a)
		}
	}
	f.steps++
	return core.StepResult{State: f.State()}
}

func (f *fakeGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "FAKE")
}

func (f *fakeGame) Resize(w, h int) {
	f.resizedW, f.resizedH = w, h
}

func (f *fakeGame) State() core.GameState {
	return core.GameState{Score: f.score, GameOver: f.steps >= f.endAt}
}

func (f *fakeGame) SetHighScore(score int) {
	f.highScore = score
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func testRuntime() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.ScreenW, cfg.ScreenH = 40, 10
	return cfg
}

func TestModelSavesScoreOnce(t *testing.T) {
	store := openStore(t)
	game := &fakeGame{endAt: 3, score: 150}
	m := NewModel(game, store, testRuntime(), WithPlayer("ann"))
	m.Init()

	for i := 0; i < 6; i++ {
		m = step(t, m, TickMsg{})
	}

	scores, err := store.TopScores("fake", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("expected exactly one saved score, got %d", len(scores))
	}
	if scores[0].Score != 150 || scores[0].Player != "ann" {
		t.Errorf("saved %+v, expected ann/150", scores[0])
	}
	if game.highScore != 150 {
		t.Errorf("high score pushed to game = %d, expected 150", game.highScore)
	}
}

func TestModelLogsSavedScore(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	m := NewModel(&fakeGame{endAt: 2, score: 90}, openStore(t), testRuntime(),
		WithPlayer("ann"), WithLogger(logger))
	m.Init()
	for i := 0; i < 5; i++ {
		m = step(t, m, TickMsg{})
	}

	out := buf.String()
	if strings.Count(out, "score saved") != 1 {
		t.Errorf("expected one score saved entry, got:\n%s", out)
	}
	if strings.Contains(out, "game over") {
		t.Errorf("game end is logged by the game, not the host:\n%s", out)
	}
}

func TestModelSkipsZeroScores(t *testing.T) {
	store := openStore(t)
	game := &fakeGame{endAt: 1}
	m := NewModel(game, store, testRuntime())
	m.Init()

	m = step(t, m, TickMsg{})
	step(t, m, TickMsg{})

	if high, _ := store.HighScore("fake"); high != 0 {
		t.Errorf("zero score should not be stored, high = %d", high)
	}
}

func TestModelRestartAfterGameOver(t *testing.T) {
	game := &fakeGame{endAt: 1, score: 10}
	m := NewModel(game, nil, testRuntime())
	m.Init()

	m = step(t, m, runeKey('r'))
	m = step(t, m, TickMsg{})
	if game.resets != 1 {
		t.Fatalf("restart before game over should be ignored, resets = %d", game.resets)
	}
	if !m.gameState.GameOver {
		t.Fatal("game should be over after one step")
	}

	m = step(t, m, runeKey('r'))
	m = step(t, m, TickMsg{})
	if game.resets != 2 {
		t.Errorf("restart should reset the game, resets = %d", game.resets)
	}
	if m.scoreSaved {
		t.Error("restart should clear the saved flag")
	}
}

func TestModelForwardsInput(t *testing.T) {
	game := &fakeGame{endAt: 100}
	m := NewModel(game, nil, testRuntime())
	m.Init()

	m = step(t, m, runeKey('a'))
	m = step(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = step(t, m, runeKey('z'))
	m = step(t, m, TickMsg{})

	for a, on := range game.lastInput.Actions {
		if on && a != core.ActionLeft && a != core.ActionFire {
			t.Errorf("unexpected action %v reached the game", a)
		}
	}

	if !game.lastInput.Has(core.ActionLeft) || !game.lastInput.Has(core.ActionFire) {
		t.Error("key presses since the last tick should reach the game")
	}

	step(t, m, TickMsg{})
	if game.lastInput.Has(core.ActionLeft) {
		t.Error("input frame should be cleared after each tick")
	}
}

func TestModelResize(t *testing.T) {
	game := &fakeGame{endAt: 100}
	m := NewModel(game, nil, testRuntime())
	m.Init()

	m = step(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if game.resizedW != 120 || game.resizedH != 40 {
		t.Errorf("game resized to %dx%d, expected 120x40", game.resizedW, game.resizedH)
	}
	if game.resets != 1 {
		t.Error("resize should not restart the game")
	}
	if m.screen.Width() != 120 || m.screen.Height() != 40 {
		t.Errorf("screen is %dx%d, expected 120x40", m.screen.Width(), m.screen.Height())
	}
}

func TestModelQuitKeys(t *testing.T) {
	tests := []struct {
		name     string
		gameOver bool
		msg      tea.KeyMsg
		quits    bool
	}{
		{"q", false, runeKey('q'), true},
		{"ctrl+c", false, tea.KeyMsg{Type: tea.KeyCtrlC}, true},
		{"esc while playing", false, tea.KeyMsg{Type: tea.KeyEsc}, false},
		{"esc after game over", true, tea.KeyMsg{Type: tea.KeyEsc}, true},
		{"b after game over", true, runeKey('b'), true},
		{"fire after game over", true, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewModel(&fakeGame{endAt: 100}, nil, testRuntime())
			m.gameState.GameOver = tc.gameOver

			next, cmd := m.Update(tc.msg)
			nm := next.(Model)
			if nm.quitting != tc.quits {
				t.Errorf("quitting = %v, expected %v", nm.quitting, tc.quits)
			}
			if tc.quits && cmd == nil {
				t.Error("quit should return a command")
			}
			if tc.quits && nm.View() != "" {
				t.Error("View should be empty once quitting")
			}
		})
	}
}

func TestModelView(t *testing.T) {
	m := NewModel(&fakeGame{endAt: 100}, nil, testRuntime())
	m.Init()

	out := m.View()
	if !strings.Contains(out, "FAKE") {
		t.Errorf("View() should contain the game's render, got %q", out)
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawTextColored(0, 0, "SCORE", core.ColorWhite)
	s.DrawText(6, 0, "ok")
	s.DrawTextColored(0, 1, "♥♥", core.ColorBrightRed)

	out := RenderScreen(s)
	if got := strings.Count(out, "\n"); got != 1 {
		t.Errorf("expected 1 newline, got %d", got)
	}
	for _, want := range []string{"SCORE", "ok", "♥♥"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen() missing %q in %q", want, out)
		}
	}
}
