package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(nil, "invaders", "Invaders", 80, 24)

	out := m.View()
	if !strings.Contains(out, "HIGH SCORES - Invaders") {
		t.Errorf("title missing from %q", out)
	}
	if !strings.Contains(out, "No scores recorded yet.") {
		t.Error("empty scoreboard should say so")
	}
	if !strings.Contains(out, "no games recorded") {
		t.Error("stats line should report no games")
	}
}

func TestScoreboardListsScores(t *testing.T) {
	store := openStore(t)
	store.SaveScore("invaders", "ann", 300)
	store.SaveScore("invaders", "", 100)
	store.SaveScore("other", "bob", 900)

	m := NewScoreboardModel(store, "invaders", "Invaders", 100, 30)

	if len(m.scores) != 2 {
		t.Fatalf("loaded %d scores, expected 2", len(m.scores))
	}
	rows := scoreRows(m.scores)
	if rows[0][0] != "#1" || rows[0][1] != "ann" || rows[0][2] != "300" {
		t.Errorf("first row = %v", rows[0])
	}
	if rows[1][1] != "-" {
		t.Errorf("anonymous player should show as -, got %q", rows[1][1])
	}

	out := m.View()
	if !strings.Contains(out, "2 games") || !strings.Contains(out, "best 300") {
		t.Errorf("stats line missing from %q", out)
	}
}

func TestScoreboardQuit(t *testing.T) {
	m := NewScoreboardModel(nil, "invaders", "Invaders", 80, 24)

	next, cmd := m.Update(runeKey('q'))
	sm := next.(ScoreboardModel)
	if !sm.IsQuitting() || cmd == nil {
		t.Error("q should quit the scoreboard")
	}
	if sm.View() != "" {
		t.Error("View should be empty once quitting")
	}
}

func TestScoreboardResize(t *testing.T) {
	store := openStore(t)
	for i := 1; i <= 5; i++ {
		store.SaveScore("invaders", "ann", i*10)
	}
	m := NewScoreboardModel(store, "invaders", "Invaders", 80, 24)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	sm := next.(ScoreboardModel)
	if sm.width != 120 || sm.height != 40 {
		t.Errorf("size = %dx%d, expected 120x40", sm.width, sm.height)
	}
	if len(sm.table.Rows()) != 5 {
		t.Errorf("table has %d rows after resize, expected 5", len(sm.table.Rows()))
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText() = %q, expected %q", got, "  ab")
	}
	if got := centerText("abcdef", 4); got != "abcdef" {
		t.Errorf("text wider than width should be returned as is, got %q", got)
	}
}
