package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	_ "github.com/vovakirdan/tui-lines/internal/games/lines"
	"github.com/vovakirdan/tui-lines/internal/storage"
)

func TestScoreboardShowsScoresPerMode(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	store.SaveScore("lines", 120, 40, 7)
	store.SaveScore("lines", 80, 22, 8)
	store.SaveScore("lines_classic", 300, 90, 9)

	m := NewScoreboardModel(store, 100, 30)
	if len(m.games) != 2 || m.games[0].ID != "lines" {
		t.Fatalf("games = %+v", m.games)
	}
	if len(m.scores) != 2 || m.scores[0].Score != 120 {
		t.Fatalf("lines scores = %+v", m.scores)
	}
	if m.stats == nil || m.stats.GamesCount != 2 {
		t.Errorf("stats = %+v", m.stats)
	}
	rows := m.table.Rows()
	if len(rows) != 2 || rows[0][1] != "120" || rows[0][2] != "40" || rows[0][3] != "7" {
		t.Errorf("rows = %v", rows)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if len(m.scores) != 1 || m.scores[0].Seed != 9 {
		t.Errorf("classic scores = %+v", m.scores)
	}
	if !strings.Contains(m.View(), "Lines (Classic)") {
		t.Error("title should name the current mode")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	if m.gameCursor != 0 {
		t.Errorf("shift+tab should wrap back, cursor %d", m.gameCursor)
	}
}

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)
	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Errorf("empty scoreboard view:\n%s", m.View())
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("esc should go back")
	}
}
