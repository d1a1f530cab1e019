package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-lines/internal/core"
	"github.com/vovakirdan/tui-lines/internal/storage"
)

func TestMenuChoices(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24}
	down := tea.KeyMsg{Type: tea.KeyDown}
	enter := tea.KeyMsg{Type: tea.KeyEnter}

	tests := []struct {
		name string
		keys []tea.KeyMsg
		want MenuChoice
	}{
		{"play", []tea.KeyMsg{enter}, MenuChoicePlay},
		{"scores", []tea.KeyMsg{down, enter}, MenuChoiceScores},
		{"quit entry", []tea.KeyMsg{down, down, down, enter}, MenuChoiceQuit},
		{"q", []tea.KeyMsg{{Type: tea.KeyRunes, Runes: []rune{'q'}}}, MenuChoiceQuit},
		{"esc", []tea.KeyMsg{{Type: tea.KeyEsc}}, MenuChoiceQuit},
		{"browsing", []tea.KeyMsg{down}, MenuChoiceNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMenuModel(nil, cfg)
			for _, k := range tt.keys {
				next, _ := m.Update(k)
				m = next.(MenuModel)
			}
			if got := m.Selected(); got != tt.want {
				t.Errorf("Selected() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMenuShowsBestScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	store.SaveScore("lines", 40, 10, 1)
	store.SaveScore("lines_classic", 64, 12, 2)

	m := NewMenuModel(store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	if !strings.Contains(m.View(), "Best score: 64") {
		t.Errorf("view should show the best score over all modes:\n%s", m.View())
	}

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	if cfg := next.(MenuModel).Config(); cfg.ScreenW != 100 || cfg.ScreenH != 30 {
		t.Errorf("Config() = %+v after resize", cfg)
	}
}
