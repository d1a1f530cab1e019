package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-lines/internal/core"
	"github.com/vovakirdan/tui-lines/internal/registry"
	"github.com/vovakirdan/tui-lines/internal/storage"
)

// fakeGame records what the platform feeds it.
type fakeGame struct {
	resets  int
	resized [2]int
	frames  []core.InputFrame
	state   core.GameState
	cfg     core.RuntimeConfig
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.cfg = cfg
	g.state = core.GameState{}
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	return core.StepResult{State: g.state}
}

func (g *fakeGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "fake") }
func (g *fakeGame) State() core.GameState   { return g.state }

// resizingGame also follows resizes in place.
type resizingGame struct{ fakeGame }

func (g *resizingGame) Resize(w, h int) { g.resized = [2]int{w, h} }

var _ registry.Resizer = (*resizingGame)(nil)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 99}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestNewModelReservesHelpBar(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, nil, testConfig(), nil)

	if g.resets != 1 {
		t.Fatalf("game should be reset once, got %d", g.resets)
	}
	if g.cfg.ScreenW != 80 || g.cfg.ScreenH != 23 {
		t.Errorf("game area = %dx%d, want 80x23", g.cfg.ScreenW, g.cfg.ScreenH)
	}
	if g.cfg.Seed != 99 {
		t.Errorf("seed = %d, want 99", g.cfg.Seed)
	}
	if m.screen.Height() != 23 {
		t.Errorf("screen height = %d", m.screen.Height())
	}
}

func TestModelTimeSeed(t *testing.T) {
	g := &fakeGame{}
	cfg := testConfig()
	cfg.Seed = 0
	NewModel(g, nil, cfg, nil)
	if g.cfg.Seed == 0 {
		t.Error("seed 0 should be replaced by a time-based seed")
	}
}

func TestModelInputReachesGame(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, nil, testConfig(), nil)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m = update(t, m, tea.MouseMsg{X: 5, Y: 7, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = update(t, m, tea.MouseMsg{X: 9, Y: 9, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	m = update(t, m, tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	m = update(t, m, TickMsg{})

	if len(g.frames) != 1 {
		t.Fatalf("game stepped %d times, want 1", len(g.frames))
	}
	f := g.frames[0]
	if !f.Has(core.ActionUp) {
		t.Error("key press should reach the game")
	}
	if len(f.Clicks) != 1 || f.Clicks[0] != (core.Point{X: 5, Y: 7}) {
		t.Errorf("clicks = %v, want only the left press at (5, 7)", f.Clicks)
	}

	update(t, m, TickMsg{})
	if !g.frames[1].Empty() {
		t.Error("input must be cleared between ticks")
	}
}

func TestModelRestartOnlyAfterGameOver(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, nil, testConfig(), nil)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m = update(t, m, TickMsg{})
	if g.resets != 1 || g.frames[0].Has(core.ActionRestart) {
		t.Fatal("restart during play should be ignored")
	}

	g.state.GameOver = true
	m = update(t, m, TickMsg{})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	update(t, m, TickMsg{})
	if g.resets != 2 {
		t.Errorf("restart after game over should reset, resets = %d", g.resets)
	}
	if g.cfg.Seed == 99 {
		t.Error("restart should deal a new seed")
	}
}

func TestModelResize(t *testing.T) {
	plain := &fakeGame{}
	m := NewModel(plain, nil, testConfig(), nil)
	update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if plain.resets != 2 || plain.cfg.ScreenH != 39 {
		t.Errorf("plain game should be reset to 100x39, resets %d cfg %+v", plain.resets, plain.cfg)
	}

	rg := &resizingGame{}
	m = NewModel(rg, nil, testConfig(), nil)
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if rg.resets != 1 || rg.resized != [2]int{100, 39} {
		t.Errorf("resizer should not be reset: resets %d resized %v", rg.resets, rg.resized)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 39 {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestModelSavesScoreOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	g := &fakeGame{}
	m := NewModel(g, store, testConfig(), nil)
	g.state = core.GameState{Score: 42, Moves: 17, GameOver: true}

	m = update(t, m, TickMsg{})
	update(t, m, TickMsg{})

	scores, err := store.TopScores("fake", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d scores, want 1", len(scores))
	}
	if s := scores[0]; s.Score != 42 || s.Moves != 17 || s.Seed != 99 {
		t.Errorf("saved %+v", s)
	}
}

func TestModelQuitAndHelp(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, nil, testConfig(), nil)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if !m.help.ShowAll {
		t.Fatal("tab should expand the help")
	}
	if g.cfg.ScreenH >= 23 {
		t.Errorf("expanded help should shrink the game area, got height %d", g.cfg.ScreenH)
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !next.(Model).quitting || cmd == nil {
		t.Error("q should quit")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quitting")
	}
}
