package lines

import (
	"strings"

	"github.com/vovakirdan/tui-lines/internal/games/lines/core"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Mode      string // "jokers" or "classic"
	Seed      int64
	Score     int
	Moves     int
	Free      int
	Board     string // text form, see core.ParseBoard
	Upcoming  string // next spawn, one token per piece
	Cursor    core.Cell
	Selection core.Cell
	Selected  bool
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	var next strings.Builder
	for _, p := range g.session.PeekUpcoming(g.session.Rules().SpawnCount) {
		next.WriteString(p.String())
	}
	sel, selected := g.session.Selection()

	return Snapshot{
		Tick:      g.tick,
		Mode:      string(g.mode),
		Seed:      g.seed,
		Score:     g.session.Score(),
		Moves:     g.session.Moves(),
		Free:      g.session.FreeSlots(),
		Board:     g.session.Board().String(),
		Upcoming:  next.String(),
		Cursor:    g.cursor,
		Selection: sel,
		Selected:  selected,
		State:     state,
	}
}
