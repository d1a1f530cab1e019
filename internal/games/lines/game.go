// Package lines provides the Lines puzzle for the arcade platform: move
// pieces along free paths and line up five of a color to clear them.
package lines

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-lines/internal/config"
	platformcore "github.com/vovakirdan/tui-lines/internal/core"
	"github.com/vovakirdan/tui-lines/internal/games/lines/core"
	"github.com/vovakirdan/tui-lines/internal/registry"
)

// Mode selects the piece set.
type Mode string

const (
	ModeJokers  Mode = "jokers"  // wildcards dealt per config
	ModeClassic Mode = "classic" // colored pieces only
)

// Effect durations.
const (
	trailDuration   = 400 * time.Millisecond
	flashDuration   = 500 * time.Millisecond
	messageDuration = 1500 * time.Millisecond
)

// Game adapts a core.Session to the arcade Game interface.
type Game struct {
	mode       Mode
	difficulty config.DifficultyPreset
	session    *core.Session
	rng        *rand.Rand // hint tie-breaking only
	seed       int64
	tick       uint64

	tickRate int
	screenW  int
	screenH  int

	cursor   core.Cell
	gameOver bool
	paused   bool
	tooSmall bool

	// Short-lived visual effects, counted down in ticks
	trail        []core.Cell
	trailTicks   int
	flash        []core.Cell
	flashTicks   int
	hint         *core.Move
	message      string
	messageTicks int
}

// Package-level variables for configuration
var (
	configPath string
	difficulty = config.DifficultyNormal
	logger     = log.New(io.Discard)
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty of games created afterwards.
func SetDifficultyPreset(p config.DifficultyPreset) {
	difficulty = p
}

// SetLogger routes game events to l. Nil restores the silent default.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// New creates a Lines game with wildcards.
func New() *Game {
	return &Game{mode: ModeJokers, difficulty: difficulty}
}

// NewClassic creates a Lines game without wildcards.
func NewClassic() *Game {
	return &Game{mode: ModeClassic, difficulty: difficulty}
}

// SetDifficulty changes this game's difficulty from the next Reset on.
// Concurrent sessions use it instead of the package-level preset.
func (g *Game) SetDifficulty(p config.DifficultyPreset) {
	g.difficulty = p
}

func init() {
	registry.Register("lines", func() registry.Game {
		return New()
	})
	registry.Register("lines_classic", func() registry.Game {
		return NewClassic()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeClassic {
		return "lines_classic"
	}
	return "lines"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeClassic {
		return "Lines (Classic)"
	}
	return "Lines"
}

// loadRules builds the session rules from the config file, the difficulty
// preset and the mode, plus the optional starting layout.
func (g *Game) loadRules() (core.Rules, *core.Board) {
	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Warn("config load failed, using defaults", "path", configPath, "err", err)
		cfg = config.DefaultLinesConfig()
	}
	config.ApplyPreset(&cfg, g.difficulty)
	if g.mode == ModeClassic {
		cfg.Pieces.Jokers = false
	}

	layout, err := cfg.Layout()
	if err != nil {
		logger.Warn("preset layout ignored", "difficulty", g.difficulty, "err", err)
	}
	return cfg.ToRules(), layout
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.seed = cfg.Seed
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = platformcore.DefaultConfig().TickRate
	}

	rules, layout := g.loadRules()
	session, err := newSession(rules, cfg.Seed, layout)
	if err != nil {
		logger.Error("invalid rules, using defaults", "err", err)
		session, _ = core.NewSession(core.DefaultRules(), cfg.Seed)
	}
	g.session = session

	g.gameOver = false
	g.paused = false
	g.clearEffects()

	mid := g.session.Rules().Size / 2
	g.cursor = core.At(mid, mid)

	g.Resize(cfg.ScreenW, cfg.ScreenH)

	logger.Debug("game started", "mode", g.mode, "seed", g.seed, "difficulty", g.difficulty,
		"size", rules.Size, "types", rules.NumTypes, "jokers", rules.Jokers)
}

func newSession(rules core.Rules, seed int64, layout *core.Board) (*core.Session, error) {
	if layout != nil {
		return core.NewSessionFromBoard(rules, seed, layout)
	}
	return core.NewSession(rules, seed)
}

// Resize adapts the layout to a new screen size without touching the board.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	if g.session == nil {
		return
	}
	minW, minH := g.minSize()
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Session exposes the underlying session for inspection.
func (g *Game) Session() *core.Session {
	return g.session
}

// Seed returns the seed the current game was dealt from.
func (g *Game) Seed() int64 {
	return g.seed
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	g.tick++
	g.decayEffects()

	if g.tooSmall {
		return platformcore.StepResult{State: g.State()}
	}

	if in.Has(platformcore.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if g.paused || g.gameOver {
		return platformcore.StepResult{State: g.State()}
	}

	g.moveCursor(in)

	if in.Has(platformcore.ActionDeselect) {
		if sel, ok := g.session.Selection(); ok {
			g.click(sel)
		}
	}
	if in.Has(platformcore.ActionHint) {
		g.showHint()
	}

	for _, p := range in.Clicks {
		if g.gameOver {
			break
		}
		if c, ok := g.cellAt(p.X, p.Y); ok {
			g.cursor = c
			g.click(c)
		}
	}

	if in.Has(platformcore.ActionConfirm) && !g.gameOver {
		g.click(g.cursor)
	}

	return platformcore.StepResult{State: g.State()}
}

// moveCursor applies arrow-key movement, clamped to the board.
func (g *Game) moveCursor(in platformcore.InputFrame) {
	last := g.session.Rules().Size - 1
	switch {
	case in.Has(platformcore.ActionUp):
		g.cursor.Row--
	case in.Has(platformcore.ActionDown):
		g.cursor.Row++
	case in.Has(platformcore.ActionLeft):
		g.cursor.Col--
	case in.Has(platformcore.ActionRight):
		g.cursor.Col++
	}
	g.cursor.Row = platformcore.Clamp(g.cursor.Row, 0, last)
	g.cursor.Col = platformcore.Clamp(g.cursor.Col, 0, last)
}

// click feeds one cell selection to the session.
func (g *Game) click(c core.Cell) {
	out, err := g.session.HandleSelect(c)
	switch {
	case errors.Is(err, core.ErrGameOver):
		g.applyOutcome(out)
		g.endGame()
		return
	case err != nil:
		g.setMessage(describeError(err))
		logger.Debug("click rejected", "cell", c, "err", err)
		return
	}

	g.hint = nil
	g.applyOutcome(out)
	if g.session.IsFull() {
		g.endGame()
	}
}

// applyOutcome starts the visual effects for a move.
func (g *Game) applyOutcome(out core.Outcome) {
	switch out.Kind {
	case core.OutcomeMoveResolved:
		g.startTrail(out.Path)
		g.flash = out.Removed
		g.flashTicks = g.ticksFor(flashDuration)
		msg := fmt.Sprintf("+%d", out.ScoreDelta)
		if len(out.Added) > 0 {
			msg = "Board cleared! " + msg
		}
		g.setMessage(msg)
		logger.Debug("runs cleared", "runs", len(out.Runs), "removed", len(out.Removed),
			"added", len(out.Added), "delta", out.ScoreDelta, "score", g.session.Score())
	case core.OutcomeMoveSpawned:
		g.startTrail(out.Path)
		g.flash = out.Added
		g.flashTicks = g.ticksFor(flashDuration)
	}
}

func (g *Game) startTrail(path []core.Cell) {
	g.trail = path
	g.trailTicks = g.ticksFor(trailDuration)
}

// showHint suggests the best move on the current board.
func (g *Game) showHint() {
	m, ok := core.BestMove(g.session.Board(), g.rng)
	if !ok {
		g.setMessage("No moves")
		return
	}
	g.hint = &m
	if m.Gain > 0 {
		g.setMessage(fmt.Sprintf("Hint: %s to %s clears a line", m.From, m.To))
	} else {
		g.setMessage(fmt.Sprintf("Hint: %s to %s", m.From, m.To))
	}
}

func (g *Game) endGame() {
	if g.gameOver {
		return
	}
	g.gameOver = true
	logger.Info("game over", "mode", g.mode, "score", g.session.Score(),
		"moves", g.session.Moves(), "seed", g.seed)
}

// describeError turns a rejected click into a status line.
func describeError(err error) string {
	switch {
	case errors.Is(err, core.ErrNoRoute):
		return "No path"
	case errors.Is(err, core.ErrNoPieceAtStart):
		return "Select a piece first"
	case errors.Is(err, core.ErrOutOfBounds):
		return "Off the board"
	default:
		return err.Error()
	}
}

func (g *Game) setMessage(msg string) {
	g.message = msg
	g.messageTicks = g.ticksFor(messageDuration)
}

// ticksFor converts a duration to simulation ticks, at least one.
func (g *Game) ticksFor(d time.Duration) int {
	return platformcore.Max(1, int(d*time.Duration(g.tickRate)/time.Second))
}

func (g *Game) decayEffects() {
	if g.trailTicks > 0 {
		g.trailTicks--
		if g.trailTicks == 0 {
			g.trail = nil
		}
	}
	if g.flashTicks > 0 {
		g.flashTicks--
		if g.flashTicks == 0 {
			g.flash = nil
		}
	}
	if g.messageTicks > 0 {
		g.messageTicks--
		if g.messageTicks == 0 {
			g.message = ""
		}
	}
}

func (g *Game) clearEffects() {
	g.trail, g.trailTicks = nil, 0
	g.flash, g.flashTicks = nil, 0
	g.message, g.messageTicks = "", 0
	g.hint = nil
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Score:    g.session.Score(),
		Moves:    g.session.Moves(),
		GameOver: g.gameOver,
		Paused:   g.paused || g.tooSmall,
	}
}
