package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-lines/internal/config"
	platformcore "github.com/vovakirdan/tui-lines/internal/core"
	"github.com/vovakirdan/tui-lines/internal/games/lines"
	"github.com/vovakirdan/tui-lines/internal/games/lines/core"
	"github.com/vovakirdan/tui-lines/internal/registry"
	"github.com/vovakirdan/tui-lines/internal/storage"
)

var (
	flagSimMode       string
	flagSimDifficulty string
	flagSimMoves      int
	flagSimSave       bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Let the solver play a seeded game",
	Long: `Play a game headlessly with the greedy solver: every turn it makes the
move that clears the most pieces, breaking ties at random. The same seed
always produces the same game, which makes sim handy for checking configs
and difficulty presets.

Run with --log-level debug to print the board after every move.

Examples:
  lines sim --seed 42
  lines sim --mode classic --difficulty hard --moves 100
  lines sim --config ./my-lines.yaml --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagSimMode, "mode", "jokers", "Game mode: jokers or classic")
	simCmd.Flags().StringVar(&flagSimDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	simCmd.Flags().IntVar(&flagSimMoves, "moves", 0, "Stop after this many moves (0 = until game over)")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Record the final score in the scores database")
}

// simResult summarizes a simulated game.
type simResult struct {
	Moves    int
	Score    int
	Cleared  int
	GameOver bool
}

// simulate plays s with BestMove until the game ends or maxMoves moves
// have been made. maxMoves <= 0 means no limit.
func simulate(s *core.Session, rng *rand.Rand, maxMoves int, logger *log.Logger) (simResult, error) {
	var res simResult
	for maxMoves <= 0 || res.Moves < maxMoves {
		if s.GameOver() || s.IsFull() {
			res.GameOver = true
			break
		}
		mv, ok := core.BestMove(s.Board(), rng)
		if !ok {
			res.GameOver = true
			break
		}
		if _, err := s.HandleSelect(mv.From); err != nil {
			return res, fmt.Errorf("select %v: %w", mv.From, err)
		}
		out, err := s.HandleSelect(mv.To)
		if errors.Is(err, core.ErrGameOver) {
			res.Moves++
			res.GameOver = true
			break
		}
		if err != nil {
			return res, fmt.Errorf("move %v -> %v: %w", mv.From, mv.To, err)
		}
		res.Moves++
		res.Cleared += len(out.Removed)
		logger.Debug("move", "n", res.Moves, "from", mv.From, "to", mv.To,
			"outcome", out.Kind, "score", s.Score())
		logger.Debug("board\n" + s.Board().String())
	}
	res.Score = s.Score()
	return res, nil
}

func runSim(cmd *cobra.Command, args []string) {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	gameID, err := resolveMode(flagSimMode, false)
	if err != nil || gameID == "" {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", flagSimMode)
		os.Exit(1)
	}
	preset, err := config.ParsePreset(flagSimDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	lines.SetDifficultyPreset(preset)
	lines.SetLogger(logger)

	g, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	game := g.(*lines.Game)

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	game.Reset(platformcore.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: flagFPS, Seed: seed})

	res, err := simulate(game.Session(), rand.New(rand.NewSource(seed)), flagSimMoves, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s, %s, seed %d\n", game.Title(), preset, seed)
	fmt.Println()
	fmt.Println(game.Session().Board().String())
	fmt.Println()
	fmt.Printf("Moves:   %d\n", res.Moves)
	fmt.Printf("Cleared: %d\n", res.Cleared)
	fmt.Printf("Score:   %d\n", res.Score)
	if res.GameOver {
		fmt.Println("Result:  board full")
	} else {
		fmt.Printf("Result:  stopped with %d free cells\n", game.Session().FreeSlots())
	}

	if !flagSimSave || res.Score == 0 {
		return
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return
	}
	defer store.Close()
	if _, err := store.SaveScore(gameID, res.Score, res.Moves, seed); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: score not saved: %v\n", err)
	}
}
