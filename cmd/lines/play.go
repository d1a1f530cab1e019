package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-lines/internal/config"
	"github.com/vovakirdan/tui-lines/internal/core"
	"github.com/vovakirdan/tui-lines/internal/games/lines"
	"github.com/vovakirdan/tui-lines/internal/platform/tui"
	"github.com/vovakirdan/tui-lines/internal/registry"
	"github.com/vovakirdan/tui-lines/internal/storage"
)

var (
	flagMode       string
	flagDifficulty string
	flagNoJokers   bool
	flagLogFile    string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Lines",
	Long: `Start a game of Lines. Without --mode a menu asks for the mode and
difficulty first.

Controls:
  Mouse click        - Select a piece, then click the target cell
  Arrows/WASD/HJKL   - Move the cursor
  Enter/Space        - Select or move at the cursor
  X/Backspace        - Drop the selection
  ?                  - Show a hint
  P/Esc              - Pause
  R                  - Restart (after game over)
  Tab                - Toggle full help
  Ctrl+S             - Save a screenshot
  Q/Ctrl+C           - Quit

Modes:
  jokers   - Seven colors plus the occasional ★ joker that joins any run
  classic  - Colors only

Difficulty options:
  easy   - Five colors, more jokers
  normal - Seven colors
  hard   - Nine colors, four new pieces per turn

Examples:
  lines play
  lines play --mode classic
  lines play --difficulty hard --seed 1234
  lines play --config ./my-lines.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagMode, "mode", "", "Game mode: jokers or classic (skips the menu)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().BoolVar(&flagNoJokers, "no-jokers", false, "Shorthand for --mode classic")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "~/.arcade/lines.log", "Where to write the game log (empty disables)")
}

// resolveMode maps a --mode value to a registered game ID.
// The empty string means no mode was chosen.
func resolveMode(mode string, noJokers bool) (string, error) {
	if noJokers {
		if mode != "" && mode != string(lines.ModeClassic) && mode != "lines_classic" {
			return "", fmt.Errorf("--no-jokers conflicts with --mode %s", mode)
		}
		return "lines_classic", nil
	}
	switch mode {
	case "":
		return "", nil
	case string(lines.ModeJokers), "lines":
		return "lines", nil
	case string(lines.ModeClassic), "lines_classic":
		return "lines_classic", nil
	default:
		return "", fmt.Errorf("unknown mode %q (want jokers or classic)", mode)
	}
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID, err := resolveMode(flagMode, flagNoJokers)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := playLogger()
	defer closeLog()
	lines.SetLogger(logger)

	// Get terminal size early for the mode selector
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	if gameID == "" {
		selection, selErr := tui.RunLinesModeSelector(cfg)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}
		// User pressed back or quit
		if selection == nil {
			return
		}
		gameID = selection.GameID
		if flagDifficulty == "" {
			preset = selection.Difficulty
		}
	}
	lines.SetDifficultyPreset(preset)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	logger.Info("starting game", "game", gameID, "difficulty", preset, "seed", flagSeed)
	runErr := tui.Run(game, store, cfg, logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// playLogger opens the play log. A missing or unwritable log file leaves
// the game silent rather than failing.
func playLogger() (*log.Logger, func()) {
	noop := func() {}
	if flagLogFile == "" {
		return log.New(io.Discard), noop
	}
	f, err := openLogFile(flagLogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		return log.New(io.Discard), noop
	}
	logger, err := newLogger(f)
	if err != nil {
		f.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return logger, func() { f.Close() }
}
