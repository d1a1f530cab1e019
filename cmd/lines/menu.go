package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-lines/internal/core"
	"github.com/vovakirdan/tui-lines/internal/games/lines"
	"github.com/vovakirdan/tui-lines/internal/platform/tui"
	"github.com/vovakirdan/tui-lines/internal/registry"
	"github.com/vovakirdan/tui-lines/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the title menu",
	Long: `Start Lines with a title menu to play or browse high scores.
After a game you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q            - Quit

Examples:
  lines menu
  lines menu --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(cmd *cobra.Command, args []string) {
	logger, closeLog := playLogger()
	defer closeLog()
	lines.SetLogger(logger)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	for {
		result, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = result.Config

		switch result.Choice {
		case tui.MenuChoiceScores:
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
				return
			}
			if !goBack {
				return
			}

		case tui.MenuChoicePlay:
			selection, selErr := tui.RunLinesModeSelector(cfg)
			if selErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
				return
			}
			// Back to the title menu
			if selection == nil {
				continue
			}

			lines.SetDifficultyPreset(selection.Difficulty)
			game, err := registry.Create(selection.GameID)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
				return
			}
			logger.Info("starting game", "game", selection.GameID, "difficulty", selection.Difficulty)
			if err := tui.Run(game, store, cfg, logger); err != nil {
				fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
				return
			}

		default:
			return
		}
	}
}
