package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-lines/internal/platform/tui"
	"github.com/vovakirdan/tui-lines/internal/registry"
	"github.com/vovakirdan/tui-lines/internal/storage"
)

var (
	flagScoresLimit       int
	flagScoresInteractive bool
	flagScoresClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the top scores for a mode, or for every mode when none is given.
Each entry keeps the seed it was played with, so a good deal can be
replayed with 'lines play --seed <seed>'.

Examples:
  lines scores
  lines scores lines_classic --limit 20
  lines scores --interactive
  lines scores lines --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVarP(&flagScoresInteractive, "interactive", "i", false, "Browse scores in the scoreboard screen")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores of the given mode")
}

func runScores(cmd *cobra.Command, args []string) {
	var ids []string
	if len(args) == 1 {
		if !registry.Exists(args[0]) {
			fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", args[0])
			fmt.Fprintln(os.Stderr, "Run 'lines list' to see available modes.")
			os.Exit(1)
		}
		ids = []string{args[0]}
	} else {
		for _, g := range registry.List() {
			ids = append(ids, g.ID)
		}
	}

	if flagScoresClear && len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Error: --clear needs a mode")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagScoresClear:
		if err := store.ClearScores(ids[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			return
		}
		fmt.Printf("Scores for %s cleared.\n", ids[0])

	case flagScoresInteractive:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if _, err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}

	default:
		for i, id := range ids {
			if i > 0 {
				fmt.Println()
			}
			if err := printScores(store, id); err != nil {
				fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
				return
			}
		}
	}
}

func printScores(store *storage.Store, gameID string) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}

	fmt.Printf("  %-4s  %-7s  %-6s  %-20s  %s\n", "Rank", "Score", "Moves", "Seed", "Date")
	fmt.Printf("  %-4s  %-7s  %-6s  %-20s  %s\n", "----", "-----", "-----", "----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-7d  %-6d  %-20d  %s\n", i+1, entry.Score, entry.Moves, entry.Seed, dateStr)
	}

	if stats, err := store.Stats(gameID); err == nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("Best: %d  Games: %d  Avg: %.1f points in %.1f moves\n",
			stats.HighScore, stats.GamesCount, stats.AvgScore, stats.AvgMoves)
	}
	return nil
}
