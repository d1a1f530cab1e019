package main

import (
	"fmt"

	"github.com/spf13/cobra"

	_ "github.com/vovakirdan/tui-lines/internal/games/lines"
	"github.com/vovakirdan/tui-lines/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all game modes",
	Long:  `Shows every registered Lines mode. The ID is what scores are stored under.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No modes available.")
		return
	}

	fmt.Println("Available modes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	printControls(games[0].ID)

	fmt.Println()
	fmt.Println("Run 'lines scores <id>' to see the best games of a mode.")
}

// printControls lists the controls of a game that describes them.
func printControls(id string) {
	g, err := registry.Create(id)
	if err != nil {
		return
	}
	cp, ok := g.(registry.ControlsProvider)
	if !ok {
		return
	}
	controls := cp.Controls()

	width := 0
	for _, c := range controls {
		width = max(width, len(c.Keys))
	}

	fmt.Println()
	fmt.Println("Controls:")
	for _, c := range controls {
		fmt.Printf("  %-*s  %s\n", width, c.Keys, c.Action)
	}
}
