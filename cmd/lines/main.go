// lines is a terminal color-lines puzzle: move pieces along free paths and
// line up five of a color to clear them.
//
// Usage:
//
//	lines play               - Play (opens the mode menu unless --mode is given)
//	lines menu               - Title menu: play again and again, browse scores
//	lines sim                - Let the built-in solver play a seeded game
//	lines scores [mode]      - Show high scores
//	lines config             - Print the effective configuration
//	lines serve              - Host games over SSH
//	lines list               - List available modes
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 30)
//	--seed <value>      - Set RNG seed for reproducible deals
//	--db <path>         - Set database path (default: ~/.arcade/scores.db)
//	--config <path>     - Use a custom lines.yaml
//	--log-level <lvl>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-lines/internal/games/lines"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lines",
	Short: "Lines - the color-lines puzzle in your terminal",
	Long: `Lines is a terminal version of the classic color-lines puzzle.

Select a piece and a free cell to move it there along an open path.
Five or more of a color in a row, column or diagonal are cleared and
scored; a move that clears nothing brings new pieces onto the board.
The game ends when the board fills up.

Available commands:
  play     - Play a game
  menu     - Title menu with high scores
  sim      - Watch the solver play a seeded game
  scores   - View high scores
  config   - Print the effective configuration
  serve    - Host games over SSH
  list     - Show all modes

Examples:
  lines play
  lines play --mode classic --difficulty hard
  lines sim --seed 42 --moves 200
  lines scores lines_classic`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		lines.SetConfigPath(flagConfig)
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom lines.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(serveCmd)
}
