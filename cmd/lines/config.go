package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-lines/internal/config"
)

var flagConfigDifficulty string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a new game would use, as YAML. The output
reflects --config, ~/.arcade/configs/lines.yaml or ./configs/lines.yaml
(first found) layered over the built-in defaults, with the difficulty
preset applied. Redirect it to a file to start a custom config.

Examples:
  lines config
  lines config --difficulty hard > ~/.arcade/configs/lines.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfigDifficulty, "difficulty", "", "Apply a difficulty preset: easy, normal, hard")
}

func runConfig(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagConfigDifficulty != "" {
		preset, err := config.ParsePreset(flagConfigDifficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		config.ApplyPreset(&cfg, preset)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
