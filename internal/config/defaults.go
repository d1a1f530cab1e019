package config

import (
	_ "embed"
)

//go:embed defaults/lines.yaml
var defaultLinesYAML []byte

// DefaultLinesConfig returns the classic 9x9 seven color configuration.
func DefaultLinesConfig() LinesConfig {
	return LinesConfig{
		Board: BoardConfig{
			Size: 9,
		},
		Pieces: PiecesConfig{
			Types:          7,
			Jokers:         true,
			JokerFrequency: 0.05,
		},
		Rules: RulesConfig{
			SpawnCount:    3,
			InitialPieces: 5,
		},
	}
}
