package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the difficulty presets in increasing order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}

// ParsePreset converts a flag value to a preset. The empty string means
// normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Fewer colors and more jokers make runs easier to build; more colors and
// a larger spawn make the board fill faster.
func ApplyPreset(cfg *LinesConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Pieces.Types = 5
		cfg.Pieces.Jokers = true
		cfg.Pieces.JokerFrequency = 0.10
		cfg.Rules.SpawnCount = 3
	case DifficultyHard:
		cfg.Pieces.Types = 9
		cfg.Pieces.JokerFrequency = 0.02
		cfg.Rules.SpawnCount = 4
	}
}
