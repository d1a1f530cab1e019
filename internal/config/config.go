// Package config provides YAML-based configuration loading and
// difficulty presets for the Lines game.
package config

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-lines/internal/games/lines/core"
)

// LinesConfig contains all configuration for the Lines game.
type LinesConfig struct {
	Board  BoardConfig  `yaml:"board"`
	Pieces PiecesConfig `yaml:"pieces"`
	Rules  RulesConfig  `yaml:"rules"`
	Preset string       `yaml:"preset,omitempty"` // Optional starting layout in board text form
}

// BoardConfig defines the board dimensions.
type BoardConfig struct {
	Size int `yaml:"size"`
}

// PiecesConfig defines how pieces are dealt.
type PiecesConfig struct {
	Types          int     `yaml:"types"`
	Jokers         bool    `yaml:"jokers"`
	JokerFrequency float64 `yaml:"joker_frequency"` // Probability in [0, 1]
}

// RulesConfig defines turn parameters.
type RulesConfig struct {
	SpawnCount    int `yaml:"spawn_count"`
	InitialPieces int `yaml:"initial_pieces"`
}

// ToRules converts the configuration to session rules.
func (c LinesConfig) ToRules() core.Rules {
	return core.Rules{
		Size:           c.Board.Size,
		NumTypes:       c.Pieces.Types,
		Jokers:         c.Pieces.Jokers,
		JokerFrequency: c.Pieces.JokerFrequency,
		SpawnCount:     c.Rules.SpawnCount,
		InitialPieces:  c.Rules.InitialPieces,
	}
}

// HasPreset reports whether a starting layout is configured.
func (c LinesConfig) HasPreset() bool {
	return strings.TrimSpace(c.Preset) != ""
}

// Layout parses the preset board. It returns nil without error when no
// preset is configured.
func (c LinesConfig) Layout() (*core.Board, error) {
	if !c.HasPreset() {
		return nil, nil
	}
	b, err := core.ParseBoard(c.Preset)
	if err != nil {
		return nil, fmt.Errorf("config: preset: %w", err)
	}
	if b.Size() != c.Board.Size {
		return nil, fmt.Errorf("config: preset is %dx%d, board size is %d", b.Size(), b.Size(), c.Board.Size)
	}
	for _, cell := range b.FilledCells() {
		p, _ := b.Get(cell)
		if !p.IsWildcard() && p.Type() >= c.Pieces.Types {
			return nil, fmt.Errorf("config: preset piece %s at %s exceeds %d types", p, cell, c.Pieces.Types)
		}
	}
	return b, nil
}

// Validate checks that the configuration describes a playable game.
func (c LinesConfig) Validate() error {
	if err := c.ToRules().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := c.Layout(); err != nil {
		return err
	}
	return nil
}
