package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset adjusts word rules on top of a loaded config.
type DifficultyPreset string

const (
	DifficultyDefault DifficultyPreset = ""
	DifficultyEasy    DifficultyPreset = "easy"   // three-letter words always count
	DifficultyNormal  DifficultyPreset = "normal" // variant rules unchanged
	DifficultyHard    DifficultyPreset = "hard"   // one more letter required
)

// ParseDifficulty parses a --difficulty value. Empty means no preset.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case DifficultyDefault, DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return DifficultyDefault, fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *BoggleConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Rules.MinWordLength = 3
	case DifficultyHard:
		cfg.Rules.MinWordLength++
	}
}
