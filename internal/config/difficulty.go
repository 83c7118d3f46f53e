package config

import (
	"fmt"
	"strings"
)

// Difficulty selects the block layout of a run.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyNormal
	DifficultyHard
)

// Difficulties returns all difficulties in menu order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// String returns the display name of the difficulty.
func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyNormal:
		return "Normal"
	case DifficultyHard:
		return "Hard"
	default:
		return "Unknown"
	}
}

// ParseDifficulty converts a CLI preset name to a Difficulty.
// An empty name selects easy.
func ParseDifficulty(name string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "easy", "1":
		return DifficultyEasy, nil
	case "normal", "2":
		return DifficultyNormal, nil
	case "hard", "3":
		return DifficultyHard, nil
	default:
		return DifficultyEasy, fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", name)
	}
}
