package headless

import (
	"fmt"
	"strings"
	"time"
)

// Difficulty selects a reflex preset for the simulated player.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyNormal
	DifficultyHard
)

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyHard:
		return "hard"
	}
	return "normal"
}

// ParseDifficulty accepts easy, normal or hard (case-insensitive).
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy, nil
	case "normal", "":
		return DifficultyNormal, nil
	case "hard":
		return DifficultyHard, nil
	}
	return DifficultyNormal, fmt.Errorf("unknown difficulty %q", s)
}

// Reflex tunes how the simulated player reacts to the strike cue.
type Reflex struct {
	MinReaction time.Duration
	MaxReaction time.Duration
	Twitch      float64 // chance per round of striking before the cue
}

// Presets holds the reflex tuning for each difficulty.
var Presets = map[Difficulty]Reflex{
	DifficultyEasy: {
		MinReaction: 450 * time.Millisecond,
		MaxReaction: 1400 * time.Millisecond, // often slower than the opponent
		Twitch:      0.15,
	},
	DifficultyNormal: {
		MinReaction: 250 * time.Millisecond,
		MaxReaction: 900 * time.Millisecond,
		Twitch:      0.05,
	},
	DifficultyHard: {
		MinReaction: 150 * time.Millisecond,
		MaxReaction: 350 * time.Millisecond,
		Twitch:      0.01,
	},
}
