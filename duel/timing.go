package duel

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNonPositive is returned when a timing value is zero or negative.
	ErrNonPositive = errors.New("timing value must be positive")
	// ErrInvalidRange is returned when a min bound is greater than its max bound.
	ErrInvalidRange = errors.New("min must not exceed max")
)

// Timing holds the delays that drive a round.
type Timing struct {
	MinToStrike       time.Duration // earliest strike cue after round start
	MaxToStrike       time.Duration
	MinEnemyStrike    time.Duration // earliest opponent strike after the cue
	MaxEnemyStrike    time.Duration
	WaitBetweenRounds time.Duration // result display time before the next round
}

// DefaultTiming returns the classic 3-4s wait, 1-2s opponent, 1.5s pause.
func DefaultTiming() Timing {
	return Timing{
		MinToStrike:       3 * time.Second,
		MaxToStrike:       4 * time.Second,
		MinEnemyStrike:    1 * time.Second,
		MaxEnemyStrike:    2 * time.Second,
		WaitBetweenRounds: 1500 * time.Millisecond,
	}
}

// Seconds converts a float seconds value to a Duration.
func Seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// Validate reports every problem with t joined into one error.
func (t Timing) Validate() error {
	var errs []error

	positive := []struct {
		name string
		d    time.Duration
	}{
		{"min to strike", t.MinToStrike},
		{"max to strike", t.MaxToStrike},
		{"min enemy strike", t.MinEnemyStrike},
		{"max enemy strike", t.MaxEnemyStrike},
		{"wait between rounds", t.WaitBetweenRounds},
	}
	for _, p := range positive {
		if p.d <= 0 {
			errs = append(errs, fmt.Errorf("%s %v: %w", p.name, p.d, ErrNonPositive))
		}
	}

	if t.MinToStrike > t.MaxToStrike {
		errs = append(errs, fmt.Errorf("to strike %v > %v: %w", t.MinToStrike, t.MaxToStrike, ErrInvalidRange))
	}
	if t.MinEnemyStrike > t.MaxEnemyStrike {
		errs = append(errs, fmt.Errorf("enemy strike %v > %v: %w", t.MinEnemyStrike, t.MaxEnemyStrike, ErrInvalidRange))
	}

	return errors.Join(errs...)
}
