// Package tuning loads the duel timing from an optional YAML file and
// environment overrides.
package tuning

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/automoto/quickdraw/duel"
	"gopkg.in/yaml.v3"
)

// Environment variables that override the file, in seconds.
const (
	EnvMinToStrike       = "QUICKDRAW_MIN_TO_STRIKE"
	EnvMaxToStrike       = "QUICKDRAW_MAX_TO_STRIKE"
	EnvMinEnemyStrike    = "QUICKDRAW_MIN_ENEMY_STRIKE"
	EnvMaxEnemyStrike    = "QUICKDRAW_MAX_ENEMY_STRIKE"
	EnvWaitBetweenRounds = "QUICKDRAW_WAIT_BETWEEN_ROUNDS"
)

// ErrOutOfRange marks a value that cannot be represented as a duration.
var ErrOutOfRange = errors.New("tuning: value must be a finite number of seconds")

// maxSeconds is the longest span a time.Duration holds.
const maxSeconds = math.MaxInt64 / float64(time.Second)

// Tuning mirrors duel.Timing in float seconds, the unit designers author in.
type Tuning struct {
	MinToStrike       float64 `yaml:"min_to_strike"`
	MaxToStrike       float64 `yaml:"max_to_strike"`
	MinEnemyStrike    float64 `yaml:"min_enemy_strike"`
	MaxEnemyStrike    float64 `yaml:"max_enemy_strike"`
	WaitBetweenRounds float64 `yaml:"wait_between_rounds"`
}

type file struct {
	Duel Tuning `yaml:"duel"`
}

// Defaults returns the stock timing.
func Defaults() Tuning {
	return Tuning{
		MinToStrike:       3,
		MaxToStrike:       4,
		MinEnemyStrike:    1,
		MaxEnemyStrike:    2,
		WaitBetweenRounds: 1.5,
	}
}

// Timing converts to the duel package's representation.
func (t Tuning) Timing() duel.Timing {
	return duel.Timing{
		MinToStrike:       duel.Seconds(t.MinToStrike),
		MaxToStrike:       duel.Seconds(t.MaxToStrike),
		MinEnemyStrike:    duel.Seconds(t.MinEnemyStrike),
		MaxEnemyStrike:    duel.Seconds(t.MaxEnemyStrike),
		WaitBetweenRounds: duel.Seconds(t.WaitBetweenRounds),
	}
}

// Validate rejects values a Duration cannot hold, non-positive values and
// inverted ranges.
func (t Tuning) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"min_to_strike", t.MinToStrike},
		{"max_to_strike", t.MaxToStrike},
		{"min_enemy_strike", t.MinEnemyStrike},
		{"max_enemy_strike", t.MaxEnemyStrike},
		{"wait_between_rounds", t.WaitBetweenRounds},
	}

	var errs []error
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) || math.Abs(f.value) >= maxSeconds {
			errs = append(errs, fmt.Errorf("%s %v: %w", f.name, f.value, ErrOutOfRange))
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return t.Timing().Validate()
}

// Load starts from base, overlays the YAML file at path (skipped when path is
// empty), then the environment, and validates the result.
func Load(base Tuning, path string) (Tuning, error) {
	t := base

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return base, fmt.Errorf("failed to read tuning file: %w", err)
		}
		f := file{Duel: t}
		if err := yaml.Unmarshal(data, &f); err != nil {
			return base, fmt.Errorf("failed to parse tuning file %s: %w", path, err)
		}
		t = f.Duel
	}

	if err := applyEnv(&t); err != nil {
		return base, err
	}

	if err := t.Validate(); err != nil {
		return base, fmt.Errorf("invalid tuning: %w", err)
	}
	return t, nil
}

func applyEnv(t *Tuning) error {
	overrides := []struct {
		key string
		dst *float64
	}{
		{EnvMinToStrike, &t.MinToStrike},
		{EnvMaxToStrike, &t.MaxToStrike},
		{EnvMinEnemyStrike, &t.MinEnemyStrike},
		{EnvMaxEnemyStrike, &t.MaxEnemyStrike},
		{EnvWaitBetweenRounds, &t.WaitBetweenRounds},
	}

	var errs []error
	for _, o := range overrides {
		value := os.Getenv(o.key)
		if value == "" {
			continue
		}
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s=%q: %w", o.key, value, err))
			continue
		}
		*o.dst = f
	}
	return errors.Join(errs...)
}
