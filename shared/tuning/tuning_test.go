package tuning

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/automoto/quickdraw/duel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "quickdraw.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaultsMatchDuelDefaults(t *testing.T) {
	assert.Equal(t, duel.DefaultTiming(), Defaults().Timing())
}

func TestLoadWithoutFile(t *testing.T) {
	got, err := Load(Defaults(), "")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), got)
}

func TestLoadFileOverlaysDefaults(t *testing.T) {
	path := writeFile(t, `
duel:
  min_to_strike: 2
  max_to_strike: 2.5
`)
	got, err := Load(Defaults(), path)
	require.NoError(t, err)

	assert.Equal(t, 2.0, got.MinToStrike)
	assert.Equal(t, 2.5, got.MaxToStrike)
	assert.Equal(t, 1.0, got.MinEnemyStrike, "unset keys keep the base value")
	assert.Equal(t, 1500*time.Millisecond, got.Timing().WaitBetweenRounds)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeFile(t, "duel:\n  wait_between_rounds: 3\n")
	t.Setenv(EnvWaitBetweenRounds, "0.75")

	got, err := Load(Defaults(), path)
	require.NoError(t, err)
	assert.Equal(t, 0.75, got.WaitBetweenRounds)
}

func TestLoadRejectsInvertedRange(t *testing.T) {
	path := writeFile(t, "duel:\n  min_enemy_strike: 5\n")

	got, err := Load(Defaults(), path)
	assert.ErrorIs(t, err, duel.ErrInvalidRange)
	assert.Equal(t, Defaults(), got, "base is returned on failure")
}

func TestLoadRejectsBadEnv(t *testing.T) {
	t.Setenv(EnvMinToStrike, "soon")

	_, err := Load(Defaults(), "")
	assert.ErrorContains(t, err, EnvMinToStrike)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(Defaults(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeFile(t, "duel: [not, a, map")
	_, err := Load(Defaults(), path)
	assert.Error(t, err)
}

func TestLoadRejectsUnrepresentableSeconds(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"infinity", "Inf"},
		{"negative infinity", "-Inf"},
		{"not a number", "NaN"},
		{"beyond duration range", "1e10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvMaxToStrike, tt.value)

			got, err := Load(Defaults(), "")
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrOutOfRange)
			assert.NotErrorIs(t, err, duel.ErrNonPositive)
			assert.Equal(t, Defaults(), got)
		})
	}
}

func TestValidateAcceptsLongFiniteSpan(t *testing.T) {
	tg := Defaults()
	tg.WaitBetweenRounds = 3600
	assert.NoError(t, tg.Validate())
}
