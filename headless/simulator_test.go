package headless

import (
	"testing"
	"time"

	"github.com/automoto/quickdraw/duel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulatorRunsRounds(t *testing.T) {
	sim, err := NewSimulator(duel.DefaultTiming(), Presets[DifficultyNormal], Options{Seed: 99})
	require.NoError(t, err)

	tally := sim.RunRounds(50)
	assert.Equal(t, 50, tally.Rounds)
	assert.Equal(t, 50, tally.Wins+tally.Losses)

	// Every round lasts at least the minimum wait, and 50 rounds at most
	// (max wait + max enemy + pause) each.
	assert.GreaterOrEqual(t, sim.Elapsed(), 49*duel.Seconds(1.5))
	assert.LessOrEqual(t, sim.Elapsed(), 50*duel.Seconds(4+2+1.5)+time.Second)
}

func TestSimulatorHardBotWinsMoreThanEasy(t *testing.T) {
	hard, err := NewSimulator(duel.DefaultTiming(), Presets[DifficultyHard], Options{Seed: 5})
	require.NoError(t, err)
	easy, err := NewSimulator(duel.DefaultTiming(), Presets[DifficultyEasy], Options{Seed: 5})
	require.NoError(t, err)

	h := hard.RunRounds(200)
	e := easy.RunRounds(200)
	assert.Greater(t, h.WinRate(), e.WinRate())
	assert.Greater(t, h.WinRate(), 0.9)
}

func TestSimulatorPerfectReflexesNeverLose(t *testing.T) {
	reflex := Reflex{MinReaction: 50 * time.Millisecond, MaxReaction: 100 * time.Millisecond}
	sim, err := NewSimulator(duel.DefaultTiming(), reflex, Options{Seed: 11, TickRate: 120})
	require.NoError(t, err)

	tally := sim.RunRounds(20)
	assert.Equal(t, 20, tally.Wins)
	assert.Zero(t, tally.Early)
	assert.LessOrEqual(t, tally.BestReaction, 100*time.Millisecond+time.Second/120)
}

func TestSimulatorPosesAfterWin(t *testing.T) {
	reflex := Reflex{MinReaction: 50 * time.Millisecond, MaxReaction: 50 * time.Millisecond}
	sim, err := NewSimulator(duel.DefaultTiming(), reflex, Options{Seed: 1})
	require.NoError(t, err)

	sim.RunRounds(1)
	player, enemy := sim.Poses()
	assert.Equal(t, duel.PoseWin, player)
	assert.Equal(t, duel.PoseLose, enemy)

	sim.Stop()
}

func TestSimulatorRejectsBadInput(t *testing.T) {
	_, err := NewSimulator(duel.Timing{}, Presets[DifficultyNormal], Options{})
	assert.ErrorIs(t, err, duel.ErrNonPositive)

	_, err = NewSimulator(duel.DefaultTiming(), Reflex{MinReaction: time.Second}, Options{})
	assert.Error(t, err)
}
