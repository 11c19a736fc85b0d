package headless

import (
	"testing"
	"time"

	"github.com/automoto/quickdraw/duel"
	"github.com/stretchr/testify/assert"
)

const frame = time.Second / 60

func framesUntilPress(b *Bot, limit int) int {
	for i := 1; i <= limit; i++ {
		if b.Step(frame) {
			return i
		}
	}
	return -1
}

func TestBotWaitsForCue(t *testing.T) {
	b := NewBot(Reflex{MinReaction: 100 * time.Millisecond, MaxReaction: 100 * time.Millisecond}, duel.NewSeededSampler(1), 3*time.Second)
	b.RoundStarted(1)

	assert.Equal(t, -1, framesUntilPress(b, 600), "no twitch, no press before the cue")

	b.StrikeArmed(1)
	assert.Equal(t, 7, framesUntilPress(b, 600), "6 frames fall 4ns short of 100ms")
	assert.False(t, b.Step(frame), "presses once")
}

func TestBotAlwaysTwitches(t *testing.T) {
	b := NewBot(Reflex{MinReaction: time.Second, MaxReaction: time.Second, Twitch: 1}, duel.NewSeededSampler(2), 3*time.Second)
	b.RoundStarted(1)

	n := framesUntilPress(b, 600)
	assert.Positive(t, n)
	assert.Less(t, time.Duration(n-1)*frame, 3*time.Second)
}

func TestBotForgetsPressAfterResolution(t *testing.T) {
	b := NewBot(Presets[DifficultyNormal], duel.NewSeededSampler(3), 3*time.Second)
	b.StrikeArmed(1)
	b.RoundResolved(duel.Result{})

	assert.Equal(t, -1, framesUntilPress(b, 600))
}

func TestParseDifficulty(t *testing.T) {
	tests := map[string]Difficulty{
		"easy":   DifficultyEasy,
		"Normal": DifficultyNormal,
		"":       DifficultyNormal,
		" HARD ": DifficultyHard,
	}
	for in, want := range tests {
		got, err := ParseDifficulty(in)
		assert.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseDifficulty("nightmare")
	assert.Error(t, err)
}

func TestPresetsAreOrdered(t *testing.T) {
	for d, r := range Presets {
		assert.LessOrEqual(t, r.MinReaction, r.MaxReaction, d.String())
	}
	assert.Less(t, Presets[DifficultyHard].MaxReaction, Presets[DifficultyEasy].MaxReaction)
}
