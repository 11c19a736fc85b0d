package duel

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frame = time.Second / 60

type recordingCharacter struct {
	wins, losses, resets int
}

func (c *recordingCharacter) Win()   { c.wins++ }
func (c *recordingCharacter) Lose()  { c.losses++ }
func (c *recordingCharacter) Reset() { c.resets++ }

type recordingObserver struct {
	started []int
	armed   []int
	results []Result
}

func (o *recordingObserver) RoundStarted(round int) { o.started = append(o.started, round) }
func (o *recordingObserver) StrikeArmed(round int)  { o.armed = append(o.armed, round) }
func (o *recordingObserver) RoundResolved(r Result) { o.results = append(o.results, r) }

// minSampler always picks the lower bound.
type minSampler struct{}

func (minSampler) Between(min, _ time.Duration) time.Duration { return min }

type fixture struct {
	rt     *RoundTimer
	player *recordingCharacter
	enemy  *recordingCharacter
	obs    *recordingObserver
}

func scenarioTiming() Timing {
	return Timing{
		MinToStrike:       Seconds(3),
		MaxToStrike:       Seconds(4),
		MinEnemyStrike:    Seconds(1),
		MaxEnemyStrike:    Seconds(2),
		WaitBetweenRounds: Seconds(1.5),
	}
}

func newFixture(t *testing.T, sampler Sampler) *fixture {
	t.Helper()
	f := &fixture{
		player: &recordingCharacter{},
		enemy:  &recordingCharacter{},
		obs:    &recordingObserver{},
	}
	rt, err := NewRoundTimer(scenarioTiming(), f.player, f.enemy,
		WithSampler(sampler),
		WithObserver(f.obs),
		WithLogger(zerolog.Nop()),
	)
	require.NoError(t, err)
	f.rt = rt
	return f
}

// run ticks at 60fps for d without input.
func (f *fixture) run(d time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += frame {
		f.rt.Tick(frame, false)
	}
}

func TestNewRoundTimerRejectsInvalidTiming(t *testing.T) {
	bad := scenarioTiming()
	bad.MinEnemyStrike = Seconds(3)

	_, err := NewRoundTimer(bad, &recordingCharacter{}, &recordingCharacter{})
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestNewRoundTimerRequiresCharacters(t *testing.T) {
	_, err := NewRoundTimer(scenarioTiming(), nil, &recordingCharacter{})
	assert.Error(t, err)
}

func TestRoundTimerStartsIdle(t *testing.T) {
	f := newFixture(t, minSampler{})
	assert.Equal(t, Idle, f.rt.State())

	f.rt.Tick(frame, true)
	assert.Equal(t, Idle, f.rt.State(), "input is ignored before the first round")
	assert.Empty(t, f.obs.results)
}

func TestStartRoundResetsAndSchedules(t *testing.T) {
	f := newFixture(t, minSampler{})
	f.rt.StartRound()

	assert.Equal(t, WaitingForStrikeWindow, f.rt.State())
	assert.Equal(t, 1, f.rt.Round())
	assert.Equal(t, 1, f.player.resets)
	assert.Equal(t, 1, f.enemy.resets)
	assert.Equal(t, []int{1}, f.obs.started)
	assert.Equal(t, 1, f.rt.sched.Pending())
}

func TestNoInputEnemyWinsThenRestarts(t *testing.T) {
	f := newFixture(t, minSampler{})
	f.rt.StartRound()

	f.rt.sched.Advance(Seconds(3))
	require.Equal(t, StrikeArmed, f.rt.State())
	assert.Equal(t, Seconds(3), f.rt.StrikeArmedAt())

	f.rt.sched.Advance(Seconds(1))
	require.Equal(t, Resolved, f.rt.State())
	require.Len(t, f.obs.results, 1)

	res := f.obs.results[0]
	assert.Equal(t, PlayerLose, res.Outcome)
	assert.False(t, res.Early)
	assert.Equal(t, Seconds(4), res.At)
	assert.Equal(t, 1, f.player.losses)
	assert.Equal(t, 1, f.enemy.wins)

	f.rt.sched.Advance(Seconds(1.5) - time.Nanosecond)
	assert.Equal(t, Resolved, f.rt.State(), "still showing the result")

	f.rt.sched.Advance(time.Nanosecond)
	assert.Equal(t, WaitingForStrikeWindow, f.rt.State())
	assert.Equal(t, 2, f.rt.Round())
	assert.Equal(t, 2, f.player.resets)
	assert.Equal(t, 2, f.enemy.resets)
}

func TestNoInputScenarioAtFrameRate(t *testing.T) {
	f := newFixture(t, minSampler{})
	f.rt.StartRound()

	f.run(Seconds(4.2))
	require.Len(t, f.obs.results, 1)
	assert.Equal(t, PlayerLose, f.obs.results[0].Outcome)
	assert.Equal(t, Seconds(4), f.obs.results[0].At, "chained timers fire at exact virtual time")

	f.run(Seconds(1.5))
	assert.Equal(t, 2, f.rt.Round())
	assert.Equal(t, WaitingForStrikeWindow, f.rt.State())
}

func TestEarlyInputLosesAndCancelsTimers(t *testing.T) {
	f := newFixture(t, minSampler{})
	f.rt.StartRound()

	f.rt.Tick(frame, true)

	require.Len(t, f.obs.results, 1)
	res := f.obs.results[0]
	assert.Equal(t, PlayerLose, res.Outcome)
	assert.True(t, res.Early)
	assert.Zero(t, res.At)
	assert.Equal(t, 1, f.rt.sched.Pending(), "only the next round is scheduled")

	// The cancelled strike cue must never fire for round one.
	f.run(Seconds(1.4))
	assert.Empty(t, f.obs.armed)
	assert.Equal(t, Resolved, f.rt.State())
}

func TestInputInsideWindowWins(t *testing.T) {
	f := newFixture(t, minSampler{})
	f.rt.StartRound()
	f.rt.sched.Advance(Seconds(3))

	f.rt.sched.Advance(250 * time.Millisecond)
	f.rt.Tick(frame, true)

	require.Len(t, f.obs.results, 1)
	res := f.obs.results[0]
	assert.Equal(t, PlayerWin, res.Outcome)
	assert.Equal(t, 250*time.Millisecond, res.Reaction)
	assert.Equal(t, 1, f.player.wins)
	assert.Equal(t, 1, f.enemy.losses)

	// Enemy auto-strike time passes; nothing changes.
	f.rt.sched.Advance(Seconds(1))
	assert.Len(t, f.obs.results, 1)
	assert.Zero(t, f.player.losses)
	assert.Zero(t, f.enemy.wins)
}

func TestSameFrameInputBeatsEnemyTimer(t *testing.T) {
	f := newFixture(t, minSampler{})
	f.rt.StartRound()
	f.rt.sched.Advance(Seconds(3.99))
	require.Equal(t, StrikeArmed, f.rt.State())

	// The enemy fires at 4s, inside this frame, but input is applied first.
	f.rt.Tick(20*time.Millisecond, true)

	require.Len(t, f.obs.results, 1)
	assert.Equal(t, PlayerWin, f.obs.results[0].Outcome)
}

func TestInputAfterResolutionIgnored(t *testing.T) {
	f := newFixture(t, minSampler{})
	f.rt.StartRound()
	f.rt.sched.Advance(Seconds(4))
	require.Equal(t, Resolved, f.rt.State())

	f.rt.Tick(frame, true)
	f.rt.OnEnemyAutoStrike()

	assert.Len(t, f.obs.results, 1)
	assert.Equal(t, 1, f.player.losses)
	assert.Zero(t, f.player.wins)
}

func TestStrikeArmedIgnoredOutsideWaiting(t *testing.T) {
	f := newFixture(t, minSampler{})
	f.rt.OnStrikeArmed()
	assert.Equal(t, Idle, f.rt.State())
	assert.Empty(t, f.obs.armed)
}

func TestStopCancelsEverything(t *testing.T) {
	f := newFixture(t, minSampler{})
	f.rt.StartRound()
	f.rt.sched.Advance(Seconds(3))

	f.rt.Stop()
	assert.Equal(t, Idle, f.rt.State())
	assert.Zero(t, f.rt.sched.Pending())

	f.run(Seconds(10))
	assert.Empty(t, f.obs.results)
	assert.Equal(t, 1, f.rt.Round())
}

func TestLastResult(t *testing.T) {
	f := newFixture(t, minSampler{})
	_, ok := f.rt.Last()
	assert.False(t, ok)

	f.rt.StartRound()
	f.rt.Tick(frame, true)

	last, ok := f.rt.Last()
	require.True(t, ok)
	assert.Equal(t, 1, last.Round)
	assert.True(t, last.Early)
}

func TestEachRoundResolvesExactlyOnce(t *testing.T) {
	// Sweep the press time across the whole round, including frames where
	// the cue or the opponent fires.
	for pressAt := time.Duration(0); pressAt <= Seconds(5); pressAt += 10 * time.Millisecond {
		f := newFixture(t, NewSeededSampler(uint64(pressAt)))
		f.rt.StartRound()

		pressed := false
		for elapsed := time.Duration(0); elapsed < Seconds(5.5); elapsed += frame {
			press := !pressed && elapsed >= pressAt
			if press {
				pressed = true
			}
			f.rt.Tick(frame, press)
			if f.rt.Round() > 1 {
				break
			}
		}

		require.Len(t, f.obs.results, 1, "press at %v", pressAt)
		res := f.obs.results[0]
		assert.Equal(t, 1, f.player.wins+f.player.losses, "press at %v", pressAt)
		assert.Equal(t, 1, f.enemy.wins+f.enemy.losses, "press at %v", pressAt)

		switch {
		case res.Early:
			assert.Equal(t, PlayerLose, res.Outcome)
			assert.Empty(t, f.obs.armed, "press at %v", pressAt)
		case res.Outcome == PlayerWin:
			assert.Equal(t, 1, f.player.wins)
			assert.Equal(t, 1, f.enemy.losses)
			assert.Less(t, res.Reaction, Seconds(2)+frame)
		default:
			assert.Equal(t, 1, f.enemy.wins)
		}
	}
}

func TestRoundIDsAreUnique(t *testing.T) {
	f := newFixture(t, minSampler{})
	f.rt.StartRound()
	f.rt.Tick(frame, true)
	first, _ := f.rt.Last()

	f.rt.sched.Advance(Seconds(1.5))
	f.rt.Tick(frame, true)
	second, _ := f.rt.Last()

	assert.Equal(t, 2, second.Round)
	assert.NotEqual(t, first.ID, second.ID)
}
