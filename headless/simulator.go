// Package headless runs duels without a window, with a simulated player,
// for balance checks and soak tests.
package headless

import (
	"errors"
	"time"

	"github.com/automoto/quickdraw/duel"
	"github.com/rs/zerolog"
)

// Options configures a Simulator.
type Options struct {
	TickRate int    // frames per second, defaults to 60
	Seed     uint64 // 0 picks a random seed
	Logger   zerolog.Logger
}

// Simulator steps a round timer and a bot at a fixed frame rate.
type Simulator struct {
	timer  *duel.RoundTimer
	bot    *Bot
	player *duel.PoseCharacter
	enemy  *duel.PoseCharacter
	tally  duel.Tally
	dt     time.Duration
	frames int
}

// NewSimulator builds a simulator for timing t and reflex r.
func NewSimulator(t duel.Timing, r Reflex, opts Options) (*Simulator, error) {
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	if r.MinReaction > r.MaxReaction {
		return nil, errors.New("headless: reflex min reaction exceeds max")
	}

	var rng *duel.RandSampler
	if opts.Seed == 0 {
		rng = duel.NewRandSampler()
	} else {
		rng = duel.NewSeededSampler(opts.Seed)
	}

	s := &Simulator{
		player: &duel.PoseCharacter{},
		enemy:  &duel.PoseCharacter{},
		dt:     time.Second / time.Duration(opts.TickRate),
	}
	s.bot = NewBot(r, rng, t.MinToStrike)

	timer, err := duel.NewRoundTimer(t, s.player, s.enemy,
		duel.WithSampler(rng),
		duel.WithObserver(duel.Observers{s.bot, s}),
		duel.WithLogger(opts.Logger),
	)
	if err != nil {
		return nil, err
	}
	s.timer = timer
	return s, nil
}

func (s *Simulator) RoundStarted(int) {}

func (s *Simulator) StrikeArmed(int) {}

func (s *Simulator) RoundResolved(r duel.Result) {
	s.tally.Record(r)
}

// Step runs one frame, starting the first round if needed.
func (s *Simulator) Step() {
	if s.timer.State() == duel.Idle {
		s.timer.StartRound()
	}
	strike := s.bot.Step(s.dt)
	s.timer.Tick(s.dt, strike)
	s.frames++
}

// RunRounds steps until n more rounds have resolved and returns the tally.
func (s *Simulator) RunRounds(n int) duel.Tally {
	target := s.tally.Rounds + n
	for s.tally.Rounds < target {
		s.Step()
	}
	return s.tally
}

// Tally returns the statistics so far.
func (s *Simulator) Tally() duel.Tally { return s.tally }

// Elapsed returns the simulated time.
func (s *Simulator) Elapsed() time.Duration { return time.Duration(s.frames) * s.dt }

// Poses returns the current player and enemy poses.
func (s *Simulator) Poses() (player, enemy duel.Pose) {
	return s.player.Pose, s.enemy.Pose
}

// Stop halts the round timer.
func (s *Simulator) Stop() { s.timer.Stop() }
