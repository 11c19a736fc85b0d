package duel

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// RoundState is the phase of the current round.
type RoundState int

const (
	Idle RoundState = iota
	WaitingForStrikeWindow
	StrikeArmed
	Resolved
)

func (s RoundState) String() string {
	switch s {
	case Idle:
		return "idle"
	case WaitingForStrikeWindow:
		return "waiting"
	case StrikeArmed:
		return "strike_armed"
	case Resolved:
		return "resolved"
	}
	return "unknown"
}

// Outcome is how a round ended for the player.
type Outcome int

const (
	PlayerWin Outcome = iota
	PlayerLose
)

func (o Outcome) String() string {
	if o == PlayerWin {
		return "win"
	}
	return "lose"
}

// Character receives the result of each round. Implementations are
// fire-and-forget; the round timer never waits on them.
type Character interface {
	Win()
	Lose()
	Reset()
}

// Observer is notified of round transitions for indicators, sound and
// statistics.
type Observer interface {
	RoundStarted(round int)
	StrikeArmed(round int)
	RoundResolved(r Result)
}

// Result describes a finished round.
type Result struct {
	Round    int
	ID       uuid.UUID
	Outcome  Outcome
	Early    bool          // lost by striking before the cue
	Reaction time.Duration // cue to strike, wins only
	At       time.Duration // virtual time of resolution
}

var errNilCharacter = errors.New("duel: player and enemy characters are required")

type nopObserver struct{}

func (nopObserver) RoundStarted(int)     {}
func (nopObserver) StrikeArmed(int)      {}
func (nopObserver) RoundResolved(Result) {}

// Option configures a RoundTimer.
type Option func(*RoundTimer)

// WithSampler replaces the random delay source.
func WithSampler(s Sampler) Option {
	return func(rt *RoundTimer) { rt.sampler = s }
}

// WithObserver registers the round observer.
func WithObserver(o Observer) Option {
	return func(rt *RoundTimer) { rt.observer = o }
}

// WithLogger sets the logger used for round transitions.
func WithLogger(l zerolog.Logger) Option {
	return func(rt *RoundTimer) { rt.logger = l }
}

// WithScheduler drives the timer from an existing scheduler.
func WithScheduler(s *Scheduler) Option {
	return func(rt *RoundTimer) { rt.sched = s }
}

// RoundTimer is the duel state machine. Rounds start, arm the strike window
// after a random delay, and resolve on the first of player input or the
// opponent's auto-strike. Everything runs on the caller's goroutine.
type RoundTimer struct {
	timing   Timing
	player   Character
	enemy    Character
	sched    *Scheduler
	sampler  Sampler
	observer Observer
	logger   zerolog.Logger

	state   RoundState
	round   int
	roundID uuid.UUID
	armedAt time.Duration
	last    Result
	hasLast bool

	armTimer   *Handle
	enemyTimer *Handle
	nextTimer  *Handle
}

// NewRoundTimer validates t and returns an idle round timer.
func NewRoundTimer(t Timing, player, enemy Character, opts ...Option) (*RoundTimer, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if player == nil || enemy == nil {
		return nil, errNilCharacter
	}

	rt := &RoundTimer{
		timing:   t,
		player:   player,
		enemy:    enemy,
		observer: nopObserver{},
		logger:   log.Logger,
		state:    Idle,
	}
	for _, opt := range opts {
		opt(rt)
	}
	if rt.sched == nil {
		rt.sched = NewScheduler()
	}
	if rt.sampler == nil {
		rt.sampler = NewRandSampler()
	}
	return rt, nil
}

// StartRound resets both characters and schedules the strike cue.
func (rt *RoundTimer) StartRound() {
	rt.cancelTimers()

	rt.state = WaitingForStrikeWindow
	rt.round++
	rt.roundID = uuid.New()
	rt.armedAt = 0

	rt.player.Reset()
	rt.enemy.Reset()

	delay := rt.sampler.Between(rt.timing.MinToStrike, rt.timing.MaxToStrike)
	rt.armTimer = rt.sched.After(delay, rt.OnStrikeArmed)

	rt.logger.Debug().
		Int("round", rt.round).
		Str("round_id", rt.roundID.String()).
		Dur("strike_in", delay).
		Msg("round started")
	rt.observer.RoundStarted(rt.round)
}

// OnStrikeArmed opens the strike window and schedules the opponent.
func (rt *RoundTimer) OnStrikeArmed() {
	if rt.state != WaitingForStrikeWindow {
		return
	}
	rt.armTimer = nil
	rt.state = StrikeArmed
	rt.armedAt = rt.sched.Now()

	delay := rt.sampler.Between(rt.timing.MinEnemyStrike, rt.timing.MaxEnemyStrike)
	rt.enemyTimer = rt.sched.After(delay, rt.OnEnemyAutoStrike)

	rt.logger.Debug().
		Int("round", rt.round).
		Dur("enemy_in", delay).
		Msg("strike armed")
	rt.observer.StrikeArmed(rt.round)
}

// OnPlayerInput handles one strike attempt. Striking inside the window wins;
// striking before it loses immediately.
func (rt *RoundTimer) OnPlayerInput() {
	switch rt.state {
	case StrikeArmed:
		rt.resolve(PlayerWin, false)
	case WaitingForStrikeWindow:
		rt.resolve(PlayerLose, true)
	}
}

// OnEnemyAutoStrike ends the round in the opponent's favour unless it is
// already over.
func (rt *RoundTimer) OnEnemyAutoStrike() {
	rt.enemyTimer = nil
	if rt.state == Resolved || rt.state == Idle {
		return
	}
	rt.resolve(PlayerLose, false)
}

func (rt *RoundTimer) resolve(outcome Outcome, early bool) {
	if rt.state == Resolved || rt.state == Idle {
		return
	}
	rt.cancelTimers()
	rt.state = Resolved

	res := Result{
		Round:   rt.round,
		ID:      rt.roundID,
		Outcome: outcome,
		Early:   early,
		At:      rt.sched.Now(),
	}

	if outcome == PlayerWin {
		res.Reaction = res.At - rt.armedAt
		rt.player.Win()
		rt.enemy.Lose()
	} else {
		rt.player.Lose()
		rt.enemy.Win()
	}
	rt.last = res
	rt.hasLast = true

	rt.nextTimer = rt.sched.After(rt.timing.WaitBetweenRounds, rt.StartRound)

	ev := rt.logger.Info().
		Int("round", res.Round).
		Str("round_id", res.ID.String()).
		Stringer("outcome", res.Outcome).
		Bool("early", res.Early)
	if outcome == PlayerWin {
		ev = ev.Dur("reaction", res.Reaction)
	}
	ev.Msg("round resolved")

	rt.observer.RoundResolved(res)
}

// Tick runs one host frame: the strike input is applied first, then the
// scheduler advances by dt. A strike in the same frame the opponent's timer
// expires therefore counts for the player.
func (rt *RoundTimer) Tick(dt time.Duration, strike bool) {
	if strike {
		rt.OnPlayerInput()
	}
	rt.sched.Advance(dt)
}

// Stop cancels every pending timer and returns to Idle.
func (rt *RoundTimer) Stop() {
	rt.cancelTimers()
	rt.state = Idle
}

func (rt *RoundTimer) cancelTimers() {
	rt.armTimer.Cancel()
	rt.enemyTimer.Cancel()
	rt.nextTimer.Cancel()
	rt.armTimer, rt.enemyTimer, rt.nextTimer = nil, nil, nil
}

func (rt *RoundTimer) State() RoundState { return rt.state }

func (rt *RoundTimer) Round() int { return rt.round }

func (rt *RoundTimer) Now() time.Duration { return rt.sched.Now() }

// StrikeArmedAt returns the virtual time the current window opened.
func (rt *RoundTimer) StrikeArmedAt() time.Duration { return rt.armedAt }

// Last returns the most recent result, if any round has finished.
func (rt *RoundTimer) Last() (Result, bool) { return rt.last, rt.hasLast }

// Timing returns the validated timing the timer was built with.
func (rt *RoundTimer) Timing() Timing { return rt.timing }
