package headless

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// Loop calls step at a fixed rate on clock until its context ends.
type Loop struct {
	clock    clockwork.Clock
	tickRate int
	step     func()
}

func NewLoop(clock clockwork.Clock, tickRate int, step func()) *Loop {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Loop{clock: clock, tickRate: tickRate, step: step}
}

// Interval is the time between steps.
func (l *Loop) Interval() time.Duration {
	return time.Second / time.Duration(l.tickRate)
}

// Run blocks, stepping on every tick, and returns the context's error.
func (l *Loop) Run(ctx context.Context) error {
	ticker := l.clock.NewTicker(l.Interval())
	defer ticker.Stop()

	log.Info().Int("tick_rate", l.tickRate).Msg("loop started")

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("loop stopped")
			return ctx.Err()
		case <-ticker.Chan():
			l.step()
		}
	}
}
