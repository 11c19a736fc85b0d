package headless

import (
	"time"

	"github.com/automoto/quickdraw/duel"
)

// Bot plays the strike key like a person would: it waits for the cue,
// reacts after a sampled delay, and occasionally jumps the gun.
type Bot struct {
	reflex      Reflex
	rng         *duel.RandSampler
	earlyWithin time.Duration

	pending bool
	pressIn time.Duration
}

// NewBot returns a bot whose early presses land within earlyWithin of the
// round start, which should not exceed the shortest wait for the cue.
func NewBot(r Reflex, rng *duel.RandSampler, earlyWithin time.Duration) *Bot {
	return &Bot{reflex: r, rng: rng, earlyWithin: earlyWithin}
}

func (b *Bot) RoundStarted(int) {
	b.pending = false
	if b.earlyWithin > 0 && b.rng.Float() < b.reflex.Twitch {
		b.pending = true
		b.pressIn = b.rng.Between(0, b.earlyWithin-time.Millisecond)
	}
}

func (b *Bot) StrikeArmed(int) {
	b.pending = true
	b.pressIn = b.rng.Between(b.reflex.MinReaction, b.reflex.MaxReaction)
}

func (b *Bot) RoundResolved(duel.Result) {
	b.pending = false
}

// Step advances the bot by dt and reports whether it strikes this frame.
func (b *Bot) Step(dt time.Duration) bool {
	if !b.pending {
		return false
	}
	b.pressIn -= dt
	if b.pressIn > 0 {
		return false
	}
	b.pending = false
	return true
}
