package systems

import (
	"time"

	"github.com/automoto/quickdraw/components"
	cfg "github.com/automoto/quickdraw/config"
	"github.com/automoto/quickdraw/duel"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// roundHooks turns round transitions into indicator, sound, effect and
// tally updates on the scene's world.
type roundHooks struct {
	ecs *ecs.ECS
}

// NewRoundObserver returns the observer a duel scene registers with its
// round timer.
func NewRoundObserver(e *ecs.ECS) duel.Observer {
	return &roundHooks{ecs: e}
}

func (h *roundHooks) RoundStarted(int) {
	HideIndicator(h.ecs)
}

func (h *roundHooks) StrikeArmed(int) {
	ShowIndicator(h.ecs)
	PlaySFX(h.ecs, cfg.SoundCue)
}

func (h *roundHooks) RoundResolved(r duel.Result) {
	PlaySFX(h.ecs, cfg.SoundStrike)
	TriggerScreenShake(h.ecs, cfg.Effects.ShakeIntensity, cfg.Effects.ShakeFrames)
	TriggerFlash(h.ecs, cfg.Effects.FlashFrames)

	if round := GetRound(h.ecs); round != nil {
		round.Tally.Record(r)
	}
}

// UpdateRound feeds one frame of virtual time and the strike input into the
// round timer. Wrap with WithPauseCheck so time stops while paused.
func UpdateRound(e *ecs.ECS) {
	round := GetRound(e)
	if round == nil || round.Timer == nil {
		return
	}

	input := getOrCreateInput(e)
	strike := GetAction(input, cfg.ActionStrike).JustPressed
	round.Timer.Tick(frameDuration(), strike)
}

// frameDuration is the virtual time one update represents.
func frameDuration() time.Duration {
	return time.Second / time.Duration(ebiten.TPS())
}

// StopRound cancels the round timer's pending callbacks.
func StopRound(e *ecs.ECS) {
	if round := GetRound(e); round != nil && round.Timer != nil {
		round.Timer.Stop()
	}
}

// GetRound returns the Round singleton, or nil outside a duel.
func GetRound(e *ecs.ECS) *components.RoundData {
	entry, ok := components.Round.First(e.World)
	if !ok {
		return nil
	}
	return components.Round.Get(entry)
}
