package systems

import (
	"fmt"

	cfg "github.com/automoto/quickdraw/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebug toggles the round state overlay.
func UpdateDebug(e *ecs.ECS) {
	if GetAction(getOrCreateInput(e), cfg.ActionDebugToggle).JustPressed {
		cfg.Debug.Overlay = !cfg.Debug.Overlay
	}
}

func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Overlay {
		return
	}
	round := GetRound(e)
	if round == nil || round.Timer == nil {
		return
	}

	rt := round.Timer
	msg := fmt.Sprintf("TPS %.0f\nstate %s\nround %d\nt %s\narmed %s",
		ebiten.ActualTPS(), rt.State(), rt.Round(), rt.Now(), rt.StrikeArmedAt())
	ebitenutil.DebugPrintAt(screen, msg, cfg.HUD.Margin, 40)
}
