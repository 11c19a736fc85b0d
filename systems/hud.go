package systems

import (
	"fmt"
	"time"

	cfg "github.com/automoto/quickdraw/config"
	"github.com/automoto/quickdraw/duel"
	"github.com/automoto/quickdraw/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the round counter, session tally and the result banner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	round := GetRound(e)
	if round == nil || round.Timer == nil {
		return
	}

	margin := cfg.HUD.Margin
	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()
	face := fonts.Regular.Get()
	tally := round.Tally

	text.Draw(screen, fmt.Sprintf("Round %d", round.Timer.Round()), face, margin, margin+10, cfg.HUD.TextColor)

	score := fmt.Sprintf("W %d  L %d  Streak %d", tally.Wins, tally.Losses, tally.Streak)
	scoreW := text.BoundString(face, score).Dx()
	text.Draw(screen, score, face, width-margin-scoreW, margin+10, cfg.HUD.TextColor)

	if tally.Wins > 0 {
		best := fmt.Sprintf("Best %s  Mean %s", formatReaction(tally.BestReaction), formatReaction(tally.MeanReaction()))
		text.Draw(screen, best, fonts.Small.Get(), margin, height-margin, cfg.HUD.TextColor)
	}

	if round.Timer.State() != duel.Resolved {
		return
	}
	last, ok := round.Timer.Last()
	if !ok {
		return
	}

	banner, clr := cfg.HUD.LoseBanner, cfg.HUD.LoseColor
	switch {
	case last.Early:
		banner = cfg.HUD.EarlyBanner
	case last.Outcome == duel.PlayerWin:
		banner, clr = cfg.HUD.WinBanner, cfg.HUD.WinColor
	}
	drawCentered(screen, banner, fonts.Title.Get(), cfg.HUD.BannerY, clr)

	if last.Outcome == duel.PlayerWin {
		drawCentered(screen, formatReaction(last.Reaction), fonts.Bold.Get(), cfg.HUD.BannerY+26, cfg.HUD.TextColor)
	}
}

// formatReaction renders a reaction time in milliseconds.
func formatReaction(d time.Duration) string {
	return fmt.Sprintf("%dms", d.Milliseconds())
}
