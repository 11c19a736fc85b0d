package systems

import (
	"github.com/automoto/quickdraw/components"
	cfg "github.com/automoto/quickdraw/config"
	"github.com/automoto/quickdraw/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

var indicatorGlyph *ebiten.Image
var indicatorDrawOp = &ebiten.DrawImageOptions{}

// ShowIndicator pops the strike cue in.
func ShowIndicator(e *ecs.ECS) {
	ind := getIndicator(e)
	if ind == nil {
		return
	}
	ind.Visible = true
	ind.Scale = cfg.Indicator.StartScale
	ind.Tween = gween.New(cfg.Indicator.StartScale, cfg.Indicator.Scale, cfg.Indicator.PopDuration, ease.OutBack)
}

// HideIndicator removes the strike cue.
func HideIndicator(e *ecs.ECS) {
	ind := getIndicator(e)
	if ind == nil {
		return
	}
	ind.Visible = false
	ind.Tween = nil
}

// UpdateIndicator advances the pop-in tween by one frame.
func UpdateIndicator(e *ecs.ECS) {
	ind := getIndicator(e)
	if ind == nil || ind.Tween == nil {
		return
	}

	scale, finished := ind.Tween.Update(float32(1 / float64(ebiten.TPS())))
	ind.Scale = scale
	if finished {
		ind.Tween = nil
	}
}

// DrawIndicator renders the strike cue when visible.
func DrawIndicator(e *ecs.ECS, screen *ebiten.Image) {
	ind := getIndicator(e)
	if ind == nil || !ind.Visible {
		return
	}

	glyph := getIndicatorGlyph()
	w, h := glyph.Bounds().Dx(), glyph.Bounds().Dy()
	radius := float32(h) * 0.75 * ind.Scale
	vector.FillCircle(screen, float32(ind.X), float32(ind.Y), radius, cfg.White, true)

	indicatorDrawOp.GeoM.Reset()
	indicatorDrawOp.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	indicatorDrawOp.GeoM.Scale(float64(ind.Scale), float64(ind.Scale))
	indicatorDrawOp.GeoM.Translate(ind.X, ind.Y)
	screen.DrawImage(glyph, indicatorDrawOp)
}

// getIndicatorGlyph renders the cue text once into an image so it can be scaled.
func getIndicatorGlyph() *ebiten.Image {
	if indicatorGlyph != nil {
		return indicatorGlyph
	}

	face := fonts.Cue.Get()
	bounds := text.BoundString(face, cfg.Indicator.Text)
	indicatorGlyph = ebiten.NewImage(bounds.Dx()+2, bounds.Dy()+2)
	text.Draw(indicatorGlyph, cfg.Indicator.Text, face, 1-bounds.Min.X, 1-bounds.Min.Y, cfg.Indicator.Color)
	return indicatorGlyph
}

func getIndicator(e *ecs.ECS) *components.IndicatorData {
	entry, ok := components.Indicator.First(e.World)
	if !ok {
		return nil
	}
	return components.Indicator.Get(entry)
}
