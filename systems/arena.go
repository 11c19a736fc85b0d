package systems

import (
	"image/color"

	"github.com/automoto/quickdraw/assets"
	"github.com/automoto/quickdraw/components"
	cfg "github.com/automoto/quickdraw/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var vignetteOp = &ebiten.DrawRectShaderOptions{}

// DrawArena paints the dusk sky, the ground line and the edge vignette.
func DrawArena(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Stage.First(e.World)
	if !ok {
		return
	}
	stage := components.Stage.Get(entry)
	ox, oy := shakeOffset(e)

	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())
	groundY := float32(stage.Arena.GroundY + oy)

	bands := cfg.Arena.SkyBands
	if bands < 1 {
		bands = 1
	}
	bandH := groundY / float32(bands)
	for i := 0; i < bands; i++ {
		t := float64(i) / float64(bands)
		vector.FillRect(screen, 0, float32(i)*bandH, width, bandH+1, lerpRGBA(cfg.Arena.SkyTop, cfg.Arena.SkyBottom, t), false)
	}

	vector.FillRect(screen, 0, groundY, width, height-groundY, cfg.Arena.GroundColor, false)
	vector.StrokeLine(screen, float32(ox), groundY, width+float32(ox), groundY, 2, cfg.Arena.HorizonColor, false)

	if assets.VignetteShader == nil {
		return
	}
	vignetteOp.Uniforms = map[string]any{
		"Center":   []float32{width / 2, height / 2},
		"Radius":   width * 0.6,
		"Strength": float32(1.4),
	}
	screen.DrawRectShader(int(width), int(height), assets.VignetteShader, vignetteOp)
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: lerp(a.A, b.A)}
}
