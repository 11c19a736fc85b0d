package systems

import (
	"math"

	"github.com/automoto/quickdraw/components"
	cfg "github.com/automoto/quickdraw/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects ages the strike screen shake and flash
func UpdateEffects(e *ecs.ECS) {
	entry, ok := components.Stage.First(e.World)
	if !ok {
		return
	}

	if entry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(entry)
		shake.Elapsed++
		if shake.Elapsed >= shake.Duration {
			entry.RemoveComponent(components.ScreenShake)
		}
	}

	if entry.HasComponent(components.Flash) {
		flash := components.Flash.Get(entry)
		flash.Duration--
		if flash.Duration <= 0 {
			entry.RemoveComponent(components.Flash)
		}
	}
}

// TriggerScreenShake starts a screen shake effect
func TriggerScreenShake(e *ecs.ECS, intensity float64, duration int) {
	entry, ok := components.Stage.First(e.World)
	if !ok || duration <= 0 {
		return
	}

	if entry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(entry)
		// Only override if new shake is stronger
		if intensity > shake.Intensity {
			shake.Intensity = intensity
			shake.Duration = duration
			shake.Elapsed = 0
		}
		return
	}

	entry.AddComponent(components.ScreenShake)
	components.ScreenShake.Set(entry, &components.ScreenShakeData{
		Intensity: intensity,
		Duration:  duration,
	})
}

// TriggerFlash starts a full-screen flash lasting duration frames
func TriggerFlash(e *ecs.ECS, duration int) {
	entry, ok := components.Stage.First(e.World)
	if !ok || duration <= 0 {
		return
	}

	if !entry.HasComponent(components.Flash) {
		entry.AddComponent(components.Flash)
	}
	components.Flash.Set(entry, &components.FlashData{Duration: duration, Total: duration})
}

// shakeOffset returns the current decaying shake offset in pixels
func shakeOffset(e *ecs.ECS) (float64, float64) {
	entry, ok := components.Stage.First(e.World)
	if !ok || !entry.HasComponent(components.ScreenShake) {
		return 0, 0
	}
	return shakeOffsetFor(entry)
}

func shakeOffsetFor(entry *donburi.Entry) (float64, float64) {
	shake := components.ScreenShake.Get(entry)
	progress := float64(shake.Duration-shake.Elapsed) / float64(shake.Duration)
	if progress < 0 {
		progress = 0
	}
	intensity := shake.Intensity * progress
	return math.Sin(float64(shake.Elapsed)*1.1) * intensity, math.Cos(float64(shake.Elapsed)*1.3) * intensity
}

// DrawFlash renders the fading strike flash over the arena
func DrawFlash(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Stage.First(e.World)
	if !ok || !entry.HasComponent(components.Flash) {
		return
	}

	flash := components.Flash.Get(entry)
	clr := cfg.Effects.FlashColor
	clr.A = uint8(float64(clr.A) * float64(flash.Duration) / float64(flash.Total))
	// Premultiplied alpha
	clr.R = uint8(uint16(clr.R) * uint16(clr.A) / 255)
	clr.G = uint8(uint16(clr.G) * uint16(clr.A) / 255)
	clr.B = uint8(uint16(clr.B) * uint16(clr.A) / 255)

	bounds := screen.Bounds()
	vector.FillRect(screen, 0, 0, float32(bounds.Dx()), float32(bounds.Dy()), clr, false)
}
