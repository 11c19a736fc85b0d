package systems

import (
	"fmt"

	"github.com/automoto/quickdraw/components"
	cfg "github.com/automoto/quickdraw/config"
	"github.com/automoto/quickdraw/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause handles pause toggle and menu navigation.
// This system should run AFTER UpdateInput but BEFORE the round system.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	input := getOrCreateInput(ecs)

	// Toggle pause on ESC or P
	if GetAction(input, cfg.ActionPause).JustPressed {
		pause.IsPaused = !pause.IsPaused
		if pause.IsPaused {
			pause.SelectedOption = components.MenuResume
		}
		ConsumeActions(input)
		return
	}

	if !pause.IsPaused {
		return
	}

	numOptions := components.PauseMenuOptionCount
	if GetAction(input, cfg.ActionMenuUp).JustPressed {
		pause.SelectedOption = components.PauseMenuOption(
			(int(pause.SelectedOption) - 1 + numOptions) % numOptions,
		)
		PlaySFX(ecs, cfg.SoundMenuNavigate)
	}
	if GetAction(input, cfg.ActionMenuDown).JustPressed {
		pause.SelectedOption = components.PauseMenuOption(
			(int(pause.SelectedOption) + 1) % numOptions,
		)
		PlaySFX(ecs, cfg.SoundMenuNavigate)
	}

	if GetAction(input, cfg.ActionMenuSelect).JustPressed {
		switch pause.SelectedOption {
		case components.MenuResume:
			pause.IsPaused = false
		case components.MenuSound:
			SetSFXVolume(ecs, nextVolumeStep(GetSFXVolume()))
			SaveCurrentSettings()
		case components.MenuFullscreen:
			ebiten.SetFullscreen(!ebiten.IsFullscreen())
			SaveCurrentSettings()
		case components.MenuQuit:
			pause.QuitRequested = true
		}
		PlaySFX(ecs, cfg.SoundMenuSelect)
	}

	// The select button doubles as a strike button on gamepads
	ConsumeActions(input)
}

// nextVolumeStep cycles through the configured volume steps, wrapping to mute.
func nextVolumeStep(current float64) float64 {
	steps := cfg.SettingsMenu.VolumeSteps
	for _, step := range steps {
		if step > current+0.001 {
			return step
		}
	}
	return steps[0]
}

// DrawPause renders the pause overlay and menu.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(ecs)

	if !pause.IsPaused {
		return
	}

	width := float32(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, width, float32(height), cfg.Pause.OverlayColor, false)

	numOptions := components.PauseMenuOptionCount
	totalMenuHeight := float64(numOptions) * (cfg.Pause.MenuItemHeight + cfg.Pause.MenuItemGap)
	startY := (height - totalMenuHeight) / 2

	fontFace := fonts.Bold.Get()
	for i := 0; i < numOptions; i++ {
		option := components.PauseMenuOption(i)
		y := startY + float64(i)*(cfg.Pause.MenuItemHeight+cfg.Pause.MenuItemGap)

		textColor := cfg.Pause.TextColorNormal
		if option == pause.SelectedOption {
			textColor = cfg.Pause.TextColorSelected
		}

		drawCentered(screen, pauseOptionLabel(option), fontFace, int(y+cfg.Pause.MenuItemHeight), textColor)
	}

	input := getOrCreateInput(ecs)
	drawCentered(screen, getPauseHint(input.LastInputMethod), fonts.Small.Get(), int(height)-12, cfg.Pause.TextColorNormal)
}

func pauseOptionLabel(option components.PauseMenuOption) string {
	switch option {
	case components.MenuResume:
		return "Resume"
	case components.MenuSound:
		if GetSFXVolume() <= 0 {
			return "Sound: Off"
		}
		return fmt.Sprintf("Sound: %d%%", int(GetSFXVolume()*100+0.5))
	case components.MenuFullscreen:
		if ebiten.IsFullscreen() {
			return "Fullscreen: On"
		}
		return "Fullscreen: Off"
	case components.MenuQuit:
		return "Quit to Menu"
	}
	return ""
}

// getPauseHint returns the appropriate hint for pause menu
func getPauseHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "D-Pad: Navigate   Cross: Select   Options: Resume"
	case components.InputXbox:
		return "D-Pad: Navigate   A: Select   Start: Resume"
	}
	return "Arrows: Navigate   Enter: Select   Esc: Resume"
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// IsQuitRequested reports whether the player chose to leave the duel.
func IsQuitRequested(e *ecs.ECS) bool {
	entry, ok := components.Pause.First(e.World)
	if !ok {
		return false
	}
	return components.Pause.Get(entry).QuitRequested
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Pause))
		components.Pause.SetValue(ent, components.PauseData{
			IsPaused:       false,
			SelectedOption: components.MenuResume,
		})
	}

	ent, _ := components.Pause.First(ecs.World)
	return components.Pause.Get(ent)
}
