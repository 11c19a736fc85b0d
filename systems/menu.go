package systems

import (
	"os"

	"github.com/automoto/quickdraw/components"
	cfg "github.com/automoto/quickdraw/config"
	"github.com/automoto/quickdraw/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

var mainMenuOptions = []components.MainMenuOption{
	components.MainMenuDuel,
	components.MainMenuExit,
}

// NewUpdateMenu creates an UpdateMenu system with scene transition capability
func NewUpdateMenu(sceneChanger SceneChanger, createDuelScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		menu := GetOrCreateMenu(e)
		input := getOrCreateInput(e)

		numOptions := len(mainMenuOptions)
		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			PlaySFX(e, cfg.SoundMenuNavigate)
			menu.SelectedIndex = (menu.SelectedIndex - 1 + numOptions) % numOptions
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			PlaySFX(e, cfg.SoundMenuNavigate)
			menu.SelectedIndex = (menu.SelectedIndex + 1) % numOptions
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			switch mainMenuOptions[menu.SelectedIndex] {
			case components.MainMenuDuel:
				PlaySFX(e, cfg.SoundMenuSelect)
				sceneChanger.ChangeScene(createDuelScene())
			case components.MainMenuExit:
				os.Exit(0)
			}
		}

		if GetAction(input, cfg.ActionMenuBack).JustPressed {
			os.Exit(0)
		}
	}
}

// DrawMenu renders the title screen
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateMenu(e)

	width := float32(screen.Bounds().Dx())
	height := screen.Bounds().Dy()

	vector.FillRect(screen, 0, 0, width, float32(height), cfg.Menu.BackgroundColor, false)

	drawCentered(screen, cfg.Menu.Title, fonts.Title.Get(), int(cfg.Menu.TitleY), cfg.Menu.TitleColor)
	drawCentered(screen, cfg.Menu.Subtitle, fonts.Regular.Get(), int(cfg.Menu.TitleY)+28, cfg.Menu.TextColorNormal)

	menuFont := fonts.Bold.Get()
	for i, option := range mainMenuOptions {
		y := cfg.Menu.MenuStartY + float64(i)*(cfg.Menu.MenuItemHeight+cfg.Menu.MenuItemGap)

		textColor := cfg.Menu.TextColorNormal
		if i == menu.SelectedIndex {
			textColor = cfg.Menu.TextColorSelected
		}

		drawCentered(screen, getOptionLabel(option), menuFont, int(y+cfg.Menu.MenuItemHeight), textColor)
	}

	input := getOrCreateInput(e)
	drawCentered(screen, getMenuHint(input.LastInputMethod), fonts.Small.Get(), height-12, cfg.Menu.TextColorNormal)
}

// getMenuHint returns the appropriate hint for menu navigation
func getMenuHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "D-Pad: Navigate   Cross: Select"
	case components.InputXbox:
		return "D-Pad: Navigate   A: Select"
	}
	return "Arrows: Navigate   Enter: Select   Space: Strike"
}

// getOptionLabel returns the display text for a menu option
func getOptionLabel(option components.MainMenuOption) string {
	switch option {
	case components.MainMenuDuel:
		return "Duel"
	case components.MainMenuExit:
		return "Exit"
	default:
		return ""
	}
}

// GetOrCreateMenu returns the singleton Menu component, creating if needed
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	if _, ok := components.Menu.First(e.World); !ok {
		e.World.Entry(e.World.Create(components.Menu))
	}

	ent, _ := components.Menu.First(e.World)
	return components.Menu.Get(ent)
}
