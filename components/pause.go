package components

import "github.com/yohamta/donburi"

// PauseMenuOption represents menu items in the pause menu
type PauseMenuOption int

const (
	MenuResume PauseMenuOption = iota
	MenuSound
	MenuFullscreen
	MenuQuit
	pauseMenuCount
)

// PauseMenuOptionCount is the number of selectable pause menu rows
const PauseMenuOptionCount = int(pauseMenuCount)

// PauseData stores the pause state and menu selection
type PauseData struct {
	IsPaused       bool
	SelectedOption PauseMenuOption
	QuitRequested  bool // scene returns to the menu on its next update
}

var Pause = donburi.NewComponentType[PauseData]()
