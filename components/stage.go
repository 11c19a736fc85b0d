package components

import (
	"github.com/automoto/quickdraw/shared/arena"
	"github.com/yohamta/donburi"
)

// StageData is the singleton holding the loaded arena layout. Screen
// effects attach to the stage entry.
type StageData struct {
	Arena arena.Arena
}

var Stage = donburi.NewComponentType[StageData]()
