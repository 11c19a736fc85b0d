package components

import (
	"image/color"

	"github.com/automoto/quickdraw/duel"
	"github.com/yohamta/donburi"
)

// CharacterData is a duelist's pose and where it stands.
type CharacterData struct {
	Pose   duel.Pose
	X, Y   float64 // feet position
	Facing float64 // 1 = right, -1 = left
	Color  color.RGBA
}

var Character = donburi.NewComponentType[CharacterData]()
