package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// IndicatorData is the strike cue drawn above the duelists.
type IndicatorData struct {
	Visible bool
	X, Y    float64
	Scale   float32
	Tween   *gween.Tween // pop-in, nil once settled
}

var Indicator = donburi.NewComponentType[IndicatorData]()
