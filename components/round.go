package components

import (
	"github.com/automoto/quickdraw/duel"
	"github.com/yohamta/donburi"
)

// RoundData is the singleton holding the duel state machine and the
// session statistics shown on the HUD.
type RoundData struct {
	Timer *duel.RoundTimer
	Tally duel.Tally
}

var Round = donburi.NewComponentType[RoundData]()
