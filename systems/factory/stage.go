package factory

import (
	"github.com/automoto/quickdraw/archetypes"
	"github.com/automoto/quickdraw/components"
	cfg "github.com/automoto/quickdraw/config"
	"github.com/automoto/quickdraw/duel"
	"github.com/automoto/quickdraw/shared/arena"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateStage(ecs *ecs.ECS, layout arena.Arena) *donburi.Entry {
	stage := archetypes.Stage.Spawn(ecs)
	components.Stage.SetValue(stage, components.StageData{Arena: layout})
	return stage
}

// CreateIndicator spawns the strike cue hidden at the arena's marker.
func CreateIndicator(ecs *ecs.ECS, layout arena.Arena) *donburi.Entry {
	indicator := archetypes.Indicator.Spawn(ecs)
	components.Indicator.SetValue(indicator, components.IndicatorData{
		X:     layout.IndicatorX,
		Y:     layout.IndicatorY,
		Scale: cfg.Indicator.Scale,
	})
	return indicator
}

func CreateRound(ecs *ecs.ECS, timer *duel.RoundTimer) *donburi.Entry {
	round := archetypes.Round.Spawn(ecs)
	components.Round.SetValue(round, components.RoundData{Timer: timer})
	return round
}
