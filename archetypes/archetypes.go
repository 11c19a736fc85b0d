package archetypes

import (
	"github.com/automoto/quickdraw/components"
	cfg "github.com/automoto/quickdraw/config"
	"github.com/automoto/quickdraw/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Character,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Character,
	)
	Indicator = newArchetype(
		tags.Indicator,
		components.Indicator,
	)
	Round = newArchetype(
		components.Round,
	)
	Stage = newArchetype(
		components.Stage,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
