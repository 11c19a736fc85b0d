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

func CreatePlayer(ecs *ecs.ECS, at arena.Spawn) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)
	components.Character.SetValue(player, components.CharacterData{
		Pose:   duel.PoseStand,
		X:      at.X,
		Y:      at.Y,
		Facing: facingOr(at.Facing, cfg.DirectionRight),
		Color:  cfg.Character.PlayerColor,
	})
	return player
}

func CreateEnemy(ecs *ecs.ECS, at arena.Spawn) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)
	components.Character.SetValue(enemy, components.CharacterData{
		Pose:   duel.PoseStand,
		X:      at.X,
		Y:      at.Y,
		Facing: facingOr(at.Facing, cfg.DirectionLeft),
		Color:  cfg.Character.EnemyColor,
	})
	return enemy
}

// facingOr falls back to def when the map leaves facing unset.
func facingOr(f, def float64) float64 {
	if f == 0 {
		return def
	}
	return f
}
