package archetypes

import (
	"github.com/automoto/laundry-squadron/components"
	cfg "github.com/automoto/laundry-squadron/config"
	"github.com/automoto/laundry-squadron/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Cloth = newArchetype(
		tags.Cloth,
		components.Cloth,
		components.Flash,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
	)
	Emitter = newArchetype(
		tags.Emitter,
		components.Emitter,
	)
	Spawner = newArchetype(
		tags.Spawner,
		components.Spawner,
	)
	Space = newArchetype(
		components.Space,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Round = newArchetype(
		components.Round,
	)
	Debug = newArchetype(
		components.Debug,
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
