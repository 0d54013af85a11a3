package factory

import (
	"math/rand/v2"

	"github.com/automoto/laundry-squadron/archetypes"
	"github.com/automoto/laundry-squadron/components"
	"github.com/automoto/laundry-squadron/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpawner(ecs *ecs.ECS, origin physics.Vec3, seed uint64) *donburi.Entry {
	entry := archetypes.Spawner.Spawn(ecs)
	components.Spawner.Set(entry, &components.SpawnerData{
		Origin:    origin,
		Rng:       rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		NoiseSeed: int32(seed),
	})
	return entry
}
