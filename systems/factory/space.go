package factory

import (
	"github.com/automoto/laundry-squadron/archetypes"
	"github.com/automoto/laundry-squadron/broadphase"
	"github.com/automoto/laundry-squadron/components"
	cfg "github.com/automoto/laundry-squadron/config"
	"github.com/automoto/laundry-squadron/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace lays the broadphase grid over the cloth's starting position.
func CreateSpace(ecs *ecs.ECS, center physics.Vec3) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	b := cfg.Broadphase
	grid := broadphase.New(b.Width, b.Height, b.CellSize, center)
	components.Space.Set(space, &components.SpaceData{Grid: grid})
	return space
}
