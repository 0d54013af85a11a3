package factory

import (
	"github.com/automoto/laundry-squadron/archetypes"
	"github.com/automoto/laundry-squadron/components"
	cfg "github.com/automoto/laundry-squadron/config"
	"github.com/automoto/laundry-squadron/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateProjectile(ecs *ecs.ECS, id int, position, velocity physics.Vec3, birth float64) (*donburi.Entry, error) {
	p, err := physics.NewProjectile(cfg.Projectile.Mass, cfg.Projectile.Radius, position, velocity, birth)
	if err != nil {
		return nil, err
	}
	entry := archetypes.Projectile.Spawn(ecs)
	components.Projectile.Set(entry, &components.ProjectileData{Projectile: p, ID: id})
	return entry, nil
}
