package factory

import (
	"fmt"

	"github.com/automoto/laundry-squadron/archetypes"
	"github.com/automoto/laundry-squadron/components"
	cfg "github.com/automoto/laundry-squadron/config"
	"github.com/automoto/laundry-squadron/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewCloth builds a cloth from the current configuration with its top-left
// particle at origin.
func NewCloth(origin physics.Vec3) (*physics.Cloth, error) {
	c := cfg.Cloth
	cloth, err := physics.NewCloth(physics.ClothConfig{
		Origin:         origin,
		Rows:           c.Rows,
		Cols:           c.Cols,
		ParticleMass:   c.ParticleMass,
		ParticleRadius: c.ParticleRadius,
		Shape:          physics.ShapeSphere,
		Iterations:     c.Iterations,
		BaseDistance:   c.BaseDistance,
		ShearRatio:     c.ShearRatio,
		BendRatio:      c.BendRatio,
		Stiffness:      c.Stiffness,
		Integrator:     physics.VelocityVerlet,
	})
	if err != nil {
		return nil, fmt.Errorf("build cloth: %w", err)
	}
	return cloth, nil
}

func CreateCloth(ecs *ecs.ECS, origin physics.Vec3) (*donburi.Entry, error) {
	cloth, err := NewCloth(origin)
	if err != nil {
		return nil, err
	}
	entry := archetypes.Cloth.Spawn(ecs)
	data := &components.ClothData{Cloth: cloth, Origin: origin}
	for kind, show := range cfg.Cloth.ShowConstraints {
		data.ShowKinds[kind] = show
	}
	components.Cloth.Set(entry, data)
	components.Flash.Set(entry, &components.FlashData{})
	return entry, nil
}
