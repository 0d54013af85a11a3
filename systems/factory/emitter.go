package factory

import (
	"fmt"
	"math/rand/v2"

	"github.com/automoto/laundry-squadron/archetypes"
	"github.com/automoto/laundry-squadron/components"
	cfg "github.com/automoto/laundry-squadron/config"
	"github.com/automoto/laundry-squadron/physics"
	"github.com/automoto/laundry-squadron/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEmitter places a decorative particle system. The kind picks the
// force its particles carry.
func CreateEmitter(ecs *ecs.ECS, at leveldata.EmitterPlacement, rng *rand.Rand, sounds physics.SoundSink) (*donburi.Entry, error) {
	kind, ok := cfg.Emitters[at.Kind]
	if !ok {
		return nil, fmt.Errorf("unknown emitter kind %q", at.Kind)
	}
	system, err := physics.NewParticleSystem(kind.Template(at.Position), rng, sounds)
	if err != nil {
		return nil, fmt.Errorf("emitter %s: %w", at.Kind, err)
	}

	switch at.Kind {
	case cfg.EmitterSparks:
		debris := physics.NewDebrisForce(kind.ForceMagnitude, at.Ground)
		debris.BelowGroundScale = cfg.Forces.DebrisBelowGroundScale
		debris.FallingScale = cfg.Forces.DebrisFallingScale
		system.AddForce(debris)
	case cfg.EmitterVortex:
		system.AddForce(physics.NewWormholeForce(kind.ForceMagnitude, kind.Dampedness, at.Position))
	case cfg.EmitterSpring:
		system.AddForce(physics.NewSpringForce(kind.ForceMagnitude, kind.Stiffness, kind.Dampedness, at.Position))
	}

	entry := archetypes.Emitter.Spawn(ecs)
	components.Emitter.Set(entry, &components.EmitterData{System: system, Kind: at.Kind})
	return entry, nil
}
