package systems

import (
	"github.com/automoto/laundry-squadron/components"
	cfg "github.com/automoto/laundry-squadron/config"
	"github.com/automoto/laundry-squadron/physics"
	"github.com/automoto/laundry-squadron/shared/gamemath"
	"github.com/automoto/laundry-squadron/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// tickSeconds is the fixed simulation step.
func tickSeconds() float64 {
	return 1 / float64(ebiten.TPS())
}

// UpdateCloth steers the cloth, fires gusts, steps the solver and mirrors the
// live particles into the broadphase grid.
func UpdateCloth(e *ecs.ECS) {
	entry, ok := tags.Cloth.First(e.World)
	if !ok {
		return
	}
	data := components.Cloth.Get(entry)
	cloth := data.Cloth
	dt := tickSeconds()

	input := getOrCreateInput(e)
	for kind, action := range []cfg.ActionID{cfg.ActionToggleStructural, cfg.ActionToggleShear, cfg.ActionToggleBend} {
		if GetAction(input, action).JustPressed {
			data.ShowKinds[kind] = !data.ShowKinds[kind]
		}
	}

	if round, ok := components.Round.First(e.World); ok && components.Round.Get(round).State == cfg.RoundPlaying {
		if camera, ok := components.Camera.First(e.World); ok && !components.Camera.Get(camera).Fly {
			steerCloth(data, components.Camera.Get(camera), input, dt)
			updateGust(e, cloth, input, dt)
		}
	}

	cloth.Update(dt)
	syncBroadphase(e, cloth)
}

func steerCloth(data *components.ClothData, camera *components.CameraData, input *components.InputData, dt float64) {
	var dir float64
	if GetAction(input, cfg.ActionMoveLeft).Pressed {
		dir++
	}
	if GetAction(input, cfg.ActionMoveRight).Pressed {
		dir--
	}
	if dir == 0 {
		return
	}
	speed := cfg.Cloth.MoveSpeed
	if GetAction(input, cfg.ActionFast).Pressed {
		speed *= cfg.Cloth.FastMultiplier
	}

	topLeft, ok := data.Cloth.CurrentTopLeft()
	if !ok {
		return
	}
	offset := camera.Left().Mul(dir * speed * dt)
	targetX := gamemath.ClampAround(topLeft.X()+offset.X(), data.Origin.X(), cfg.Cloth.MaxDriftX)
	offset[0] = targetX - topLeft.X()
	data.Cloth.MoveByOffset(offset)
}

// updateGust replaces the cloth's non-gravity forces with a random wind when
// the player has earned one and the cooldown has passed
func updateGust(e *ecs.ECS, cloth *physics.Cloth, input *components.InputData, dt float64) {
	spawnerEntry, ok := tags.Spawner.First(e.World)
	if !ok {
		return
	}
	spawner := components.Spawner.Get(spawnerEntry)
	spawner.GustCooldown = gamemath.Approach(spawner.GustCooldown, 0, dt)

	if !GetAction(input, cfg.ActionGust).JustPressed {
		return
	}
	if spawner.GustsEarned <= 0 || spawner.GustCooldown > 0 {
		return
	}

	theta := 60 + spawner.Rng.Float64()*60
	phi := spawner.Rng.Float64() * 360
	gust := physics.NewConstantWindForce(cfg.Forces.GustMagnitude, physics.FromSpherical(1, theta, phi), cfg.Forces.GustDampedness)

	cloth.ResetForces(cfg.Forces.KeepGravity)
	cloth.AddForce(gust)
	spawner.GustsEarned--
	spawner.GustCooldown = cfg.Forces.GustCooldown
	PlaySFX(e, cfg.SoundGust)
}

func syncBroadphase(e *ecs.ECS, cloth *physics.Cloth) {
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	grid := components.Space.Get(spaceEntry).Grid
	grid.Clear()
	cloth.LiveParticles(func(index int, p *physics.Particle) {
		if pos, ok := p.Position(); ok {
			grid.Set(index, pos, p.Radius)
		}
	})
}
