package systems

import (
	"log"
	"sort"

	"github.com/automoto/laundry-squadron/components"
	cfg "github.com/automoto/laundry-squadron/config"
	"github.com/automoto/laundry-squadron/physics"
	"github.com/automoto/laundry-squadron/shared/gamemath"
	"github.com/automoto/laundry-squadron/systems/factory"
	"github.com/automoto/laundry-squadron/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reused between ticks
var (
	liveProjectiles []*donburi.Entry
	pairProjectiles []*physics.Projectile
)

// UpdateSpawner launches projectiles at the cloth on a noise-driven cadence
// while the round is being played.
func UpdateSpawner(e *ecs.ECS) {
	roundEntry, ok := components.Round.First(e.World)
	if !ok {
		return
	}
	round := components.Round.Get(roundEntry)
	if round.State != cfg.RoundPlaying {
		return
	}
	spawnerEntry, ok := tags.Spawner.First(e.World)
	if !ok {
		return
	}
	spawner := components.Spawner.Get(spawnerEntry)

	spawner.SinceSpawn += tickSeconds()
	if spawner.SinceSpawn < spawner.Interval {
		return
	}
	spawner.SinceSpawn = 0
	noise := gamemath.ValueNoise1D(float32(round.Clock*cfg.Projectile.NoiseFrequency), spawner.NoiseSeed)
	spawner.Interval = float64(noise) * cfg.Projectile.MaxSpawnInterval

	p := cfg.Projectile
	velocity := physics.Vec3{
		(spawner.Rng.Float64()*2 - 1) * p.SpreadX,
		-p.Speed,
		(spawner.Rng.Float64()*2 - 1) * p.SpreadZ,
	}
	if _, err := factory.CreateProjectile(e, spawner.NextID, spawner.Origin, velocity, round.Clock); err != nil {
		log.Printf("Warning: could not spawn projectile: %v", err)
		return
	}
	spawner.NextID++
	spawner.Spawned++
	if every := cfg.Forces.GustEvery; every > 0 && spawner.Spawned%every == 0 {
		spawner.GustsEarned++
	}
}

// UpdateProjectiles advances every projectile, bounces colliding pairs, tears
// cloth particles they pass through and removes the spent ones.
func UpdateProjectiles(e *ecs.ECS) {
	dt := tickSeconds()

	liveProjectiles = liveProjectiles[:0]
	tags.Projectile.Each(e.World, func(entry *donburi.Entry) {
		liveProjectiles = append(liveProjectiles, entry)
	})
	// Query order is not stable; pairs resolve in spawn order
	sort.Slice(liveProjectiles, func(i, j int) bool {
		return components.Projectile.Get(liveProjectiles[i]).ID < components.Projectile.Get(liveProjectiles[j]).ID
	})

	pairProjectiles = pairProjectiles[:0]
	for _, entry := range liveProjectiles {
		p := components.Projectile.Get(entry)
		p.Update(dt)
		pairProjectiles = append(pairProjectiles, p.Projectile)
	}
	physics.ResolvePairs(pairProjectiles, cfg.Projectile.Restitution, dt, NewSoundSink(e), cfg.SoundBounce)

	strikeCloth(e)

	now := 0.0
	if roundEntry, ok := components.Round.First(e.World); ok {
		now = components.Round.Get(roundEntry).Clock
	}
	for _, entry := range liveProjectiles {
		if components.Projectile.Get(entry).Expired(now, cfg.Projectile.MaxLifetime) {
			entry.Remove()
		}
	}
}

func strikeCloth(e *ecs.ECS) {
	clothEntry, ok := tags.Cloth.First(e.World)
	if !ok {
		return
	}
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	cloth := components.Cloth.Get(clothEntry).Cloth
	grid := components.Space.Get(spaceEntry).Grid
	probe := cfg.Projectile.ProbeRadius

	var hits int
	for _, entry := range liveProjectiles {
		p := components.Projectile.Get(entry)
		from, to := p.PreviousPosition(), p.Position()
		mid := from.Add(to).Mul(0.5)
		reach := p.Radius + probe + physics.Distance(from, to)/2

		grid.Candidates(mid, reach, func(index int) {
			particle, ok := cloth.ParticleAt(index)
			if !ok || particle.IsExpired() {
				return
			}
			if p.Strikes(particle, probe) {
				particle.SetExpired(true)
				hits++
			}
		})
	}
	if hits == 0 {
		return
	}

	spawnerEntry, ok := tags.Spawner.First(e.World)
	if ok {
		rng := components.Spawner.Get(spawnerEntry).Rng
		PlaySFX(e, cfg.HurtSounds[rng.IntN(len(cfg.HurtSounds))])
	}
	TriggerFlash(components.Flash.Get(clothEntry))
	TriggerScreenShake(e, 3, 10)
}

// ClearProjectiles removes every projectile, used when the round restarts
func ClearProjectiles(e *ecs.ECS) {
	var all []*donburi.Entry
	tags.Projectile.Each(e.World, func(entry *donburi.Entry) {
		all = append(all, entry)
	})
	for _, entry := range all {
		entry.Remove()
	}
}
