package components

import (
	"math/rand/v2"

	"github.com/automoto/laundry-squadron/physics"
	"github.com/yohamta/donburi"
)

// SpawnerData drives projectile spawning and the gust allowance it earns
type SpawnerData struct {
	Origin     physics.Vec3
	Rng        *rand.Rand
	NoiseSeed  int32
	SinceSpawn float64 // seconds since the last projectile
	Interval   float64 // seconds until the next one is due
	Spawned    int
	NextID     int

	GustsEarned  int     // gusts available, one per GustEvery projectiles
	GustCooldown float64 // seconds until another gust may fire
}

var Spawner = donburi.NewComponentType[SpawnerData]()
