package tags

import "github.com/yohamta/donburi"

var (
	Cloth      = donburi.NewTag().SetName("Cloth")
	Projectile = donburi.NewTag().SetName("Projectile")
	Emitter    = donburi.NewTag().SetName("Emitter")
	Spawner    = donburi.NewTag().SetName("Spawner")
)
