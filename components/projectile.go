package components

import (
	"github.com/automoto/laundry-squadron/physics"
	"github.com/yohamta/donburi"
)

type ProjectileData struct {
	*physics.Projectile
	ID int
}

var Projectile = donburi.NewComponentType[ProjectileData]()
