package components

import (
	"github.com/automoto/laundry-squadron/broadphase"
	"github.com/yohamta/donburi"
)

// SpaceData holds the broadphase grid shared by projectiles and the cloth
type SpaceData struct {
	*broadphase.Grid
}

var Space = donburi.NewComponentType[SpaceData]()
