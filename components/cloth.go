package components

import (
	"github.com/automoto/laundry-squadron/physics"
	"github.com/yohamta/donburi"
)

type ClothData struct {
	Cloth *physics.Cloth
	// Where the arena placed the cloth; movement is clamped around it and
	// resets rebuild it here
	Origin physics.Vec3
	// Constraint families drawn as lines
	ShowKinds [3]bool
}

var Cloth = donburi.NewComponentType[ClothData]()
