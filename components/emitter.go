package components

import (
	"github.com/automoto/laundry-squadron/physics"
	"github.com/yohamta/donburi"
)

type EmitterData struct {
	System *physics.ParticleSystem
	Kind   string
}

var Emitter = donburi.NewComponentType[EmitterData]()
