package systems

import (
	"github.com/automoto/laundry-squadron/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEmitters steps every decorative particle system.
func UpdateEmitters(e *ecs.ECS) {
	dt := tickSeconds()
	components.Emitter.Each(e.World, func(entry *donburi.Entry) {
		components.Emitter.Get(entry).System.UpdateParticles(dt)
	})
}
