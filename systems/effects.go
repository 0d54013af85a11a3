package systems

import (
	"github.com/automoto/laundry-squadron/components"
	"github.com/automoto/laundry-squadron/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects advances hit flashes
func UpdateEffects(ecs *ecs.ECS) {
	dt := float32(tickSeconds())
	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Tween == nil {
			return
		}
		amount, done := flash.Tween.Update(dt)
		flash.Amount = float64(amount)
		if done {
			flash.Tween = nil
			flash.Amount = 0
		}
	})
}

// TriggerFlash restarts a hit flash at full strength
func TriggerFlash(flash *components.FlashData) {
	flash.Tween = gween.New(1, 0, float32(config.Game.HitFlashSeconds), ease.OutQuad)
	flash.Amount = 1
}
