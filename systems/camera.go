package systems

import (
	"math"

	"github.com/automoto/laundry-squadron/components"
	"github.com/automoto/laundry-squadron/config"
	"github.com/automoto/laundry-squadron/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera flies the camera while the fly key is held and advances any
// screen shake.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	updateScreenShake(cameraEntry)

	input := getOrCreateInput(e)
	camera.Fly = GetAction(input, config.ActionFlyMode).Pressed
	if !camera.Fly {
		return
	}

	// Mouse delta and right stick steer; moving the mouse right turns right
	sens := config.Camera3D.MouseSensitivity
	dYaw := -float64(input.MouseDX) * sens
	dPitch := -float64(input.MouseDY) * sens
	dYaw -= input.LookX * sens * 20
	dPitch -= input.LookY * sens * 20
	camera.Rotate(dYaw, dPitch)

	dt := tickSeconds()
	step := config.Camera3D.FlySpeed * dt
	forward := camera.PlanarForward()
	left := camera.Left()

	var move physics.Vec3
	if GetAction(input, config.ActionFlyForward).Pressed {
		move = move.Add(forward)
	}
	if GetAction(input, config.ActionFlyBack).Pressed {
		move = move.Sub(forward)
	}
	if GetAction(input, config.ActionMoveLeft).Pressed {
		move = move.Add(left)
	}
	if GetAction(input, config.ActionMoveRight).Pressed {
		move = move.Sub(left)
	}
	if GetAction(input, config.ActionFlyUp).Pressed {
		move = move.Add(physics.Up)
	}
	if GetAction(input, config.ActionFlyDown).Pressed {
		move = move.Sub(physics.Up)
	}
	if move != physics.Zero {
		camera.Translate(physics.SafeNormalize(move).Mul(step))
	}
}

// updateScreenShake computes this frame's shake offset and removes the
// component once it runs out
func updateScreenShake(cameraEntry *donburi.Entry) {
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed++

	progress := float64(shake.Duration-shake.Elapsed) / float64(shake.Duration)
	if progress < 0 {
		progress = 0
	}
	currentIntensity := shake.Intensity * progress

	shake.OffsetX = math.Sin(float64(shake.Elapsed)*1.1) * currentIntensity
	shake.OffsetY = math.Cos(float64(shake.Elapsed)*1.3) * currentIntensity

	if shake.Elapsed >= shake.Duration {
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}

// ShakeOffset is the pixel offset the frame is drawn at.
func ShakeOffset(e *ecs.ECS) (float64, float64) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok || !cameraEntry.HasComponent(components.ScreenShake) {
		return 0, 0
	}
	shake := components.ScreenShake.Get(cameraEntry)
	return shake.OffsetX, shake.OffsetY
}

// TriggerScreenShake starts a screen shake effect
func TriggerScreenShake(ecs *ecs.ECS, intensity float64, duration int) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}

	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		// Only override if new shake is stronger
		if intensity > shake.Intensity {
			shake.Intensity = intensity
			shake.Duration = duration
			shake.Elapsed = 0
		}
	} else {
		cameraEntry.AddComponent(components.ScreenShake)
		components.ScreenShake.Set(cameraEntry, &components.ScreenShakeData{
			Intensity: intensity,
			Duration:  duration,
		})
	}
}
