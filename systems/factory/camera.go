package factory

import (
	"github.com/automoto/laundry-squadron/archetypes"
	"github.com/automoto/laundry-squadron/components"
	cfg "github.com/automoto/laundry-squadron/config"
	"github.com/automoto/laundry-squadron/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	c := cfg.Camera3D
	cam := gamemath.NewCamera3D(c.Position, c.YawDegrees, c.PitchDegrees, c.FovDegrees)
	cam.Near = c.Near
	cam.MaxPitch = c.MaxPitch
	components.Camera.Set(camera, &components.CameraData{Camera3D: cam})
	return camera
}
