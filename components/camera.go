package components

import (
	"github.com/automoto/laundry-squadron/shared/gamemath"
	"github.com/yohamta/donburi"
)

type CameraData struct {
	*gamemath.Camera3D
	Fly bool // free look while the fly key is held
}

var Camera = donburi.NewComponentType[CameraData]()
