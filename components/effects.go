package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ScreenShakeData tracks active screen shake effect on the camera
type ScreenShakeData struct {
	Intensity float64 // max offset in pixels
	Duration  int     // frames remaining
	Elapsed   int     // frames elapsed (for oscillation)

	// Pixel offset applied to the frame this tick
	OffsetX, OffsetY float64
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()

// FlashData tracks the cloth's hit flash. Tween runs from 1 to 0.
type FlashData struct {
	Tween  *gween.Tween
	Amount float64
}

var Flash = donburi.NewComponentType[FlashData]()
