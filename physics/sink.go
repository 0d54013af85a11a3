package physics

import "image/color"

// Shape selects how a marker is drawn.
type Shape int

const (
	ShapeSphere Shape = iota
	ShapeBox
)

func (s Shape) String() string {
	switch s {
	case ShapeBox:
		return "box"
	default:
		return "sphere"
	}
}

// SoundID identifies a sound to be played by a SoundSink.
type SoundID int

// MarkerSink draws a simulated point. Implementations own all graphics state.
type MarkerSink interface {
	DrawMarker(position Vec3, radius float64, shape Shape, tint color.RGBA)
}

// SoundSink plays a sound by identifier.
type SoundSink interface {
	PlaySound(id SoundID)
}
