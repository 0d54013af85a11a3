package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec3 is the vector type used throughout the simulation.
type Vec3 = mgl64.Vec3

// World axes. The world is Z-up with X pointing north.
var (
	Zero  = Vec3{0, 0, 0}
	UnitX = Vec3{1, 0, 0}
	UnitY = Vec3{0, 1, 0}
	Up    = Vec3{0, 0, 1}
)

// SafeNormalize returns the unit vector along v, or the zero vector when v has no length.
func SafeNormalize(v Vec3) Vec3 {
	l := v.Len()
	if l == 0 {
		return Zero
	}
	return v.Mul(1 / l)
}

// Distance returns |b - a|.
func Distance(a, b Vec3) float64 {
	return b.Sub(a).Len()
}

// IsFinite reports whether every component of v is a finite number.
func IsFinite(v Vec3) bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// FromSpherical converts a speed and two angles in degrees into a Cartesian
// vector. theta is measured down from world up, phi counter-clockwise from
// world north (+X) about the up axis.
func FromSpherical(speed, thetaDeg, phiDeg float64) Vec3 {
	theta := mgl64.DegToRad(thetaDeg)
	phi := mgl64.DegToRad(phiDeg)
	sinTheta := math.Sin(theta)
	return Vec3{
		speed * sinTheta * math.Cos(phi),
		speed * sinTheta * math.Sin(phi),
		speed * math.Cos(theta),
	}
}
