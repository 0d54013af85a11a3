package gamemath

import (
	"github.com/chewxy/math32"

	"github.com/automoto/laundry-squadron/physics"
)

// Camera3D is a Z-up perspective camera. Yaw rotates about Z starting at +X,
// pitch tilts toward +Z. Angles are in degrees.
type Camera3D struct {
	Position physics.Vec3
	Yaw      float64
	Pitch    float64
	Fov      float64 // vertical, degrees
	Near     float64
	MaxPitch float64
}

// NewCamera3D returns a camera with a sensible near plane and pitch limit.
func NewCamera3D(position physics.Vec3, yaw, pitch, fov float64) *Camera3D {
	return &Camera3D{
		Position: position,
		Yaw:      yaw,
		Pitch:    pitch,
		Fov:      fov,
		Near:     0.1,
		MaxPitch: 89.9,
	}
}

type basis struct {
	forward, left, up [3]float32
}

func (c *Camera3D) basis() basis {
	yaw := float32(c.Yaw) * math32.Pi / 180
	pitch := float32(c.Pitch) * math32.Pi / 180
	cy, sy := math32.Cos(yaw), math32.Sin(yaw)
	cp, sp := math32.Cos(pitch), math32.Sin(pitch)

	b := basis{
		forward: [3]float32{cp * cy, cp * sy, sp},
		left:    [3]float32{-sy, cy, 0},
	}
	b.up = cross(b.forward, b.left)
	return b
}

// Forward is the unit view direction.
func (c *Camera3D) Forward() physics.Vec3 {
	return widen(c.basis().forward)
}

// Left is the camera's left axis, which always lies in the XY plane.
func (c *Camera3D) Left() physics.Vec3 {
	return widen(c.basis().left)
}

// PlanarForward is the view direction flattened onto the XY plane.
func (c *Camera3D) PlanarForward() physics.Vec3 {
	yaw := float32(c.Yaw) * math32.Pi / 180
	return physics.Vec3{float64(math32.Cos(yaw)), float64(math32.Sin(yaw)), 0}
}

// Rotate turns the camera, keeping pitch within ±MaxPitch and yaw in [0, 360).
func (c *Camera3D) Rotate(dYaw, dPitch float64) {
	c.Yaw = float64(math32.Mod(float32(c.Yaw+dYaw), 360))
	if c.Yaw < 0 {
		c.Yaw += 360
	}
	c.Pitch = Clamp(c.Pitch+dPitch, -c.MaxPitch, c.MaxPitch)
}

// Translate moves the camera by offset.
func (c *Camera3D) Translate(offset physics.Vec3) {
	c.Position = c.Position.Add(offset)
}

// Projection holds the per-frame constants for mapping world points onto a
// screen of the given size.
type Projection struct {
	cam           basis
	eye           [3]float32
	focal         float32
	aspect        float32
	near          float32
	width, height float32
}

// Projection prepares a projection for a screen of w by h pixels.
func (c *Camera3D) Projection(w, h int) Projection {
	fov := float32(c.Fov) * math32.Pi / 180
	return Projection{
		cam:    c.basis(),
		eye:    narrow(c.Position),
		focal:  1 / math32.Tan(fov/2),
		aspect: float32(w) / float32(h),
		near:   float32(c.Near),
		width:  float32(w),
		height: float32(h),
	}
}

// Project maps a world point to screen pixels. ok is false for points behind
// the near plane. depth is the distance along the view direction.
func (p Projection) Project(point physics.Vec3) (x, y, depth float32, ok bool) {
	rel := sub(narrow(point), p.eye)
	depth = dot(rel, p.cam.forward)
	if depth < p.near {
		return 0, 0, depth, false
	}
	// Screen right is the negated left axis.
	cx := -dot(rel, p.cam.left)
	cy := dot(rel, p.cam.up)

	ndcX := p.focal * cx / depth / p.aspect
	ndcY := p.focal * cy / depth
	x = (ndcX + 1) * p.width / 2
	y = (1 - ndcY) * p.height / 2
	return x, y, depth, true
}

// ScreenRadius is the on-screen size in pixels of a world radius at depth.
func (p Projection) ScreenRadius(radius float64, depth float32) float32 {
	if depth <= 0 {
		return 0
	}
	return float32(radius) * p.focal * (p.height / 2) / depth
}

func narrow(v physics.Vec3) [3]float32 {
	return [3]float32{float32(v[0]), float32(v[1]), float32(v[2])}
}

func widen(v [3]float32) physics.Vec3 {
	return physics.Vec3{float64(v[0]), float64(v[1]), float64(v[2])}
}

func sub(a, b [3]float32) [3]float32 {
	return [3]float32{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func dot(a, b [3]float32) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func cross(a, b [3]float32) [3]float32 {
	return [3]float32{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}
