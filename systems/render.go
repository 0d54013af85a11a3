package systems

import (
	"image/color"
	"sort"

	"github.com/automoto/laundry-squadron/components"
	cfg "github.com/automoto/laundry-squadron/config"
	"github.com/automoto/laundry-squadron/physics"
	"github.com/automoto/laundry-squadron/shared/gamemath"
	"github.com/automoto/laundry-squadron/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// marker is a projected point waiting to be drawn back to front
type marker struct {
	x, y, r float32
	depth   float32
	shape   physics.Shape
	tint    color.RGBA
}

// markerSink projects simulated points through the camera and queues them
type markerSink struct {
	proj     gamemath.Projection
	offX     float32
	offY     float32
	minPx    float32
	override *color.RGBA
	markers  []marker
}

func (s *markerSink) DrawMarker(position physics.Vec3, radius float64, shape physics.Shape, tint color.RGBA) {
	x, y, depth, ok := s.proj.Project(position)
	if !ok {
		return
	}
	r := s.proj.ScreenRadius(radius, depth)
	if r < s.minPx {
		r = s.minPx
	}
	if s.override != nil {
		tint = *s.override
	}
	s.markers = append(s.markers, marker{x: x + s.offX, y: y + s.offY, r: r, depth: depth, shape: shape, tint: tint})
}

func (s *markerSink) flush(screen *ebiten.Image) {
	sort.Slice(s.markers, func(i, j int) bool { return s.markers[i].depth > s.markers[j].depth })
	for _, m := range s.markers {
		switch m.shape {
		case physics.ShapeBox:
			vector.FillRect(screen, m.x-m.r, m.y-m.r, 2*m.r, 2*m.r, m.tint, false)
		default:
			vector.FillCircle(screen, m.x, m.y, m.r, m.tint, true)
		}
	}
	s.markers = s.markers[:0]
}

var sink = &markerSink{}

// DrawWorld renders the floor, the cloth with its constraints, projectiles and
// emitter particles through the 3D camera.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.HUD.BackgroundColor)

	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	shakeX, shakeY := ShakeOffset(e)

	sink.proj = camera.Projection(width, height)
	sink.offX, sink.offY = float32(shakeX), float32(shakeY)
	sink.minPx = float32(cfg.HUD.MinMarkerPixels)
	sink.override = nil

	drawFloor(screen, sink)

	if clothEntry, ok := tags.Cloth.First(e.World); ok {
		data := components.Cloth.Get(clothEntry)
		flash := components.Flash.Get(clothEntry).Amount
		drawConstraints(screen, data, flash)

		tint := blend(cfg.Cloth.MarkerTint, cfg.Red, flash)
		sink.override = &tint
		data.Cloth.Render(sink)
		sink.override = nil
	}

	tags.Projectile.Each(e.World, func(entry *donburi.Entry) {
		p := components.Projectile.Get(entry)
		sink.DrawMarker(p.Position(), p.Radius, physics.ShapeSphere, cfg.Projectile.Tint)
	})

	components.Emitter.Each(e.World, func(entry *donburi.Entry) {
		components.Emitter.Get(entry).System.Render(sink)
	})

	sink.flush(screen)
}

func drawConstraints(screen *ebiten.Image, data *components.ClothData, flash float64) {
	data.Cloth.EachConstraintSegment(func(kind physics.ConstraintKind, a, b physics.Vec3) {
		if !data.ShowKinds[kind] {
			return
		}
		ax, ay, _, okA := sink.proj.Project(a)
		bx, by, _, okB := sink.proj.Project(b)
		if !okA || !okB {
			return
		}
		c := blend(cfg.Cloth.ConstraintColors[kind], cfg.Red, flash)
		vector.StrokeLine(screen, ax+sink.offX, ay+sink.offY, bx+sink.offX, by+sink.offY, 1, c, true)
	})
}

// drawFloor draws a grid below the cloth's starting height. Segments that
// cross the near plane are skipped, not clipped.
func drawFloor(screen *ebiten.Image, s *markerSink) {
	const (
		half  = 60.0
		step  = 10.0
		below = 20.0
	)
	center := cfg.Cloth.DefaultOrigin
	z := center.Z() - below
	nearY, farY := center.Y()-10, center.Y()+2*half
	for d := -half; d <= half; d += step {
		drawSegment(screen, s,
			physics.Vec3{center.X() + d, nearY, z},
			physics.Vec3{center.X() + d, farY, z})
	}
	for y := nearY; y <= farY; y += step {
		drawSegment(screen, s,
			physics.Vec3{center.X() - half, y, z},
			physics.Vec3{center.X() + half, y, z})
	}
}

func drawSegment(screen *ebiten.Image, s *markerSink, a, b physics.Vec3) {
	ax, ay, _, okA := s.proj.Project(a)
	bx, by, _, okB := s.proj.Project(b)
	if !okA || !okB {
		return
	}
	vector.StrokeLine(screen, ax+s.offX, ay+s.offY, bx+s.offX, by+s.offY, 1, cfg.HUD.GroundColor, false)
}

func blend(from, to color.RGBA, t float64) color.RGBA {
	t = gamemath.Clamp(t, 0, 1)
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t)
	}
	return color.RGBA{R: mix(from.R, to.R), G: mix(from.G, to.G), B: mix(from.B, to.B), A: mix(from.A, to.A)}
}
