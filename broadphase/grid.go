// Package broadphase narrows projectile-versus-cloth tests to the particles
// sharing grid cells with a query, using a resolv space laid on the world XZ
// plane.
package broadphase

import (
	"github.com/solarlune/resolv"

	"github.com/automoto/laundry-squadron/physics"
)

const (
	TagParticle = "particle"
	tagProbe    = "probe"
)

// Grid maps world X to space X and world Z to space Y. Z grows upward in the
// world, so rows are flipped relative to screen space; only cell sharing
// matters here.
type Grid struct {
	space            *resolv.Space
	cellSize         float64
	originX, originZ float64
	probe            *resolv.Object
	objects          map[int]*resolv.Object
}

// New builds a grid of width by height world units centered on center.
func New(width, height, cellSize int, center physics.Vec3) *Grid {
	g := &Grid{
		space:    resolv.NewSpace(width, height, cellSize, cellSize),
		cellSize: float64(cellSize),
		originX:  center.X() - float64(width)/2,
		originZ:  center.Z() - float64(height)/2,
		objects:  make(map[int]*resolv.Object),
	}
	g.probe = resolv.NewObject(0, 0, 0, 0, tagProbe)
	g.space.Add(g.probe)
	return g
}

// bounds returns the space box for a point. resolv treats the far edge as
// inclusive pixel coordinates (x+w-1), so one unit is added to keep tiny
// radii spanning the cells they actually touch.
func (g *Grid) bounds(pos physics.Vec3, radius float64) (x, y, size float64) {
	size = 2*radius + 1
	return pos.X() - g.originX - radius, pos.Z() - g.originZ - radius, size
}

// Set inserts or moves the point with the given id.
func (g *Grid) Set(id int, pos physics.Vec3, radius float64) {
	x, y, size := g.bounds(pos, radius)
	if obj, ok := g.objects[id]; ok {
		obj.X, obj.Y = x, y
		obj.Update()
		return
	}
	obj := resolv.NewObject(x, y, size, size, TagParticle)
	obj.Data = id
	g.space.Add(obj)
	g.objects[id] = obj
}

// Remove drops the point with the given id. Unknown ids are ignored.
func (g *Grid) Remove(id int) {
	obj, ok := g.objects[id]
	if !ok {
		return
	}
	g.space.Remove(obj)
	delete(g.objects, id)
}

// Clear drops every point.
func (g *Grid) Clear() {
	for id := range g.objects {
		g.Remove(id)
	}
}

func (g *Grid) Len() int {
	return len(g.objects)
}

// Candidates calls fn with the id of every point whose cells overlap the box
// of the given radius around pos.
func (g *Grid) Candidates(pos physics.Vec3, radius float64, fn func(id int)) {
	x, y, size := g.bounds(pos, radius)
	g.probe.X, g.probe.Y = x, y
	g.probe.W, g.probe.H = size, size
	g.probe.Update()

	check := g.probe.Check(0, 0, TagParticle)
	if check == nil {
		return
	}
	for _, obj := range check.ObjectsByTags(TagParticle) {
		if id, ok := obj.Data.(int); ok {
			fn(id)
		}
	}
}

// OccupiedCells calls fn with the world-space rectangle (x, z, size) of
// every cell holding at least one point.
func (g *Grid) OccupiedCells(fn func(x, z, size float64)) {
	for cy := 0; cy < g.space.Height(); cy++ {
		for cx := 0; cx < g.space.Width(); cx++ {
			cell := g.space.Cell(cx, cy)
			if cell == nil || !holdsParticle(cell) {
				continue
			}
			fn(float64(cx)*g.cellSize+g.originX, float64(cy)*g.cellSize+g.originZ, g.cellSize)
		}
	}
}

func holdsParticle(cell *resolv.Cell) bool {
	for _, obj := range cell.Objects {
		if obj.HasTags(TagParticle) {
			return true
		}
	}
	return false
}
