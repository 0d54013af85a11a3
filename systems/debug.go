package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/laundry-squadron/components"
	cfg "github.com/automoto/laundry-squadron/config"
	"github.com/automoto/laundry-squadron/physics"
	"github.com/automoto/laundry-squadron/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var cellColor = color.RGBA{0, 255, 255, 160}

// UpdateDebug toggles the overlay
func UpdateDebug(e *ecs.ECS) {
	entry, ok := components.Debug.First(e.World)
	if !ok {
		return
	}
	if GetAction(getOrCreateInput(e), cfg.ActionToggleDebug).JustPressed {
		debug := components.Debug.Get(entry)
		debug.Overlay = !debug.Overlay
	}
}

func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Debug.First(e.World)
	if !ok || !components.Debug.Get(entry).Overlay {
		return
	}

	var particles, constraints, initial int
	var plane float64
	var state string
	if clothEntry, ok := tags.Cloth.First(e.World); ok {
		cloth := components.Cloth.Get(clothEntry).Cloth
		particles = cloth.LiveCount()
		constraints = cloth.ConstraintCount()
		initial = cloth.InitialConstraintCount()
		plane = cloth.OriginalTopLeft().Y()
		state = cloth.State().String()
	}
	var projectiles int
	tags.Projectile.Each(e.World, func(*donburi.Entry) { projectiles++ })
	var emitted int
	components.Emitter.Each(e.World, func(entry *donburi.Entry) {
		emitted += components.Emitter.Get(entry).System.Count()
	})

	lines := []string{
		fmt.Sprintf("FPS %.0f  TPS %.0f", ebiten.ActualFPS(), ebiten.ActualTPS()),
		fmt.Sprintf("cloth %s: %d particles, %d/%d constraints", state, particles, constraints, initial),
		fmt.Sprintf("projectiles %d  emitted %d", projectiles, emitted),
	}
	if cameraEntry, ok := components.Camera.First(e.World); ok {
		cam := components.Camera.Get(cameraEntry)
		lines = append(lines, fmt.Sprintf("camera %.1f %.1f %.1f yaw %.0f pitch %.0f",
			cam.Position.X(), cam.Position.Y(), cam.Position.Z(), cam.Yaw, cam.Pitch))
	}
	y := screen.Bounds().Dy() - len(lines)*16 - 4
	for i, l := range lines {
		ebitenutil.DebugPrintAt(screen, l, 4, y+i*16)
	}

	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	components.Space.Get(spaceEntry).OccupiedCells(func(x, z, size float64) {
		corners := [4]physics.Vec3{
			{x, plane, z},
			{x + size, plane, z},
			{x + size, plane, z + size},
			{x, plane, z + size},
		}
		for i := range corners {
			a, b := corners[i], corners[(i+1)%4]
			ax, ay, _, okA := sink.proj.Project(a)
			bx, by, _, okB := sink.proj.Project(b)
			if okA && okB {
				vector.StrokeLine(screen, ax, ay, bx, by, 1, cellColor, false)
			}
		}
	})
}
