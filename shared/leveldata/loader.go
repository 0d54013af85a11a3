// Package leveldata parses arena placements from TMX files.
// It has no dependencies on ebitengine or donburi; pure data only.
package leveldata

import (
	"fmt"
	"io/fs"
	"sort"

	"github.com/lafriks/go-tiled"

	"github.com/automoto/laundry-squadron/physics"
)

// ArenaGroup is the object group holding placements.
const ArenaGroup = "Arena"

// Object names recognized inside the arena group
const (
	ObjectCloth   = "cloth"
	ObjectSpawner = "spawner"
	ObjectEmitter = "emitter"
)

// defaultGroundDrop places an emitter's floor this far below it when the
// object has no ground property.
const defaultGroundDrop = 4.0

// ArenaData holds the world placements read from a level. The map's x,y map
// to world x,y; the "z" property supplies world z.
type ArenaData struct {
	Name       string
	ClothAt    physics.Vec3
	HasCloth   bool
	SpawnerAt  physics.Vec3
	HasSpawner bool
	Emitters   []EmitterPlacement
}

// EmitterPlacement is one decorative particle system.
type EmitterPlacement struct {
	Position physics.Vec3
	Kind     string
	Ground   float64
}

// LoadArena parses a TMX file. It takes an fs.FS so callers can pass
// embed.FS or os.DirFS.
func LoadArena(fsys fs.FS, tmxPath string) (*ArenaData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &ArenaData{Name: tmxPath}
	for _, og := range levelMap.ObjectGroups {
		if og.Name != ArenaGroup {
			continue
		}
		for _, o := range og.Objects {
			pos := physics.Vec3{o.X, o.Y, o.Properties.GetFloat("z")}
			switch o.Name {
			case ObjectCloth:
				data.ClothAt, data.HasCloth = pos, true
			case ObjectSpawner:
				data.SpawnerAt, data.HasSpawner = pos, true
			case ObjectEmitter:
				kind := o.Properties.GetString("kind")
				if kind == "" {
					return nil, fmt.Errorf("%s: emitter %d has no kind", tmxPath, o.ID)
				}
				ground := pos.Z() - defaultGroundDrop
				if len(o.Properties.Get("ground")) > 0 {
					ground = o.Properties.GetFloat("ground")
				}
				data.Emitters = append(data.Emitters, EmitterPlacement{
					Position: pos,
					Kind:     kind,
					Ground:   ground,
				})
			}
		}
	}

	// Left to right for stable ordering
	sort.SliceStable(data.Emitters, func(i, j int) bool {
		return data.Emitters[i].Position.X() < data.Emitters[j].Position.X()
	})

	return data, nil
}
