package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning is the subset of configuration a YAML file may override. Sections
// that are absent from the file keep their current values.
type Tuning struct {
	Cloth      *ClothConfig         `yaml:"cloth"`
	Projectile *ProjectileConfig    `yaml:"projectile"`
	Forces     *ForcesConfig        `yaml:"forces"`
	Game       *GameConfig          `yaml:"game"`
	Camera     *Camera3DConfig      `yaml:"camera"`
	Broadphase *BroadphaseConfig    `yaml:"broadphase"`
	Emitters   map[string]yaml.Node `yaml:"emitters"`
}

// LoadTuning overlays the YAML file at path onto the package globals.
func LoadTuning(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read tuning %s: %w", path, err)
	}
	return ApplyTuning(data)
}

// ApplyTuning decodes data over copies of the current globals and only
// commits them when the whole document decodes.
func ApplyTuning(data []byte) error {
	cloth, projectile, forces := Cloth, Projectile, Forces
	game, camera, broad := Game, Camera3D, Broadphase
	emitters := make(map[string]EmitterKindConfig, len(Emitters))
	for k, v := range Emitters {
		emitters[k] = v
	}

	t := Tuning{
		Cloth:      &cloth,
		Projectile: &projectile,
		Forces:     &forces,
		Game:       &game,
		Camera:     &camera,
		Broadphase: &broad,
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return fmt.Errorf("decode tuning: %w", err)
	}
	// Emitter kinds are merged field by field so a partial entry keeps the
	// non-YAML fields (shape, tint) of the built-in kind.
	for kind, node := range t.Emitters {
		k := emitters[kind]
		if err := node.Decode(&k); err != nil {
			return fmt.Errorf("decode emitter %q: %w", kind, err)
		}
		emitters[kind] = k
	}

	Cloth, Projectile, Forces = cloth, projectile, forces
	Game, Camera3D, Broadphase = game, camera, broad
	Emitters = emitters
	return nil
}
