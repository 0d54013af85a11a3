package assets

import (
	"embed"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

var (
	// DamageShader draws the red vignette that grows as the cloth tears
	DamageShader *ebiten.Shader
)

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	src, err := shaderFS.ReadFile("shaders/damage.kage")
	if err != nil {
		return err
	}
	DamageShader, err = ebiten.NewShader(src)
	if err != nil {
		return err
	}

	return nil
}
