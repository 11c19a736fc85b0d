package assets

import (
	"embed"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

var (
	// VignetteShader darkens the arena edges
	VignetteShader *ebiten.Shader
)

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	src, err := shaderFS.ReadFile("shaders/vignette.kage")
	if err != nil {
		return fmt.Errorf("failed to read vignette shader: %w", err)
	}
	VignetteShader, err = ebiten.NewShader(src)
	if err != nil {
		return fmt.Errorf("failed to compile vignette shader: %w", err)
	}
	return nil
}
