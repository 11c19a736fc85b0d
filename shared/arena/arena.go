// Package arena loads duel arena layouts authored in Tiled.
package arena

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
)

//go:embed maps
var mapFS embed.FS

// DefaultMap is the arena used when none is configured.
const DefaultMap = "maps/dojo.tmx"

var ErrMissingObject = errors.New("arena: required object missing")

// Spawn is where a duelist stands and which way they face (1 right, -1 left).
type Spawn struct {
	X, Y   float64
	Facing float64
}

// Arena is the parsed layout of a duel stage.
type Arena struct {
	Name       string
	Width      int
	Height     int
	Player     Spawn
	Enemy      Spawn
	IndicatorX float64
	IndicatorY float64
	GroundY    float64
}

// LoadDefault loads the embedded dojo arena.
func LoadDefault() (Arena, error) {
	return Load(mapFS, DefaultMap)
}

// Load parses the Tiled map at path in fsys. The map needs a "Duelists"
// object group with "player" and "enemy" points, and a "Markers" group with
// an "indicator" point and a "ground" rectangle.
func Load(fsys fs.FS, path string) (Arena, error) {
	m, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return Arena{}, fmt.Errorf("failed to load arena %s: %w", path, err)
	}

	a := Arena{
		Name:   path,
		Width:  m.Width * m.TileWidth,
		Height: m.Height * m.TileHeight,
	}

	found := map[string]bool{}
	for _, og := range m.ObjectGroups {
		switch og.Name {
		case "Duelists":
			for _, o := range og.Objects {
				facing := float64(o.Properties.GetInt("facing"))
				if facing == 0 {
					facing = 1
				}
				spawn := Spawn{X: o.X, Y: o.Y, Facing: facing}
				switch o.Name {
				case "player":
					a.Player = spawn
					found["player"] = true
				case "enemy":
					a.Enemy = spawn
					found["enemy"] = true
				}
			}
		case "Markers":
			for _, o := range og.Objects {
				switch o.Name {
				case "indicator":
					a.IndicatorX, a.IndicatorY = o.X, o.Y
					found["indicator"] = true
				case "ground":
					a.GroundY = o.Y
					found["ground"] = true
				}
			}
		}
	}

	var errs []error
	for _, name := range []string{"player", "enemy", "indicator", "ground"} {
		if !found[name] {
			errs = append(errs, fmt.Errorf("%w: %s", ErrMissingObject, name))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return Arena{}, fmt.Errorf("arena %s: %w", path, err)
	}
	return a, nil
}
