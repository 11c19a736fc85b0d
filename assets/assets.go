package assets

import (
	"fmt"

	"github.com/automoto/quickdraw/shared/arena"
)

var loadedArena *arena.Arena

// MustLoadArena returns the duel arena, parsing the embedded map on first use.
func MustLoadArena() arena.Arena {
	if loadedArena != nil {
		return *loadedArena
	}

	a, err := arena.LoadDefault()
	if err != nil {
		panic(fmt.Sprintf("Failed to load arena: %v", err))
	}
	loadedArena = &a
	return a
}
