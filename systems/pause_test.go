package systems

import (
	"testing"

	"github.com/automoto/quickdraw/components"
	cfg "github.com/automoto/quickdraw/config"
	"github.com/automoto/quickdraw/duel"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newDuelWorld builds a world with a started round and no observers.
func newDuelWorld(t *testing.T) (*ecs.ECS, *duel.RoundTimer) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())

	timer, err := duel.NewRoundTimer(duel.DefaultTiming(),
		&duel.PoseCharacter{}, &duel.PoseCharacter{},
		duel.WithLogger(zerolog.Nop()),
	)
	require.NoError(t, err)

	entry := e.World.Entry(e.World.Create(components.Round))
	components.Round.SetValue(entry, components.RoundData{Timer: timer})
	timer.StartRound()
	return e, timer
}

// holdActions advances the input buffers one frame with exactly the given
// actions held, as UpdateInput would after polling devices.
func holdActions(e *ecs.ECS, actions ...cfg.ActionID) {
	input := getOrCreateInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	for _, a := range actions {
		input.Current[a] = true
	}
	input.Primed = true
}

// runDuelFrame runs the pause and round systems in scene order.
func runDuelFrame(e *ecs.ECS) {
	UpdatePause(e)
	WithPauseCheck(UpdateRound)(e)
}

func TestResumeButtonDoesNotStrike(t *testing.T) {
	e, timer := newDuelWorld(t)
	pause := GetOrCreatePause(e)
	pause.IsPaused = true
	pause.SelectedOption = components.MenuResume

	// A / Cross is bound to both select and strike
	holdActions(e, cfg.ActionMenuSelect, cfg.ActionStrike)
	runDuelFrame(e)

	assert.False(t, pause.IsPaused)
	assert.Equal(t, duel.WaitingForStrikeWindow, timer.State())
	_, resolved := timer.Last()
	assert.False(t, resolved, "resuming must not count as a strike")

	// Still held on the next frame
	holdActions(e, cfg.ActionMenuSelect, cfg.ActionStrike)
	runDuelFrame(e)
	_, resolved = timer.Last()
	assert.False(t, resolved)

	// Released, then pressed again: a real strike
	holdActions(e)
	runDuelFrame(e)
	holdActions(e, cfg.ActionStrike)
	runDuelFrame(e)

	last, resolved := timer.Last()
	require.True(t, resolved)
	assert.True(t, last.Early)
}

func TestPauseToggleDoesNotLeakPresses(t *testing.T) {
	e, timer := newDuelWorld(t)

	holdActions(e, cfg.ActionPause)
	runDuelFrame(e)
	require.True(t, GetOrCreatePause(e).IsPaused)

	holdActions(e, cfg.ActionPause, cfg.ActionStrike)
	runDuelFrame(e)

	assert.True(t, GetOrCreatePause(e).IsPaused)
	_, resolved := timer.Last()
	assert.False(t, resolved)
}

func TestStrikeWhileUnpausedStillCounts(t *testing.T) {
	e, timer := newDuelWorld(t)

	holdActions(e, cfg.ActionStrike)
	runDuelFrame(e)

	last, resolved := timer.Last()
	require.True(t, resolved)
	assert.Equal(t, duel.PlayerLose, last.Outcome)
	assert.True(t, last.Early)
}

func TestButtonHeldIntoNewSceneIsNotAPress(t *testing.T) {
	e, timer := newDuelWorld(t)

	// First poll in a fresh world: the select/strike button is still down
	// from choosing Duel on the title screen.
	input := getOrCreateInput(e)
	input.Current[cfg.ActionMenuSelect] = true
	input.Current[cfg.ActionStrike] = true
	primeInput(input)

	assert.False(t, GetAction(input, cfg.ActionStrike).JustPressed)
	assert.True(t, GetAction(input, cfg.ActionStrike).Pressed)

	WithPauseCheck(UpdateRound)(e)
	_, resolved := timer.Last()
	assert.False(t, resolved)
	assert.Equal(t, duel.WaitingForStrikeWindow, timer.State())
}

func TestPrimeInputOnlyOnce(t *testing.T) {
	input := &components.InputData{}
	primeInput(input)
	require.True(t, input.Primed)

	input.Previous = input.Current
	input.Current[cfg.ActionStrike] = true
	primeInput(input)

	assert.True(t, GetAction(input, cfg.ActionStrike).JustPressed)
}
