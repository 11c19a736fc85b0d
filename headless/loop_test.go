package headless

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoopStepsOnEachTick(t *testing.T) {
	clock := clockwork.NewFakeClock()
	var steps atomic.Int32
	loop := NewLoop(clock, 30, func() { steps.Add(1) })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- loop.Run(ctx) }()

	waitCtx, waitCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer waitCancel()
	require.NoError(t, clock.BlockUntilContext(waitCtx, 1))

	for i := int32(1); i <= 3; i++ {
		clock.Advance(loop.Interval())
		require.Eventually(t, func() bool { return steps.Load() == i }, 5*time.Second, time.Millisecond)
	}

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("loop did not stop")
	}
}

func TestLoopDefaultsTickRate(t *testing.T) {
	loop := NewLoop(clockwork.NewFakeClock(), 0, func() {})
	assert.Equal(t, time.Second/60, loop.Interval())
}
