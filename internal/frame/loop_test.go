package frame

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/alexisbeaulieu97/popper/internal/logger"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func startLoop(t *testing.T, interval time.Duration) *Loop {
	t.Helper()

	l := NewLoop(interval, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- l.Run(ctx) }()

	t.Cleanup(func() {
		cancel()
		<-l.Done()
		err := <-errCh
		if err != nil {
			require.ErrorIs(t, err, context.Canceled)
		}
	})
	return l
}

func TestLoopCallRunsOnLoopGoroutine(t *testing.T) {
	t.Parallel()

	l := startLoop(t, 0)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	var order []string
	require.True(t, l.Post(func() { order = append(order, "post") }))
	require.NoError(t, l.Call(ctx, func() { order = append(order, "call") }))
	require.Equal(t, []string{"post", "call"}, order)
}

func TestLoopAwaitFramesFlushesOnDemandWithoutInterval(t *testing.T) {
	t.Parallel()

	l := startLoop(t, 0)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	runs := 0
	var tick func()
	tick = func() {
		runs++
		l.Schedule(tick)
	}
	require.NoError(t, l.Call(ctx, func() { l.Schedule(tick) }))

	require.NoError(t, l.AwaitFrames(ctx, 3))
	require.NoError(t, l.Call(ctx, func() {}))
	require.Equal(t, 3, runs)
	require.Equal(t, uint64(3), l.Frames())

	require.NoError(t, l.AwaitFrames(ctx, 0))
	require.Equal(t, uint64(3), l.Frames())
}

func TestLoopTicksFramesWithInterval(t *testing.T) {
	t.Parallel()

	l := startLoop(t, time.Millisecond)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	fired := make(chan struct{})
	l.Schedule(func() { close(fired) })
	require.NoError(t, l.AwaitFrames(ctx, 2))

	select {
	case <-fired:
	default:
		t.Fatal("scheduled callback did not run")
	}
	require.GreaterOrEqual(t, l.Frames(), uint64(2))
}

func TestLoopStop(t *testing.T) {
	t.Parallel()

	l := NewLoop(0, logger.Nop())
	errCh := make(chan error, 1)
	go func() { errCh <- l.Run(context.Background()) }()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, l.Call(ctx, func() {}))

	l.Stop()
	l.Stop()
	<-l.Done()
	require.NoError(t, <-errCh)

	require.False(t, l.Post(func() {}))
	require.ErrorIs(t, l.Call(ctx, func() {}), ErrStopped)
	require.ErrorIs(t, l.AwaitFrames(ctx, 1), ErrStopped)
}

func TestLoopRunTwice(t *testing.T) {
	t.Parallel()

	l := startLoop(t, 0)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, l.Call(ctx, func() {}))

	require.ErrorIs(t, l.Run(ctx), ErrRunning)
}

func TestLoopCallHonoursContext(t *testing.T) {
	t.Parallel()

	// Never started, so the call cannot complete.
	l := NewLoop(0, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, l.Call(ctx, func() {}), context.Canceled)
	require.ErrorIs(t, l.AwaitFrames(ctx, 1), context.Canceled)
}
