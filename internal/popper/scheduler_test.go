package popper

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSchedulerCoalescesRequestsWithinAFrame(t *testing.T) {
	t.Parallel()

	frames := &manualFrames{}
	runs := 0
	s := NewScheduler(frames, func() { runs++ })

	require.Equal(t, StateIdle, s.State())
	for i := 0; i < 5; i++ {
		s.RequestRecompute()
	}
	require.Equal(t, StatePending, s.State())
	require.Equal(t, 1, frames.scheduled)
	require.Zero(t, runs)

	frames.flush()
	require.Equal(t, 1, runs)
	require.Equal(t, StateIdle, s.State())

	s.RequestRecompute()
	s.RequestRecompute()
	frames.flush()
	require.Equal(t, 2, runs)
	require.Equal(t, 2, frames.scheduled)
}

func TestSchedulerCancelDropsPendingFrame(t *testing.T) {
	t.Parallel()

	frames := &manualFrames{}
	runs := 0
	s := NewScheduler(frames, func() { runs++ })

	s.RequestRecompute()
	s.Cancel()
	require.Equal(t, StateIdle, s.State())
	require.Zero(t, frames.len())

	frames.flush()
	require.Zero(t, runs)

	require.NotPanics(t, s.Cancel)
}

func TestSchedulerIgnoresFrameFiringAfterCancel(t *testing.T) {
	t.Parallel()

	frames := &manualFrames{ignoreCancel: true}
	runs := 0
	s := NewScheduler(frames, func() { runs++ })

	s.RequestRecompute()
	s.Cancel()
	frames.flush()
	require.Zero(t, runs)

	// A new request after the stale frame still works.
	s.RequestRecompute()
	frames.flush()
	require.Equal(t, 1, runs)
}

func TestSchedulerRequestDuringRunSchedulesNextFrame(t *testing.T) {
	t.Parallel()

	frames := &manualFrames{}
	runs := 0
	var s *Scheduler
	s = NewScheduler(frames, func() {
		runs++
		if runs == 1 {
			s.RequestRecompute()
		}
	})

	s.RequestRecompute()
	frames.flush()
	require.Equal(t, 1, runs)
	require.Equal(t, StatePending, s.State())

	frames.flush()
	require.Equal(t, 2, runs)
	require.Equal(t, StateIdle, s.State())
}

func TestSchedulerToleratesSynchronousFrames(t *testing.T) {
	t.Parallel()

	runs := 0
	cancels := 0
	sync := FrameSchedulerFunc(func(fn func()) CancelFrame {
		fn()
		return func() { cancels++ }
	})
	s := NewScheduler(sync, func() { runs++ })

	s.RequestRecompute()
	s.RequestRecompute()
	require.Equal(t, 2, runs)
	require.Equal(t, StateIdle, s.State())

	s.Cancel()
	require.Zero(t, cancels)
}

func TestSchedulerStateString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "idle", StateIdle.String())
	require.Equal(t, "pending", StatePending.String())
}
