package frame

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/alexisbeaulieu97/popper/internal/logger"
	"github.com/alexisbeaulieu97/popper/internal/popper"
)

// ErrStopped is returned when work is posted to a loop that has stopped.
var ErrStopped = errors.New("frame loop stopped")

// ErrRunning is returned when Run is called on a loop that is already running.
var ErrRunning = errors.New("frame loop already running")

const eventBuffer = 256

type waiter struct {
	target uint64
	ch     chan struct{}
}

// Loop is a single-goroutine event loop. Host events posted with Post or
// Call and frame callbacks scheduled with Schedule all run on the goroutine
// that called Run, so an Engine driven by a Loop never sees concurrent
// callbacks.
//
// With a positive interval a frame is flushed on every tick. With a zero
// interval frames only advance through AwaitFrames, which makes replays
// deterministic.
type Loop struct {
	queue    *Queue
	interval time.Duration
	log      *logger.Logger

	events   chan func()
	stopCh   chan struct{}
	stopOnce sync.Once
	done     chan struct{}
	running  atomic.Bool

	// waiters is only touched on the loop goroutine.
	waiters []waiter
}

// NewLoop creates a stopped loop.
func NewLoop(interval time.Duration, log *logger.Logger) *Loop {
	return &Loop{
		queue:    NewQueue(),
		interval: interval,
		log:      log.WithComponent("frame"),
		events:   make(chan func(), eventBuffer),
		stopCh:   make(chan struct{}),
		done:     make(chan struct{}),
	}
}

var _ popper.FrameScheduler = (*Loop)(nil)

// Schedule queues fn for the next frame.
func (l *Loop) Schedule(fn func()) popper.CancelFrame {
	return l.queue.Schedule(fn)
}

// Frames returns the number of frames flushed so far.
func (l *Loop) Frames() uint64 {
	return l.queue.Frames()
}

// Run processes events and frames until ctx is done or Stop is called.
func (l *Loop) Run(ctx context.Context) error {
	if !l.running.CompareAndSwap(false, true) {
		return ErrRunning
	}
	defer close(l.done)

	var tick <-chan time.Time
	if l.interval > 0 {
		ticker := time.NewTicker(l.interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	l.log.Debugf("frame loop started (interval %s)", l.interval)
	for {
		select {
		case <-ctx.Done():
			l.release()
			return ctx.Err()
		case <-l.stopCh:
			l.release()
			return nil
		case fn := <-l.events:
			fn()
		case <-tick:
			l.flush()
		}
	}
}

// Stop makes Run return. It is idempotent.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() { close(l.stopCh) })
}

// Done is closed once Run has returned.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// Post enqueues fn to run on the loop goroutine. It reports false if the
// loop has stopped.
func (l *Loop) Post(fn func()) bool {
	select {
	case <-l.stopCh:
		return false
	default:
	}

	select {
	case l.events <- fn:
		return true
	case <-l.stopCh:
		return false
	}
}

// Call runs fn on the loop goroutine and waits for it to return.
func (l *Loop) Call(ctx context.Context, fn func()) error {
	finished := make(chan struct{})
	if !l.Post(func() {
		defer close(finished)
		fn()
	}) {
		return ErrStopped
	}

	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-l.stopCh:
		return ErrStopped
	}
}

// AwaitFrames waits until n more frames have been flushed. On a loop
// without an interval the frames are flushed immediately.
func (l *Loop) AwaitFrames(ctx context.Context, n int) error {
	if n <= 0 {
		return nil
	}

	reached := make(chan struct{})
	if !l.Post(func() {
		if l.interval <= 0 {
			for i := 0; i < n; i++ {
				l.flush()
			}
			close(reached)
			return
		}
		l.waiters = append(l.waiters, waiter{target: l.queue.Frames() + uint64(n), ch: reached})
	}) {
		return ErrStopped
	}

	select {
	case <-reached:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-l.stopCh:
		return ErrStopped
	}
}

func (l *Loop) flush() {
	l.queue.Flush()

	if len(l.waiters) == 0 {
		return
	}
	frames := l.queue.Frames()
	remaining := l.waiters[:0]
	for _, w := range l.waiters {
		if frames >= w.target {
			close(w.ch)
			continue
		}
		remaining = append(remaining, w)
	}
	l.waiters = remaining
}

func (l *Loop) release() {
	l.log.Debug("frame loop stopped")
	l.waiters = nil
}
