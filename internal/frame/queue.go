package frame

import (
	"sync"

	"github.com/alexisbeaulieu97/popper/internal/popper"
)

type entry struct {
	fn        func()
	cancelled bool
}

// Queue is a FrameScheduler whose frames are produced by calling Flush.
// Callbacks scheduled while a flush is running wait for the next one, the
// way requestAnimationFrame defers callbacks registered inside a frame.
// Safe for concurrent use; callbacks run on the flushing goroutine.
type Queue struct {
	mu      sync.Mutex
	pending []*entry
	frames  uint64
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Schedule queues fn for the next flush.
func (q *Queue) Schedule(fn func()) popper.CancelFrame {
	e := &entry{fn: fn}

	q.mu.Lock()
	q.pending = append(q.pending, e)
	q.mu.Unlock()

	return func() {
		q.mu.Lock()
		e.cancelled = true
		q.mu.Unlock()
	}
}

// Flush runs one frame: every callback scheduled before the call and not
// cancelled since. It returns the number of callbacks run.
func (q *Queue) Flush() int {
	q.mu.Lock()
	batch := q.pending
	q.pending = nil
	q.frames++
	q.mu.Unlock()

	ran := 0
	for _, e := range batch {
		q.mu.Lock()
		skip := e.cancelled
		e.cancelled = true
		q.mu.Unlock()
		if skip {
			continue
		}
		e.fn()
		ran++
	}
	return ran
}

// Pending returns the number of live callbacks awaiting the next flush.
func (q *Queue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	n := 0
	for _, e := range q.pending {
		if !e.cancelled {
			n++
		}
	}
	return n
}

// Frames returns how many flushes have run.
func (q *Queue) Frames() uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.frames
}
