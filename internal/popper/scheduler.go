package popper

// SchedulerState is the Position Scheduler's lifecycle state.
type SchedulerState int

const (
	// StateIdle means no recompute is scheduled.
	StateIdle SchedulerState = iota
	// StatePending means a recompute will run on the next frame.
	StatePending
)

func (s SchedulerState) String() string {
	if s == StatePending {
		return "pending"
	}
	return "idle"
}

// Scheduler coalesces recompute requests so that at most one recompute runs
// per frame, however many triggers fire within it.
type Scheduler struct {
	frames FrameScheduler
	run    func()

	state  SchedulerState
	cancel CancelFrame
	// gen identifies the currently scheduled frame. Cancel bumps it so a
	// callback that fires despite cancellation is recognised as stale.
	gen uint64
}

// NewScheduler returns an idle scheduler that calls run on frames obtained
// from frames.
func NewScheduler(frames FrameScheduler, run func()) *Scheduler {
	return &Scheduler{frames: frames, run: run}
}

// State returns the current state.
func (s *Scheduler) State() SchedulerState {
	return s.state
}

// RequestRecompute schedules a recompute for the next frame. It is a no-op
// while one is already pending.
func (s *Scheduler) RequestRecompute() {
	if s.state == StatePending {
		return
	}
	s.state = StatePending
	s.gen++
	gen := s.gen

	cancel := s.frames.Schedule(func() { s.fire(gen) })
	// A scheduler that runs callbacks synchronously has already fired.
	if s.state == StatePending && s.gen == gen {
		s.cancel = cancel
	}
}

// Cancel drops a pending recompute. It is safe to call in any state.
func (s *Scheduler) Cancel() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.gen++
	s.state = StateIdle
}

func (s *Scheduler) fire(gen uint64) {
	if s.state != StatePending || gen != s.gen {
		return
	}
	s.state = StateIdle
	s.cancel = nil
	s.run()
}
