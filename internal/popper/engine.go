package popper

import (
	"fmt"

	"github.com/alexisbeaulieu97/popper/internal/logger"
)

// PositionResult is what the rendering layer applies to the popper. Top and
// Left are document coordinates.
type PositionResult struct {
	Top    float64 `json:"top"`
	Left   float64 `json:"left"`
	ZIndex int     `json:"zIndex"`
	Width  Width   `json:"width"`
}

// Stats counts engine activity since creation.
type Stats struct {
	Recomputes  int `json:"recomputes"`
	Skipped     int `json:"skipped"`
	Retries     int `json:"retries"`
	Activations int `json:"activations"`
}

// Engine positions a popper relative to an anchor for as long as it is open.
//
// The caller owns the open state and drives the engine through SetOpen (or
// Activate/Deactivate). While open and both handles resolve, the engine keeps
// four passive subscriptions that request recomputes, coalesced to one per
// frame. Failures are absorbed: an unresolved handle skips the recompute and
// keeps the previous result.
//
// An Engine is not safe for concurrent use; the host must deliver all
// callbacks on a single goroutine.
type Engine struct {
	host   Host
	frames FrameScheduler
	anchor *Ref
	popper *Ref
	opts   Options
	log    *logger.Logger

	scheduler *Scheduler
	subs      subscriptions
	dismiss   dismissal

	open     bool
	disposed bool
	// session increments on every open/close transition; callbacks
	// registered by an earlier session are ignored.
	session uint64

	retryGen uint64
	retry    CancelFrame
	retrying bool

	result    PositionResult
	hasResult bool
	stats     Stats

	unwatch []func()

	computeBase func(Placement, Rect, Rect) Position
}

// New creates a closed engine. anchor may be nil, in which case the engine
// creates an empty one; the popper handle is always owned by the engine and
// exposed through Popper.
func New(host Host, frames FrameScheduler, anchor *Ref, opts Options) *Engine {
	if anchor == nil {
		anchor = NewRef()
	}
	opts = opts.WithDefaults()

	e := &Engine{
		host:        host,
		frames:      frames,
		anchor:      anchor,
		popper:      NewRef(),
		opts:        opts,
		log:         opts.Logger.WithComponent("popper"),
		computeBase: ComputeBase,
	}
	e.scheduler = NewScheduler(frames, e.recompute)
	e.subs = subscriptions{host: host}
	e.dismiss = dismissal{events: host, anchor: anchor, popper: e.popper}
	e.unwatch = []func(){
		anchor.watch(e.handleChanged),
		e.popper.watch(e.handleChanged),
	}
	return e
}

// Anchor returns the anchor handle.
func (e *Engine) Anchor() *Ref { return e.anchor }

// Popper returns the engine-owned popper handle. The host sets it when the
// popper element mounts and clears it when it unmounts.
func (e *Engine) Popper() *Ref { return e.popper }

// Options returns the current options with every default filled in.
func (e *Engine) Options() Options { return e.opts.WithDefaults() }

// IsOpen reports the last open state handed to the engine.
func (e *Engine) IsOpen() bool { return e.open }

// IsActive reports whether the passive subscriptions are in place.
func (e *Engine) IsActive() bool { return e.subs.len() > 0 }

// SubscriptionCount returns the number of live passive subscriptions plus
// dismissal listeners.
func (e *Engine) SubscriptionCount() int { return e.subs.len() + e.dismiss.len() }

// SchedulerState exposes the Position Scheduler's state.
func (e *Engine) SchedulerState() SchedulerState { return e.scheduler.State() }

// Stats returns activity counters.
func (e *Engine) Stats() Stats { return e.stats }

// Result returns the most recent position and whether one was ever computed.
func (e *Engine) Result() (PositionResult, bool) {
	return e.result, e.hasResult
}

// SetOpen applies an open/close transition.
func (e *Engine) SetOpen(open bool) {
	if open {
		e.Activate()
		return
	}
	e.Deactivate()
}

// Activate opens the engine. If both handles resolve, the popper is
// positioned synchronously and the subscriptions are registered; otherwise
// activation is retried on every following frame until they do or the
// engine is deactivated.
func (e *Engine) Activate() {
	if e.open || e.disposed {
		return
	}
	e.open = true
	e.session++

	session := e.session
	e.dismiss.start(e.opts.OnClose, e.opts.Dismiss, func() bool {
		return e.open && e.session == session
	})
	e.tryActivate()
}

// Deactivate closes the engine: all subscriptions are removed and any
// pending frame is cancelled. Calling it while closed is a no-op.
func (e *Engine) Deactivate() {
	wasOpen := e.open
	e.open = false
	e.session++

	e.cancelRetry()
	e.scheduler.Cancel()
	e.subs.unsubscribe()
	e.dismiss.stop()

	if wasOpen {
		e.log.Debug("popper deactivated")
	}
}

// Dispose deactivates the engine for good, as on unmount. Later Activate
// calls are ignored.
func (e *Engine) Dispose() {
	e.Deactivate()
	e.disposed = true
	for _, stop := range e.unwatch {
		stop()
	}
	e.unwatch = nil
}

// RequestRecompute asks for a recompute on the next frame. It does nothing
// unless the engine is active.
func (e *Engine) RequestRecompute() {
	if e.IsActive() {
		e.scheduler.RequestRecompute()
	}
}

// SetPlacement changes the placement; an active engine repositions on the
// next frame.
func (e *Engine) SetPlacement(p Placement) {
	if p == "" {
		p = DefaultPlacement
	}
	e.opts.Placement = p
	e.RequestRecompute()
}

// SetOffset changes the offset.
func (e *Engine) SetOffset(offset Offset) {
	e.opts.Offset = &offset
	e.RequestRecompute()
}

// SetWidthMode changes the width mode.
func (e *Engine) SetWidthMode(mode WidthMode) {
	if mode == "" {
		mode = WidthAuto
	}
	e.opts.WidthMode = mode
	e.RequestRecompute()
}

func (e *Engine) tryActivate() {
	if !e.open || e.IsActive() {
		return
	}

	anchor, anchorOK := e.anchor.Element()
	popper, popperOK := e.popper.Element()
	if !anchorOK || !popperOK {
		e.scheduleRetry()
		return
	}

	session := e.session
	e.recompute()
	// OnPosition may have closed the engine or activated it re-entrantly.
	if !e.open || e.session != session || e.IsActive() {
		return
	}

	e.subs.subscribe(anchor, popper, func() {
		if e.open && e.session == session {
			e.scheduler.RequestRecompute()
		}
	})
	e.stats.Activations++
	e.log.Debugf("popper activated with placement %s", e.opts.Placement)
}

// handleChanged runs when the anchor or popper handle is set or cleared.
// While open, a set observing other elements is torn down and activation
// runs again: a resolved pair is positioned at once, an unresolved one falls
// back to retrying every frame.
func (e *Engine) handleChanged() {
	if !e.open {
		return
	}
	anchor, anchorOK := e.anchor.Element()
	popper, popperOK := e.popper.Element()
	if anchorOK && popperOK && e.subs.observes(anchor, popper) {
		return
	}

	e.log.Debug("popper handle changed, reactivating")
	e.cancelRetry()
	e.scheduler.Cancel()
	e.subs.unsubscribe()
	e.tryActivate()
}

// scheduleRetry defers activation to the next frame. The frame scheduler
// must not run callbacks synchronously.
func (e *Engine) scheduleRetry() {
	if e.retrying {
		return
	}
	e.retrying = true
	e.retryGen++
	gen := e.retryGen
	e.stats.Retries++
	e.log.Debug("popper handle unresolved, retrying activation next frame")

	cancel := e.frames.Schedule(func() {
		if !e.retrying || gen != e.retryGen {
			return
		}
		e.retrying = false
		e.retry = nil
		e.tryActivate()
	})
	if e.retrying && gen == e.retryGen {
		e.retry = cancel
	}
}

func (e *Engine) cancelRetry() {
	if e.retry != nil {
		e.retry()
		e.retry = nil
	}
	e.retrying = false
	e.retryGen++
}

func (e *Engine) recompute() {
	if !e.open {
		return
	}

	result, ok := e.measure()
	if !ok {
		e.stats.Skipped++
		return
	}

	e.result = result
	e.hasResult = true
	e.stats.Recomputes++
	if e.opts.OnPosition != nil {
		e.opts.OnPosition(result)
	}
}

// measure reads both rects and computes a result. Host faults are absorbed
// and reported as a skipped recompute.
func (e *Engine) measure() (result PositionResult, ok bool) {
	anchor, anchorOK := e.anchor.Element()
	popper, popperOK := e.popper.Element()
	if !anchorOK || !popperOK {
		e.log.Debug("skipping recompute: element handle unresolved")
		return PositionResult{}, false
	}

	defer func() {
		if r := recover(); r != nil {
			e.log.Error(fmt.Errorf("%v", r), "skipping recompute: host query panicked")
			result, ok = PositionResult{}, false
		}
	}()

	anchorRect := anchor.BoundingRect()
	base := e.computeBase(e.opts.Placement, anchorRect, popper.BoundingRect())
	pos := ApplyOffsetAndScroll(base, *e.opts.Offset, e.host.ScrollOffset())

	return PositionResult{
		Top:    pos.Top,
		Left:   pos.Left,
		ZIndex: e.opts.ZIndex,
		Width:  ResolveWidth(e.opts.WidthMode, anchorRect),
	}, true
}
