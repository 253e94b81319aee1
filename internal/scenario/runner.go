package scenario

import (
	"context"
	"fmt"
	"time"

	"github.com/alexisbeaulieu97/popper/internal/document"
	"github.com/alexisbeaulieu97/popper/internal/frame"
	"github.com/alexisbeaulieu97/popper/internal/logger"
	"github.com/alexisbeaulieu97/popper/internal/popper"
)

// Runner replays scenarios on a frame loop.
type Runner struct {
	log      *logger.Logger
	interval time.Duration
	base     popper.Options
}

// NewRunner creates a runner. A zero interval advances frames only on
// "frames" steps, which makes reports reproducible; a positive interval
// also flushes frames on a timer. base supplies every option a scenario
// leaves unset.
func NewRunner(log *logger.Logger, interval time.Duration, base popper.Options) *Runner {
	return &Runner{
		log:      log.WithComponent("scenario"),
		interval: interval,
		base:     base,
	}
}

// session is the replay state. It is only touched on the loop goroutine.
type session struct {
	loop   *frame.Loop
	doc    *document.Document
	anchor *document.Box
	body   *document.Box
	engine *popper.Engine
	report *Report

	step   int
	action string
}

// Run replays sc and returns everything the engine published.
func (r *Runner) Run(ctx context.Context, sc *Scenario) (*Report, error) {
	if err := Validate(sc); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	loop := frame.NewLoop(r.interval, r.log)
	runCtx, cancel := context.WithCancel(ctx)
	defer func() {
		cancel()
		<-loop.Done()
	}()
	go func() {
		if err := loop.Run(runCtx); err != nil && runCtx.Err() == nil {
			r.log.Error(err, "frame loop exited")
		}
	}()

	s := &session{loop: loop, report: &Report{Name: sc.Name}, step: -1}
	if err := loop.Call(ctx, func() { s.setup(sc, r.base, r.log) }); err != nil {
		return nil, fmt.Errorf("scenario %s: setup: %w", sc.Name, err)
	}

	for i, step := range sc.Steps {
		action := step.Action()
		r.log.Debugf("step %d: %s", i, action)

		if err := loop.Call(ctx, func() { s.apply(i, action, step) }); err != nil {
			return nil, fmt.Errorf("scenario %s: step %d (%s): %w", sc.Name, i, action, err)
		}
		if step.Frames > 0 {
			if err := loop.AwaitFrames(ctx, step.Frames); err != nil {
				return nil, fmt.Errorf("scenario %s: step %d (%s): %w", sc.Name, i, action, err)
			}
		}
	}

	if err := loop.Call(ctx, s.finish); err != nil {
		return nil, fmt.Errorf("scenario %s: teardown: %w", sc.Name, err)
	}
	return s.report, nil
}

func (s *session) setup(sc *Scenario, base popper.Options, log *logger.Logger) {
	s.doc = document.New(sc.Viewport.Width, sc.Viewport.Height, log)
	s.anchor = s.doc.Append("anchor", sc.Anchor)
	s.body = s.doc.Append("popper", popper.Rect{Width: sc.Popper.Width, Height: sc.Popper.Height})

	opts := sc.Options(base)
	opts.Logger = log
	opts.OnPosition = s.onPosition
	opts.OnClose = s.onClose

	s.engine = popper.New(s.doc, s.loop, popper.RefTo(s.anchor), opts)
	s.engine.Popper().Set(s.body)
}

// onPosition records the result and applies it to the popper box the way a
// rendering layer would. A pixel width resizes the box, which its size
// observer reports like any other resize.
func (s *session) onPosition(result popper.PositionResult) {
	s.report.add(Record{
		Step:   s.step,
		Action: s.action,
		Frame:  s.loop.Frames(),
		Event:  EventPosition,
		Result: &result,
	})

	s.body.MoveTo(result.Left, result.Top)
	if px, ok := result.Width.Pixels(); ok {
		s.body.SetSize(px, s.body.Rect().Height)
	}
}

// onClose records the dismissal and closes the engine, as the owner of the
// open state would.
func (s *session) onClose() {
	s.report.add(Record{
		Step:   s.step,
		Action: s.action,
		Frame:  s.loop.Frames(),
		Event:  EventClose,
	})
	s.engine.SetOpen(false)
}

func (s *session) apply(index int, action string, step Step) {
	s.step = index
	s.action = action

	switch action {
	case "open":
		s.engine.SetOpen(*step.Open)
	case "scroll":
		s.doc.ScrollTo(step.Scroll.X, step.Scroll.Y)
	case "resize_anchor":
		s.anchor.SetSize(step.ResizeAnchor.Width, step.ResizeAnchor.Height)
	case "resize_popper":
		s.body.SetSize(step.ResizePopper.Width, step.ResizePopper.Height)
	case "resize_viewport":
		s.doc.Resize(step.ResizeViewport.Width, step.ResizeViewport.Height)
	case "pointer":
		s.doc.PointerDown(step.Pointer.X, step.Pointer.Y)
	case "key":
		s.doc.KeyDown(step.Key)
	case "placement":
		if placement, err := popper.ParsePlacement(step.Placement); err == nil {
			s.engine.SetPlacement(placement)
		}
	case "unmount_popper":
		s.doc.Remove(s.body)
		s.engine.Popper().Clear()
	case "mount_popper":
		s.doc.Reattach(nil, s.body)
		s.engine.Popper().Set(s.body)
	}
}

func (s *session) finish() {
	s.report.Open = s.engine.IsOpen()
	s.report.Active = s.engine.IsActive()
	s.report.Stats = s.engine.Stats()

	s.engine.Dispose()
	s.report.LeakedListeners = s.doc.ListenerCount()
}
