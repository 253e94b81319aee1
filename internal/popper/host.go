package popper

// Element is a rectangle-queryable node owned by the host. The engine only
// reads from elements; it never mutates them.
type Element interface {
	// BoundingRect returns the element's current box in viewport
	// coordinates.
	BoundingRect() Rect
	// Contains reports whether target is this element or one of its
	// descendants.
	Contains(target Element) bool
}

// Unsubscribe removes a listener or observer. Calling it more than once is
// a no-op.
type Unsubscribe func()

// KeyEscape is the key name that dismisses an open popper.
const KeyEscape = "Escape"

// PointerEvent is a document-level pointer-down.
type PointerEvent struct {
	X, Y float64
	// Target is the innermost element under the pointer. It may be nil when
	// the pointer lands on no element.
	Target Element
}

// KeyEvent is a document-level keydown.
type KeyEvent struct {
	Key string
}

// Viewport exposes the scroll position and viewport-level change events.
type Viewport interface {
	// ScrollOffset returns the current document scroll position.
	ScrollOffset() Offset
	// OnScroll registers fn for scroll events in the capturing phase, so
	// scrolling of any ancestor container is observed.
	OnScroll(fn func()) Unsubscribe
	// OnResize registers fn for viewport resize events.
	OnResize(fn func()) Unsubscribe
}

// SizeObserver reports element size changes.
type SizeObserver interface {
	ObserveSize(el Element, fn func()) Unsubscribe
}

// DocumentEvents exposes document-level input listeners. Pointer listeners
// run in the capturing phase.
type DocumentEvents interface {
	OnPointerDown(fn func(PointerEvent)) Unsubscribe
	OnKeyDown(fn func(KeyEvent)) Unsubscribe
}

// Host is the capability set the engine needs from its environment.
type Host interface {
	Viewport
	SizeObserver
	DocumentEvents
}

// CancelFrame cancels a scheduled frame callback. Calling it after the
// callback ran, or more than once, is a no-op.
type CancelFrame func()

// FrameScheduler runs callbacks on the next rendering frame.
type FrameScheduler interface {
	Schedule(fn func()) CancelFrame
}

// FrameSchedulerFunc adapts a function to FrameScheduler.
type FrameSchedulerFunc func(fn func()) CancelFrame

// Schedule calls f(fn).
func (f FrameSchedulerFunc) Schedule(fn func()) CancelFrame {
	return f(fn)
}
