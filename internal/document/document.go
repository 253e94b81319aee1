package document

import (
	"github.com/alexisbeaulieu97/popper/internal/logger"
	"github.com/alexisbeaulieu97/popper/internal/popper"
)

// RootName is the name of every document's root box.
const RootName = "document"

// Document is an in-memory popper.Host: a tree of boxes under a scrollable
// viewport with document-level input dispatch.
//
// A Document is not safe for concurrent use. Drive it from the goroutine
// that runs the engine, for instance through frame.Loop.Call.
type Document struct {
	log      *logger.Logger
	viewport popper.Rect
	scroll   popper.Offset
	root     *Box
	// observed holds the boxes with at least one size observer, mounted
	// or not.
	observed map[*Box]struct{}

	scrolls  listeners[func()]
	resizes  listeners[func()]
	pointers listeners[func(popper.PointerEvent)]
	keys     listeners[func(popper.KeyEvent)]
}

var _ popper.Host = (*Document)(nil)

// New creates an empty document whose viewport is width x height.
func New(width, height float64, log *logger.Logger) *Document {
	d := &Document{
		log:      log.WithComponent("document"),
		viewport: popper.Rect{Width: width, Height: height},
		observed: make(map[*Box]struct{}),
	}
	d.root = &Box{doc: d, name: RootName, rect: d.viewport, mounted: true}
	return d
}

// Root returns the root box. Pointer-downs that hit nothing else target it.
func (d *Document) Root() *Box { return d.root }

// Viewport returns the viewport size as a rect at the origin.
func (d *Document) Viewport() popper.Rect { return d.viewport }

// Append mounts a new box under the root.
func (d *Document) Append(name string, rect popper.Rect) *Box {
	return d.AppendChild(d.root, name, rect)
}

// AppendChild mounts a new box under parent. rect is in document
// coordinates.
func (d *Document) AppendChild(parent *Box, name string, rect popper.Rect) *Box {
	if parent == nil {
		parent = d.root
	}
	box := &Box{doc: d, name: name, rect: rect, parent: parent, mounted: parent.mounted}
	parent.children = append(parent.children, box)
	return box
}

// Remove unmounts box and its subtree. The root cannot be removed.
func (d *Document) Remove(box *Box) bool {
	if box == nil || box == d.root || box.parent == nil {
		return false
	}
	siblings := box.parent.children
	for i, child := range siblings {
		if child == box {
			box.parent.children = append(siblings[:i], siblings[i+1:]...)
			break
		}
	}
	box.parent = nil
	box.setMounted(false)
	return true
}

// Reattach mounts a previously removed box under parent again.
func (d *Document) Reattach(parent, box *Box) {
	if box == nil || box == d.root || box.parent != nil {
		return
	}
	if parent == nil {
		parent = d.root
	}
	box.parent = parent
	parent.children = append(parent.children, box)
	box.setMounted(parent.mounted)
}

// ScrollOffset implements popper.Viewport.
func (d *Document) ScrollOffset() popper.Offset { return d.scroll }

// ScrollTo sets the scroll position and dispatches a scroll event when it
// changed. Negative coordinates clamp to zero.
func (d *Document) ScrollTo(x, y float64) {
	next := popper.Offset{X: max(x, 0), Y: max(y, 0)}
	if next == d.scroll {
		return
	}
	d.scroll = next
	d.scrolls.each(func(fn func()) { fn() })
}

// ScrollBy scrolls relative to the current position.
func (d *Document) ScrollBy(dx, dy float64) {
	d.ScrollTo(d.scroll.X+dx, d.scroll.Y+dy)
}

// Resize changes the viewport size and dispatches a resize event when it
// changed.
func (d *Document) Resize(width, height float64) {
	if d.viewport.Width == width && d.viewport.Height == height {
		return
	}
	d.viewport.Width = width
	d.viewport.Height = height
	d.resizes.each(func(fn func()) { fn() })
}

// PointerDown dispatches a pointer-down at viewport coordinates and returns
// the hit target.
func (d *Document) PointerDown(x, y float64) *Box {
	target := d.root.hit(x+d.scroll.X, y+d.scroll.Y)
	if target == nil {
		target = d.root
	}
	d.log.Debugf("pointer down at %.0f,%.0f on %s", x, y, target.name)

	event := popper.PointerEvent{X: x, Y: y, Target: target}
	d.pointers.each(func(fn func(popper.PointerEvent)) { fn(event) })
	return target
}

// KeyDown dispatches a keydown.
func (d *Document) KeyDown(key string) {
	event := popper.KeyEvent{Key: key}
	d.keys.each(func(fn func(popper.KeyEvent)) { fn(event) })
}

// OnScroll implements popper.Viewport.
func (d *Document) OnScroll(fn func()) popper.Unsubscribe {
	return d.scrolls.add(fn)
}

// OnResize implements popper.Viewport.
func (d *Document) OnResize(fn func()) popper.Unsubscribe {
	return d.resizes.add(fn)
}

// ObserveSize implements popper.SizeObserver. Elements from other hosts
// cannot be observed and get a no-op subscription.
func (d *Document) ObserveSize(el popper.Element, fn func()) popper.Unsubscribe {
	box, ok := el.(*Box)
	if !ok || box.doc != d {
		d.log.Warn("size observer requested for a foreign element")
		return func() {}
	}
	unsubscribe := box.observers.add(fn)
	d.observed[box] = struct{}{}
	return func() {
		unsubscribe()
		if box.observers.len() == 0 {
			delete(d.observed, box)
		}
	}
}

// OnPointerDown implements popper.DocumentEvents.
func (d *Document) OnPointerDown(fn func(popper.PointerEvent)) popper.Unsubscribe {
	return d.pointers.add(fn)
}

// OnKeyDown implements popper.DocumentEvents.
func (d *Document) OnKeyDown(fn func(popper.KeyEvent)) popper.Unsubscribe {
	return d.keys.add(fn)
}

// ListenerCount returns the number of registered listeners and observers.
// Observers on removed boxes still count.
func (d *Document) ListenerCount() int {
	n := d.scrolls.len() + d.resizes.len() + d.pointers.len() + d.keys.len()
	for box := range d.observed {
		n += box.observers.len()
	}
	return n
}

// ObservedBoxes returns the number of boxes holding size observers.
func (d *Document) ObservedBoxes() int {
	return len(d.observed)
}
