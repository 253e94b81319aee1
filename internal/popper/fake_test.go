package popper

import "sort"

type fakeElement struct {
	name    string
	rect    Rect
	parent  *fakeElement
	queries int
	panics  bool
}

func newFakeElement(name string, rect Rect) *fakeElement {
	return &fakeElement{name: name, rect: rect}
}

func (f *fakeElement) BoundingRect() Rect {
	f.queries++
	if f.panics {
		panic("element detached: " + f.name)
	}
	return f.rect
}

func (f *fakeElement) Contains(target Element) bool {
	t, ok := target.(*fakeElement)
	for ok && t != nil {
		if t == f {
			return true
		}
		t = t.parent
	}
	return false
}

type listenerSet[T any] struct {
	next int
	fns  map[int]T
	// history keeps every listener ever registered so tests can invoke a
	// listener after it was removed.
	history []T
}

func (s *listenerSet[T]) add(fn T) Unsubscribe {
	if s.fns == nil {
		s.fns = make(map[int]T)
	}
	s.next++
	id := s.next
	s.fns[id] = fn
	s.history = append(s.history, fn)
	return func() { delete(s.fns, id) }
}

func (s *listenerSet[T]) snapshot() []T {
	ids := make([]int, 0, len(s.fns))
	for id := range s.fns {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.fns[id])
	}
	return out
}

type sizeObservation struct {
	el Element
	fn func()
}

type fakeHost struct {
	scroll  Offset
	sizes   listenerSet[sizeObservation]
	scrolls listenerSet[func()]
	resizes listenerSet[func()]
	pointer listenerSet[func(PointerEvent)]
	keys    listenerSet[func(KeyEvent)]
}

func (h *fakeHost) ScrollOffset() Offset { return h.scroll }

func (h *fakeHost) OnScroll(fn func()) Unsubscribe { return h.scrolls.add(fn) }

func (h *fakeHost) OnResize(fn func()) Unsubscribe { return h.resizes.add(fn) }

func (h *fakeHost) ObserveSize(el Element, fn func()) Unsubscribe {
	return h.sizes.add(sizeObservation{el: el, fn: fn})
}

func (h *fakeHost) OnPointerDown(fn func(PointerEvent)) Unsubscribe { return h.pointer.add(fn) }

func (h *fakeHost) OnKeyDown(fn func(KeyEvent)) Unsubscribe { return h.keys.add(fn) }

func (h *fakeHost) active() int {
	return len(h.sizes.fns) + len(h.scrolls.fns) + len(h.resizes.fns) + len(h.pointer.fns) + len(h.keys.fns)
}

func (h *fakeHost) fireScroll() {
	for _, fn := range h.scrolls.snapshot() {
		fn()
	}
}

func (h *fakeHost) fireResize() {
	for _, fn := range h.resizes.snapshot() {
		fn()
	}
}

func (h *fakeHost) fireSize(el Element) {
	for _, obs := range h.sizes.snapshot() {
		if obs.el == el {
			obs.fn()
		}
	}
}

func (h *fakeHost) pointerDown(target Element) {
	for _, fn := range h.pointer.snapshot() {
		fn(PointerEvent{Target: target})
	}
}

func (h *fakeHost) keyDown(key string) {
	for _, fn := range h.keys.snapshot() {
		fn(KeyEvent{Key: key})
	}
}

type manualFrames struct {
	next      int
	pending   map[int]func()
	order     []int
	scheduled int
	// ignoreCancel simulates a host whose cancellation races with the frame.
	ignoreCancel bool
}

func (m *manualFrames) Schedule(fn func()) CancelFrame {
	if m.pending == nil {
		m.pending = make(map[int]func())
	}
	m.next++
	id := m.next
	m.pending[id] = fn
	m.order = append(m.order, id)
	m.scheduled++
	return func() {
		if !m.ignoreCancel {
			delete(m.pending, id)
		}
	}
}

func (m *manualFrames) flush() {
	order := m.order
	m.order = nil
	for _, id := range order {
		fn, ok := m.pending[id]
		if !ok {
			continue
		}
		delete(m.pending, id)
		fn()
	}
}

func (m *manualFrames) len() int {
	return len(m.pending)
}
