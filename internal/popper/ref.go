package popper

import "sync"

// Ref holds an element handle that is set when the host mounts the element
// and cleared when it unmounts. Watchers registered by an Engine are told
// about every change. Thread-safe; elements must be comparable.
type Ref struct {
	mu       sync.RWMutex
	value    Element
	nextID   int
	watchers []refWatcher
}

type refWatcher struct {
	id int
	fn func()
}

// NewRef creates an empty Ref.
func NewRef() *Ref {
	return &Ref{}
}

// RefTo creates a Ref already pointing at el.
func RefTo(el Element) *Ref {
	return &Ref{value: el}
}

// Set stores el in the ref and notifies watchers if the handle changed.
// Watchers run on the caller's goroutine after the ref is updated.
func (r *Ref) Set(el Element) {
	r.mu.Lock()
	changed := r.value != el
	r.value = el
	watchers := make([]refWatcher, len(r.watchers))
	copy(watchers, r.watchers)
	r.mu.Unlock()

	if !changed {
		return
	}
	for _, w := range watchers {
		w.fn()
	}
}

// Clear forgets the stored element.
func (r *Ref) Clear() {
	r.Set(nil)
}

// Element returns the referenced element and whether it is resolvable.
func (r *Ref) Element() (Element, bool) {
	if r == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.value, r.value != nil
}

// IsSet reports whether the ref currently resolves.
func (r *Ref) IsSet() bool {
	_, ok := r.Element()
	return ok
}

// watch registers fn to run after every change of the handle.
func (r *Ref) watch(fn func()) (stop func()) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	id := r.nextID
	r.watchers = append(r.watchers, refWatcher{id: id, fn: fn})

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		for i, w := range r.watchers {
			if w.id == id {
				r.watchers = append(r.watchers[:i:i], r.watchers[i+1:]...)
				return
			}
		}
	}
}

// contains reports whether the referenced element contains target. An
// unresolved ref contains nothing.
func (r *Ref) contains(target Element) bool {
	el, ok := r.Element()
	if !ok || target == nil {
		return false
	}
	return el.Contains(target)
}
