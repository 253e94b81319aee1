package popper

// subscriptions owns the passive observers that detect anchor or popper
// movement: popper size, anchor size, viewport scroll and viewport resize.
// The set is either complete or empty, and remembers the elements it
// observes.
type subscriptions struct {
	host   Host
	active []Unsubscribe
	anchor Element
	popper Element
}

func (s *subscriptions) subscribe(anchor, popper Element, request func()) {
	if len(s.active) > 0 {
		return
	}
	s.anchor = anchor
	s.popper = popper
	s.active = []Unsubscribe{
		s.host.ObserveSize(popper, request),
		s.host.ObserveSize(anchor, request),
		s.host.OnScroll(request),
		s.host.OnResize(request),
	}
}

func (s *subscriptions) unsubscribe() {
	active := s.active
	s.active = nil
	s.anchor = nil
	s.popper = nil
	for _, unsubscribe := range active {
		if unsubscribe != nil {
			unsubscribe()
		}
	}
}

// observes reports whether the set is live on exactly these elements.
func (s *subscriptions) observes(anchor, popper Element) bool {
	return len(s.active) > 0 && s.anchor == anchor && s.popper == popper
}

func (s *subscriptions) len() int {
	return len(s.active)
}
