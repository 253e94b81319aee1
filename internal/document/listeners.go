package document

import "github.com/alexisbeaulieu97/popper/internal/popper"

type listener[F any] struct {
	fn      F
	removed bool
}

// listeners is an ordered registry. Dispatch iterates a snapshot and skips
// entries removed mid-dispatch, so a listener removed by an earlier one in
// the same event never runs.
type listeners[F any] struct {
	items []*listener[F]
}

func (l *listeners[F]) add(fn F) popper.Unsubscribe {
	entry := &listener[F]{fn: fn}
	l.items = append(l.items, entry)

	return func() {
		if entry.removed {
			return
		}
		entry.removed = true
		for i, item := range l.items {
			if item == entry {
				l.items = append(l.items[:i], l.items[i+1:]...)
				break
			}
		}
	}
}

func (l *listeners[F]) each(call func(F)) {
	snapshot := make([]*listener[F], len(l.items))
	copy(snapshot, l.items)
	for _, entry := range snapshot {
		if entry.removed {
			continue
		}
		call(entry.fn)
	}
}

func (l *listeners[F]) len() int {
	return len(l.items)
}
