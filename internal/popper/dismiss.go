package popper

// DismissOptions switches individual dismissal triggers off. The zero value
// enables both.
type DismissOptions struct {
	// IgnoreEscape keeps the popper open when Escape is pressed.
	IgnoreEscape bool
	// IgnoreOutsidePointer keeps the popper open on pointer-down outside
	// the anchor and the popper.
	IgnoreOutsidePointer bool
}

// dismissal watches for the user wanting the popper closed. It only signals
// intent through onClose and never touches engine state itself.
type dismissal struct {
	events DocumentEvents
	anchor *Ref
	popper *Ref
	active []Unsubscribe
}

// start registers the document listeners. live reports whether the open
// session that registered them is still current.
func (d *dismissal) start(onClose func(), opts DismissOptions, live func() bool) {
	if onClose == nil || len(d.active) > 0 {
		return
	}

	if !opts.IgnoreEscape {
		d.active = append(d.active, d.events.OnKeyDown(func(ev KeyEvent) {
			if ev.Key == KeyEscape && live() {
				onClose()
			}
		}))
	}

	if !opts.IgnoreOutsidePointer {
		d.active = append(d.active, d.events.OnPointerDown(func(ev PointerEvent) {
			if !live() || d.inside(ev.Target) {
				return
			}
			onClose()
		}))
	}
}

func (d *dismissal) inside(target Element) bool {
	return d.anchor.contains(target) || d.popper.contains(target)
}

func (d *dismissal) stop() {
	active := d.active
	d.active = nil
	for _, unsubscribe := range active {
		if unsubscribe != nil {
			unsubscribe()
		}
	}
}

func (d *dismissal) len() int {
	return len(d.active)
}
