// Package popper positions a floating element (tooltip, dropdown, menu) next
// to the anchor element that triggered it and keeps it there while the page
// scrolls or either element resizes.
//
// # Components
//
//   - ComputeBase and ApplyOffsetAndScroll place the popper for one of twelve
//     placements and convert the result to document coordinates.
//   - ResolveWidth maps a WidthMode to a width constraint.
//   - Scheduler coalesces recompute requests to one per frame.
//   - Engine owns the subscriptions made while open and the dismissal
//     listeners (Escape and outside pointer-down).
//
// # Host
//
// The engine never touches a real display. Everything it needs, from bounding
// rectangles to document-level events, comes from a Host, and frames come from
// a FrameScheduler:
//
//	anchor := popper.RefTo(button)
//	engine := popper.New(host, frames, anchor, popper.Options{
//		Placement:  popper.PlacementBottomStart,
//		OnClose:    func() { setOpen(false) },
//		OnPosition: render,
//	})
//	engine.Popper().Set(menu) // when the menu mounts
//	engine.SetOpen(true)
//
// Collision detection, flipping and viewport clamping are not performed; a
// popper may overflow the viewport.
package popper
