package document

import "github.com/alexisbeaulieu97/popper/internal/popper"

// Box is a rectangular node of a Document. Its rect is kept in document
// coordinates; BoundingRect converts to viewport coordinates using the
// current scroll position.
type Box struct {
	doc      *Document
	name     string
	rect     popper.Rect
	parent   *Box
	children []*Box
	mounted  bool

	observers listeners[func()]
}

var _ popper.Element = (*Box)(nil)

// Name returns the label the box was created with.
func (b *Box) Name() string { return b.name }

// Rect returns the box in document coordinates.
func (b *Box) Rect() popper.Rect { return b.rect }

// Parent returns the containing box, or nil for the root.
func (b *Box) Parent() *Box { return b.parent }

// Mounted reports whether the box is attached to its document.
func (b *Box) Mounted() bool { return b.mounted }

// BoundingRect implements popper.Element.
func (b *Box) BoundingRect() popper.Rect {
	scroll := b.doc.scroll
	return b.rect.Translate(-scroll.X, -scroll.Y)
}

// Contains implements popper.Element. Only boxes can be contained in a box.
func (b *Box) Contains(target popper.Element) bool {
	node, ok := target.(*Box)
	if !ok {
		return false
	}
	for ; node != nil; node = node.parent {
		if node == b {
			return true
		}
	}
	return false
}

// SetSize changes the box size and notifies size observers when it changed.
func (b *Box) SetSize(width, height float64) {
	if b.rect.Width == width && b.rect.Height == height {
		return
	}
	b.rect.Width = width
	b.rect.Height = height
	b.notifySize()
}

// MoveTo changes the box origin in document coordinates. Moves are not size
// changes, so observers are not notified.
func (b *Box) MoveTo(x, y float64) {
	b.rect.X = x
	b.rect.Y = y
}

func (b *Box) notifySize() {
	if !b.mounted {
		return
	}
	b.observers.each(func(fn func()) { fn() })
}

// hit returns the deepest mounted box under the document point, preferring
// later siblings as they paint on top.
func (b *Box) hit(x, y float64) *Box {
	for i := len(b.children) - 1; i >= 0; i-- {
		child := b.children[i]
		if !child.mounted {
			continue
		}
		if found := child.hit(x, y); found != nil {
			return found
		}
	}
	if b.rect.Contains(x, y) {
		return b
	}
	return nil
}

func (b *Box) setMounted(mounted bool) {
	b.mounted = mounted
	for _, child := range b.children {
		child.setMounted(mounted)
	}
}
