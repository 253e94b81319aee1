package popper

// Rect is an element's bounding box in viewport (client) coordinates.
type Rect struct {
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Left returns the left edge.
func (r Rect) Left() float64 { return r.X }

// Top returns the top edge.
func (r Rect) Top() float64 { return r.Y }

// Right returns the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Contains reports whether the point lies inside r. The right and bottom
// edges are exclusive.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left() && x < r.Right() && y >= r.Top() && y < r.Bottom()
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// Axis selects the horizontal or vertical dimension of a rect.
type Axis int

const (
	AxisHorizontal Axis = iota
	AxisVertical
)

// Cross returns the perpendicular axis.
func (a Axis) Cross() Axis {
	if a == AxisHorizontal {
		return AxisVertical
	}
	return AxisHorizontal
}

func (r Rect) start(axis Axis) float64 {
	if axis == AxisHorizontal {
		return r.X
	}
	return r.Y
}

func (r Rect) size(axis Axis) float64 {
	if axis == AxisHorizontal {
		return r.Width
	}
	return r.Height
}

func (r Rect) end(axis Axis) float64 {
	return r.start(axis) + r.size(axis)
}

// Offset is a pixel vector. It is used both for the caller's placement bias
// and for the document scroll position.
type Offset struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Position is a top/left coordinate pair.
type Position struct {
	Top  float64 `json:"top"`
	Left float64 `json:"left"`
}

func (p Position) set(axis Axis, v float64) Position {
	if axis == AxisHorizontal {
		p.Left = v
	} else {
		p.Top = v
	}
	return p
}

// ComputeBase places popper against anchor according to placement and
// returns its viewport position before offset and scroll correction.
//
// The main-axis edge of the popper is made flush with the facing edge of the
// anchor. On the cross axis the popper is centered on the anchor, or aligned
// to its leading (start) or trailing (end) edge. Unknown placements behave
// like bottom. No collision detection or clamping is performed.
func ComputeBase(placement Placement, anchor, popper Rect) Position {
	side, align := placement.split()
	main := side.axis()
	cross := main.Cross()

	var mainPos float64
	switch side {
	case SideTop, SideLeft:
		mainPos = anchor.start(main) - popper.size(main)
	default:
		mainPos = anchor.end(main)
	}

	var crossPos float64
	switch align {
	case AlignStart:
		crossPos = anchor.start(cross)
	case AlignEnd:
		crossPos = anchor.end(cross) - popper.size(cross)
	default:
		crossPos = anchor.start(cross) + (anchor.size(cross)-popper.size(cross))/2
	}

	return Position{}.set(main, mainPos).set(cross, crossPos)
}

// ApplyOffsetAndScroll biases base by offset and converts the result to
// document coordinates by adding the current scroll position.
func ApplyOffsetAndScroll(base Position, offset, scroll Offset) Position {
	return Position{
		Top:  base.Top + offset.Y + scroll.Y,
		Left: base.Left + offset.X + scroll.X,
	}
}
