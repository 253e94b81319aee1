package popper

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	testAnchor = Rect{X: 100, Y: 200, Width: 50, Height: 20}
	testPopper = Rect{Width: 30, Height: 10}
)

func TestComputeBasePlacements(t *testing.T) {
	t.Parallel()

	tests := map[Placement]Position{
		PlacementTop:         {Top: 190, Left: 110},
		PlacementTopStart:    {Top: 190, Left: 100},
		PlacementTopEnd:      {Top: 190, Left: 120},
		PlacementBottom:      {Top: 220, Left: 110},
		PlacementBottomStart: {Top: 220, Left: 100},
		PlacementBottomEnd:   {Top: 220, Left: 120},
		PlacementLeft:        {Top: 205, Left: 70},
		PlacementLeftStart:   {Top: 200, Left: 70},
		PlacementLeftEnd:     {Top: 210, Left: 70},
		PlacementRight:       {Top: 205, Left: 150},
		PlacementRightStart:  {Top: 200, Left: 150},
		PlacementRightEnd:    {Top: 210, Left: 150},
	}
	require.Len(t, tests, len(Placements()))

	for placement, want := range tests {
		t.Run(string(placement), func(t *testing.T) {
			t.Parallel()
			require.Equal(t, want, ComputeBase(placement, testAnchor, testPopper))
		})
	}
}

func TestComputeBaseTouchesAnchorEdge(t *testing.T) {
	t.Parallel()

	for _, placement := range Placements() {
		pos := ComputeBase(placement, testAnchor, testPopper)
		box := Rect{X: pos.Left, Y: pos.Top, Width: testPopper.Width, Height: testPopper.Height}

		switch placement.Side() {
		case SideTop:
			require.Equal(t, testAnchor.Top(), box.Bottom(), placement)
		case SideBottom:
			require.Equal(t, testAnchor.Bottom(), box.Top(), placement)
		case SideLeft:
			require.Equal(t, testAnchor.Left(), box.Right(), placement)
		case SideRight:
			require.Equal(t, testAnchor.Right(), box.Left(), placement)
		}

		main := placement.Side().axis()
		cross := main.Cross()
		switch placement.Alignment() {
		case AlignStart:
			require.Equal(t, testAnchor.start(cross), box.start(cross), placement)
		case AlignEnd:
			require.Equal(t, testAnchor.end(cross), box.end(cross), placement)
		default:
			anchorMid := testAnchor.start(cross) + testAnchor.size(cross)/2
			boxMid := box.start(cross) + box.size(cross)/2
			require.Equal(t, anchorMid, boxMid, placement)
		}
	}
}

func TestComputeBaseUnknownPlacementFallsBackToBottom(t *testing.T) {
	t.Parallel()

	want := ComputeBase(PlacementBottom, testAnchor, testPopper)
	for _, placement := range []Placement{"", "middle", "TOP", "top-center", "bottom-"} {
		require.NotPanics(t, func() {
			require.Equal(t, want, ComputeBase(placement, testAnchor, testPopper), placement)
		})
	}
}

func TestComputeBaseLeavesInputsUntouched(t *testing.T) {
	t.Parallel()

	anchor := testAnchor
	popper := Rect{X: 3, Y: 4, Width: 30, Height: 10}
	_ = ComputeBase(PlacementLeftEnd, anchor, popper)

	require.Equal(t, testAnchor, anchor)
	require.Equal(t, Rect{X: 3, Y: 4, Width: 30, Height: 10}, popper)
}

func TestComputeBaseAllowsOverflow(t *testing.T) {
	t.Parallel()

	anchor := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	popper := Rect{Width: 40, Height: 20}

	pos := ComputeBase(PlacementTop, anchor, popper)
	require.Equal(t, Position{Top: -20, Left: -15}, pos)
}

func TestApplyOffsetAndScroll(t *testing.T) {
	t.Parallel()

	got := ApplyOffsetAndScroll(Position{Top: 190, Left: 110}, Offset{X: 5, Y: -3}, Offset{X: 0, Y: 50})
	require.Equal(t, Position{Top: 237, Left: 115}, got)

	got = ApplyOffsetAndScroll(Position{Top: 10, Left: 20}, Offset{}, Offset{X: 7})
	require.Equal(t, Position{Top: 10, Left: 27}, got)
}

func TestRectEdgesAndContains(t *testing.T) {
	t.Parallel()

	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}
	require.Equal(t, 10.0, r.Left())
	require.Equal(t, 20.0, r.Top())
	require.Equal(t, 40.0, r.Right())
	require.Equal(t, 60.0, r.Bottom())

	require.True(t, r.Contains(10, 20))
	require.True(t, r.Contains(39.5, 59.5))
	require.False(t, r.Contains(40, 30))
	require.False(t, r.Contains(5, 30))

	require.Equal(t, Rect{X: 15, Y: 10, Width: 30, Height: 40}, r.Translate(5, -10))
}
