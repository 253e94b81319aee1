package popper

import (
	"testing"

	"github.com/stretchr/testify/require"

	popperrors "github.com/alexisbeaulieu97/popper/pkg/errors"
)

func TestPlacementDecomposition(t *testing.T) {
	t.Parallel()

	type tc struct {
		side  Side
		align Alignment
	}

	tests := map[Placement]tc{
		PlacementTop:       {SideTop, AlignCenter},
		PlacementBottomEnd: {SideBottom, AlignEnd},
		PlacementLeftStart: {SideLeft, AlignStart},
		PlacementRight:     {SideRight, AlignCenter},
		"sideways":         {SideBottom, AlignCenter},
	}

	for placement, want := range tests {
		require.Equal(t, want.side, placement.Side(), placement)
		require.Equal(t, want.align, placement.Alignment(), placement)
	}
}

func TestPlacementsAreDistinctAndValid(t *testing.T) {
	t.Parallel()

	all := Placements()
	require.Len(t, all, 12)

	seen := make(map[Placement]struct{}, len(all))
	for _, p := range all {
		require.True(t, p.Valid(), p)
		seen[p] = struct{}{}
	}
	require.Len(t, seen, 12)

	all[0] = "mutated"
	require.Equal(t, PlacementTop, Placements()[0])
}

func TestParsePlacement(t *testing.T) {
	t.Parallel()

	p, err := ParsePlacement("")
	require.NoError(t, err)
	require.Equal(t, PlacementBottom, p)

	p, err = ParsePlacement(" Right-End ")
	require.NoError(t, err)
	require.Equal(t, PlacementRightEnd, p)

	_, err = ParsePlacement("center")
	var validationErr *popperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "placement", validationErr.Field)
}

func TestSideAndAlignmentStrings(t *testing.T) {
	t.Parallel()

	require.Equal(t, "top", SideTop.String())
	require.Equal(t, "bottom", SideBottom.String())
	require.Equal(t, "left", SideLeft.String())
	require.Equal(t, "right", SideRight.String())
	require.Equal(t, "start", AlignStart.String())
	require.Equal(t, "end", AlignEnd.String())
	require.Equal(t, "center", AlignCenter.String())
}
