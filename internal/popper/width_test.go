package popper

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveWidth(t *testing.T) {
	t.Parallel()

	anchor := Rect{X: 4, Y: 8, Width: 120, Height: 24}

	px, ok := ResolveWidth(WidthMatchAnchor, anchor).Pixels()
	require.True(t, ok)
	require.Equal(t, 120.0, px)

	auto := ResolveWidth(WidthAuto, anchor)
	require.True(t, auto.IsUnconstrained())
	_, ok = auto.Pixels()
	require.False(t, ok)

	maxContent := ResolveWidth(WidthMaxContent, anchor)
	require.True(t, maxContent.IsMaxContent())
	require.Equal(t, maxContent, ResolveWidth(WidthMaxContent, Rect{Width: 999}))

	require.True(t, ResolveWidth("stretch", anchor).IsUnconstrained())
}

func TestWidthString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "auto", Unconstrained().String())
	require.Equal(t, "max-content", MaxContent().String())
	require.Equal(t, "120px", Pixels(120).String())
	require.Equal(t, "12.5px", Pixels(12.5).String())
}

func TestWidthJSON(t *testing.T) {
	t.Parallel()

	result := PositionResult{Top: 1, Left: 2, ZIndex: 3, Width: Pixels(120)}
	data, err := json.Marshal(result)
	require.NoError(t, err)
	require.JSONEq(t, `{"top":1,"left":2,"zIndex":3,"width":120}`, string(data))

	data, err = json.Marshal(PositionResult{Width: MaxContent()})
	require.NoError(t, err)
	require.JSONEq(t, `{"top":0,"left":0,"zIndex":0,"width":"max-content"}`, string(data))

	var decoded PositionResult
	require.NoError(t, json.Unmarshal([]byte(`{"top":1,"left":2,"zIndex":3,"width":null}`), &decoded))
	require.True(t, decoded.Width.IsUnconstrained())

	require.NoError(t, json.Unmarshal([]byte(`{"width":"max-content"}`), &decoded))
	require.True(t, decoded.Width.IsMaxContent())

	require.Error(t, json.Unmarshal([]byte(`{"width":"wide"}`), &decoded))
}

func TestParseWidthMode(t *testing.T) {
	t.Parallel()

	mode, err := ParseWidthMode("")
	require.NoError(t, err)
	require.Equal(t, WidthAuto, mode)

	mode, err = ParseWidthMode(" Match-Anchor ")
	require.NoError(t, err)
	require.Equal(t, WidthMatchAnchor, mode)

	_, err = ParseWidthMode("fill")
	require.Error(t, err)
}
