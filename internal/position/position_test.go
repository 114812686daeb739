package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func viewport() Rect {
	return Rect{X: 0, Y: 0, W: 200, H: 60}
}

func TestCompute_StaticStrategies(t *testing.T) {
	tests := []struct {
		name     string
		strategy Strategy
	}{
		{name: "center", strategy: StrategyCenter},
		{name: "edge", strategy: StrategyEdge},
		{name: "corner", strategy: StrategyCorner},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Compute(Request{
				Strategy: tt.strategy,
				Overlay:  Rect{W: 40, H: 10},
				Viewport: viewport(),
			})
			require.NoError(t, err)
			assert.True(t, res.Static, "static strategies are handled by layout, not coordinates")
			assert.Equal(t, Position{}, res.Position)
		})
	}
}

func TestCompute_AnchoredRequiresAnchor(t *testing.T) {
	_, err := Compute(Request{
		Strategy: StrategyAnchored,
		Overlay:  Rect{W: 20, H: 5},
		Viewport: viewport(),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "anchor")
}

func TestCompute_UnknownStrategy(t *testing.T) {
	_, err := Compute(Request{Strategy: Strategy(99), Viewport: viewport()})
	assert.Error(t, err)
}

func TestCompute_AnchoredSides(t *testing.T) {
	anchor := Rect{X: 90, Y: 25, W: 20, H: 5}
	overlay := Rect{W: 10, H: 4}

	tests := []struct {
		name string
		side Side
		want Position
	}{
		// Offset 2 cells off the requested side, AlignStart on the
		// perpendicular axis.
		{name: "bottom", side: SideBottom, want: Position{Top: 32, Left: 90}},
		{name: "top", side: SideTop, want: Position{Top: 19, Left: 90}},
		{name: "right", side: SideRight, want: Position{Top: 25, Left: 112}},
		{name: "left", side: SideLeft, want: Position{Top: 25, Left: 78}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Compute(Request{
				Strategy: StrategyAnchored,
				Anchor:   &anchor,
				Overlay:  overlay,
				Viewport: viewport(),
				Side:     tt.side,
				Align:    AlignStart,
				Offset:   2,
			})
			require.NoError(t, err)
			assert.False(t, res.Static)
			assert.Equal(t, tt.want, res.Position)
		})
	}
}

func TestCompute_AlignmentSymmetry(t *testing.T) {
	// For a fixed anchor and side, start and end placements mirror each
	// other across the anchor's own extent: start's leading edge equals
	// the anchor's leading edge, end's trailing edge equals the anchor's
	// trailing edge.
	anchor := Rect{X: 100, Y: 20, W: 30, H: 6}
	overlay := Rect{W: 12, H: 4}

	compute := func(align Align) Position {
		res, err := Compute(Request{
			Strategy: StrategyAnchored,
			Anchor:   &anchor,
			Overlay:  overlay,
			Viewport: viewport(),
			Side:     SideBottom,
			Align:    align,
		})
		require.NoError(t, err)
		return res.Position
	}

	start := compute(AlignStart)
	center := compute(AlignCenter)
	end := compute(AlignEnd)

	assert.Equal(t, anchor.X, start.Left)
	assert.Equal(t, anchor.Right(), end.Left+overlay.W)
	assert.Equal(t, anchor.X+anchor.W/2-overlay.W/2, center.Left)

	// Mirror: start's offset from the leading edge equals end's offset
	// from the trailing edge.
	assert.Equal(t, start.Left-anchor.X, anchor.Right()-(end.Left+overlay.W))
}

func TestCompute_ClampRightOverflow(t *testing.T) {
	// Anchor near the right edge pushes the overlay past the viewport.
	anchor := Rect{X: 190, Y: 20, W: 8, H: 3}
	overlay := Rect{W: 30, H: 5}

	res, err := Compute(Request{
		Strategy: StrategyAnchored,
		Anchor:   &anchor,
		Overlay:  overlay,
		Viewport: viewport(),
		Side:     SideBottom,
		Align:    AlignStart,
	})
	require.NoError(t, err)

	assert.Equal(t, viewport().W-Margin-overlay.W, res.Position.Left,
		"overlay must sit flush against the right safety margin")
	assert.Equal(t, anchor.Bottom(), res.Position.Top,
		"horizontal clamping must not disturb the vertical axis")
}

func TestCompute_ClampNegativeTopLeft(t *testing.T) {
	anchor := Rect{X: 2, Y: 2, W: 5, H: 2}
	overlay := Rect{W: 20, H: 6}

	res, err := Compute(Request{
		Strategy: StrategyAnchored,
		Anchor:   &anchor,
		Overlay:  overlay,
		Viewport: viewport(),
		Side:     SideTop, // nominal top is negative
		Align:    AlignEnd, // nominal left is negative
	})
	require.NoError(t, err)

	assert.Equal(t, Margin, res.Position.Top)
	assert.Equal(t, Margin, res.Position.Left)
}

func TestCompute_ClampBottomOverflow(t *testing.T) {
	anchor := Rect{X: 50, Y: 57, W: 10, H: 2}
	overlay := Rect{W: 15, H: 10}

	res, err := Compute(Request{
		Strategy: StrategyAnchored,
		Anchor:   &anchor,
		Overlay:  overlay,
		Viewport: viewport(),
		Side:     SideBottom,
		Align:    AlignStart,
	})
	require.NoError(t, err)

	assert.Equal(t, viewport().H-Margin-overlay.H, res.Position.Top)
	assert.Equal(t, anchor.X, res.Position.Left,
		"vertical clamping must not disturb the horizontal axis")
}

func TestCompute_FittingPositionUnchanged(t *testing.T) {
	anchor := Rect{X: 80, Y: 30, W: 10, H: 3}
	overlay := Rect{W: 20, H: 6}

	res, err := Compute(Request{
		Strategy: StrategyAnchored,
		Anchor:   &anchor,
		Overlay:  overlay,
		Viewport: viewport(),
		Side:     SideBottom,
		Align:    AlignCenter,
		Offset:   1,
	})
	require.NoError(t, err)

	// Nominal position fits, so it must come through exactly.
	assert.Equal(t, Position{Top: anchor.Bottom() + 1, Left: anchor.X + anchor.W/2 - overlay.W/2}, res.Position)
}

func TestCompute_ClampedBoxStaysInsideSafeArea(t *testing.T) {
	vp := viewport()
	anchors := []Rect{
		{X: 0, Y: 0, W: 3, H: 1},
		{X: 195, Y: 58, W: 4, H: 2},
		{X: 0, Y: 58, W: 2, H: 2},
		{X: 197, Y: 0, W: 3, H: 1},
	}
	overlay := Rect{W: 24, H: 8}

	for _, anchor := range anchors {
		for _, side := range []Side{SideTop, SideRight, SideBottom, SideLeft} {
			for _, align := range []Align{AlignStart, AlignCenter, AlignEnd} {
				a := anchor
				res, err := Compute(Request{
					Strategy: StrategyAnchored,
					Anchor:   &a,
					Overlay:  overlay,
					Viewport: vp,
					Side:     side,
					Align:    align,
				})
				require.NoError(t, err)

				pos := res.Position
				assert.GreaterOrEqual(t, pos.Left, Margin)
				assert.GreaterOrEqual(t, pos.Top, Margin)
				assert.LessOrEqual(t, pos.Left+overlay.W, vp.W-Margin)
				assert.LessOrEqual(t, pos.Top+overlay.H, vp.H-Margin)
			}
		}
	}
}

func TestRect_Contains(t *testing.T) {
	r := Rect{X: 10, Y: 5, W: 4, H: 3}

	assert.True(t, r.Contains(10, 5))
	assert.True(t, r.Contains(13, 7))
	assert.False(t, r.Contains(14, 5), "right edge is exclusive")
	assert.False(t, r.Contains(10, 8), "bottom edge is exclusive")
	assert.False(t, r.Contains(9, 5))
}
