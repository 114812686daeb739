// Package position computes on-screen placement for floating surfaces.
// All coordinates are terminal cells, measured from the top-left of the
// viewport, border-box.
package position

import (
	"fmt"
)

// Margin is the safety gap kept between a clamped overlay and the
// viewport edge, in cells.
const Margin = 8

// Strategy selects how an overlay is placed.
type Strategy int

const (
	// StrategyCenter centers the overlay in the viewport via static
	// layout; no per-frame computation is needed.
	StrategyCenter Strategy = iota
	// StrategyAnchored places the overlay relative to an anchor rect.
	StrategyAnchored
	// StrategyEdge pins the overlay to a viewport edge via static layout.
	StrategyEdge
	// StrategyCorner pins the overlay to a viewport corner via static layout.
	StrategyCorner
)

// Side is the side of the anchor an anchored overlay attaches to.
type Side int

const (
	SideTop Side = iota
	SideRight
	SideBottom
	SideLeft
)

// Align positions the overlay along the axis perpendicular to Side.
type Align int

const (
	// AlignStart keeps the overlay flush with the anchor's leading edge.
	AlignStart Align = iota
	// AlignCenter centers the overlay on the anchor's midpoint.
	AlignCenter
	// AlignEnd keeps the overlay flush with the anchor's trailing edge.
	AlignEnd
)

// Rect is a rectangle in viewport cell coordinates.
type Rect struct {
	X, Y, W, H int
}

// Right returns the first column past the rectangle.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the first row past the rectangle.
func (r Rect) Bottom() int { return r.Y + r.H }

// Contains reports whether the cell at (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Position is a computed top/left placement in viewport coordinates.
type Position struct {
	Top  int
	Left int
}

// Request is the input to Compute.
type Request struct {
	Strategy Strategy
	Anchor   *Rect // required for StrategyAnchored
	Overlay  Rect  // the overlay's own measured box; X/Y ignored
	Viewport Rect
	Side     Side
	Align    Align
	Offset   int // gap between anchor and overlay, in cells
}

// Result is the output of Compute. When Static is true the strategy is
// handled entirely by static layout and Position is meaningless; only
// anchored placement produces a coordinate to apply.
type Result struct {
	Position Position
	Static   bool
}

// Compute resolves a placement request. A missing anchor for anchored
// placement is a programmer error and fails loudly with an error rather
// than silently mispositioning the overlay.
func Compute(req Request) (Result, error) {
	switch req.Strategy {
	case StrategyCenter, StrategyEdge, StrategyCorner:
		return Result{Static: true}, nil
	case StrategyAnchored:
		if req.Anchor == nil {
			return Result{}, fmt.Errorf("position: anchored placement requires an anchor rect")
		}
		pos := anchoredPosition(*req.Anchor, req.Overlay, req.Side, req.Align, req.Offset)
		pos = clamp(pos, req.Overlay, req.Viewport)
		return Result{Position: pos}, nil
	default:
		return Result{}, fmt.Errorf("position: unknown strategy %d", req.Strategy)
	}
}

// anchoredPosition computes the nominal, unclamped placement: the overlay
// sits Offset cells off the requested side, aligned along the
// perpendicular axis.
func anchoredPosition(anchor, overlay Rect, side Side, align Align, offset int) Position {
	var pos Position

	switch side {
	case SideTop:
		pos.Top = anchor.Y - overlay.H - offset
		pos.Left = alignOnAxis(anchor.X, anchor.W, overlay.W, align)
	case SideBottom:
		pos.Top = anchor.Bottom() + offset
		pos.Left = alignOnAxis(anchor.X, anchor.W, overlay.W, align)
	case SideLeft:
		pos.Left = anchor.X - overlay.W - offset
		pos.Top = alignOnAxis(anchor.Y, anchor.H, overlay.H, align)
	case SideRight:
		pos.Left = anchor.Right() + offset
		pos.Top = alignOnAxis(anchor.Y, anchor.H, overlay.H, align)
	}

	return pos
}

// alignOnAxis aligns an overlay extent against an anchor extent on the
// axis perpendicular to the attachment side.
func alignOnAxis(anchorStart, anchorSize, overlaySize int, align Align) int {
	switch align {
	case AlignCenter:
		return anchorStart + anchorSize/2 - overlaySize/2
	case AlignEnd:
		return anchorStart + anchorSize - overlaySize
	default: // AlignStart
		return anchorStart
	}
}

// clamp shifts the position so the overlay's bounding box stays within
// the viewport, keeping a Margin-cell gap. Each axis clamps
// independently: horizontal overflow never affects the vertical
// coordinate and vice versa. Positions that already fit pass through
// unchanged.
func clamp(pos Position, overlay, viewport Rect) Position {
	if over := (pos.Left + overlay.W) - (viewport.Right() - Margin); over > 0 {
		pos.Left -= over
	}
	if pos.Left < viewport.X+Margin {
		pos.Left = viewport.X + Margin
	}

	if over := (pos.Top + overlay.H) - (viewport.Bottom() - Margin); over > 0 {
		pos.Top -= over
	}
	if pos.Top < viewport.Y+Margin {
		pos.Top = viewport.Y + Margin
	}

	return pos
}
