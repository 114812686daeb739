// Package dismiss translates raw input events into close requests for a
// single overlay instance. The controller owns no visibility state: it
// only raises intents, and the component that owns the overlay decides
// whether to act on them. Visibility typically belongs to a parent that
// coordinates several overlays at once, so mutating it here would fight
// that owner.
//
// Escape handling for stacked overlays is deliberately NOT wired per
// instance. The application routes Escape through the overlay registry's
// CloseTopmost so exactly one surface reacts; a per-instance Escape
// handler would race with every other open overlay's handler.
package dismiss

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hollisbeck/vellum/internal/position"
)

// Controller raises close requests for one overlay. Any callback may be
// nil, in which case the corresponding trigger is ignored.
type Controller struct {
	// OnEscape is invoked when the Escape key is pressed while this
	// overlay has key focus.
	OnEscape func()
	// OnBackdrop is invoked when the pointer is pressed on the dimmed
	// backdrop itself, not on overlay content sitting over it.
	OnBackdrop func()
	// OnOutside is invoked when the pointer is pressed outside the
	// overlay's root, for surfaces (popovers) that have no backdrop.
	OnOutside func()
}

// HandleKey processes a key event. It reports whether the event was
// consumed; a consumed Escape must not propagate further.
func (c *Controller) HandleKey(msg tea.KeyMsg) bool {
	if msg.Type != tea.KeyEsc {
		return false
	}
	if c.OnEscape == nil {
		return false
	}
	c.OnEscape()
	return true
}

// HandleMouse processes a pointer event against the overlay's geometry.
// backdrop is the dimmed region behind the overlay (zero Rect when the
// overlay has none); content is the overlay's own root box. A press
// inside content never raises anything: clicking overlay content that
// happens to sit over the backdrop is not a backdrop click.
func (c *Controller) HandleMouse(msg tea.MouseMsg, backdrop, content position.Rect) bool {
	if msg.Action != tea.MouseActionPress {
		return false
	}
	if content.Contains(msg.X, msg.Y) {
		return false
	}

	hasBackdrop := backdrop.W > 0 && backdrop.H > 0
	if hasBackdrop && backdrop.Contains(msg.X, msg.Y) {
		if c.OnBackdrop == nil {
			return false
		}
		c.OnBackdrop()
		return true
	}
	if !hasBackdrop {
		if c.OnOutside == nil {
			return false
		}
		c.OnOutside()
		return true
	}
	return false
}
