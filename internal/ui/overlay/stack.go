package overlay

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hollisbeck/vellum/internal/registry"
)

type entry struct {
	id      string
	overlay Overlay
}

// Stack manages open overlays in z-order. The last pushed overlay is on
// top and receives all input. Each overlay is mirrored into the registry
// so the dismissal path can find the topmost surface without walking the
// UI tree.
type Stack struct {
	entries []entry
	reg     *registry.Registry
}

// NewStack creates an empty overlay stack backed by the given registry
func NewStack(reg *registry.Registry) *Stack {
	return &Stack{reg: reg}
}

// Push adds an overlay to the top of the stack and returns its Init command
func (s *Stack) Push(o Overlay) tea.Cmd {
	id := registry.NextID()
	s.entries = append(s.entries, entry{id: id, overlay: o})
	s.reg.Register(id, o.Layer(), func() {
		s.remove(id)
	})
	return o.Init()
}

// Pop removes and returns the top overlay, or nil if the stack is empty
func (s *Stack) Pop() Overlay {
	if len(s.entries) == 0 {
		return nil
	}
	top := s.entries[len(s.entries)-1]
	s.remove(top.id)
	return top.overlay
}

func (s *Stack) remove(id string) {
	for i, e := range s.entries {
		if e.id == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			break
		}
	}
	s.reg.Unregister(id)
}

// Remove closes the given overlay wherever it sits in the stack.
// Returns false when the overlay is not open.
func (s *Stack) Remove(o Overlay) bool {
	for _, e := range s.entries {
		if e.overlay == o {
			s.remove(e.id)
			return true
		}
	}
	return false
}

// Current returns the top overlay without removing it
func (s *Stack) Current() Overlay {
	if len(s.entries) == 0 {
		return nil
	}
	return s.entries[len(s.entries)-1].overlay
}

// IsEmpty returns true if no overlays are open
func (s *Stack) IsEmpty() bool {
	return len(s.entries) == 0
}

// Len returns the number of open overlays
func (s *Stack) Len() int {
	return len(s.entries)
}

// Clear closes all overlays, bottom to top
func (s *Stack) Clear() {
	for len(s.entries) > 0 {
		s.remove(s.entries[0].id)
	}
}

// CloseTop asks the registry to dismiss the topmost interactive surface.
// Toasts are skipped; they expire on their own. Returns false when
// nothing was open.
func (s *Stack) CloseTop() bool {
	return s.reg.CloseTopmost(registry.LayerModal, registry.LayerPopover, registry.LayerSheet)
}

// Update routes a message to the top overlay. A CloseOverlayMsg pops the
// stack instead of being forwarded.
func (s *Stack) Update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(CloseOverlayMsg); ok {
		s.Pop()
		return nil
	}

	if len(s.entries) == 0 {
		return nil
	}

	top := &s.entries[len(s.entries)-1]
	updated, cmd := top.overlay.Update(msg)
	if o, ok := updated.(Overlay); ok {
		top.overlay = o
	}
	return cmd
}
