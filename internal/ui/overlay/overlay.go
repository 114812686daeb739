// Package overlay implements the floating surfaces that stack above the
// editor: modal dialogs, anchored popovers, and settings sheets. Every
// overlay is a self-contained bubbletea model; the Stack owns ordering
// and routes input to whichever overlay is on top.
package overlay

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hollisbeck/vellum/internal/registry"
)

// Overlay is a modal component that sits above the main document view
type Overlay interface {
	tea.Model

	// Title returns the overlay's title for display
	Title() string

	// Size returns the preferred width and height
	Size() (width, height int)

	// Layer reports which stacking layer the overlay belongs to
	Layer() registry.Layer
}

// CloseOverlayMsg signals that the top overlay should be closed
type CloseOverlayMsg struct{}

// Close returns a command that closes the top overlay
func Close() tea.Cmd {
	return func() tea.Msg {
		return CloseOverlayMsg{}
	}
}

// SelectionMsg carries a value chosen inside an overlay back to the app
type SelectionMsg struct {
	// Source identifies which overlay produced the selection
	Source string
	// Value is the chosen item, command name, or confirmation verdict
	Value string
}
