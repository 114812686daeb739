// Package styles defines the shared lipgloss styles for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles holds all the UI styles
type Styles struct {
	// Panes
	Pane        lipgloss.Style
	PaneActive  lipgloss.Style
	PaneTitle   lipgloss.Style
	EditorText  lipgloss.Style
	PreviewText lipgloss.Style

	// Document list
	DocItem       lipgloss.Style
	DocItemActive lipgloss.Style
	DocTimestamp  lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusMode lipgloss.Style
	StatusHint lipgloss.Style
	StatusInfo lipgloss.Style

	// Overlays
	Overlay          lipgloss.Style
	OverlayBackdrop  lipgloss.Style
	OverlayTitle     lipgloss.Style
	MenuItem         lipgloss.Style
	MenuItemActive   lipgloss.Style
	MenuItemDisabled lipgloss.Style
	MenuKey          lipgloss.Style
	Separator        lipgloss.Style

	// Toasts
	ToastInfo    lipgloss.Style
	ToastSuccess lipgloss.Style
	ToastWarning lipgloss.Style
	ToastError   lipgloss.Style

	// Ruler
	Ruler lipgloss.Style

	// Diagnostics
	DiagnosticWarning lipgloss.Style
	DiagnosticError   lipgloss.Style
}

// New creates a new Styles instance with Catppuccin Macchiato theme
func New() *Styles {
	return &Styles{
		Pane: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface1).
			Padding(0, 1),

		PaneActive: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Lavender).
			Padding(0, 1),

		PaneTitle: lipgloss.NewStyle().
			Foreground(Subtext0).
			Bold(true).
			Padding(0, 1),

		EditorText: lipgloss.NewStyle().
			Foreground(Text),

		PreviewText: lipgloss.NewStyle().
			Foreground(Subtext1),

		DocItem: lipgloss.NewStyle().
			Foreground(Text).
			Padding(0, 1),

		DocItemActive: lipgloss.NewStyle().
			Foreground(Blue).
			Bold(true).
			Padding(0, 1),

		DocTimestamp: lipgloss.NewStyle().
			Foreground(Overlay1),

		StatusBar: lipgloss.NewStyle().
			Background(Surface0).
			Foreground(Subtext0).
			Padding(0, 1),

		StatusMode: lipgloss.NewStyle().
			Background(Blue).
			Foreground(Base).
			Bold(true).
			Padding(0, 1),

		StatusHint: lipgloss.NewStyle().
			Foreground(Overlay1),

		StatusInfo: lipgloss.NewStyle().
			Foreground(Subtext0),

		Overlay: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface2).
			Background(Base).
			Padding(1, 2),

		OverlayBackdrop: lipgloss.NewStyle().
			Background(Mantle).
			Foreground(Overlay0),

		OverlayTitle: lipgloss.NewStyle().
			Foreground(Text).
			Bold(true).
			MarginBottom(1),

		MenuItem: lipgloss.NewStyle().
			Foreground(Text),

		MenuItemActive: lipgloss.NewStyle().
			Foreground(Blue).
			Bold(true),

		MenuItemDisabled: lipgloss.NewStyle().
			Foreground(Overlay0),

		MenuKey: lipgloss.NewStyle().
			Foreground(Yellow).
			Bold(true),

		Separator: lipgloss.NewStyle().
			Foreground(Surface1),

		ToastInfo: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Blue).
			Foreground(Blue).
			Padding(0, 1),

		ToastSuccess: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Green).
			Foreground(Green).
			Padding(0, 1),

		ToastWarning: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Yellow).
			Foreground(Yellow).
			Padding(0, 1),

		ToastError: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Red).
			Foreground(Red).
			Padding(0, 1),

		Ruler: lipgloss.NewStyle().
			Foreground(Mauve),

		DiagnosticWarning: lipgloss.NewStyle().
			Foreground(Yellow),

		DiagnosticError: lipgloss.NewStyle().
			Foreground(Red).
			Bold(true),
	}
}
