package statusbar

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/hollisbeck/vellum/internal/types"
	"github.com/hollisbeck/vellum/internal/ui/styles"
)

// StatusBar represents the status bar at the bottom of the TUI
type StatusBar struct {
	mode   types.Mode
	info   string
	width  int
	styles *styles.Styles
}

// New creates a new StatusBar. info is free text shown after the hints,
// typically the document title and a dirty marker.
func New(mode types.Mode, info string, width int, styles *styles.Styles) StatusBar {
	return StatusBar{
		mode:   mode,
		info:   info,
		width:  width,
		styles: styles,
	}
}

// Render renders the status bar as a string
func (sb StatusBar) Render() string {
	modeBadge := sb.styles.StatusMode.Render(" " + sb.mode.String() + " ")

	parts := []string{modeBadge}
	separator := sb.styles.StatusHint.Render(" │ ")

	if hints := GetHints(sb.mode); hints != "" {
		parts = append(parts, separator, sb.styles.StatusHint.Render(hints))
	}
	if sb.info != "" {
		parts = append(parts, separator, sb.styles.StatusInfo.Render(sb.info))
	}

	content := lipgloss.JoinHorizontal(lipgloss.Left, parts...)
	return sb.styles.StatusBar.Width(sb.width).Render(content)
}
