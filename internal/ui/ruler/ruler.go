// Package ruler draws the column guide in the editor pane.
package ruler

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hollisbeck/vellum/internal/ui/styles"
)

// Ruler is the vertical guide marking the target line length. It is a
// transient visual aid: opening any modal hides it so the guide never
// bleeds through a dialog.
type Ruler struct {
	column int
	active bool
	style  lipgloss.Style
}

// New creates a ruler at the given column, initially hidden
func New(column int) *Ruler {
	return &Ruler{
		column: column,
		style:  lipgloss.NewStyle().Foreground(styles.Mauve),
	}
}

// Active reports whether the ruler is currently shown
func (r *Ruler) Active() bool {
	return r.active
}

// Show makes the ruler visible
func (r *Ruler) Show() {
	r.active = true
}

// Hide makes the ruler invisible
func (r *Ruler) Hide() {
	r.active = false
}

// Toggle flips visibility and reports the new state
func (r *Ruler) Toggle() bool {
	r.active = !r.active
	return r.active
}

// Column returns the guide column
func (r *Ruler) Column() int {
	return r.column
}

// SetColumn moves the guide. Non-positive columns are ignored.
func (r *Ruler) SetColumn(column int) {
	if column > 0 {
		r.column = column
	}
}

// Apply draws the guide onto one editor line. Lines shorter than the
// guide column are padded and marked; lines that already reach it are
// returned unchanged so text is never overwritten.
func (r *Ruler) Apply(line string) string {
	if !r.active {
		return line
	}
	width := lipgloss.Width(line)
	if width >= r.column {
		return line
	}
	pad := strings.Repeat(" ", r.column-width-1)
	return line + pad + r.style.Render("│")
}
