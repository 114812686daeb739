package overlay

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/hollisbeck/vellum/internal/ui/styles"
)

var (
	frameStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(styles.Surface2).
			Background(styles.Base).
			Padding(1, 2)

	titleStyle = lipgloss.NewStyle().
			Foreground(styles.Text).
			Bold(true)

	itemStyle = lipgloss.NewStyle().
			Foreground(styles.Text)

	itemActiveStyle = lipgloss.NewStyle().
			Foreground(styles.Blue).
			Bold(true)

	itemDimStyle = lipgloss.NewStyle().
			Foreground(styles.Overlay0)

	keyStyle = lipgloss.NewStyle().
			Foreground(styles.Yellow).
			Bold(true)

	hintStyle = lipgloss.NewStyle().
			Foreground(styles.Overlay1)

	matchStyle = lipgloss.NewStyle().
			Foreground(styles.Peach).
			Underline(true)
)

// renderFrame wraps content in the standard overlay chrome: rounded
// border, title line, fixed width.
func renderFrame(title, content string, width int) string {
	header := titleStyle.Render(title)
	body := lipgloss.JoinVertical(lipgloss.Left, header, "", content)
	return frameStyle.Width(width).Render(body)
}
