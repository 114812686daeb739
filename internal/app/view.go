package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hollisbeck/vellum/internal/ui/overlay"
	"github.com/hollisbeck/vellum/internal/ui/statusbar"
	"github.com/hollisbeck/vellum/internal/ui/toast"
)

// View implements tea.Model
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	body := m.renderPanes()
	status := statusbar.New(m.state.Mode(), m.docInfo(), m.width, m.styles).Render()
	screen := lipgloss.JoinVertical(lipgloss.Left, body, status)

	if !m.overlays.IsEmpty() {
		screen = m.renderOverlays()
	}

	if toastView := toast.New(m.styles).Render(m.toasts, m.width); toastView != "" {
		screen = lipgloss.JoinVertical(lipgloss.Left,
			screen,
			lipgloss.PlaceHorizontal(m.width, lipgloss.Right, toastView),
		)
	}

	return screen
}

func (m *Model) docInfo() string {
	if m.doc == nil {
		return ""
	}
	info := m.doc.Title
	if m.dirty {
		info += " [+]"
	}
	if n := len(m.diags); n > 0 {
		info += fmt.Sprintf("  %d issue(s)", n)
	}
	return info
}

func (m *Model) renderPanes() string {
	paneHeight := m.height - 3

	if m.panes.narrow {
		if m.panes.active == PanePreview {
			return m.renderPreviewPane(m.width-2, paneHeight)
		}
		return m.renderEditorPane(m.width-2, paneHeight)
	}

	half := m.width/2 - 2
	editor := m.renderEditorPane(half, paneHeight)
	preview := m.renderPreviewPane(half, paneHeight)
	return lipgloss.JoinHorizontal(lipgloss.Top, editor, preview)
}

func (m *Model) renderEditorPane(width, height int) string {
	content := m.editor.View()
	if m.ruler.Active() {
		lines := strings.Split(content, "\n")
		for i, line := range lines {
			lines[i] = m.ruler.Apply(line)
		}
		content = strings.Join(lines, "\n")
	}

	title := m.styles.PaneTitle.Render("Editor")
	pane := m.paneStyle(PaneEditor).Width(width).Height(height)
	return pane.Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m *Model) renderPreviewPane(width, height int) string {
	title := m.styles.PaneTitle.Render("Preview")
	content := m.preview

	if len(m.diags) > 0 {
		var lines []string
		for _, d := range m.diags {
			style := m.styles.DiagnosticWarning
			if d.Severity.String() == "error" {
				style = m.styles.DiagnosticError
			}
			lines = append(lines, style.Render(fmt.Sprintf("%d: %s", d.Line, d.Message)))
		}
		content = lipgloss.JoinVertical(lipgloss.Left, content, "", strings.Join(lines, "\n"))
	}

	pane := m.paneStyle(PanePreview).Width(width).Height(height)
	return pane.Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m *Model) paneStyle(p Pane) lipgloss.Style {
	if m.panes.active == p {
		return m.styles.PaneActive
	}
	return m.styles.Pane
}

func (m *Model) renderOverlays() string {
	top := m.overlays.Current()
	view := top.View()

	if p, ok := top.(*overlay.LinkPopover); ok {
		pos := p.Pos()
		placed := lipgloss.NewStyle().
			MarginTop(pos.Top).
			MarginLeft(pos.Left).
			Render(view)
		return lipgloss.Place(m.width, m.height, lipgloss.Left, lipgloss.Top, placed,
			lipgloss.WithWhitespaceChars(" "))
	}

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, view,
		lipgloss.WithWhitespaceChars("░"),
		lipgloss.WithWhitespaceForeground(lipgloss.Color("#1e2030")))
}
