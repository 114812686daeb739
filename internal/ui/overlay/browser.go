package overlay

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hollisbeck/vellum/internal/domain"
	"github.com/hollisbeck/vellum/internal/registry"
)

// Browser lists stored documents for switching between them
type Browser struct {
	docs   []domain.Summary
	cursor int
}

// NewBrowser creates the document browser over the given index entries
func NewBrowser(docs []domain.Summary) *Browser {
	return &Browser{docs: docs}
}

// Init implements tea.Model
func (b *Browser) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (b *Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return b, nil
	}

	switch keyMsg.String() {
	case "j", "down":
		if b.cursor < len(b.docs)-1 {
			b.cursor++
		}
	case "k", "up":
		if b.cursor > 0 {
			b.cursor--
		}
	case "enter":
		if len(b.docs) == 0 {
			return b, nil
		}
		id := b.docs[b.cursor].ID
		return b, tea.Sequence(Close(), func() tea.Msg {
			return SelectionMsg{Source: "browser", Value: id}
		})
	case "q":
		return b, Close()
	}
	return b, nil
}

// View implements tea.Model
func (b *Browser) View() string {
	var rows []string
	for i, doc := range b.docs {
		style := itemStyle
		prefix := "  "
		if i == b.cursor {
			style = itemActiveStyle
			prefix = "› "
		}
		stamp := hintStyle.Render(doc.UpdatedAt.Format("Jan 2 15:04"))
		rows = append(rows, prefix+style.Render(doc.Title)+"  "+stamp)
	}
	if len(rows) == 0 {
		rows = append(rows, itemDimStyle.Render("  No documents yet"))
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		strings.Join(rows, "\n"),
		"",
		hintStyle.Render("j/k move · enter open · q close"),
	)
	return renderFrame("Documents", body, 44)
}

// Title implements Overlay
func (b *Browser) Title() string {
	return "Documents"
}

// Size implements Overlay
func (b *Browser) Size() (int, int) {
	return 48, len(b.docs) + 7
}

// Layer implements Overlay
func (b *Browser) Layer() registry.Layer {
	return registry.LayerModal
}
