package overlay

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hollisbeck/vellum/internal/registry"
)

// ConfirmResultMsg carries the user's answer out of a Confirm overlay
type ConfirmResultMsg struct {
	Action    string
	Confirmed bool
}

// Confirm asks a yes/no question before a destructive action, such as
// discarding unsaved changes or deleting a document.
type Confirm struct {
	title    string
	question string
	action   string
	yes      bool
}

// NewConfirm creates a confirmation dialog. action tags the result so
// the app knows which operation was being confirmed.
func NewConfirm(title, question, action string) *Confirm {
	return &Confirm{
		title:    title,
		question: question,
		action:   action,
	}
}

// Init implements tea.Model
func (c *Confirm) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (c *Confirm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch keyMsg.String() {
	case "y", "Y":
		return c, tea.Sequence(Close(), c.result(true))
	case "n", "N", "q":
		return c, tea.Sequence(Close(), c.result(false))
	case "left", "h", "right", "l", "tab":
		c.yes = !c.yes
	case "enter":
		return c, tea.Sequence(Close(), c.result(c.yes))
	}
	return c, nil
}

func (c *Confirm) result(confirmed bool) tea.Cmd {
	return func() tea.Msg {
		return ConfirmResultMsg{Action: c.action, Confirmed: confirmed}
	}
}

// View implements tea.Model
func (c *Confirm) View() string {
	yesLabel := "  Yes  "
	noLabel := "  No  "

	var yes, no string
	if c.yes {
		yes = itemActiveStyle.Render(yesLabel)
		no = itemDimStyle.Render(noLabel)
	} else {
		yes = itemDimStyle.Render(yesLabel)
		no = itemActiveStyle.Render(noLabel)
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Top, yes, "  ", no)
	body := lipgloss.JoinVertical(lipgloss.Left,
		itemStyle.Render(c.question),
		"",
		buttons,
		"",
		hintStyle.Render("y/n · enter confirm"),
	)
	return renderFrame(c.title, body, 44)
}

// Title implements Overlay
func (c *Confirm) Title() string {
	return c.title
}

// Size implements Overlay
func (c *Confirm) Size() (int, int) {
	return 48, 9
}

// Layer implements Overlay
func (c *Confirm) Layer() registry.Layer {
	return registry.LayerModal
}
