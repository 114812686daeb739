package overlay

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hollisbeck/vellum/internal/registry"
)

// KeyBinding is one key and what it does
type KeyBinding struct {
	Key  string
	Desc string
}

// KeyCategory groups related bindings under a heading
type KeyCategory struct {
	Name     string
	Bindings []KeyBinding
}

// Help shows the editor's keybindings in a scrollable modal
type Help struct {
	categories []KeyCategory
	scroll     int
	height     int
}

// NewHelp creates the help overlay
func NewHelp() *Help {
	return &Help{
		categories: defaultCategories(),
		height:     22,
	}
}

func defaultCategories() []KeyCategory {
	return []KeyCategory{
		{
			Name: "Editing",
			Bindings: []KeyBinding{
				{Key: "i", Desc: "Enter insert mode"},
				{Key: "esc", Desc: "Back to normal mode"},
				{Key: "v", Desc: "Enter select mode"},
				{Key: "ctrl+s", Desc: "Save document"},
			},
		},
		{
			Name: "Documents",
			Bindings: []KeyBinding{
				{Key: "ctrl+n", Desc: "New document"},
				{Key: "ctrl+o", Desc: "Open document"},
				{Key: "ctrl+k", Desc: "Command palette"},
				{Key: "ctrl+d", Desc: "Delete document"},
			},
		},
		{
			Name: "View",
			Bindings: []KeyBinding{
				{Key: "tab", Desc: "Switch pane"},
				{Key: "ctrl+r", Desc: "Toggle column ruler"},
				{Key: ",", Desc: "Settings"},
				{Key: "?", Desc: "This help"},
			},
		},
		{
			Name: "Links",
			Bindings: []KeyBinding{
				{Key: "gl", Desc: "Preview link under cursor"},
			},
		},
	}
}

// Init implements tea.Model
func (h *Help) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (h *Help) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return h, nil
	}

	switch keyMsg.String() {
	case "j", "down":
		if h.scroll < h.maxScroll() {
			h.scroll++
		}
	case "k", "up":
		if h.scroll > 0 {
			h.scroll--
		}
	case "g":
		h.scroll = 0
	case "G":
		h.scroll = h.maxScroll()
	case "q", "?", "enter":
		return h, Close()
	}
	return h, nil
}

func (h *Help) lines() []string {
	var out []string
	for i, cat := range h.categories {
		if i > 0 {
			out = append(out, "")
		}
		out = append(out, titleStyle.Render(cat.Name))
		for _, b := range cat.Bindings {
			key := keyStyle.Width(8).Render(b.Key)
			out = append(out, lipgloss.JoinHorizontal(lipgloss.Top, key, itemStyle.Render(b.Desc)))
		}
	}
	return out
}

func (h *Help) maxScroll() int {
	n := len(h.lines()) - h.height
	if n < 0 {
		return 0
	}
	return n
}

// View implements tea.Model
func (h *Help) View() string {
	lines := h.lines()
	end := h.scroll + h.height
	if end > len(lines) {
		end = len(lines)
	}
	visible := strings.Join(lines[h.scroll:end], "\n")

	footer := hintStyle.Render("j/k scroll · q close")
	body := lipgloss.JoinVertical(lipgloss.Left, visible, "", footer)
	return renderFrame("Help", body, 48)
}

// Title implements Overlay
func (h *Help) Title() string {
	return "Help"
}

// Size implements Overlay
func (h *Help) Size() (int, int) {
	return 52, h.height + 6
}

// Layer implements Overlay
func (h *Help) Layer() registry.Layer {
	return registry.LayerModal
}
