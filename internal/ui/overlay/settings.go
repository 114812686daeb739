package overlay

import (
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hollisbeck/vellum/internal/registry"
)

// SettingsAppliedMsg carries edited settings back to the app
type SettingsAppliedMsg struct {
	RulerColumn int
	Theme       string
	WordWrap    bool
}

const (
	fieldRulerColumn = iota
	fieldTheme
	fieldWordWrap
	fieldCount
)

// Settings is a sheet for editing the handful of options that matter
// while writing: ruler column, theme, and word wrap.
type Settings struct {
	ruler    textinput.Model
	theme    textinput.Model
	wordWrap bool
	focus    int
	errMsg   string
}

// NewSettings creates the settings sheet seeded with current values
func NewSettings(rulerColumn int, theme string, wordWrap bool) *Settings {
	ruler := textinput.New()
	ruler.SetValue(strconv.Itoa(rulerColumn))
	ruler.CharLimit = 3
	ruler.Prompt = ""
	ruler.Focus()

	th := textinput.New()
	th.SetValue(theme)
	th.CharLimit = 24
	th.Prompt = ""

	return &Settings{
		ruler:    ruler,
		theme:    th,
		wordWrap: wordWrap,
	}
}

// Init implements tea.Model
func (s *Settings) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (s *Settings) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "tab", "down":
			s.setFocus((s.focus + 1) % fieldCount)
			return s, nil
		case "shift+tab", "up":
			s.setFocus((s.focus + fieldCount - 1) % fieldCount)
			return s, nil
		case " ":
			if s.focus == fieldWordWrap {
				s.wordWrap = !s.wordWrap
				return s, nil
			}
		case "enter":
			return s.apply()
		}
	}

	var cmd tea.Cmd
	switch s.focus {
	case fieldRulerColumn:
		s.ruler, cmd = s.ruler.Update(msg)
	case fieldTheme:
		s.theme, cmd = s.theme.Update(msg)
	}
	return s, cmd
}

func (s *Settings) setFocus(focus int) {
	s.focus = focus
	s.ruler.Blur()
	s.theme.Blur()
	switch focus {
	case fieldRulerColumn:
		s.ruler.Focus()
	case fieldTheme:
		s.theme.Focus()
	}
}

func (s *Settings) apply() (tea.Model, tea.Cmd) {
	col, err := strconv.Atoi(s.ruler.Value())
	if err != nil || col < 1 {
		s.errMsg = "Ruler column must be a positive number"
		return s, nil
	}
	s.errMsg = ""

	applied := SettingsAppliedMsg{
		RulerColumn: col,
		Theme:       s.theme.Value(),
		WordWrap:    s.wordWrap,
	}
	return s, tea.Sequence(Close(), func() tea.Msg {
		return applied
	})
}

func (s *Settings) label(name string, focused bool) string {
	if focused {
		return itemActiveStyle.Width(14).Render(name)
	}
	return itemStyle.Width(14).Render(name)
}

// View implements tea.Model
func (s *Settings) View() string {
	wrap := "off"
	if s.wordWrap {
		wrap = "on"
	}
	wrapValue := itemStyle.Render(wrap)
	if s.focus == fieldWordWrap {
		wrapValue = itemActiveStyle.Render(wrap + " (space toggles)")
	}

	rows := []string{
		lipgloss.JoinHorizontal(lipgloss.Top, s.label("Ruler column", s.focus == fieldRulerColumn), s.ruler.View()),
		lipgloss.JoinHorizontal(lipgloss.Top, s.label("Theme", s.focus == fieldTheme), s.theme.View()),
		lipgloss.JoinHorizontal(lipgloss.Top, s.label("Word wrap", s.focus == fieldWordWrap), wrapValue),
	}

	body := lipgloss.JoinVertical(lipgloss.Left, rows...)
	if s.errMsg != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, body, "", itemDimStyle.Render(s.errMsg))
	}
	body = lipgloss.JoinVertical(lipgloss.Left, body, "", hintStyle.Render("tab next field · enter apply"))
	return renderFrame("Settings", body, 46)
}

// Title implements Overlay
func (s *Settings) Title() string {
	return "Settings"
}

// Size implements Overlay
func (s *Settings) Size() (int, int) {
	return 50, 11
}

// Layer implements Overlay
func (s *Settings) Layer() registry.Layer {
	return registry.LayerSheet
}
