package overlay

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/hollisbeck/vellum/internal/registry"
)

// Command is one entry in the command palette
type Command struct {
	Name string
	Hint string
}

type commandSource []Command

func (c commandSource) String(i int) string { return c[i].Name }
func (c commandSource) Len() int            { return len(c) }

// Palette is a fuzzy-searchable command launcher. It floats on the
// popover layer, so opening a modal on top of it is allowed and escape
// dismisses whichever is topmost.
type Palette struct {
	input    textinput.Model
	commands commandSource
	matches  fuzzy.Matches
	cursor   int
	maxShown int
}

// NewPalette creates the command palette over the given command set
func NewPalette(commands []Command) *Palette {
	ti := textinput.New()
	ti.Placeholder = "Type a command..."
	ti.Prompt = "> "
	ti.Focus()
	ti.CharLimit = 64

	p := &Palette{
		input:    ti,
		commands: commandSource(commands),
		maxShown: 8,
	}
	p.filter()
	return p
}

// Init implements tea.Model
func (p *Palette) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (p *Palette) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "up", "ctrl+p":
			if p.cursor > 0 {
				p.cursor--
			}
			return p, nil
		case "down", "ctrl+n":
			if p.cursor < len(p.matches)-1 {
				p.cursor++
			}
			return p, nil
		case "enter":
			if len(p.matches) == 0 {
				return p, nil
			}
			chosen := p.commands[p.matches[p.cursor].Index].Name
			return p, tea.Sequence(Close(), func() tea.Msg {
				return SelectionMsg{Source: "palette", Value: chosen}
			})
		}
	}

	var cmd tea.Cmd
	before := p.input.Value()
	p.input, cmd = p.input.Update(msg)
	if p.input.Value() != before {
		p.filter()
	}
	return p, cmd
}

func (p *Palette) filter() {
	query := strings.TrimSpace(p.input.Value())
	if query == "" {
		p.matches = p.matches[:0]
		for i := range p.commands {
			p.matches = append(p.matches, fuzzy.Match{Index: i})
		}
	} else {
		p.matches = fuzzy.FindFrom(query, p.commands)
	}
	p.cursor = 0
}

// Matches returns how many commands pass the current filter
func (p *Palette) Matches() int {
	return len(p.matches)
}

// View implements tea.Model
func (p *Palette) View() string {
	var rows []string
	shown := p.matches
	if len(shown) > p.maxShown {
		shown = shown[:p.maxShown]
	}

	for i, m := range shown {
		cmd := p.commands[m.Index]
		name := highlightMatch(cmd.Name, m.MatchedIndexes, i == p.cursor)
		row := name
		if cmd.Hint != "" {
			row = lipgloss.JoinHorizontal(lipgloss.Top, name, " ", hintStyle.Render(cmd.Hint))
		}
		if i == p.cursor {
			row = "› " + row
		} else {
			row = "  " + row
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		rows = append(rows, itemDimStyle.Render("  No matching commands"))
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		p.input.View(),
		"",
		strings.Join(rows, "\n"),
	)
	return renderFrame("Commands", body, 44)
}

func highlightMatch(name string, matched []int, active bool) string {
	base := itemStyle
	if active {
		base = itemActiveStyle
	}
	if len(matched) == 0 {
		return base.Render(name)
	}

	hits := make(map[int]bool, len(matched))
	for _, idx := range matched {
		hits[idx] = true
	}

	var b strings.Builder
	for i, r := range name {
		if hits[i] {
			b.WriteString(matchStyle.Render(string(r)))
		} else {
			b.WriteString(base.Render(string(r)))
		}
	}
	return b.String()
}

// Title implements Overlay
func (p *Palette) Title() string {
	return "Commands"
}

// Size implements Overlay
func (p *Palette) Size() (int, int) {
	return 48, p.maxShown + 7
}

// Layer implements Overlay
func (p *Palette) Layer() registry.Layer {
	return registry.LayerPopover
}
