package overlay

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hollisbeck/vellum/internal/registry"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func testCommands() []Command {
	return []Command{
		{Name: "New Document", Hint: "ctrl+n"},
		{Name: "Save", Hint: "ctrl+s"},
		{Name: "Delete Document", Hint: "ctrl+d"},
		{Name: "Toggle Ruler", Hint: "ctrl+r"},
	}
}

func TestPalette_ShowsAllWhenEmpty(t *testing.T) {
	p := NewPalette(testCommands())
	assert.Equal(t, 4, p.Matches())
}

func TestPalette_FuzzyFilter(t *testing.T) {
	p := NewPalette(testCommands())

	for _, r := range "doc" {
		model, _ := p.Update(keyRunes(string(r)))
		p = model.(*Palette)
	}

	assert.Equal(t, 2, p.Matches())
}

func TestPalette_NoMatches(t *testing.T) {
	p := NewPalette(testCommands())

	for _, r := range "zzz" {
		model, _ := p.Update(keyRunes(string(r)))
		p = model.(*Palette)
	}

	assert.Equal(t, 0, p.Matches())
	assert.Contains(t, p.View(), "No matching commands")
}

func TestPalette_CursorMovement(t *testing.T) {
	p := NewPalette(testCommands())

	model, _ := p.Update(tea.KeyMsg{Type: tea.KeyDown})
	p = model.(*Palette)
	assert.Equal(t, 1, p.cursor)

	model, _ = p.Update(tea.KeyMsg{Type: tea.KeyUp})
	p = model.(*Palette)
	assert.Equal(t, 0, p.cursor)

	model, _ = p.Update(tea.KeyMsg{Type: tea.KeyUp})
	p = model.(*Palette)
	assert.Equal(t, 0, p.cursor, "cursor must not go negative")
}

func TestPalette_FilterResetsCursor(t *testing.T) {
	p := NewPalette(testCommands())

	model, _ := p.Update(tea.KeyMsg{Type: tea.KeyDown})
	p = model.(*Palette)
	require.Equal(t, 1, p.cursor)

	model, _ = p.Update(keyRunes("s"))
	p = model.(*Palette)
	assert.Equal(t, 0, p.cursor)
}

func TestPalette_EnterWithNoMatchesIsNoop(t *testing.T) {
	p := NewPalette(nil)
	_, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
}

func TestPalette_EnterSelects(t *testing.T) {
	p := NewPalette(testCommands())
	_, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.NotNil(t, cmd)
}

func TestPalette_Layer(t *testing.T) {
	assert.Equal(t, registry.LayerPopover, NewPalette(nil).Layer())
}
