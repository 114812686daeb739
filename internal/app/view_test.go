package app

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestView_BeforeFirstResize(t *testing.T) {
	m := newTestModel(t)
	m.width = 0
	assert.Equal(t, "Loading...", m.View())
}

func TestView_ShowsBothPanesWhenWide(t *testing.T) {
	m := newTestModel(t)

	view := m.View()
	assert.Contains(t, view, "Editor")
	assert.Contains(t, view, "Preview")
}

func TestView_ShowsOnePaneWhenNarrow(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})

	view := m.View()
	assert.Contains(t, view, "Editor")
	assert.NotContains(t, view, "Preview")
}

func TestView_StatusBarShowsMode(t *testing.T) {
	m := newTestModel(t)
	assert.Contains(t, m.View(), "NORMAL")

	m.Update(keyRunes("i"))
	assert.Contains(t, m.View(), "INSERT")
}

func TestView_OverlayReplacesPanes(t *testing.T) {
	m := newTestModel(t)

	m.Update(keyRunes("?"))
	view := m.View()
	assert.Contains(t, view, "Help")
}

func TestView_ToastsAppear(t *testing.T) {
	m := newTestModel(t)

	m.Update(keyRunes("i"))
	m.Update(keyRunes("x"))
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})

	assert.Contains(t, m.View(), "Saved")
}
