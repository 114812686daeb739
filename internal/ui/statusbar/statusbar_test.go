package statusbar

import (
	"strings"
	"testing"

	"github.com/hollisbeck/vellum/internal/types"
	"github.com/hollisbeck/vellum/internal/ui/styles"
)

func TestStatusBar_RenderNormalMode(t *testing.T) {
	style := styles.New()
	sb := New(types.ModeNormal, "", 80, style)

	result := sb.Render()

	if !strings.Contains(result, "NORMAL") {
		t.Errorf("Expected status bar to contain 'NORMAL', got: %s", result)
	}
	if !strings.Contains(result, "i: insert") {
		t.Errorf("Expected status bar to contain insert hint, got: %s", result)
	}
	if !strings.Contains(result, "ctrl+k: commands") {
		t.Errorf("Expected status bar to contain palette hint, got: %s", result)
	}
}

func TestStatusBar_RenderInsertMode(t *testing.T) {
	style := styles.New()
	sb := New(types.ModeInsert, "", 80, style)

	result := sb.Render()

	if !strings.Contains(result, "INSERT") {
		t.Errorf("Expected status bar to contain 'INSERT', got: %s", result)
	}
	if !strings.Contains(result, "Esc: normal mode") {
		t.Errorf("Expected status bar to contain escape hint, got: %s", result)
	}
}

func TestStatusBar_RenderSelectMode(t *testing.T) {
	style := styles.New()
	sb := New(types.ModeSelect, "", 80, style)

	result := sb.Render()

	if !strings.Contains(result, "SELECT") {
		t.Errorf("Expected status bar to contain 'SELECT', got: %s", result)
	}
	if !strings.Contains(result, "y: copy") {
		t.Errorf("Expected status bar to contain copy hint, got: %s", result)
	}
}

func TestStatusBar_RenderInfo(t *testing.T) {
	style := styles.New()
	sb := New(types.ModeNormal, "notes.md [+]", 120, style)

	result := sb.Render()

	if !strings.Contains(result, "notes.md [+]") {
		t.Errorf("Expected status bar to contain document info, got: %s", result)
	}
}

func TestGetHints_AllModes(t *testing.T) {
	tests := []struct {
		mode     types.Mode
		expected string
	}{
		{types.ModeNormal, "i: insert  v: select  ctrl+k: commands  ?: help  q: quit"},
		{types.ModeInsert, "Esc: normal mode  ctrl+s: save"},
		{types.ModeSelect, "y: copy  d: cut  Esc: cancel"},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			result := GetHints(tt.mode)
			if result != tt.expected {
				t.Errorf("GetHints(%v) = %q, want %q", tt.mode, result, tt.expected)
			}
		})
	}
}
