package statusbar

import "github.com/hollisbeck/vellum/internal/types"

// GetHints returns the keybinding hints for the given mode
func GetHints(mode types.Mode) string {
	switch mode {
	case types.ModeNormal:
		return "i: insert  v: select  ctrl+k: commands  ?: help  q: quit"
	case types.ModeInsert:
		return "Esc: normal mode  ctrl+s: save"
	case types.ModeSelect:
		return "y: copy  d: cut  Esc: cancel"
	default:
		return ""
	}
}
