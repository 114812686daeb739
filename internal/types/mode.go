// Package types contains shared types used across the application.
package types

// Mode represents the current editing mode (Helix-style modal editing)
type Mode int

const (
	ModeNormal Mode = iota
	ModeInsert
	ModeSelect
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeInsert:
		return "INSERT"
	case ModeSelect:
		return "SELECT"
	default:
		return "UNKNOWN"
	}
}
