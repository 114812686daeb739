// Package editor manages editing session state: the current mode and
// the selection, kept apart from the bubbletea model so transitions can
// be tested without a terminal.
package editor

import (
	"github.com/hollisbeck/vellum/internal/types"
)

// Re-export Mode type for convenience
type Mode = types.Mode

// Mode constants
const (
	ModeNormal = types.ModeNormal
	ModeInsert = types.ModeInsert
	ModeSelect = types.ModeSelect
)

// Service manages editing state
type Service struct {
	mode      Mode
	selStart  int
	selEnd    int
	selecting bool
}

// NewService creates a new editor service in normal mode
func NewService() *Service {
	return &Service{mode: ModeNormal}
}

// Mode returns the current mode
func (s *Service) Mode() Mode {
	return s.mode
}

// EnterInsert switches to insert mode
func (s *Service) EnterInsert() {
	s.mode = ModeInsert
}

// EnterSelect switches to select mode, anchoring the selection at pos
func (s *Service) EnterSelect(pos int) {
	s.mode = ModeSelect
	s.selStart = pos
	s.selEnd = pos
	s.selecting = true
}

// ExtendSelection moves the selection's free end
func (s *Service) ExtendSelection(pos int) {
	if s.selecting {
		s.selEnd = pos
	}
}

// Selection returns the selected range in document order. ok is false
// outside select mode.
func (s *Service) Selection() (start, end int, ok bool) {
	if !s.selecting {
		return 0, 0, false
	}
	if s.selEnd < s.selStart {
		return s.selEnd, s.selStart, true
	}
	return s.selStart, s.selEnd, true
}

// ExitMode returns to normal mode if not already normal.
// Returns true if a mode change occurred.
func (s *Service) ExitMode() bool {
	if s.mode != ModeNormal {
		s.mode = ModeNormal
		s.selecting = false
		return true
	}
	return false
}
