package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUserCanceled = errors.New("user canceled")
)

// StoreError represents an error from the document store
type StoreError struct {
	Op    string // Operation: "load", "save", "delete", etc.
	DocID string // Optional: specific document ID
	Err   error  // Underlying error
}

func (e *StoreError) Error() string {
	if e.DocID != "" {
		return fmt.Sprintf("docstore %s [%s]: %v", e.Op, e.DocID, e.Err)
	}
	return fmt.Sprintf("docstore %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// RenderError represents an error from the typesetting engine
type RenderError struct {
	Op  string
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s: %v", e.Op, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
