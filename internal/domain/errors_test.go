package domain

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoreError_Error(t *testing.T) {
	err := &StoreError{Op: "load", DocID: "doc-1", Err: os.ErrNotExist}
	assert.Contains(t, err.Error(), "load")
	assert.Contains(t, err.Error(), "doc-1")

	noID := &StoreError{Op: "list", Err: os.ErrPermission}
	assert.Contains(t, noID.Error(), "list")
	assert.NotContains(t, noID.Error(), "[")
}

func TestStoreError_Unwrap(t *testing.T) {
	err := &StoreError{Op: "load", Err: ErrNotFound}
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestRenderError_Unwrap(t *testing.T) {
	inner := errors.New("bad fence")
	err := &RenderError{Op: "markdown", Err: inner}
	assert.True(t, errors.Is(err, inner))
	assert.Contains(t, err.Error(), "markdown")
}
