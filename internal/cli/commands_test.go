package cli

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hollisbeck/vellum/internal/config"
	"github.com/hollisbeck/vellum/internal/domain"
)

func newTestDeps(t *testing.T) *Dependencies {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.Storage.Dir = t.TempDir()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	deps, err := NewDependencies(cfg, logger)
	require.NoError(t, err)
	return deps
}

func TestNewCommand_CreatesDocument(t *testing.T) {
	deps := newTestDeps(t)

	require.NoError(t, NewCommand(deps, "Meeting notes"))

	docs, err := deps.Store.List()
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "Meeting notes", docs[0].Title)
}

func TestListCommand_EmptyStore(t *testing.T) {
	deps := newTestDeps(t)
	assert.NoError(t, ListCommand(deps))
}

func TestCatCommand_UnknownID(t *testing.T) {
	deps := newTestDeps(t)

	err := CatCommand(deps, "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
