package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NotNil(t, cfg)

	assert.Equal(t, 4, cfg.Editor.TabWidth)
	assert.Equal(t, 80, cfg.Editor.RulerColumn)
	assert.True(t, cfg.Editor.WordWrap)
	assert.Equal(t, "macchiato", cfg.UI.Theme)
	assert.Equal(t, 100, cfg.UI.NarrowWidth)
	assert.Equal(t, ".vellum", cfg.Storage.Dir)
}

func TestLoadConfig_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_ReadsFile(t *testing.T) {
	dir := t.TempDir()
	content := `{
		"editor": {"rulerColumn": 100},
		"ui": {"theme": "latte"}
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".vellum.json"), []byte(content), 0644))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, 100, cfg.Editor.RulerColumn)
	assert.Equal(t, "latte", cfg.UI.Theme)
	// Missing values come from defaults
	assert.Equal(t, 4, cfg.Editor.TabWidth)
	assert.Equal(t, 3000, cfg.UI.ToastTTLMs)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".vellum.json"), []byte("{not json"), 0644))

	_, err := LoadConfig(dir)
	assert.Error(t, err)
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".vellum.json")

	cfg := DefaultConfig()
	cfg.Editor.RulerColumn = 72
	require.NoError(t, SaveConfig(cfg, path))

	loaded, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, 72, loaded.Editor.RulerColumn)
}

func TestMergeWithDefaults_PreservesExplicitValues(t *testing.T) {
	cfg := &Config{}
	cfg.UI.NarrowWidth = 80

	merged := MergeWithDefaults(cfg)
	assert.Equal(t, 80, merged.UI.NarrowWidth)
	assert.Equal(t, "macchiato", merged.UI.Theme)
}
