package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.TopN)
	assert.Equal(t, "text", cfg.OutputFormat)
	assert.Equal(t, ":8080", cfg.HTTPAddress)
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "textstat.yaml")
	content := "topN: 10\noutputFormat: json\nhttpAddress: \":9090\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.TopN)
	assert.Equal(t, "json", cfg.OutputFormat)
	assert.Equal(t, ":9090", cfg.HTTPAddress)
}

func TestLoadConfigPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "textstat.yaml")
	require.NoError(t, os.WriteFile(path, []byte("topN: 3\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	// Unset fields keep their defaults.
	assert.Equal(t, 3, cfg.TopN)
	assert.Equal(t, "text", cfg.OutputFormat)
	assert.Equal(t, ":8080", cfg.HTTPAddress)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "textstat.yaml")
	require.NoError(t, os.WriteFile(path, []byte("topN: [not a number"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}
