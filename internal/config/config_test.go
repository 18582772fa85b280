package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robert-malhotra/go-brnflip/brain"
	"github.com/robert-malhotra/go-brnflip/internal/format"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "this", cfg.Target)
	assert.Equal(t, format.DefaultMaxSize, cfg.MaxSize)
	assert.Equal(t, format.DefaultMaxDepth, cfg.MaxDepth)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.Backup)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFileYAML(t *testing.T) {
	path := writeFile(t, "brnflip.yaml", `
target: big
max_depth: 64
backup: true
`)
	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "big", cfg.Target)
	assert.Equal(t, 64, cfg.MaxDepth)
	assert.True(t, cfg.Backup)
	// Unset fields keep defaults.
	assert.Equal(t, format.DefaultMaxSize, cfg.MaxSize)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFileJSONC(t *testing.T) {
	path := writeFile(t, "brnflip.jsonc", `{
	// convert for the old SPARC box
	"target": "other",
	"log_level": "debug", /* chatty */
	"max_size": 0,
}`)
	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "other", cfg.Target)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 0, cfg.MaxSize)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = LoadFile(writeFile(t, "brnflip.toml", "target = 'big'"))
	assert.ErrorContains(t, err, "unsupported extension")

	_, err = LoadFile(writeFile(t, "brnflip.yaml", "target: [oops"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	t.Setenv(EnvVar, "")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	t.Setenv(EnvVar, writeFile(t, "brnflip.yml", "target: little\n"))
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, "little", cfg.Target)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Target = "middle"
	cfg.LogLevel = "loud"
	cfg.MaxSize = 10

	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, brain.ErrInvalidTarget)
	assert.ErrorContains(t, err, "log_level must be one of")
	assert.ErrorContains(t, err, "max_size must be at least")

	cfg = Default()
	cfg.Target = "BIG"
	assert.NoError(t, cfg.Validate())
}
