package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baa-lang/baa/config"
)

func TestLoadMissingFileYieldsZeroConfig(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Config{}, cfg)
}

func TestLoadParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "baa.yaml")
	require.NoError(t, os.WriteFile(path, []byte("demo_source: \"١.\"\ncolor: false\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "١.", cfg.DemoSource)
	require.NotNil(t, cfg.Color)
	assert.False(t, *cfg.Color)
}

func TestDemoSourceOrFallback(t *testing.T) {
	var cfg config.Config
	assert.Equal(t, "fallback", cfg.DemoSourceOr("fallback"))
	cfg.DemoSource = "custom"
	assert.Equal(t, "custom", cfg.DemoSourceOr("fallback"))
}

func TestColorEnabled(t *testing.T) {
	var cfg config.Config
	assert.True(t, cfg.ColorEnabled(true))
	assert.False(t, cfg.ColorEnabled(false))

	on := true
	cfg.Color = &on
	assert.True(t, cfg.ColorEnabled(false), "explicit config wins over auto-detection")
}
