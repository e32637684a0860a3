package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, zerolog.InfoLevel, cfg.Level())
	assert.Empty(t, cfg.PresetsFile)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("API_PORT", "9000")
	t.Setenv("API_ENV", "production")
	t.Setenv("SITE_URL", "https://batteryblueprint.example")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, zerolog.DebugLevel, cfg.Level())
	assert.Equal(t, []string{
		"https://batteryblueprint.example",
		"https://a.example",
		"https://b.example",
	}, cfg.Origins())
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `port: "7070"
site_url: "https://file.example/"
presets_file: "/etc/blueprint/presets.yaml"
allowed_origins:
  - "https://file.example"
  - "https://preview.example"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("API_PORT", "7171")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "7171", cfg.Port)
	assert.Equal(t, "/etc/blueprint/presets.yaml", cfg.PresetsFile)
	// trailing slash trimmed and duplicate dropped
	assert.Equal(t, []string{"https://file.example", "https://preview.example"}, cfg.Origins())
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Run("bad port", func(t *testing.T) {
		t.Setenv("API_PORT", "eighty")
		_, err := Load("")
		assert.Error(t, err)
	})
	t.Run("bad level", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "shouty")
		_, err := Load("")
		assert.Error(t, err)
	})
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})
}
