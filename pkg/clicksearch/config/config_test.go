package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anunobi/clicksearch/pkg/clicksearch/constants"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clicksearch.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, constants.DefaultTitle, cfg.Title)
	assert.Empty(t, cfg.Names)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
title = "Names"
font_size = 30
log_level = "debug"
theme = "cannoli"
accent_color = 0x336699
names = ["Ada", "Grace"]

[window]
width = 640
height = 480
fullscreen = true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Names", cfg.Title)
	assert.Equal(t, 30, cfg.FontSize)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "cannoli", cfg.Theme)
	assert.Equal(t, uint32(0x336699), cfg.AccentColor)
	assert.Equal(t, []string{"Ada", "Grace"}, cfg.Names)
	assert.Equal(t, Window{Width: 640, Height: 480, Fullscreen: true}, cfg.Window)
	assert.Equal(t, constants.DefaultFontPath, cfg.FontPath, "unset keys keep their defaults")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(constants.FontPathEnvVar, "/tmp/font.ttf")
	t.Setenv(constants.LogLevelEnvVar, "error")
	t.Setenv(constants.WindowWidthEnvVar, "800")

	cfg, err := Load(writeConfig(t, `log_level = "debug"`))
	require.NoError(t, err)

	assert.Equal(t, "/tmp/font.ttf", cfg.FontPath)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, int32(800), cfg.Window.Width)
}

func TestLoad_InvalidEnv(t *testing.T) {
	t.Setenv(constants.WindowHeightEnvVar, "tall")

	_, err := Load("")
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	_, err := Load(writeConfig(t, `theme = "neon"`))
	assert.ErrorContains(t, err, "unknown theme")

	_, err = Load(writeConfig(t, `font_size = 0`))
	assert.ErrorContains(t, err, "font_size")

	_, err = Load(writeConfig(t, `title = `))
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
