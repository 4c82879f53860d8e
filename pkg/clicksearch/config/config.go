// Package config loads application settings from a TOML file and the environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/anunobi/clicksearch/pkg/clicksearch/constants"
)

// Window holds window geometry and flags for the SDL frontend.
type Window struct {
	Width      int32 `toml:"width"`
	Height     int32 `toml:"height"`
	Fullscreen bool  `toml:"fullscreen"`
	Borderless bool  `toml:"borderless"`
}

// Config is the full application configuration.
type Config struct {
	Title             string   `toml:"title"`
	FontPath          string   `toml:"font_path"`
	FontSize          int      `toml:"font_size"`
	LogPath           string   `toml:"log_path"`
	LogLevel          string   `toml:"log_level"`
	Theme             string   `toml:"theme"`        // "default" or "cannoli"
	AccentColor       uint32   `toml:"accent_color"` // 0xRRGGBB, 0 keeps the theme's own
	PowerButtonDevice string   `toml:"power_button_device"`
	Window            Window   `toml:"window"`
	Names             []string `toml:"names"`
}

// Default returns the built-in configuration. Names is left empty so callers
// fall back to the built-in name list.
func Default() Config {
	return Config{
		Title:    constants.DefaultTitle,
		FontPath: constants.DefaultFontPath,
		FontSize: constants.DefaultFontSize,
		LogLevel: "info",
		Theme:    "default",
		Window: Window{
			Width:  constants.DefaultWindowWidth,
			Height: constants.DefaultWindowHeight,
		},
	}
}

// Load reads path over the defaults and then applies environment overrides.
// An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to load config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(constants.FontPathEnvVar); v != "" {
		c.FontPath = v
	}
	if v := os.Getenv(constants.LogLevelEnvVar); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(constants.WindowWidthEnvVar); v != "" {
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", constants.WindowWidthEnvVar, v, err)
		}
		c.Window.Width = int32(n)
	}
	if v := os.Getenv(constants.WindowHeightEnvVar); v != "" {
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", constants.WindowHeightEnvVar, v, err)
		}
		c.Window.Height = int32(n)
	}
	return nil
}

// Validate reports settings that cannot be used.
func (c Config) Validate() error {
	if c.FontSize <= 0 {
		return fmt.Errorf("config: font_size must be positive, got %d", c.FontSize)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("config: window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	switch c.Theme {
	case "default", "cannoli":
	default:
		return fmt.Errorf("config: unknown theme %q", c.Theme)
	}
	return nil
}
