// Package clicksearch is the SDL frontend: a searchable list of names and a
// detail screen, driven by the router package on top of the screen
// controllers.
//
// The package handles SDL initialization, input processing and theming.
// Every screen is a blocking function that returns when the user leaves it.
package clicksearch

import (
	"log/slog"

	"github.com/anunobi/clicksearch/pkg/clicksearch/config"
	"github.com/anunobi/clicksearch/pkg/clicksearch/constants"
	"github.com/anunobi/clicksearch/pkg/clicksearch/internal"
	"github.com/anunobi/clicksearch/pkg/clicksearch/platform/cannoli"
)

// Options configures SDL initialization.
type Options struct {
	WindowTitle          string                 // Title bar text, also the window title in windowed mode
	WindowOptions        internal.WindowOptions // SDL window flags and size
	FontPath             string                 // TTF font used for all text
	FontSize             int                    // Base point size; title and footer scale from it
	Theme                string                 // "default" or "cannoli"
	PrimaryThemeColorHex uint32                 // Custom accent color, 0 keeps the theme's own
	PowerButtonDevice    string                 // evdev node for the power button, empty disables it
	LogPath              string                 // Full path for log file including filename
}

// OptionsFromConfig maps the application config onto Options.
func OptionsFromConfig(cfg config.Config) Options {
	return Options{
		WindowTitle: cfg.Title,
		WindowOptions: internal.WindowOptions{
			Width:      cfg.Window.Width,
			Height:     cfg.Window.Height,
			Fullscreen: cfg.Window.Fullscreen,
			Borderless: cfg.Window.Borderless,
		},
		FontPath:             cfg.FontPath,
		FontSize:             cfg.FontSize,
		Theme:                cfg.Theme,
		PrimaryThemeColorHex: cfg.AccentColor,
		PowerButtonDevice:    cfg.PowerButtonDevice,
		LogPath:              cfg.LogPath,
	}
}

var appTitle = constants.DefaultTitle

// Init initializes SDL, the window, fonts, theming and input handling.
// Must be called before any screen is shown.
func Init(options Options) error {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	if constants.IsDevMode() {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	if options.FontPath == "" {
		options.FontPath = constants.DefaultFontPath
	}
	if options.FontSize <= 0 {
		options.FontSize = constants.DefaultFontSize
	}
	if options.WindowTitle != "" {
		appTitle = options.WindowTitle
	}

	switch options.Theme {
	case "cannoli":
		internal.SetTheme(cannoli.InitCannoliTheme(options.FontPath))
	default:
		internal.SetTheme(internal.DefaultTheme(options.FontPath))
	}

	if options.PrimaryThemeColorHex != 0 {
		theme := internal.GetTheme()
		theme.AccentColor = internal.HexToColor(options.PrimaryThemeColorHex)
		internal.SetTheme(theme)
	}

	err := internal.Init(internal.SDLOptions{
		Title:             appTitle,
		Window:            options.WindowOptions,
		FontPath:          options.FontPath,
		FontSize:          options.FontSize,
		PowerButtonDevice: options.PowerButtonDevice,
	})
	if err != nil {
		return NewInfrastructureError("init", err)
	}

	GetLogger().Debug("SDL initialized", "title", appTitle, "font", options.FontPath, "theme", options.Theme)
	return nil
}

// Close releases all SDL resources and flushes the log file.
// Must be called before program exit to prevent resource leaks.
func Close() {
	internal.SDLCleanup()
	internal.CloseLogger()
}

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
// Unknown values fall back to info.
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}
