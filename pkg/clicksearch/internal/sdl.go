package internal

import (
	"fmt"

	"github.com/anunobi/clicksearch/pkg/clicksearch/constants"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// SDLOptions carries what Init needs from the application config.
type SDLOptions struct {
	Title             string
	Window            WindowOptions
	FontPath          string
	FontSize          int
	PowerButtonDevice string
}

var stopPowerWatcher func()

// Init brings up SDL, SDL_ttf, the window and fonts. On failure everything
// already initialised is torn down again.
func Init(opts SDLOptions) error {
	resetExit()

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		return fmt.Errorf("sdl init: %w", err)
	}

	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return fmt.Errorf("ttf init: %w", err)
	}

	InitInputProcessor()

	w, err := initWindow(opts.Title, opts.Window)
	if err != nil {
		SDLCleanup()
		return err
	}
	window = w

	if err := initFonts(opts.FontPath, opts.FontSize); err != nil {
		SDLCleanup()
		return err
	}

	sdl.StartTextInput()

	if opts.PowerButtonDevice != "" && !constants.IsDevMode() {
		stop, err := watchPowerButton(opts.PowerButtonDevice)
		if err != nil {
			GetInternalLogger().Warn("Power button unavailable", "device", opts.PowerButtonDevice, "error", err)
		} else {
			stopPowerWatcher = stop
		}
	}

	return nil
}

func SDLCleanup() {
	if stopPowerWatcher != nil {
		stopPowerWatcher()
		stopPowerWatcher = nil
	}
	sdl.StopTextInput()
	closeFonts()
	if window != nil {
		window.closeWindow()
		window = nil
	}
	CloseAllControllers()
	ttf.Quit()
	sdl.Quit()
}
