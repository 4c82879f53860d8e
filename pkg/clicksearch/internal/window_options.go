package internal

import "github.com/veandco/go-sdl2/sdl"

// WindowOptions selects SDL window flags and the initial size.
// A zero Width or Height means "use the display size".
type WindowOptions struct {
	Width      int32
	Height     int32
	Borderless bool // SDL_WINDOW_BORDERLESS
	Resizable  bool // SDL_WINDOW_RESIZABLE
	Fullscreen bool // SDL_WINDOW_FULLSCREEN_DESKTOP
	Hidden     bool // omits SDL_WINDOW_SHOWN
}

func (wo WindowOptions) ToSDLFlags() uint32 {
	var flags uint32

	if !wo.Hidden {
		flags |= sdl.WINDOW_SHOWN
	}
	if wo.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}
	if wo.Borderless {
		flags |= sdl.WINDOW_BORDERLESS
	}
	if wo.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}

	return flags
}
