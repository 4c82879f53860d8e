package internal

import (
	"fmt"

	"github.com/anunobi/clicksearch/pkg/clicksearch/constants"
	"github.com/veandco/go-sdl2/sdl"
)

// Window wraps the SDL window and renderer.
type Window struct {
	Window          *sdl.Window
	Renderer        *sdl.Renderer
	Title           string
	hasVSync        bool
	lastPresentTime uint64
}

var window *Window

func initWindow(title string, winOpts WindowOptions) (*Window, error) {
	width, height := winOpts.Width, winOpts.Height

	if width <= 0 || height <= 0 {
		mode, err := sdl.GetCurrentDisplayMode(0)
		if err != nil {
			GetInternalLogger().Error("Failed to get display mode", "error", err)
			width, height = constants.DefaultWindowWidth, constants.DefaultWindowHeight
		} else {
			width, height = mode.W, mode.H
		}
	}

	x, y := int32(0), int32(0)
	if constants.IsDevMode() {
		winOpts.Borderless = false
		winOpts.Fullscreen = false
		x, y = 50, 50
	}

	GetInternalLogger().Debug("Initializing SDL window", "width", width, "height", height)

	sdlWindow, err := sdl.CreateWindow(title, x, y, width, height, winOpts.ToSDLFlags())
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(sdlWindow, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		GetInternalLogger().Warn("Accelerated renderer unavailable, falling back to software", "error", err)
		renderer, err = sdl.CreateRenderer(sdlWindow, -1, sdl.RENDERER_SOFTWARE)
		if err != nil {
			sdlWindow.Destroy()
			return nil, fmt.Errorf("create renderer: %w", err)
		}
	}

	renderer.SetLogicalSize(width, height)

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	return &Window{
		Window:   sdlWindow,
		Renderer: renderer,
		Title:    title,
		hasVSync: vsync,
	}, nil
}

func (w *Window) closeWindow() {
	w.Renderer.Destroy()
	w.Window.Destroy()
}

func GetWindow() *Window {
	return window
}

// Size returns the logical render size.
func (w *Window) Size() (int32, int32) {
	width, height, err := w.Renderer.GetOutputSize()
	if err != nil {
		return w.Window.GetSize()
	}
	return width, height
}

func (w *Window) GetWidth() int32 {
	width, _ := w.Size()
	return width
}

func (w *Window) GetHeight() int32 {
	_, height := w.Size()
	return height
}

// Clear fills the frame with color.
func (w *Window) Clear(color sdl.Color) {
	w.Renderer.SetDrawColor(color.R, color.G, color.B, color.A)
	w.Renderer.Clear()
}

// Present swaps the render buffer and enforces ~60fps frame timing
// when VSync is not available. Use this instead of renderer.Present().
func (w *Window) Present() {
	w.Renderer.Present()
	if !w.hasVSync {
		now := sdl.GetTicks64()
		if elapsed := now - w.lastPresentTime; elapsed < 16 {
			sdl.Delay(uint32(16 - elapsed))
		}
		w.lastPresentTime = sdl.GetTicks64()
	}
}
