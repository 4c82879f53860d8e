package clicksearch

import (
	"github.com/anunobi/clicksearch/pkg/clicksearch/constants"
	"github.com/anunobi/clicksearch/pkg/clicksearch/internal"
	"github.com/veandco/go-sdl2/sdl"
)

// SelectionOption is one horizontally selectable choice.
type SelectionOption struct {
	DisplayName string
	Value       any
}

// SelectionMessage shows message above a row of options. Left/Right moves
// between options and A confirms. B returns ErrCancelled.
func SelectionMessage(message string, options []SelectionOption, initial int) (SelectionOption, error) {
	if len(options) == 0 {
		return SelectionOption{}, ErrCancelled
	}

	window := internal.GetWindow()
	renderer := window.Renderer
	processor := internal.GetInputProcessor()

	cache := internal.NewTextureCache()
	defer cache.Destroy()

	selected := initial
	if selected < 0 || selected >= len(options) {
		selected = 0
	}

	help := []FooterHelpItem{{ButtonName: "A", HelpText: "Confirm"}, {ButtonName: "B", HelpText: "Cancel"}}

	for {
		if internal.ExitRequested() {
			return SelectionOption{}, ErrExitRequested
		}

		if event := sdl.WaitEventTimeout(constants.DefaultFrameDelay); event != nil {
			if in, ok := processor.Process(event); ok {
				if in.Quit {
					return SelectionOption{}, ErrExitRequested
				}
				if in.Pressed {
					switch in.Button {
					case constants.VirtualButtonLeft:
						selected = (selected - 1 + len(options)) % len(options)
					case constants.VirtualButtonRight:
						selected = (selected + 1) % len(options)
					case constants.VirtualButtonA, constants.VirtualButtonStart:
						return options[selected], nil
					case constants.VirtualButtonB:
						return SelectionOption{}, ErrCancelled
					}
				}
			}
		}

		renderSelectionMessage(renderer, window, cache, message, options, selected, help)
		window.Present()
	}
}

func renderSelectionMessage(renderer *sdl.Renderer, window *internal.Window, cache *internal.TextureCache, message string, options []SelectionOption, selected int, help []FooterHelpItem) {
	theme := internal.GetTheme()
	fonts := internal.GetFonts()
	width, height := window.Size()

	window.Clear(theme.BackgroundColor)

	lineH := fontHeight(fonts.Medium)
	spacing := int32(30)
	startY := (height - 2*lineH - spacing) / 2

	drawTextAligned(renderer, cache, fonts.Medium, message, sdl.Rect{X: 0, Y: startY, W: width, H: lineH}, constants.TextAlignCenter, theme.TextColor)

	// Options share the row equally; the selected one is highlighted.
	slot := width / int32(len(options)+1)
	y := startY + lineH + spacing
	for i, opt := range options {
		rect := sdl.Rect{X: slot/2 + int32(i)*slot, Y: y, W: slot, H: lineH + 10}
		fg := theme.HintColor
		if i == selected {
			fillRect(renderer, rect, theme.AccentColor)
			fg = theme.TitleTextColor
		}
		drawTextAligned(renderer, cache, fonts.Medium, opt.DisplayName, rect, constants.TextAlignCenter, fg)
	}

	renderFooter(renderer, cache, help, 12)
}

// ConfirmExit asks whether to leave the app. It is the root back hook for
// the router, so true stops the app.
func ConfirmExit() bool {
	choice, err := SelectionMessage("Exit ClickSearch?", []SelectionOption{
		{DisplayName: "No", Value: false},
		{DisplayName: "Yes", Value: true},
	}, 0)
	if err != nil {
		// Cancelling stays in the app; an exit request leaves.
		return !IsCancelled(err)
	}
	exit, _ := choice.Value.(bool)
	return exit
}
