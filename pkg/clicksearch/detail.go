package clicksearch

import (
	"context"

	"github.com/anunobi/clicksearch/pkg/clicksearch/constants"
	"github.com/anunobi/clicksearch/pkg/clicksearch/internal"
	"github.com/anunobi/clicksearch/pkg/clicksearch/screens"
	"github.com/veandco/go-sdl2/sdl"
)

// DetailScreenSettings configures the detail screen.
type DetailScreenSettings struct {
	Title           string
	Placeholder     string // Shown when the view has no name
	FooterHelpItems []FooterHelpItem
}

// DefaultDetailScreenSettings uses the app title, the placeholder and a back hint.
func DefaultDetailScreenSettings() DetailScreenSettings {
	return DetailScreenSettings{
		Title:           appTitle,
		Placeholder:     constants.DetailPlaceholder,
		FooterHelpItems: []FooterHelpItem{{ButtonName: "B", HelpText: "Back"}},
	}
}

// DetailScreen shows view.Name centered on screen, or the placeholder when
// the view is empty, until the user goes back.
func DetailScreen(ctx context.Context, view screens.DetailView, settings DetailScreenSettings) (DetailAction, error) {
	window := internal.GetWindow()
	renderer := window.Renderer
	processor := internal.GetInputProcessor()

	cache := internal.NewTextureCache()
	defer cache.Destroy()

	text := view.Name
	if view.Empty {
		text = settings.Placeholder
	}

	for {
		if err := ctx.Err(); err != nil {
			return DetailActionNone, err
		}
		if internal.ExitRequested() {
			return DetailActionNone, ErrExitRequested
		}

		if event := sdl.WaitEventTimeout(constants.DefaultFrameDelay); event != nil {
			if in, ok := processor.Process(event); ok {
				if in.Quit {
					return DetailActionNone, ErrExitRequested
				}
				if in.Pressed && in.Button == constants.VirtualButtonB {
					return DetailActionBack, nil
				}
			}
		}

		renderDetail(renderer, window, cache, settings, text, view.Empty)
		window.Present()
	}
}

func renderDetail(renderer *sdl.Renderer, window *internal.Window, cache *internal.TextureCache, settings DetailScreenSettings, text string, empty bool) {
	theme := internal.GetTheme()
	width, height := window.Size()
	margin := int32(12)

	window.Clear(theme.BackgroundColor)
	top := renderTitleBar(renderer, cache, settings.Title, width)

	color := theme.TextColor
	if empty {
		color = theme.HintColor
	}
	body := sdl.Rect{X: 20, Y: top, W: width - 40, H: height - top - footerHeight(margin)}
	drawTextAligned(renderer, cache, internal.GetFonts().Large, text, body, constants.TextAlignCenter, color)

	renderFooter(renderer, cache, settings.FooterHelpItems, margin)
}
