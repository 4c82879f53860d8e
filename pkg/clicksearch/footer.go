package clicksearch

import (
	"github.com/anunobi/clicksearch/pkg/clicksearch/internal"
	"github.com/veandco/go-sdl2/sdl"
)

// FooterHelpItem is one button hint shown along the bottom of a screen.
type FooterHelpItem struct {
	ButtonName string
	HelpText   string
}

// renderFooter draws the help items left to right along the bottom edge.
// Items that do not fit are dropped.
func renderFooter(renderer *sdl.Renderer, cache *internal.TextureCache, items []FooterHelpItem, margin int32) {
	if len(items) == 0 {
		return
	}

	window := internal.GetWindow()
	theme := internal.GetTheme()
	font := internal.GetFonts().Small

	h := fontHeight(font)
	y := window.GetHeight() - margin - h
	x := margin
	maxX := window.GetWidth() - margin

	for _, item := range items {
		buttonW, _, _ := font.SizeUTF8(item.ButtonName)
		textW, _, _ := font.SizeUTF8(item.HelpText)
		pillW := int32(buttonW) + h/2
		total := pillW + 6 + int32(textW)
		if x+total > maxX {
			break
		}

		pill := sdl.Rect{X: x, Y: y, W: pillW, H: h}
		fillRect(renderer, pill, theme.AccentColor)
		drawText(renderer, cache, font, item.ButtonName, x+h/4, y, 0, theme.TitleTextColor)
		drawText(renderer, cache, font, item.HelpText, x+pillW+6, y, 0, theme.HintColor)

		x += total + margin
	}
}

// footerHeight is the vertical space renderFooter needs.
func footerHeight(margin int32) int32 {
	return fontHeight(internal.GetFonts().Small) + 2*margin
}
