package clicksearch

import (
	"github.com/anunobi/clicksearch/pkg/clicksearch/constants"
	"github.com/anunobi/clicksearch/pkg/clicksearch/internal"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

func fillRect(renderer *sdl.Renderer, rect sdl.Rect, color sdl.Color) {
	renderer.SetDrawColor(color.R, color.G, color.B, color.A)
	renderer.FillRect(&rect)
}

func fontHeight(font *ttf.Font) int32 {
	return int32(font.Height())
}

// drawText draws text at (x, y), clipped to maxWidth when maxWidth > 0.
// It returns the drawn size.
func drawText(renderer *sdl.Renderer, cache *internal.TextureCache, font *ttf.Font, text string, x, y, maxWidth int32, color sdl.Color) (int32, int32) {
	t, err := cache.Text(renderer, font, text, color)
	if err != nil {
		internal.GetInternalLogger().Error("Failed to render text", "text", text, "error", err)
		return 0, 0
	}
	if t.Texture == nil {
		return 0, 0
	}

	w := t.W
	if maxWidth > 0 && w > maxWidth {
		w = maxWidth
	}
	src := sdl.Rect{X: 0, Y: 0, W: w, H: t.H}
	dst := sdl.Rect{X: x, Y: y, W: w, H: t.H}
	renderer.Copy(t.Texture, &src, &dst)
	return w, t.H
}

// drawTextAligned draws text inside area, vertically centered and aligned
// horizontally as requested.
func drawTextAligned(renderer *sdl.Renderer, cache *internal.TextureCache, font *ttf.Font, text string, area sdl.Rect, align constants.TextAlign, color sdl.Color) {
	t, err := cache.Text(renderer, font, text, color)
	if err != nil || t.Texture == nil {
		return
	}

	w := t.W
	if w > area.W {
		w = area.W
	}

	x := area.X
	switch align {
	case constants.TextAlignCenter:
		x = area.X + (area.W-w)/2
	case constants.TextAlignRight:
		x = area.X + area.W - w
	}
	y := area.Y + (area.H-t.H)/2

	src := sdl.Rect{X: 0, Y: 0, W: w, H: t.H}
	dst := sdl.Rect{X: x, Y: y, W: w, H: t.H}
	renderer.Copy(t.Texture, &src, &dst)
}

// renderTitleBar fills the title bar and returns its height.
func renderTitleBar(renderer *sdl.Renderer, cache *internal.TextureCache, title string, width int32) int32 {
	theme := internal.GetTheme()
	font := internal.GetFonts().Large
	pad := internal.Symmetric(constants.DefaultTitleSpacing*2, 20)

	height := fontHeight(font) + pad.Top + pad.Bottom
	bar := sdl.Rect{X: 0, Y: 0, W: width, H: height}
	fillRect(renderer, bar, theme.TitleBarColor)
	drawTextAligned(renderer, cache, font, title, pad.Inset(bar), constants.TextAlignLeft, theme.TitleTextColor)
	return height
}
