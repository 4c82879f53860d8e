package clicksearch

import (
	"context"
	"errors"
	"time"
	"unicode/utf8"

	"github.com/anunobi/clicksearch/pkg/clicksearch/constants"
	"github.com/anunobi/clicksearch/pkg/clicksearch/internal"
	"github.com/anunobi/clicksearch/pkg/clicksearch/screens"
	"github.com/veandco/go-sdl2/sdl"
)

// SearchListSettings configures the search list screen.
type SearchListSettings struct {
	Title           string
	Placeholder     string
	FooterHelpItems []FooterHelpItem
}

// DefaultSearchListSettings uses the app title and the standard hints.
func DefaultSearchListSettings() SearchListSettings {
	return SearchListSettings{
		Title:       appTitle,
		Placeholder: constants.SearchPlaceholder,
		FooterHelpItems: []FooterHelpItem{
			{ButtonName: "A", HelpText: "Open"},
			{ButtonName: "X", HelpText: "Clear"},
			{ButtonName: "Y", HelpText: "Keyboard"},
			{ButtonName: "B", HelpText: "Back"},
		},
	}
}

type searchListController struct {
	list     *screens.ListController
	settings SearchListSettings
	state    screens.ListState
	dirty    bool

	margins      internal.Padding
	visibleStart int
	maxVisible   int
	repeat       internal.HeldRepeat

	cache     *internal.TextureCache
	searchTex *sdl.Texture
	clearTex  *sdl.Texture
	clearRect sdl.Rect
	rowRects  []sdl.Rect // indexed from visibleStart
}

// SearchList shows the title bar, the search field and the filtered names,
// and blocks until the user selects a name or goes back.
//
// Every edit goes straight to list.OnQueryChanged. Selecting calls
// list.SelectFocused, which hands the navigation request to the list's
// requester; SearchList itself never touches the back stack.
func SearchList(ctx context.Context, list *screens.ListController, settings SearchListSettings) (*SearchListResult, error) {
	window := internal.GetWindow()
	renderer := window.Renderer
	processor := internal.GetInputProcessor()

	c := &searchListController{
		list:     list,
		settings: settings,
		state:    list.State(),
		margins:  internal.Symmetric(12, 20),
		repeat:   internal.NewHeldRepeat(),
		cache:    internal.NewTextureCache(),
	}
	defer c.cleanup()

	cancel := list.Subscribe(func(s screens.ListState) {
		c.state = s
		c.dirty = true
	})
	defer cancel()

	iconSize := int(fontHeight(internal.GetFonts().Medium))
	var err error
	if c.searchTex, err = internal.RasterizeIcon(renderer, constants.SearchIconSVG, iconSize); err != nil {
		internal.GetInternalLogger().Warn("Search icon unavailable", "error", NewInfrastructureError("icon", err))
	}
	if c.clearTex, err = internal.RasterizeIcon(renderer, constants.CloseIconSVG, iconSize); err != nil {
		internal.GetInternalLogger().Warn("Clear icon unavailable", "error", NewInfrastructureError("icon", err))
	}

	c.scrollToFocus()

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if internal.ExitRequested() {
			return nil, ErrExitRequested
		}

		if event := sdl.WaitEventTimeout(constants.DefaultFrameDelay); event != nil {
			if in, ok := processor.Process(event); ok {
				action, err := c.handleInput(ctx, in)
				if err != nil {
					return nil, err
				}
				if action != ListActionNone {
					return &SearchListResult{Action: action, State: list.State()}, nil
				}
			}
		}

		if step := c.repeat.Tick(time.Now()); step != internal.StepNone {
			c.list.MoveFocus(int(step))
		}

		if c.dirty {
			c.scrollToFocus()
			c.dirty = false
		}

		c.render(renderer, window)
		window.Present()
	}
}

func (c *searchListController) handleInput(ctx context.Context, in internal.InputEvent) (ListAction, error) {
	switch {
	case in.Quit:
		return ListActionNone, ErrExitRequested
	case in.Text != "":
		c.list.OnQueryChanged(c.state.Query + in.Text)
		return ListActionNone, nil
	case in.Backspace:
		c.list.OnQueryChanged(trimLastRune(c.state.Query))
		return ListActionNone, nil
	case in.Click:
		return c.handleClick(in.X, in.Y), nil
	}

	if c.repeat.Track(in.Button, in.Pressed) {
		if in.Pressed && !in.Repeat {
			step := internal.StepDown
			if in.Button == constants.VirtualButtonUp {
				step = internal.StepUp
			}
			c.list.MoveFocus(int(step))
		}
		return ListActionNone, nil
	}

	if !in.Pressed || in.Repeat {
		return ListActionNone, nil
	}

	switch in.Button {
	case constants.VirtualButtonA:
		if _, ok := c.state.Focused(); !ok {
			return ListActionNone, nil
		}
		c.list.SelectFocused()
		return ListActionSelected, nil

	case constants.VirtualButtonB:
		return ListActionBack, nil

	case constants.VirtualButtonX:
		c.list.OnClearQuery()

	case constants.VirtualButtonY:
		c.repeat.Reset()
		_, err := Keyboard(ctx, c.state.Query, c.list.OnQueryChanged)
		if err != nil && !errors.Is(err, ErrCancelled) {
			return ListActionNone, err
		}
	}

	return ListActionNone, nil
}

// handleClick maps a pointer press onto the clear icon or a row.
func (c *searchListController) handleClick(x, y int32) ListAction {
	p := sdl.Point{X: x, Y: y}

	if c.state.ShowClear() && p.InRect(&c.clearRect) {
		c.list.OnClearQuery()
		return ListActionNone
	}

	for i := range c.rowRects {
		if !p.InRect(&c.rowRects[i]) {
			continue
		}
		index := c.visibleStart + i
		if index >= len(c.state.Items) {
			return ListActionNone
		}
		c.list.OnItemSelected(c.state.Items[index])
		return ListActionSelected
	}

	return ListActionNone
}

func trimLastRune(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeLastRuneInString(s)
	return s[:len(s)-size]
}

func (c *searchListController) scrollToFocus() {
	if c.maxVisible <= 0 {
		return
	}
	focus := c.state.Focus
	if focus < 0 {
		c.visibleStart = 0
		return
	}
	if focus < c.visibleStart {
		c.visibleStart = focus
	}
	if focus >= c.visibleStart+c.maxVisible {
		c.visibleStart = focus - c.maxVisible + 1
	}
	if c.visibleStart > len(c.state.Items)-c.maxVisible {
		c.visibleStart = max(0, len(c.state.Items)-c.maxVisible)
	}
}

func (c *searchListController) render(renderer *sdl.Renderer, window *internal.Window) {
	theme := internal.GetTheme()
	fonts := internal.GetFonts()
	width, height := window.Size()

	window.Clear(theme.BackgroundColor)

	y := renderTitleBar(renderer, c.cache, c.settings.Title, width)
	y = c.renderSearchField(renderer, y+c.margins.Top, width)

	rowHeight := fontHeight(fonts.Medium) + 2*c.margins.Top
	rowSpacing := int32(4)
	listBottom := height - footerHeight(c.margins.Top)

	maxVisible := int((listBottom - y - c.margins.Top) / (rowHeight + rowSpacing))
	if maxVisible != c.maxVisible {
		c.maxVisible = maxVisible
		c.scrollToFocus()
	}

	y += c.margins.Top
	c.rowRects = c.rowRects[:0]
	for i := c.visibleStart; i < len(c.state.Items) && i < c.visibleStart+c.maxVisible; i++ {
		row := sdl.Rect{X: c.margins.Left, Y: y, W: width - c.margins.Left - c.margins.Right, H: rowHeight}
		c.rowRects = append(c.rowRects, row)

		bg, fg := theme.ListItemColor, theme.TextColor
		if i == c.state.Focus {
			bg, fg = theme.HighlightColor, theme.HighlightedTextColor
		}
		fillRect(renderer, row, bg)
		drawTextAligned(renderer, c.cache, fonts.Medium, c.state.Items[i], c.margins.Inset(row), constants.TextAlignLeft, fg)

		y += rowHeight + rowSpacing
	}

	renderFooter(renderer, c.cache, c.settings.FooterHelpItems, c.margins.Top)
}

// renderSearchField draws the field with its icons and returns the y
// coordinate just below it.
func (c *searchListController) renderSearchField(renderer *sdl.Renderer, y, width int32) int32 {
	theme := internal.GetTheme()
	font := internal.GetFonts().Medium
	iconSize := fontHeight(font)

	field := sdl.Rect{X: c.margins.Left, Y: y, W: width - c.margins.Left - c.margins.Right, H: iconSize + 2*c.margins.Top}
	fillRect(renderer, field, theme.SearchFieldColor)

	inner := c.margins.Inset(field)
	internal.DrawIcon(renderer, c.searchTex, sdl.Rect{X: inner.X, Y: inner.Y, W: iconSize, H: iconSize}, theme.SearchTextColor)

	textArea := sdl.Rect{X: inner.X + iconSize + 10, Y: inner.Y, W: inner.W - 2*(iconSize+10), H: inner.H}
	if c.state.Query == "" {
		drawTextAligned(renderer, c.cache, font, c.settings.Placeholder, textArea, constants.TextAlignLeft, theme.HintColor)
	} else {
		drawTextAligned(renderer, c.cache, font, c.state.Query, textArea, constants.TextAlignLeft, theme.SearchTextColor)
	}

	c.clearRect = sdl.Rect{}
	if c.state.ShowClear() {
		c.clearRect = sdl.Rect{X: inner.X + inner.W - iconSize, Y: inner.Y, W: iconSize, H: iconSize}
		internal.DrawIcon(renderer, c.clearTex, c.clearRect, theme.SearchTextColor)
	}

	return field.Y + field.H
}

func (c *searchListController) cleanup() {
	c.cache.Destroy()
	if c.searchTex != nil {
		c.searchTex.Destroy()
	}
	if c.clearTex != nil {
		c.clearTex.Destroy()
	}
}
