package clicksearch

import (
	"context"
	"strings"

	"github.com/anunobi/clicksearch/pkg/clicksearch/constants"
	"github.com/anunobi/clicksearch/pkg/clicksearch/internal"
	"github.com/veandco/go-sdl2/sdl"
)

var keyboardHelpItems = []FooterHelpItem{
	{ButtonName: "A", HelpText: "Type"},
	{ButtonName: "B", HelpText: "Delete"},
	{ButtonName: "X", HelpText: "Space"},
	{ButtonName: "Select", HelpText: "Shift"},
	{ButtonName: "Y", HelpText: "Cancel"},
	{ButtonName: "Start", HelpText: "Done"},
}

type virtualKeyboard struct {
	text     string
	original string
	onChange func(string)
	row, col int
	shift    bool
	cache    *internal.TextureCache
}

// Keyboard shows the on-screen keyboard over initial and blocks until the
// user confirms or cancels. onChange is called after every key press with
// the full text, so the caller sees each edit as it happens.
//
// Cancelling reports the initial text through onChange once more and
// returns ErrCancelled.
func Keyboard(ctx context.Context, initial string, onChange func(string)) (string, error) {
	window := internal.GetWindow()
	renderer := window.Renderer
	processor := internal.GetInputProcessor()

	kb := &virtualKeyboard{
		text:     initial,
		original: initial,
		onChange: onChange,
		row:      1,
		cache:    internal.NewTextureCache(),
	}
	defer kb.cache.Destroy()

	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if internal.ExitRequested() {
			return "", ErrExitRequested
		}

		if event := sdl.WaitEventTimeout(constants.DefaultFrameDelay); event != nil {
			if in, ok := processor.Process(event); ok {
				done, err := kb.handleInput(in)
				if err != nil {
					return "", err
				}
				if done {
					return kb.text, nil
				}
			}
		}

		kb.render(renderer, window)
		window.Present()
	}
}

func (kb *virtualKeyboard) handleInput(in internal.InputEvent) (bool, error) {
	switch {
	case in.Quit:
		return false, ErrExitRequested
	case in.Text != "":
		kb.set(kb.text + in.Text)
		return false, nil
	case in.Backspace:
		kb.set(trimLastRune(kb.text))
		return false, nil
	}

	if !in.Pressed {
		return false, nil
	}

	switch in.Button {
	case constants.VirtualButtonUp:
		kb.row, kb.col = internal.MoveKeyCursor(kb.row, kb.col, -1, 0)
	case constants.VirtualButtonDown:
		kb.row, kb.col = internal.MoveKeyCursor(kb.row, kb.col, 1, 0)
	case constants.VirtualButtonLeft:
		kb.row, kb.col = internal.MoveKeyCursor(kb.row, kb.col, 0, -1)
	case constants.VirtualButtonRight:
		kb.row, kb.col = internal.MoveKeyCursor(kb.row, kb.col, 0, 1)
	case constants.VirtualButtonA:
		return kb.press(internal.KeyboardRows[kb.row][kb.col]), nil
	case constants.VirtualButtonB:
		kb.set(trimLastRune(kb.text))
	case constants.VirtualButtonX:
		kb.set(kb.text + " ")
	case constants.VirtualButtonSelect:
		kb.shift = !kb.shift
	case constants.VirtualButtonStart:
		return true, nil
	case constants.VirtualButtonY:
		kb.set(kb.original)
		return false, ErrCancelled
	}
	return false, nil
}

// press applies a key and reports whether the keyboard is done.
func (kb *virtualKeyboard) press(k string) bool {
	switch k {
	case internal.KeyDone:
		return true
	case internal.KeyBackspace:
		kb.set(trimLastRune(kb.text))
	case internal.KeySpace:
		kb.set(kb.text + " ")
	default:
		kb.set(kb.text + kb.label(k))
	}
	return false
}

func (kb *virtualKeyboard) label(k string) string {
	if kb.shift && len(k) == 1 {
		return strings.ToUpper(k)
	}
	return k
}

func (kb *virtualKeyboard) set(text string) {
	if text == kb.text {
		return
	}
	kb.text = text
	if kb.onChange != nil {
		kb.onChange(text)
	}
}

func (kb *virtualKeyboard) render(renderer *sdl.Renderer, window *internal.Window) {
	theme := internal.GetTheme()
	fonts := internal.GetFonts()
	width, height := window.Size()
	margin := int32(12)

	window.Clear(theme.BackgroundColor)
	top := renderTitleBar(renderer, kb.cache, appTitle, width)

	field := sdl.Rect{X: 20, Y: top + margin, W: width - 40, H: fontHeight(fonts.Medium) + 2*margin}
	fillRect(renderer, field, theme.SearchFieldColor)
	inner := internal.Symmetric(margin, margin).Inset(field)
	if kb.text == "" {
		drawTextAligned(renderer, kb.cache, fonts.Medium, constants.SearchPlaceholder, inner, constants.TextAlignLeft, theme.HintColor)
	} else {
		drawTextAligned(renderer, kb.cache, fonts.Medium, kb.text+"_", inner, constants.TextAlignLeft, theme.SearchTextColor)
	}

	rects := internal.KeyboardGeometry(width, height-footerHeight(margin))
	for r, row := range internal.KeyboardRows {
		for k, value := range row {
			bg, fg := theme.ListItemColor, theme.TextColor
			if r == kb.row && k == kb.col {
				bg, fg = theme.HighlightColor, theme.HighlightedTextColor
			}
			fillRect(renderer, rects[r][k], bg)
			drawTextAligned(renderer, kb.cache, fonts.Medium, kb.label(value), rects[r][k], constants.TextAlignCenter, fg)
		}
	}

	renderFooter(renderer, kb.cache, keyboardHelpItems, margin)
}
