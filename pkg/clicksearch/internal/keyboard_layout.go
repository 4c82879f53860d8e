package internal

import "github.com/veandco/go-sdl2/sdl"

// Special keys on the on-screen keyboard.
const (
	KeyBackspace = "⌫"
	KeySpace     = "␣"
	KeyDone      = "OK"
)

// KeyboardRows is the compact layout used by the search keyboard. Names
// only need letters, a space and a few punctuation marks.
var KeyboardRows = [][]string{
	{"1", "2", "3", "4", "5", "6", "7", "8", "9", "0"},
	{"q", "w", "e", "r", "t", "y", "u", "i", "o", "p"},
	{"a", "s", "d", "f", "g", "h", "j", "k", "l", "'"},
	{"z", "x", "c", "v", "b", "n", "m", "-", ".", KeyBackspace},
	{KeySpace, KeyDone},
}

// KeyboardGeometry positions the keyboard in the lower part of the window
// and returns one rect per key, indexed like KeyboardRows.
func KeyboardGeometry(windowWidth, windowHeight int32) [][]sdl.Rect {
	const spacing int32 = 4

	width := windowWidth * 9 / 10
	height := windowHeight / 2
	startX := (windowWidth - width) / 2
	startY := windowHeight - height - windowHeight/20

	rows := int32(len(KeyboardRows))
	keyHeight := (height - spacing*(rows-1)) / rows
	widest := int32(0)
	for _, row := range KeyboardRows {
		if n := int32(len(row)); n > widest {
			widest = n
		}
	}
	keyWidth := (width - spacing*(widest-1)) / widest

	rects := make([][]sdl.Rect, len(KeyboardRows))
	y := startY
	for r, row := range KeyboardRows {
		n := int32(len(row))
		w := keyWidth
		if n < widest {
			// Short rows stretch their keys to span the full width.
			w = (width - spacing*(n-1)) / n
		}
		x := startX
		rects[r] = make([]sdl.Rect, len(row))
		for k := range row {
			rects[r][k] = sdl.Rect{X: x, Y: y, W: w, H: keyHeight}
			x += w + spacing
		}
		y += keyHeight + spacing
	}
	return rects
}

// MoveKeyCursor moves (row, col) by the given deltas, wrapping at the edges
// and clamping col when a row is shorter.
func MoveKeyCursor(row, col, dRow, dCol int) (int, int) {
	rows := len(KeyboardRows)
	row = (row + dRow + rows) % rows
	n := len(KeyboardRows[row])
	if dCol != 0 {
		col = (col + dCol + n) % n
	}
	if col >= n {
		col = n - 1
	}
	return row, col
}
