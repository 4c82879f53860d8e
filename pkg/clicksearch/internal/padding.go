package internal

import "github.com/veandco/go-sdl2/sdl"

// Padding defines spacing on all four sides of an element.
type Padding struct {
	Top    int32
	Right  int32
	Bottom int32
	Left   int32
}

// Symmetric pads vertical and horizontal edges separately.
func Symmetric(vertical, horizontal int32) Padding {
	return Padding{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}

// Inset shrinks r by p. Sizes never go negative.
func (p Padding) Inset(r sdl.Rect) sdl.Rect {
	out := sdl.Rect{
		X: r.X + p.Left,
		Y: r.Y + p.Top,
		W: r.W - p.Left - p.Right,
		H: r.H - p.Top - p.Bottom,
	}
	if out.W < 0 {
		out.W = 0
	}
	if out.H < 0 {
		out.H = 0
	}
	return out
}
