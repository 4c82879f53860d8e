package internal

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Theme defines the visual appearance of the screens.
type Theme struct {
	TitleBarColor        sdl.Color // Title bar background
	TitleTextColor       sdl.Color // Title bar text
	BackgroundColor      sdl.Color // Screen background
	SearchFieldColor     sdl.Color // Search field background
	SearchTextColor      sdl.Color // Query text, cursor and icons
	HintColor            sdl.Color // Placeholder and footer text
	ListItemColor        sdl.Color // Row background
	HighlightColor       sdl.Color // Focused row background, selected key
	TextColor            sdl.Color // Row text, detail text
	HighlightedTextColor sdl.Color // Text on the focused row
	AccentColor          sdl.Color // Footer pills, confirm buttons
	FontPath             string    // Path to the UI font
}

var currentTheme = DefaultTheme("")

// DefaultTheme is the stock layout: a blue title bar, a black
// search field, purple rows on a gray background.
func DefaultTheme(fontPath string) Theme {
	return Theme{
		TitleBarColor:        HexToColor(0x0000FF),
		TitleTextColor:       HexToColor(0xFFFFFF),
		BackgroundColor:      HexToColor(0x888888),
		SearchFieldColor:     HexToColor(0x000000),
		SearchTextColor:      HexToColor(0xFFFFFF),
		HintColor:            HexToColor(0xB4B4B4),
		ListItemColor:        HexToColor(0x3700B3),
		HighlightColor:       HexToColor(0xFFFFFF),
		TextColor:            HexToColor(0xFFFFFF),
		HighlightedTextColor: HexToColor(0x3700B3),
		AccentColor:          HexToColor(0x0000FF),
		FontPath:             fontPath,
	}
}

// HexToColor converts 0xRRGGBB to an opaque color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8(hex >> 16 & 0xFF),
		G: uint8(hex >> 8 & 0xFF),
		B: uint8(hex & 0xFF),
		A: 255,
	}
}

// SetTheme sets the active theme.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the currently active theme.
func GetTheme() Theme {
	return currentTheme
}
