// Package constants defines shared constants, types, and configuration values
// used throughout clicksearch.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variables read at startup.
const (
	FontPathEnvVar     = "CLICKSEARCH_FONT"
	LogLevelEnvVar     = "CLICKSEARCH_LOG_LEVEL"
	WindowWidthEnvVar  = "WINDOW_WIDTH"
	WindowHeightEnvVar = "WINDOW_HEIGHT"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// Application defaults.
const (
	DefaultTitle              = "ClickSearchToDetailScreen"
	DefaultFontPath           = "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf"
	DefaultFontSize           = 18
	DefaultWindowWidth  int32 = 1024
	DefaultWindowHeight int32 = 768
	DetailPlaceholder         = "No name selected"
	SearchPlaceholder         = "Search"
)

// VirtualButton represents an abstract input button, mapped from a keyboard
// key or a controller button.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonLeft
	VirtualButtonRight
	VirtualButtonA
	VirtualButtonB
	VirtualButtonX
	VirtualButtonY
	VirtualButtonStart
	VirtualButtonSelect
	VirtualButtonMenu
)

func (vb VirtualButton) GetName() string {
	switch vb {
	case VirtualButtonUnassigned:
		return "Unassigned"
	case VirtualButtonUp:
		return "Up"
	case VirtualButtonDown:
		return "Down"
	case VirtualButtonLeft:
		return "Left"
	case VirtualButtonRight:
		return "Right"
	case VirtualButtonA:
		return "A"
	case VirtualButtonB:
		return "B"
	case VirtualButtonX:
		return "X"
	case VirtualButtonY:
		return "Y"
	case VirtualButtonStart:
		return "Start"
	case VirtualButtonSelect:
		return "Select"
	case VirtualButtonMenu:
		return "Menu"
	default:
		return "Unknown"
	}
}

// TextAlign specifies horizontal text alignment.
type TextAlign int

const (
	TextAlignLeft   TextAlign = iota // Align text to the left edge
	TextAlignCenter                  // Center text horizontally
	TextAlignRight                   // Align text to the right edge
)

// Default timing and spacing constants.
const (
	DefaultInputDelay         = 20 * time.Millisecond // Debounce delay between input events
	DefaultTitleSpacing int32 = 5                     // Vertical spacing below title text
	DefaultFrameDelay         = 16                    // Milliseconds to wait for an event per frame
)
