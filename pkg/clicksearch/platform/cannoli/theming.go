// Package cannoli provides the Cannoli custom firmware palette.
// Cannoli is a community-developed CFW for retro handheld gaming devices.
package cannoli

import (
	"github.com/anunobi/clicksearch/pkg/clicksearch/internal"
)

// InitCannoliTheme creates a theme with Cannoli's default colors and the specified font.
func InitCannoliTheme(fontPath string) internal.Theme {
	return internal.Theme{
		TitleBarColor:        internal.HexToColor(0x008080),
		TitleTextColor:       internal.HexToColor(0xFFFFFF),
		BackgroundColor:      internal.HexToColor(0x000000),
		SearchFieldColor:     internal.HexToColor(0x1E1E1E),
		SearchTextColor:      internal.HexToColor(0xFFFFFF),
		HintColor:            internal.HexToColor(0x808080),
		ListItemColor:        internal.HexToColor(0x000000),
		HighlightColor:       internal.HexToColor(0xFFFFFF),
		TextColor:            internal.HexToColor(0xFFFFFF),
		HighlightedTextColor: internal.HexToColor(0x000000),
		AccentColor:          internal.HexToColor(0x008080),
		FontPath:             fontPath,
	}
}
