package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/ttf"
)

// Fonts holds the three sizes used by the screens. Large is the title,
// Medium the list rows and detail text, Small the footer and hints.
type Fonts struct {
	Large  *ttf.Font
	Medium *ttf.Font
	Small  *ttf.Font
}

var fonts Fonts

func initFonts(path string, base int) error {
	sizes := []struct {
		dst  **ttf.Font
		size int
	}{
		{&fonts.Large, base * 3 / 2},
		{&fonts.Medium, base},
		{&fonts.Small, base * 3 / 4},
	}

	for _, s := range sizes {
		f, err := ttf.OpenFont(path, s.size)
		if err != nil {
			closeFonts()
			return fmt.Errorf("open font %s at %dpt: %w", path, s.size, err)
		}
		*s.dst = f
	}

	GetInternalLogger().Debug("Fonts loaded", "path", path, "base", base)
	return nil
}

func closeFonts() {
	for _, f := range []*ttf.Font{fonts.Large, fonts.Medium, fonts.Small} {
		if f != nil {
			f.Close()
		}
	}
	fonts = Fonts{}
}

func GetFonts() Fonts {
	return fonts
}
