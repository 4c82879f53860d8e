package internal

import (
	"fmt"
	"image"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/sdl"
)

// RasterizeIcon renders an SVG document into a size x size texture.
// The SVG is expected to be drawn in white so that SetColorMod can tint it.
func RasterizeIcon(renderer *sdl.Renderer, svg string, size int) (*sdl.Texture, error) {
	if size <= 0 {
		return nil, fmt.Errorf("icon size must be positive, got %d", size)
	}

	icon, err := oksvg.ReadIconStream(strings.NewReader(svg))
	if err != nil {
		return nil, fmt.Errorf("parse icon: %w", err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(size, size, scanner), 1)

	surface, err := sdl.CreateRGBSurfaceWithFormat(0, int32(size), int32(size), 32, uint32(sdl.PIXELFORMAT_ABGR8888))
	if err != nil {
		return nil, fmt.Errorf("create icon surface: %w", err)
	}
	defer surface.Free()

	if err := surface.Lock(); err != nil {
		return nil, fmt.Errorf("lock icon surface: %w", err)
	}
	pixels := surface.Pixels()
	rowBytes := size * 4
	for y := 0; y < size; y++ {
		dst := pixels[y*int(surface.Pitch) : y*int(surface.Pitch)+rowBytes]
		copy(dst, img.Pix[y*img.Stride:y*img.Stride+rowBytes])
	}
	surface.Unlock()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, fmt.Errorf("create icon texture: %w", err)
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)
	return texture, nil
}

// DrawIcon draws texture into dst tinted with color.
func DrawIcon(renderer *sdl.Renderer, texture *sdl.Texture, dst sdl.Rect, color sdl.Color) {
	if texture == nil {
		return
	}
	texture.SetColorMod(color.R, color.G, color.B)
	texture.SetAlphaMod(color.A)
	renderer.Copy(texture, nil, &dst)
}
