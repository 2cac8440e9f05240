package ui

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// RenderText renders text at the specified position with the given font and color
func RenderText(renderer *sdl.Renderer, text string, x, y int32, color sdl.Color, font *ttf.Font) error {
	if font == nil {
		return fmt.Errorf("font not available")
	}
	if text == "" {
		return nil
	}

	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		return err
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return err
	}
	defer texture.Destroy()

	_, _, w, h, err := texture.Query()
	if err != nil {
		return err
	}

	dstRect := sdl.Rect{X: x, Y: y, W: w, H: h}
	return renderer.Copy(texture, nil, &dstRect)
}

// TextSize measures text; a missing font measures as zero.
func TextSize(font *ttf.Font, text string) (int32, int32) {
	if font == nil || text == "" {
		return 0, 0
	}
	w, h, err := font.SizeUTF8(text)
	if err != nil {
		return 0, 0
	}
	return int32(w), int32(h)
}

// RenderTextCentered renders text centred inside rect.
func RenderTextCentered(renderer *sdl.Renderer, text string, rect sdl.Rect, color sdl.Color, font *ttf.Font) error {
	w, h := TextSize(font, text)
	return RenderText(renderer, text, rect.X+(rect.W-w)/2, rect.Y+(rect.H-h)/2, color, font)
}
