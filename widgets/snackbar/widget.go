package snackbar

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"settings-screen/ui"
)

// Layout metrics in pixels.
const (
	Height  = 48
	Margin  = 16
	Padding = 16
	Radius  = 4
)

// Rect returns where a message of textWidth pixels is drawn on a screen of
// the given size.
func Rect(screenWidth, screenHeight, textWidth int32) sdl.Rect {
	w := textWidth + 2*Padding
	if limit := screenWidth - 2*Margin; w > limit {
		w = limit
	}
	return sdl.Rect{
		X: (screenWidth - w) / 2,
		Y: screenHeight - Margin - Height,
		W: w,
		H: Height,
	}
}

// Draw renders the current message, if any, at the bottom of the screen
func (h *Host) Draw(renderer *sdl.Renderer, screenWidth, screenHeight int32, palette ui.Palette, font *ttf.Font, now time.Time) error {
	text, ok := h.Current()
	if !ok || !h.Active(now) {
		return nil
	}

	textW, textH := ui.TextSize(font, text)
	rect := Rect(screenWidth, screenHeight, textW)

	ui.FillRoundedRect(renderer, rect, Radius, palette.InverseSurface)
	if font == nil {
		return nil
	}
	return ui.RenderText(renderer, text, rect.X+Padding, rect.Y+(rect.H-textH)/2, palette.InverseOnSurface, font)
}

// Contains reports whether (x, y) lies on the visible message, so a tap on it
// can dismiss it.
func (h *Host) Contains(font *ttf.Font, screenWidth, screenHeight, x, y int32) bool {
	text, ok := h.Current()
	if !ok {
		return false
	}
	textW, _ := ui.TextSize(font, text)
	return ui.Contains(Rect(screenWidth, screenHeight, textW), x, y)
}
