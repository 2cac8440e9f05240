package infocard

import (
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"settings-screen/ui"
)

// Radius of the card corners in pixels.
const Radius = 12

// Card is the informational card at the bottom of the settings column
type Card struct {
	Title    string
	Subtitle string
}

// Draw renders a single card filling rect
func Draw(renderer *sdl.Renderer, card Card, rect sdl.Rect, palette ui.Palette, titleFont, bodyFont *ttf.Font) {
	ui.FillRoundedRect(renderer, rect, Radius, palette.SurfaceVariant)

	_, titleH := ui.TextSize(titleFont, card.Title)
	_, bodyH := ui.TextSize(bodyFont, card.Subtitle)
	top := rect.Y + (rect.H-titleH-bodyH)/2

	ui.RenderText(renderer, card.Title, rect.X+16, top, palette.OnSurface, titleFont)
	ui.RenderText(renderer, card.Subtitle, rect.X+16, top+titleH, palette.OnSurfaceVariant, bodyFont)
}
