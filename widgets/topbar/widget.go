package topbar

import (
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"settings-screen/ui"
)

// Layout metrics in pixels.
const (
	Height     = 64
	ButtonSize = 48
	ShadowSize = 4
)

// Widget is the top app bar with a back button and a title
type Widget struct {
	title string
}

// NewWidget creates a new top bar widget
func NewWidget(title string) *Widget {
	return &Widget{title: title}
}

// Title returns the bar title
func (w *Widget) Title() string {
	return w.title
}

// BackButton returns the hit area of the back button for a bar drawn at
// (x, y).
func BackButton(x, y int32) sdl.Rect {
	return sdl.Rect{X: x + 8, Y: y + (Height-ButtonSize)/2, W: ButtonSize, H: ButtonSize}
}

// Draw renders the bar across width pixels
func (w *Widget) Draw(renderer *sdl.Renderer, x, y, width int32, palette ui.Palette, font *ttf.Font, backHovered bool) error {
	ui.SetColor(renderer, palette.Surface)
	renderer.FillRect(&sdl.Rect{X: x, Y: y, W: width, H: Height})

	shadow := palette.OnSurface
	shadow.A = 30
	fade := shadow
	fade.A = 0
	ui.DrawGradientRect(renderer, x, y+Height, width, ShadowSize, shadow, fade)

	button := BackButton(x, y)
	if backHovered {
		ui.FillCircle(renderer, button.X+button.W/2, button.Y+button.H/2, button.W/2, palette.Focus)
	}
	drawBackArrow(renderer, button, palette.OnSurface)

	if font == nil {
		return nil
	}
	_, textH := ui.TextSize(font, w.title)
	return ui.RenderText(renderer, w.title, button.X+button.W+16, y+(Height-textH)/2, palette.OnSurface, font)
}

func drawBackArrow(renderer *sdl.Renderer, button sdl.Rect, color sdl.Color) {
	cx := button.X + button.W/2
	cy := button.Y + button.H/2
	ui.DrawThickLine(renderer, cx-8, cy, cx+8, cy, 2, color)
	ui.DrawThickLine(renderer, cx-8, cy, cx-1, cy-7, 2, color)
	ui.DrawThickLine(renderer, cx-8, cy, cx-1, cy+7, 2, color)
}
