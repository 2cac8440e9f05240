package settings

import (
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"settings-screen/ui"
	"settings-screen/widgets/infocard"
)

// Draw renders the rows that intersect the viewport. focusVisible shows the
// keyboard focus highlight.
func (w *Widget) Draw(renderer *sdl.Renderer, palette ui.Palette, fonts *ui.Fonts, focusVisible bool) error {
	if fonts == nil {
		return nil
	}

	clip := w.viewport
	renderer.SetClipRect(&clip)
	defer renderer.SetClipRect(nil)

	for i, p := range w.placed {
		rect := w.toScreen(p.Rect)
		if rect.Y+rect.H < w.viewport.Y || rect.Y > w.viewport.Y+w.viewport.H {
			continue
		}
		control := w.toScreen(p.Control)

		if focusVisible && i == w.focused {
			ui.FillRoundedRect(renderer, rect, CornerRadius, palette.Focus)
		}

		switch p.Row.Kind {
		case KindHeader:
			ui.RenderText(renderer, p.Row.Title, rect.X, rect.Y+rect.H-24, palette.Primary, fonts.LabelLarge)
		case KindDivider:
			ui.SetColor(renderer, palette.OutlineVariant)
			renderer.DrawLine(rect.X, rect.Y, rect.X+rect.W-1, rect.Y)
		case KindSwitch:
			drawLabels(renderer, p.Row, rect, palette, fonts)
			drawSwitch(renderer, control, p.Row.Checked, palette)
		case KindCheckbox:
			drawLabels(renderer, p.Row, rect, palette, fonts)
			drawCheckbox(renderer, control, p.Row.Checked, palette)
		case KindSlider:
			if p.Row.Bordered {
				ui.DrawRoundedRect(renderer, rect, CornerRadius, 1, palette.OutlineVariant)
			}
			inner := rect
			inner.X += SliderInset - RowPaddingH
			drawLabels(renderer, p.Row, inner, palette, fonts)
			drawSlider(renderer, control, p.Row, palette, i == w.dragging)
		case KindAction:
			drawLabels(renderer, p.Row, rect, palette, fonts)
			drawButton(renderer, control, p.Row.ActionLabel, palette, fonts.LabelLarge)
		case KindInfo:
			card := sdl.Rect{X: rect.X, Y: rect.Y + InfoMarginV, W: rect.W, H: rect.H - 2*InfoMarginV}
			infocard.Draw(renderer, infocard.Card{Title: p.Row.Title, Subtitle: p.Row.Description}, card, palette, fonts.TitleMedium, fonts.BodySmall)
		}
	}

	return nil
}

// drawLabels renders the title and description column of a row
func drawLabels(renderer *sdl.Renderer, row Row, rect sdl.Rect, palette ui.Palette, fonts *ui.Fonts) {
	_, titleH := ui.TextSize(fonts.BodyLarge, row.Title)
	_, descH := ui.TextSize(fonts.BodySmall, row.Description)
	top := rect.Y + (rect.H-titleH-descH)/2
	x := rect.X + RowPaddingH

	ui.RenderText(renderer, row.Title, x, top, palette.OnSurface, fonts.BodyLarge)
	ui.RenderText(renderer, row.Description, x, top+titleH, palette.OnSurfaceVariant, fonts.BodySmall)
}

func drawSwitch(renderer *sdl.Renderer, rect sdl.Rect, checked bool, palette ui.Palette) {
	r := rect.H / 2
	if checked {
		ui.FillRoundedRect(renderer, rect, r, palette.Primary)
		ui.FillCircle(renderer, rect.X+rect.W-r, rect.Y+r, r-4, palette.OnPrimary)
		return
	}
	ui.FillRoundedRect(renderer, rect, r, palette.SurfaceVariant)
	ui.DrawRoundedRect(renderer, rect, r, 2, palette.Outline)
	ui.FillCircle(renderer, rect.X+r, rect.Y+r, r-8, palette.Outline)
}

func drawCheckbox(renderer *sdl.Renderer, hit sdl.Rect, checked bool, palette ui.Palette) {
	box := sdl.Rect{
		X: hit.X + (hit.W-CheckboxSize)/2,
		Y: hit.Y + (hit.H-CheckboxSize)/2,
		W: CheckboxSize,
		H: CheckboxSize,
	}
	if !checked {
		ui.DrawRoundedRect(renderer, box, 2, 2, palette.OnSurfaceVariant)
		return
	}
	ui.FillRoundedRect(renderer, box, 2, palette.Primary)
	ui.DrawThickLine(renderer, box.X+5, box.Y+12, box.X+10, box.Y+17, 2, palette.OnPrimary)
	ui.DrawThickLine(renderer, box.X+10, box.Y+17, box.X+19, box.Y+7, 2, palette.OnPrimary)
}

func drawSlider(renderer *sdl.Renderer, rect sdl.Rect, row Row, palette ui.Palette, active bool) {
	midY := rect.Y + rect.H/2
	thumbX := SliderPosition(rect, row.Value, row.Min, row.Max)

	ui.FillRoundedRect(renderer, sdl.Rect{X: rect.X, Y: midY - 2, W: rect.W, H: 4}, 2, palette.SecondaryContainer)
	ui.FillRoundedRect(renderer, sdl.Rect{X: rect.X, Y: midY - 2, W: thumbX - rect.X, H: 4}, 2, palette.Primary)

	thumbH := int32(20)
	if active {
		thumbH = 24
	}
	ui.FillRoundedRect(renderer, sdl.Rect{X: thumbX - 2, Y: midY - thumbH, W: 4, H: thumbH * 2}, 2, palette.Primary)
}

func drawButton(renderer *sdl.Renderer, rect sdl.Rect, label string, palette ui.Palette, font *ttf.Font) {
	ui.FillRoundedRect(renderer, rect, rect.H/2, palette.SecondaryContainer)
	ui.RenderTextCentered(renderer, label, rect, palette.OnSecondaryContainer, font)
}
