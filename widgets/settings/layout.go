package settings

import (
	"math"

	"github.com/veandco/go-sdl2/sdl"

	"settings-screen/ui"
)

// Layout metrics in pixels.
const (
	PaddingH      = 16
	RowPaddingH   = 4
	HeaderHeight  = 40
	RowHeight     = 76
	SliderHeight  = 84
	DividerHeight = 1
	InfoHeight    = 96
	InfoMarginV   = 8

	SwitchWidth   = 52
	SwitchHeight  = 32
	CheckboxSize  = 24
	CheckboxHit   = 48
	ButtonWidth   = 88
	ButtonHeight  = 40
	SliderInset   = 12
	SliderTouchH  = 48
	CornerRadius  = 8
	InfoRadius    = 12
	ControlMargin = 8
)

// height is the laid out height of a row.
func (r Row) height() int32 {
	if r.Height > 0 {
		return r.Height
	}
	switch r.Kind {
	case KindHeader:
		return HeaderHeight
	case KindSlider:
		return SliderHeight
	case KindDivider:
		return DividerHeight
	case KindInfo:
		return InfoHeight + 2*InfoMarginV
	case KindSpacer:
		return 0
	default:
		return RowHeight
	}
}

// Layout places rows top to bottom in a column of the given width. It
// returns the placed rows and the total content height.
func Layout(rows []Row, x, width int32) ([]Placed, int32) {
	placed := make([]Placed, len(rows))
	left := x + PaddingH
	inner := width - 2*PaddingH
	y := int32(0)

	for i, row := range rows {
		h := row.height()
		rect := sdl.Rect{X: left, Y: y, W: inner, H: h}
		placed[i] = Placed{Row: row, Rect: rect, Control: controlRect(row, rect)}
		y += h
	}

	return placed, y
}

func controlRect(row Row, rect sdl.Rect) sdl.Rect {
	right := rect.X + rect.W - RowPaddingH
	midY := rect.Y + rect.H/2

	switch row.Kind {
	case KindSwitch:
		return sdl.Rect{X: right - SwitchWidth, Y: midY - SwitchHeight/2, W: SwitchWidth, H: SwitchHeight}
	case KindCheckbox:
		return sdl.Rect{X: right - CheckboxHit, Y: midY - CheckboxHit/2, W: CheckboxHit, H: CheckboxHit}
	case KindAction:
		return sdl.Rect{X: right - ButtonWidth, Y: midY - ButtonHeight/2, W: ButtonWidth, H: ButtonHeight}
	case KindSlider:
		// Label and slider split the row in equal halves.
		half := (rect.W - 2*SliderInset) / 2
		return sdl.Rect{
			X: rect.X + SliderInset + half + ControlMargin,
			Y: midY - SliderTouchH/2,
			W: half - ControlMargin,
			H: SliderTouchH,
		}
	default:
		return sdl.Rect{}
	}
}

// HitTest returns the index of the interactive row under (x, y), given in
// content coordinates, and the part that was hit. It returns -1 when no
// interactive row is hit.
func HitTest(placed []Placed, x, y int32) (int, Part) {
	for i, p := range placed {
		if !p.Row.Interactive() || !ui.Contains(p.Rect, x, y) {
			continue
		}
		if ui.Contains(p.Control, x, y) {
			return i, PartControl
		}
		return i, PartRow
	}
	return -1, PartNone
}

// SliderValue maps a pointer x position over the track to a value in
// [min, max].
func SliderValue(track sdl.Rect, x int32, min, max float64) float64 {
	if track.W <= 0 {
		return min
	}
	f := float64(x-track.X) / float64(track.W)
	f = math.Max(0, math.Min(1, f))
	return min + f*(max-min)
}

// SliderPosition is the inverse of SliderValue.
func SliderPosition(track sdl.Rect, v, min, max float64) int32 {
	if max <= min {
		return track.X
	}
	f := (v - min) / (max - min)
	f = math.Max(0, math.Min(1, f))
	return track.X + int32(math.Round(f*float64(track.W)))
}
