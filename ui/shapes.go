package ui

import (
	"math"

	"github.com/veandco/go-sdl2/sdl"
)

// SetColor sets the renderer draw color from an sdl.Color.
func SetColor(renderer *sdl.Renderer, c sdl.Color) {
	renderer.SetDrawColor(c.R, c.G, c.B, c.A)
}

// DrawGradientRect draws a vertical gradient rectangle
func DrawGradientRect(renderer *sdl.Renderer, x, y, width, height int32, startColor, endColor sdl.Color) {
	if height <= 0 {
		return
	}
	for i := int32(0); i < height; i++ {
		t := 0.0
		if height > 1 {
			t = float64(i) / float64(height-1)
		}
		SetColor(renderer, Lerp(startColor, endColor, t))
		renderer.DrawLine(x, y+i, x+width-1, y+i)
	}
}

// Lerp interpolates between two colors, t in [0, 1].
func Lerp(a, b sdl.Color, t float64) sdl.Color {
	mix := func(p, q uint8) uint8 {
		return uint8(math.Round(float64(p)*(1-t) + float64(q)*t))
	}
	return sdl.Color{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

// CornerInset returns how far row (0-based, from the top) of a rounded
// rectangle of the given height is indented by a corner of radius r.
func CornerInset(r, row, height int32) int32 {
	if r <= 0 || row < 0 || row >= height {
		return 0
	}
	if r > height/2 {
		r = height / 2
	}

	d := row
	if bottom := height - 1 - row; bottom < d {
		d = bottom
	}
	if d >= r {
		return 0
	}

	dy := float64(r) - float64(d) - 0.5
	dx := math.Sqrt(math.Max(0, float64(r*r)-dy*dy))
	return int32(math.Round(float64(r) - dx))
}

// FillRoundedRect fills rect with corners of radius r.
func FillRoundedRect(renderer *sdl.Renderer, rect sdl.Rect, r int32, c sdl.Color) {
	if rect.W <= 0 || rect.H <= 0 {
		return
	}
	if r > rect.W/2 {
		r = rect.W / 2
	}
	SetColor(renderer, c)

	if r <= 0 {
		renderer.FillRect(&rect)
		return
	}
	for row := int32(0); row < rect.H; row++ {
		inset := CornerInset(r, row, rect.H)
		renderer.DrawLine(rect.X+inset, rect.Y+row, rect.X+rect.W-1-inset, rect.Y+row)
	}
}

// DrawRoundedRect outlines rect with corners of radius r, thickness pixels
// wide.
func DrawRoundedRect(renderer *sdl.Renderer, rect sdl.Rect, r, thickness int32, c sdl.Color) {
	SetColor(renderer, c)
	for t := int32(0); t < thickness; t++ {
		inner := sdl.Rect{X: rect.X + t, Y: rect.Y + t, W: rect.W - 2*t, H: rect.H - 2*t}
		rr := r - t
		if rr < 0 {
			rr = 0
		}
		outlineRoundedRect(renderer, inner, rr)
	}
}

func outlineRoundedRect(renderer *sdl.Renderer, rect sdl.Rect, r int32) {
	if rect.W <= 0 || rect.H <= 0 {
		return
	}
	if r > rect.W/2 {
		r = rect.W / 2
	}
	if r > rect.H/2 {
		r = rect.H / 2
	}
	right := rect.X + rect.W - 1
	bottom := rect.Y + rect.H - 1

	renderer.DrawLine(rect.X+r, rect.Y, right-r, rect.Y)
	renderer.DrawLine(rect.X+r, bottom, right-r, bottom)
	renderer.DrawLine(rect.X, rect.Y+r, rect.X, bottom-r)
	renderer.DrawLine(right, rect.Y+r, right, bottom-r)

	if r == 0 {
		return
	}
	steps := int(r) * 2
	for i := 0; i <= steps; i++ {
		a := float64(i) / float64(steps) * math.Pi / 2
		dx := int32(math.Round(float64(r) * (1 - math.Cos(a))))
		dy := int32(math.Round(float64(r) * (1 - math.Sin(a))))
		renderer.DrawPoint(rect.X+dx, rect.Y+dy)
		renderer.DrawPoint(right-dx, rect.Y+dy)
		renderer.DrawPoint(rect.X+dx, bottom-dy)
		renderer.DrawPoint(right-dx, bottom-dy)
	}
}

// FillCircle fills a circle centred on (cx, cy).
func FillCircle(renderer *sdl.Renderer, cx, cy, r int32, c sdl.Color) {
	SetColor(renderer, c)
	for dy := -r; dy <= r; dy++ {
		dx := int32(math.Sqrt(float64(r*r - dy*dy)))
		renderer.DrawLine(cx-dx, cy+dy, cx+dx, cy+dy)
	}
}

// DrawThickLine draws a line thickness pixels wide by offsetting copies of it.
func DrawThickLine(renderer *sdl.Renderer, x1, y1, x2, y2, thickness int32, c sdl.Color) {
	SetColor(renderer, c)
	half := thickness / 2
	for o := -half; o <= thickness-1-half; o++ {
		renderer.DrawLine(x1, y1+o, x2, y2+o)
		renderer.DrawLine(x1+o, y1, x2+o, y2)
	}
}

// Contains reports whether (x, y) is inside rect.
func Contains(rect sdl.Rect, x, y int32) bool {
	return x >= rect.X && x < rect.X+rect.W && y >= rect.Y && y < rect.Y+rect.H
}
