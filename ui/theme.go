package ui

import "github.com/veandco/go-sdl2/sdl"

// Palette is the set of colors a screen is drawn with.
type Palette struct {
	Background           sdl.Color
	Surface              sdl.Color
	SurfaceVariant       sdl.Color
	OnSurface            sdl.Color
	OnSurfaceVariant     sdl.Color
	Primary              sdl.Color
	OnPrimary            sdl.Color
	SecondaryContainer   sdl.Color
	OnSecondaryContainer sdl.Color
	Outline              sdl.Color
	OutlineVariant       sdl.Color
	InverseSurface       sdl.Color
	InverseOnSurface     sdl.Color
	Focus                sdl.Color
}

// LightPalette is used while dark mode is off.
var LightPalette = Palette{
	Background:           sdl.Color{R: 254, G: 247, B: 255, A: 255},
	Surface:              sdl.Color{R: 254, G: 247, B: 255, A: 255},
	SurfaceVariant:       sdl.Color{R: 231, G: 224, B: 236, A: 255},
	OnSurface:            sdl.Color{R: 29, G: 27, B: 32, A: 255},
	OnSurfaceVariant:     sdl.Color{R: 73, G: 69, B: 79, A: 255},
	Primary:              sdl.Color{R: 103, G: 80, B: 164, A: 255},
	OnPrimary:            sdl.Color{R: 255, G: 255, B: 255, A: 255},
	SecondaryContainer:   sdl.Color{R: 232, G: 222, B: 248, A: 255},
	OnSecondaryContainer: sdl.Color{R: 29, G: 25, B: 43, A: 255},
	Outline:              sdl.Color{R: 121, G: 116, B: 126, A: 255},
	OutlineVariant:       sdl.Color{R: 202, G: 196, B: 208, A: 255},
	InverseSurface:       sdl.Color{R: 50, G: 47, B: 53, A: 255},
	InverseOnSurface:     sdl.Color{R: 245, G: 239, B: 247, A: 255},
	Focus:                sdl.Color{R: 103, G: 80, B: 164, A: 40},
}

// DarkPalette is used while dark mode is on.
var DarkPalette = Palette{
	Background:           sdl.Color{R: 20, G: 18, B: 24, A: 255},
	Surface:              sdl.Color{R: 20, G: 18, B: 24, A: 255},
	SurfaceVariant:       sdl.Color{R: 73, G: 69, B: 79, A: 255},
	OnSurface:            sdl.Color{R: 230, G: 224, B: 233, A: 255},
	OnSurfaceVariant:     sdl.Color{R: 202, G: 196, B: 208, A: 255},
	Primary:              sdl.Color{R: 208, G: 188, B: 255, A: 255},
	OnPrimary:            sdl.Color{R: 56, G: 30, B: 114, A: 255},
	SecondaryContainer:   sdl.Color{R: 74, G: 68, B: 88, A: 255},
	OnSecondaryContainer: sdl.Color{R: 232, G: 222, B: 248, A: 255},
	Outline:              sdl.Color{R: 147, G: 143, B: 153, A: 255},
	OutlineVariant:       sdl.Color{R: 73, G: 69, B: 79, A: 255},
	InverseSurface:       sdl.Color{R: 230, G: 224, B: 233, A: 255},
	InverseOnSurface:     sdl.Color{R: 50, G: 47, B: 53, A: 255},
	Focus:                sdl.Color{R: 208, G: 188, B: 255, A: 40},
}

// PaletteFor picks the palette for the dark mode setting.
func PaletteFor(dark bool) Palette {
	if dark {
		return DarkPalette
	}
	return LightPalette
}
