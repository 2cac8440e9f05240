package ui

import (
	"fmt"

	"github.com/apex/log"
	"github.com/veandco/go-sdl2/ttf"
)

// Font sizes in pixels, one per text role on the screen.
const (
	SizeTitleLarge  = 26
	SizeTitleMedium = 20
	SizeBodyLarge   = 19
	SizeBodySmall   = 15
	SizeLabelLarge  = 16
)

// fontPaths are tried in order after the configured font.
var fontPaths = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/System/Library/Fonts/Helvetica.ttc",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
}

// Fonts manages the TrueType fonts used by the screen
type Fonts struct {
	TitleLarge  *ttf.Font // top bar title
	TitleMedium *ttf.Font // info card title
	BodyLarge   *ttf.Font // row labels
	BodySmall   *ttf.Font // row descriptions
	LabelLarge  *ttf.Font // section headers, buttons, snackbar
}

// LoadFonts opens every role with the first font that loads. preferred may be
// empty. Roles whose font cannot be opened stay nil and are drawn as no text.
func LoadFonts(preferred string) (*Fonts, error) {
	if err := ttf.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize TTF: %w", err)
	}

	paths := fontPaths
	if preferred != "" {
		paths = append([]string{preferred}, fontPaths...)
	}

	fonts := &Fonts{
		TitleLarge:  openFirst(paths, SizeTitleLarge),
		TitleMedium: openFirst(paths, SizeTitleMedium),
		BodyLarge:   openFirst(paths, SizeBodyLarge),
		BodySmall:   openFirst(paths, SizeBodySmall),
		LabelLarge:  openFirst(paths, SizeLabelLarge),
	}
	if fonts.BodyLarge == nil {
		log.Warnf("no usable font found in %v", paths)
	}

	return fonts, nil
}

func openFirst(paths []string, size int) *ttf.Font {
	for _, path := range paths {
		font, err := ttf.OpenFont(path, size)
		if err == nil {
			return font
		}
	}
	return nil
}

// Close cleans up font resources
func (f *Fonts) Close() {
	for _, font := range []*ttf.Font{f.TitleLarge, f.TitleMedium, f.BodyLarge, f.BodySmall, f.LabelLarge} {
		if font != nil {
			font.Close()
		}
	}
	ttf.Quit()
}
