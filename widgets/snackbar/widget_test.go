package snackbar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"
)

func TestRect(t *testing.T) {
	tests := []struct {
		name                 string
		screenW, screenH, tw int32
		want                 sdl.Rect
	}{
		{"short text is centred", 480, 900, 100, sdl.Rect{X: 174, Y: 836, W: 132, H: Height}},
		{"long text is capped by margins", 480, 900, 1000, sdl.Rect{X: 16, Y: 836, W: 448, H: Height}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Rect(tt.screenW, tt.screenH, tt.tw))
		})
	}
}
