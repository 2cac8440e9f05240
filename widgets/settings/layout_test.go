package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"

	"settings-screen/pkg/settings"
)

func TestLayout(t *testing.T) {
	placed, height := Layout(BuildRows(settings.Defaults()), 0, 480)

	assert.Equal(t, int32(771), height)
	assert.Equal(t, sdl.Rect{X: 16, Y: 0, W: 448, H: HeaderHeight}, placed[0].Rect)
	assert.Equal(t, sdl.Rect{X: 16, Y: 40, W: 448, H: RowHeight}, placed[1].Rect)

	// Switch sits at the right edge, vertically centred.
	assert.Equal(t, sdl.Rect{X: 408, Y: 62, W: 52, H: 32}, placed[1].Control)
	// Slider takes the right half of its row.
	assert.Equal(t, sdl.Rect{X: 248, Y: 135, W: 204, H: 48}, placed[3].Control)
	// Clear button.
	assert.Equal(t, sdl.Rect{X: 372, Y: 561, W: 88, H: 40}, placed[13].Control)
	// Rows without controls.
	assert.Equal(t, sdl.Rect{}, placed[0].Control)
}

func TestHitTest(t *testing.T) {
	placed, _ := Layout(BuildRows(settings.Defaults()), 0, 480)

	tests := []struct {
		name      string
		x, y      int32
		wantIndex int
		wantPart  Part
	}{
		{"switch control", 420, 70, 1, PartControl},
		{"switch row body", 100, 70, 1, PartRow},
		{"header is not interactive", 100, 20, -1, PartNone},
		{"divider is not interactive", 100, 116, -1, PartNone},
		{"slider track", 400, 150, 3, PartControl},
		{"slider label", 60, 150, 3, PartRow},
		{"clear button", 400, 580, 13, PartControl},
		{"info card", 100, 680, -1, PartNone},
		{"left padding", 5, 70, -1, PartNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i, part := HitTest(placed, tt.x, tt.y)
			assert.Equal(t, tt.wantIndex, i)
			assert.Equal(t, tt.wantPart, part)
		})
	}
}

func TestSliderMapping(t *testing.T) {
	track := sdl.Rect{X: 248, Y: 0, W: 204, H: 48}

	assert.Equal(t, 12.0, SliderValue(track, 248, 12, 28))
	assert.Equal(t, 28.0, SliderValue(track, 452, 12, 28))
	assert.InDelta(t, 20.0, SliderValue(track, 350, 12, 28), 1e-9)
	assert.Equal(t, 12.0, SliderValue(track, 0, 12, 28))
	assert.Equal(t, 28.0, SliderValue(track, 1000, 12, 28))
	assert.Equal(t, 12.0, SliderValue(sdl.Rect{}, 10, 12, 28))

	assert.Equal(t, int32(248), SliderPosition(track, 12, 12, 28))
	assert.Equal(t, int32(350), SliderPosition(track, 20, 12, 28))
	assert.Equal(t, int32(452), SliderPosition(track, 40, 12, 28))
	assert.Equal(t, int32(248), SliderPosition(track, 20, 28, 28))
}
