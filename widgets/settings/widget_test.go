package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"

	"settings-screen/pkg/settings"
)

func newTestWidget() *Widget {
	w := NewWidget()
	w.SetViewport(sdl.Rect{X: 0, Y: 64, W: 480, H: 400})
	w.SetRows(BuildRows(settings.Defaults()))
	return w
}

func TestWidgetScroll(t *testing.T) {
	w := newTestWidget()

	assert.Equal(t, int32(771), w.ContentHeight())
	assert.Equal(t, int32(371), w.MaxScroll())

	w.ScrollBy(1000)
	assert.Equal(t, int32(371), w.Scroll())
	w.ScrollBy(-2000)
	assert.Equal(t, int32(0), w.Scroll())

	// A viewport taller than the content cannot scroll.
	w.SetViewport(sdl.Rect{X: 0, Y: 64, W: 480, H: 2000})
	assert.Equal(t, int32(0), w.MaxScroll())
}

func TestWidgetMoveFocus(t *testing.T) {
	w := newTestWidget()
	assert.Equal(t, -1, w.Focused())
	_, ok := w.FocusedRow()
	assert.False(t, ok)

	var order []int
	for i := 0; i < 7; i++ {
		w.MoveFocus(1)
		order = append(order, w.Focused())
	}
	assert.Equal(t, []int{1, 3, 6, 8, 11, 13, 1}, order)

	w.MoveFocus(-1)
	assert.Equal(t, 13, w.Focused())
	row, ok := w.FocusedRow()
	assert.True(t, ok)
	assert.Equal(t, "Clear Cache", row.Title)
}

func TestWidgetFocusScrollsIntoView(t *testing.T) {
	w := newTestWidget()

	w.MoveFocus(-1)
	assert.Equal(t, 13, w.Focused())
	// Bottom of the clear cache row (619) aligned with the viewport bottom.
	assert.Equal(t, int32(219), w.Scroll())

	w.MoveFocus(1)
	assert.Equal(t, 1, w.Focused())
	assert.Equal(t, int32(40), w.Scroll())
}

func TestWidgetSetFocus(t *testing.T) {
	w := newTestWidget()

	w.SetFocus(0)
	assert.Equal(t, -1, w.Focused(), "headers cannot take focus")
	w.SetFocus(8)
	assert.Equal(t, 8, w.Focused())
	w.SetFocus(99)
	assert.Equal(t, 8, w.Focused())
}

func TestWidgetHitTest(t *testing.T) {
	w := newTestWidget()

	i, part := w.HitTest(420, 64+70)
	assert.Equal(t, 1, i)
	assert.Equal(t, PartControl, part)

	i, _ = w.HitTest(420, 10)
	assert.Equal(t, -1, i, "above the viewport")

	w.ScrollBy(40)
	i, part = w.HitTest(420, 64+30)
	assert.Equal(t, 1, i)
	assert.Equal(t, PartControl, part)
}

func TestWidgetDrag(t *testing.T) {
	w := newTestWidget()

	assert.False(t, w.BeginDrag(1))
	assert.Equal(t, -1, w.Dragging())

	assert.True(t, w.BeginDrag(3))
	assert.Equal(t, 3, w.Dragging())
	assert.Equal(t, 3, w.Focused())

	v, ok := w.SliderValueAt(3, 350)
	assert.True(t, ok)
	assert.InDelta(t, 20.0, v, 1e-9)

	_, ok = w.SliderValueAt(1, 350)
	assert.False(t, ok)

	w.EndDrag()
	assert.Equal(t, -1, w.Dragging())
}

func TestWidgetSetRowsKeepsFocus(t *testing.T) {
	w := newTestWidget()
	w.SetFocus(6)
	w.BeginDrag(3)

	s := settings.NewState()
	s.Toggle(settings.Notifications)
	w.SetRows(BuildRows(s.Snapshot()))

	assert.Equal(t, 3, w.Focused())
	assert.Equal(t, 3, w.Dragging())
	assert.False(t, w.Rows()[6].Checked)

	w.SetRows(nil)
	assert.Equal(t, -1, w.Focused())
	assert.Equal(t, -1, w.Dragging())
}
