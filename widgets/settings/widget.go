package settings

import (
	"github.com/veandco/go-sdl2/sdl"

	"settings-screen/ui"
)

// Widget manages the scrollable column of settings rows: focus, scrolling
// and slider dragging. It holds no setting values of its own; rows are
// rebuilt from a snapshot every frame.
type Widget struct {
	rows          []Row
	placed        []Placed
	viewport      sdl.Rect
	contentHeight int32
	scroll        int32
	focused       int
	dragging      int
}

// NewWidget creates a new settings widget
func NewWidget() *Widget {
	return &Widget{
		focused:  -1,
		dragging: -1,
	}
}

// SetRows replaces the rows. Focus and scroll position are kept as long as
// they still make sense.
func (w *Widget) SetRows(rows []Row) {
	w.rows = rows
	w.relayout()

	if w.focused >= len(rows) || (w.focused >= 0 && !rows[w.focused].Interactive()) {
		w.focused = -1
	}
	if w.dragging >= len(rows) || (w.dragging >= 0 && rows[w.dragging].Kind != KindSlider) {
		w.dragging = -1
	}
}

// Rows returns the current rows
func (w *Widget) Rows() []Row {
	return w.rows
}

// SetViewport sets the on-screen area the column is drawn into.
func (w *Widget) SetViewport(rect sdl.Rect) {
	if rect == w.viewport {
		return
	}
	w.viewport = rect
	w.relayout()
}

// Viewport returns the on-screen area of the column.
func (w *Widget) Viewport() sdl.Rect {
	return w.viewport
}

func (w *Widget) relayout() {
	w.placed, w.contentHeight = Layout(w.rows, w.viewport.X, w.viewport.W)
	w.ScrollBy(0)
}

// ContentHeight returns the height of all rows together.
func (w *Widget) ContentHeight() int32 {
	return w.contentHeight
}

// Scroll returns the current scroll offset.
func (w *Widget) Scroll() int32 {
	return w.scroll
}

// MaxScroll returns the largest valid scroll offset.
func (w *Widget) MaxScroll() int32 {
	if m := w.contentHeight - w.viewport.H; m > 0 {
		return m
	}
	return 0
}

// ScrollBy moves the column by dy pixels, clamped to the content.
func (w *Widget) ScrollBy(dy int32) {
	w.scroll += dy
	if w.scroll < 0 {
		w.scroll = 0
	}
	if m := w.MaxScroll(); w.scroll > m {
		w.scroll = m
	}
}

// Focused returns the index of the focused row, or -1.
func (w *Widget) Focused() int {
	return w.focused
}

// FocusedRow returns the focused row
func (w *Widget) FocusedRow() (Row, bool) {
	if w.focused < 0 || w.focused >= len(w.rows) {
		return Row{}, false
	}
	return w.rows[w.focused], true
}

// SetFocus focuses row i if it is interactive.
func (w *Widget) SetFocus(i int) {
	if i >= 0 && i < len(w.rows) && w.rows[i].Interactive() {
		w.focused = i
		w.ensureVisible(i)
	}
}

// MoveFocus moves focus to the next or previous interactive row with
// wrapping. With nothing focused, down starts at the first row and up at the
// last.
func (w *Widget) MoveFocus(delta int) {
	n := len(w.rows)
	if n == 0 || delta == 0 {
		return
	}
	step := 1
	if delta < 0 {
		step = -1
	}

	i := w.focused
	if i < 0 {
		if step > 0 {
			i = -1
		} else {
			i = n
		}
	}
	for tries := 0; tries < n; tries++ {
		i = ((i+step)%n + n) % n
		if w.rows[i].Interactive() {
			w.focused = i
			w.ensureVisible(i)
			return
		}
	}
}

func (w *Widget) ensureVisible(i int) {
	if i < 0 || i >= len(w.placed) || w.viewport.H <= 0 {
		return
	}
	r := w.placed[i].Rect
	if r.Y < w.scroll {
		w.ScrollBy(r.Y - w.scroll)
	} else if bottom := r.Y + r.H; bottom > w.scroll+w.viewport.H {
		w.ScrollBy(bottom - (w.scroll + w.viewport.H))
	}
}

// toContent converts screen coordinates to content coordinates.
func (w *Widget) toContent(x, y int32) (int32, int32) {
	return x, y - w.viewport.Y + w.scroll
}

// toScreen converts a content rect to screen coordinates.
func (w *Widget) toScreen(r sdl.Rect) sdl.Rect {
	r.Y += w.viewport.Y - w.scroll
	return r
}

// HitTest returns the index and part of the interactive row under the screen
// position (x, y); -1 when outside the viewport or over no such row.
func (w *Widget) HitTest(x, y int32) (int, Part) {
	if !ui.Contains(w.viewport, x, y) {
		return -1, PartNone
	}
	cx, cy := w.toContent(x, y)
	return HitTest(w.placed, cx, cy)
}

// BeginDrag starts dragging the slider of row i.
func (w *Widget) BeginDrag(i int) bool {
	if i < 0 || i >= len(w.rows) || w.rows[i].Kind != KindSlider {
		return false
	}
	w.dragging = i
	w.focused = i
	return true
}

// Dragging returns the index of the slider being dragged, or -1.
func (w *Widget) Dragging() int {
	return w.dragging
}

// EndDrag stops any slider drag.
func (w *Widget) EndDrag() {
	w.dragging = -1
}

// SliderValueAt returns the value the slider of row i takes for a pointer at
// screen x.
func (w *Widget) SliderValueAt(i int, x int32) (float64, bool) {
	if i < 0 || i >= len(w.placed) || w.placed[i].Row.Kind != KindSlider {
		return 0, false
	}
	p := w.placed[i]
	return SliderValue(w.toScreen(p.Control), x, p.Row.Min, p.Row.Max), true
}
