package settingsScreen

import (
	"time"

	"github.com/apex/log"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"settings-screen/pkg/input"
	"settings-screen/pkg/settings"
	"settings-screen/ui"
	settingswidget "settings-screen/widgets/settings"
	"settings-screen/widgets/snackbar"
	"settings-screen/widgets/topbar"
)

// newController creates a fresh settings state and the widgets showing it.
func newController(title string, snackbarDuration time.Duration) *controller {
	c := &controller{
		state:          settings.NewState(),
		topBar:         topbar.NewWidget(title),
		settingsWidget: settingswidget.NewWidget(),
		snackbar:       snackbar.NewHost(snackbarDuration),
		dirty:          true,
		pressedRow:     -1,
	}
	c.effect = settings.NewNotificationEffect(c.state, c.snackbar, settings.CacheClearedMessage)
	c.unsubscribe = c.state.Subscribe(func(settings.Change) {
		c.dirty = true
	})
	return c
}

// State returns the settings state of the screen
func (c *controller) State() *settings.State {
	return c.state
}

// Quit reports whether the user asked to leave the screen.
func (c *controller) Quit() bool {
	return c.quit
}

// resize lays the column out below the top bar.
func (c *controller) resize(width, height int32) {
	c.width, c.height = width, height
	viewportH := height - topbar.Height
	if viewportH < 0 {
		viewportH = 0
	}
	c.settingsWidget.SetViewport(sdl.Rect{X: 0, Y: topbar.Height, W: width, H: viewportH})
}

// sync rebuilds the rows after the state changed.
func (c *controller) sync() {
	if !c.dirty {
		return
	}
	c.settingsWidget.SetRows(settingswidget.BuildRows(c.state.Snapshot()))
	c.dirty = false
}

// tick runs the per-frame work that does not depend on input.
func (c *controller) tick(now time.Time) {
	c.effect.Update(now)
	c.sync()
}

// Scroll moves the column by dy pixels, e.g. from a mouse wheel.
func (c *controller) Scroll(dy int32) {
	c.settingsWidget.ScrollBy(dy)
}

// handleKeys processes keyboard input
func (c *controller) handleKeys(kpt *input.KeyPressTracker, keyState []uint8) {
	page := c.settingsWidget.Viewport().H * 4 / 5

	if kpt.AnyPressed(keyState, sdl.SCANCODE_DOWN, sdl.SCANCODE_TAB) {
		c.focusVisible = true
		c.settingsWidget.MoveFocus(1)
	}
	if kpt.IsPressed(keyState, sdl.SCANCODE_UP) {
		c.focusVisible = true
		c.settingsWidget.MoveFocus(-1)
	}

	if row, ok := c.settingsWidget.FocusedRow(); ok {
		if kpt.IsPressed(keyState, sdl.SCANCODE_LEFT) {
			stepSlider(c.state, row, -1)
		}
		if kpt.IsPressed(keyState, sdl.SCANCODE_RIGHT) {
			stepSlider(c.state, row, 1)
		}
		if kpt.AnyPressed(keyState, sdl.SCANCODE_RETURN, sdl.SCANCODE_SPACE) {
			activate(c.state, row)
		}
	}

	if kpt.IsPressed(keyState, sdl.SCANCODE_PAGEDOWN) {
		c.settingsWidget.ScrollBy(page)
	}
	if kpt.IsPressed(keyState, sdl.SCANCODE_PAGEUP) {
		c.settingsWidget.ScrollBy(-page)
	}
	if kpt.IsPressed(keyState, sdl.SCANCODE_HOME) {
		c.settingsWidget.ScrollBy(-c.settingsWidget.MaxScroll())
	}
	if kpt.IsPressed(keyState, sdl.SCANCODE_END) {
		c.settingsWidget.ScrollBy(c.settingsWidget.MaxScroll())
	}

	if kpt.IsPressed(keyState, sdl.SCANCODE_ESCAPE) {
		c.quit = true
	}
}

// handlePointer processes the left mouse button. font is the snackbar font,
// used to find the message bounds.
func (c *controller) handlePointer(p input.Pointer, font *ttf.Font) {
	back := topbar.BackButton(0, 0)
	c.backHovered = ui.Contains(back, p.X, p.Y)

	switch p.Phase {
	case input.PointerPressed:
		c.focusVisible = false
		c.pressedRow = -1

		if c.backHovered {
			log.Info("back navigation requested")
			return
		}
		if c.snackbar.Contains(font, c.width, c.height, p.X, p.Y) {
			c.snackbar.Dismiss()
			return
		}

		i, part := c.settingsWidget.HitTest(p.X, p.Y)
		if i < 0 {
			return
		}
		row := c.settingsWidget.Rows()[i]
		if row.Kind == settingswidget.KindSlider && part == settingswidget.PartControl {
			c.settingsWidget.BeginDrag(i)
			c.dragTo(p.X)
			return
		}
		c.pressedRow = i

	case input.PointerDragged:
		if c.settingsWidget.Dragging() >= 0 {
			c.dragTo(p.X)
		}

	case input.PointerReleased:
		if c.settingsWidget.Dragging() >= 0 {
			c.dragTo(p.X)
			c.settingsWidget.EndDrag()
			return
		}

		pressed := c.pressedRow
		c.pressedRow = -1
		i, part := c.settingsWidget.HitTest(p.X, p.Y)
		if i < 0 || i != pressed {
			return
		}
		row := c.settingsWidget.Rows()[i]
		if clickActivates(row, part) {
			c.settingsWidget.SetFocus(i)
			activate(c.state, row)
		}
	}
}

func (c *controller) dragTo(x int32) {
	if v, ok := c.settingsWidget.SliderValueAt(c.settingsWidget.Dragging(), x); ok {
		c.state.SetFontSize(v)
	}
}

// close tears the state down. A notification still on screen is never
// acknowledged.
func (c *controller) close() {
	c.effect.Close()
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
}
