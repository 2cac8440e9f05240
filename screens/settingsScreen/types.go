package settingsScreen

import (
	"settings-screen/pkg/input"
	"settings-screen/pkg/settings"
	"settings-screen/ui"
	settingswidget "settings-screen/widgets/settings"
	"settings-screen/widgets/snackbar"
	"settings-screen/widgets/topbar"

	"github.com/veandco/go-sdl2/sdl"
)

// SettingsScreen owns the settings state for as long as the screen is open
type SettingsScreen struct {
	*controller

	// SDL2 rendering
	window   *sdl.Window
	renderer *sdl.Renderer
	fonts    *ui.Fonts

	// Input tracking
	keyState     []uint8
	mouseX       int32
	mouseY       int32
	mouseButtons uint32
	keyTracker   input.KeyPressTracker
	pointer      input.PointerTracker
}

// controller is the input and state half of the screen. It has no SDL
// resources, so it can be driven directly in tests.
type controller struct {
	state       *settings.State
	effect      *settings.NotificationEffect
	unsubscribe func()

	// UI components
	topBar         *topbar.Widget
	settingsWidget *settingswidget.Widget
	snackbar       *snackbar.Host

	width, height int32
	dirty         bool
	focusVisible  bool
	backHovered   bool
	pressedRow    int
	quit          bool
}
