package settingsScreen

import (
	"time"

	"github.com/apex/log"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"settings-screen/pkg/config"
	"settings-screen/pkg/input"
	"settings-screen/ui"
)

// NewSettingsScreen opens the screen with default settings
func NewSettingsScreen(window *sdl.Window, renderer *sdl.Renderer, cfg config.Config) *SettingsScreen {
	s := &SettingsScreen{
		controller: newController(cfg.Title, time.Duration(cfg.SnackbarDuration)),
		window:     window,
		renderer:   renderer,
		keyTracker: input.NewKeyPressTracker(),
		pointer:    input.NewPointerTracker(),
	}

	fonts, err := ui.LoadFonts(cfg.FontPath)
	if err != nil {
		log.Warnf("failed to initialize fonts: %v", err)
	}
	s.fonts = fonts

	w, h := window.GetSize()
	s.resize(w, h)
	s.sync()

	log.WithField("title", cfg.Title).Info("settings screen opened")
	return s
}

// Update handles SDL2 input and updates screen state
func (s *SettingsScreen) Update(now time.Time) error {
	w, h := s.window.GetSize()
	if w != s.width || h != s.height {
		s.resize(w, h)
	}

	s.keyState = sdl.GetKeyboardState()
	s.mouseX, s.mouseY, s.mouseButtons = sdl.GetMouseState()

	s.handleKeys(&s.keyTracker, s.keyState)
	s.handlePointer(s.pointer.Update(s.mouseX, s.mouseY, s.mouseButtons), s.snackbarFont())

	s.tick(now)
	return nil
}

// Draw renders the complete frame using SDL2
func (s *SettingsScreen) Draw(now time.Time) error {
	palette := ui.PaletteFor(s.state.Snapshot().DarkMode)

	ui.SetColor(s.renderer, palette.Background)
	s.renderer.Clear()

	if s.fonts == nil {
		s.renderer.Present()
		return nil
	}

	if err := s.settingsWidget.Draw(s.renderer, palette, s.fonts, s.focusVisible); err != nil {
		return err
	}
	if err := s.topBar.Draw(s.renderer, 0, 0, s.width, palette, s.fonts.TitleLarge, s.backHovered); err != nil {
		return err
	}
	if err := s.snackbar.Draw(s.renderer, s.width, s.height, palette, s.fonts.LabelLarge, now); err != nil {
		return err
	}

	s.renderer.Present()
	return nil
}

func (s *SettingsScreen) snackbarFont() *ttf.Font {
	if s.fonts == nil {
		return nil
	}
	return s.fonts.LabelLarge
}

// Close cleans up resources
func (s *SettingsScreen) Close() {
	s.close()

	if s.fonts != nil {
		s.fonts.Close()
	}
	log.Info("settings screen closed")
}
