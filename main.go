package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/apex/log"
	"github.com/veandco/go-sdl2/sdl"

	"settings-screen/pkg/config"
	"settings-screen/pkg/logging"
	"settings-screen/pkg/performance"
	"settings-screen/screens/settingsScreen"
)

// Pixels scrolled per mouse wheel notch.
const wheelStep = 48

func main() {
	// SDL must stay on the main thread
	runtime.LockOSThread()

	logging.InitLogger("")

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}
	logging.InitLogger(cfg.LogLevel)

	if err := initializeSDL2(); err != nil {
		log.WithError(err).Fatal("failed to initialize SDL2")
	}
	defer func() {
		log.Info("shutting down SDL2")
		sdl.Quit()
	}()

	log.WithFields(log.Fields{
		"title":  cfg.Title,
		"width":  cfg.Width,
		"height": cfg.Height,
	}).Info("starting")

	window, err := createWindow(cfg)
	if err != nil {
		log.WithError(err).Fatal("failed to create window")
	}
	defer window.Destroy()

	renderer, err := createRenderer(window)
	if err != nil {
		log.WithError(err).Fatal("failed to create renderer")
	}
	defer renderer.Destroy()

	screen := settingsScreen.NewSettingsScreen(window, renderer, cfg)
	defer screen.Close()

	runLoop(screen, cfg.TargetFPS)

	log.Info("exiting")
}

// initializeSDL2 initializes SDL2, trying the driver from SDL_VIDEODRIVER
// first and then the platform fallbacks.
func initializeSDL2() error {
	var drivers []string
	if env := os.Getenv("SDL_VIDEODRIVER"); env != "" {
		drivers = append(drivers, env)
	}
	if runtime.GOOS == "darwin" {
		drivers = append(drivers, "cocoa", "software", "dummy")
	} else {
		drivers = append(drivers, "x11", "wayland", "kmsdrm", "fbcon", "software", "dummy")
	}

	for _, driver := range drivers {
		if err := tryDriver(driver); err != nil {
			log.WithField("driver", driver).Debugf("SDL2 initialization failed: %v", err)
			continue
		}
		log.WithField("driver", driver).Info("SDL2 initialized")
		return nil
	}

	return fmt.Errorf("all SDL2 video drivers failed")
}

func tryDriver(driver string) error {
	sdl.Quit()
	sdl.SetHint(sdl.HINT_VIDEODRIVER, driver)
	sdl.SetHint(sdl.HINT_RENDER_BATCHING, "1")
	sdl.SetHint(sdl.HINT_VIDEO_MINIMIZE_ON_FOCUS_LOSS, "0")

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return fmt.Errorf("SDL_INIT_VIDEO failed: %w", err)
	}
	if _, err := sdl.GetCurrentVideoDriver(); err != nil {
		sdl.Quit()
		return fmt.Errorf("failed to get video driver: %w", err)
	}
	return nil
}

// createWindow opens the window at the configured size, or fullscreen at the
// display size.
func createWindow(cfg config.Config) (*sdl.Window, error) {
	width, height := cfg.Width, cfg.Height
	flags := uint32(sdl.WINDOW_SHOWN | sdl.WINDOW_RESIZABLE | sdl.WINDOW_ALLOW_HIGHDPI)

	if cfg.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN
		if mode, err := sdl.GetCurrentDisplayMode(0); err == nil {
			width, height = mode.W, mode.H
		} else {
			log.Warnf("failed to get display mode, using %dx%d: %v", width, height, err)
		}
	}

	return sdl.CreateWindow(cfg.Title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED, width, height, flags)
}

// createRenderer creates an accelerated renderer, falling back to software.
func createRenderer(window *sdl.Window) (*sdl.Renderer, error) {
	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		log.Warnf("hardware acceleration failed, trying software: %v", err)
		renderer, err = sdl.CreateRenderer(window, -1, sdl.RENDERER_SOFTWARE)
		if err != nil {
			return nil, err
		}
	}

	// Alpha blending for the snackbar and shadows
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)
	return renderer, nil
}

// runLoop drives the screen until it or the window asks to quit.
func runLoop(screen *settingsScreen.SettingsScreen, targetFPS int) {
	monitor := performance.NewFrameMonitor(targetFPS, 120, 600)
	frameTime := monitor.Budget()

	for {
		start := time.Now()

		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				return
			case *sdl.MouseWheelEvent:
				screen.Scroll(-e.Y * wheelStep)
			}
		}

		if err := screen.Update(start); err != nil {
			log.WithError(err).Error("update failed")
			return
		}
		if screen.Quit() {
			return
		}
		updated := time.Now()

		if err := screen.Draw(updated); err != nil {
			log.WithError(err).Error("draw failed")
			return
		}
		monitor.RecordFrame(updated.Sub(start), time.Since(updated))

		if elapsed := time.Since(start); elapsed < frameTime {
			time.Sleep(frameTime - elapsed)
		}
	}
}
