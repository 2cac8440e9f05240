package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// FileEnv names the env variable pointing at an optional YAML config file.
const FileEnv = "SETTINGS_SCREEN_CONFIG"

// Config holds window, rendering and snackbar options for the screen. It
// never carries setting values; those live only as long as the screen.
type Config struct {
	Title            string   `yaml:"title"`
	Width            int32    `yaml:"width"`
	Height           int32    `yaml:"height"`
	Fullscreen       bool     `yaml:"fullscreen"`
	TargetFPS        int      `yaml:"target_fps"`
	FontPath         string   `yaml:"font_path"`
	SnackbarDuration Duration `yaml:"snackbar_duration"`
	LogLevel         string   `yaml:"log_level"`
}

// Duration wraps time.Duration so it can be written as "4s" in YAML.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	dur, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return err
	}
	*d = Duration(dur)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		Title:            "Settings",
		Width:            480,
		Height:           900,
		Fullscreen:       false,
		TargetFPS:        60,
		SnackbarDuration: Duration(4 * time.Second),
		LogLevel:         "INFO",
	}
}

// Load builds the configuration from defaults, the optional YAML file named
// by SETTINGS_SCREEN_CONFIG and finally the environment. A missing .env file
// is not an error.
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		log.Debugf(".env file not loaded: %v", err)
	}

	cfg := Default()

	if path := os.Getenv(FileEnv); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return cfg, err
		}
		log.Debugf("using config file: %s", path)
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

// Validate rejects values the screen cannot run with.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Width, c.Height)
	}
	if c.TargetFPS <= 0 {
		return fmt.Errorf("invalid target fps %d", c.TargetFPS)
	}
	if c.SnackbarDuration <= 0 {
		return fmt.Errorf("invalid snackbar duration %s", time.Duration(c.SnackbarDuration))
	}
	return nil
}

func (c *Config) mergeFile(path string) error {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(bytes, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// applyEnv overrides fields from environment variables. lookup is
// os.LookupEnv outside of tests.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("SCREEN_TITLE"); ok && v != "" {
		c.Title = v
	}
	if v, ok := lookup("FONT_PATH"); ok && v != "" {
		c.FontPath = v
	}
	if v, ok := lookup("SETTINGS_LOG"); ok && v != "" {
		c.LogLevel = v
	}

	if v, ok := lookup("SCREEN_WIDTH"); ok && v != "" {
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			return fmt.Errorf("SCREEN_WIDTH: %w", err)
		}
		c.Width = int32(n)
	}
	if v, ok := lookup("SCREEN_HEIGHT"); ok && v != "" {
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			return fmt.Errorf("SCREEN_HEIGHT: %w", err)
		}
		c.Height = int32(n)
	}
	if v, ok := lookup("TARGET_FPS"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("TARGET_FPS: %w", err)
		}
		c.TargetFPS = n
	}
	if v, ok := lookup("SCREEN_FULLSCREEN"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("SCREEN_FULLSCREEN: %w", err)
		}
		c.Fullscreen = b
	}
	if v, ok := lookup("SNACKBAR_DURATION"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("SNACKBAR_DURATION: %w", err)
		}
		c.SnackbarDuration = Duration(d)
	}

	return nil
}
