package easel

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"gopkg.in/yaml.v3"
)

// RunConfig configures the window and loop created by [Run].
type RunConfig struct {
	// Title is the window title.
	Title string `yaml:"title"`
	// Width and Height set the window and viewport size in pixels.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// Icon is the path of an image file (PNG or JPEG) used as the window
	// icon. Empty keeps the platform default.
	Icon string `yaml:"icon"`
	// Fullscreen starts the window in fullscreen mode.
	Fullscreen bool `yaml:"fullscreen"`
	// MaxFPS is the target tick rate.
	MaxFPS int `yaml:"max_fps"`
	// ShowFPS draws an FPS/TPS counter in the top-left corner.
	ShowFPS bool `yaml:"show_fps"`
	// Debug prints per-tick timings to stderr.
	Debug bool `yaml:"debug"`
	// LegacyDeltaTiming selects the delta-time measurement described on
	// LoopConfig.
	LegacyDeltaTiming bool `yaml:"legacy_delta_timing"`
	// ScreenshotDir is where Canvas.Screenshot writes. Defaults to
	// "screenshots".
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// Defaults used for zero RunConfig fields.
const (
	DefaultTitle  = "Game"
	DefaultWidth  = 800
	DefaultHeight = 450
)

// withDefaults returns cfg with zero fields filled in.
func (cfg RunConfig) withDefaults() RunConfig {
	if cfg.Title == "" {
		cfg.Title = DefaultTitle
	}
	if cfg.Width <= 0 {
		cfg.Width = DefaultWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = DefaultHeight
	}
	if cfg.MaxFPS == 0 {
		cfg.MaxFPS = DefaultTPS
	}
	if cfg.ScreenshotDir == "" {
		cfg.ScreenshotDir = "screenshots"
	}
	return cfg
}

// loopConfig derives the loop settings from cfg.
func (cfg RunConfig) loopConfig() LoopConfig {
	return LoopConfig{
		TPS:               cfg.MaxFPS,
		LegacyDeltaTiming: cfg.LegacyDeltaTiming,
		Debug:             cfg.Debug,
	}
}

// LoadRunConfig parses a YAML document into a RunConfig. Missing fields get
// the same defaults Run applies.
func LoadRunConfig(data []byte) (RunConfig, error) {
	var cfg RunConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RunConfig{}, fmt.Errorf("parse run config: %w", err)
	}
	if cfg.Width < 0 || cfg.Height < 0 {
		return RunConfig{}, fmt.Errorf("parse run config: negative window size %dx%d", cfg.Width, cfg.Height)
	}
	return cfg.withDefaults(), nil
}

// LoadRunConfigFile reads and parses a YAML run config from path.
func LoadRunConfigFile(path string) (RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RunConfig{}, fmt.Errorf("read run config: %w", err)
	}
	return LoadRunConfig(data)
}

// loadIcon decodes the window icon at path.
func loadIcon(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load window icon: %w", err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("load window icon %s: %w", path, err)
	}
	return img, nil
}
