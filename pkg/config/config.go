// Package config loads tool settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"waterlayout/pkg/layout"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Render formats.
const (
	FormatPNG = "png"
	FormatSVG = "svg"
)

var (
	ErrInvalidViewport = errors.New("viewport must be positive")
	ErrInvalidFormat   = errors.New("unknown render format")
	ErrInvalidScale    = errors.New("render scale must be positive")
	ErrInvalidInsets   = errors.New("safe area insets must not be negative")
)

type Viewport struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type SafeArea struct {
	Top      float64 `yaml:"top"`
	Bottom   float64 `yaml:"bottom"`
	Leading  float64 `yaml:"leading"`
	Trailing float64 `yaml:"trailing"`
}

type Grid struct {
	DefaultWidth float64 `yaml:"default_width"`
}

type Render struct {
	Format string  `yaml:"format"`
	Labels bool    `yaml:"labels"`
	Scale  float64 `yaml:"scale"`
}

type Log struct {
	Level string `yaml:"level"`
}

// Config holds everything the command-line tools need to lay out and draw
// a script.
type Config struct {
	Viewport Viewport `yaml:"viewport"`
	SafeArea SafeArea `yaml:"safe_area"`
	Grid     Grid     `yaml:"grid"`
	Render   Render   `yaml:"render"`
	Log      Log      `yaml:"log"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Viewport: Viewport{Width: 390, Height: 844},
		Grid:     Grid{DefaultWidth: layout.DefaultGridWidth},
		Render:   Render{Format: FormatPNG, Labels: true, Scale: 1},
		Log:      Log{Level: "info"},
	}
}

// Load reads and validates the YAML file at path. Keys missing from the
// file keep their Default values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg.Render.Format = strings.ToLower(cfg.Render.Format)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		return fmt.Errorf("%w: %gx%g", ErrInvalidViewport, c.Viewport.Width, c.Viewport.Height)
	}
	s := c.SafeArea
	if s.Top < 0 || s.Bottom < 0 || s.Leading < 0 || s.Trailing < 0 {
		return ErrInvalidInsets
	}
	switch c.Render.Format {
	case FormatPNG, FormatSVG:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFormat, c.Render.Format)
	}
	if c.Render.Scale <= 0 {
		return fmt.Errorf("%w: %g", ErrInvalidScale, c.Render.Scale)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return nil
}

// Insets converts the configured safe area to layout insets.
func (c Config) Insets() layout.EdgeInsets {
	return layout.EdgeInsets{
		Top:      c.SafeArea.Top,
		Bottom:   c.SafeArea.Bottom,
		Leading:  c.SafeArea.Leading,
		Trailing: c.SafeArea.Trailing,
	}
}

// Engine returns a layout engine sized and inset from the configuration.
func (c Config) Engine() *layout.LayoutEngine {
	le := layout.NewLayoutEngine(c.Viewport.Width, c.Viewport.Height)
	le.SetSafeArea(c.Insets())
	return le
}

// NewLogger builds a console logger at the configured level. Debug uses
// the development encoder so layout traces stay readable.
func (c Config) NewLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	zc := zap.NewProductionConfig()
	if level == zapcore.DebugLevel {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Encoding = "console"
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	return zc.Build()
}
