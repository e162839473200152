// Package config handles repdemo configuration loading.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/repdemo"
	"github.com/gogpu/repdemo/plot"
)

// Config is the root configuration structure.
type Config struct {
	Demo   DemoConfig   `yaml:"demo"`
	Canvas CanvasConfig `yaml:"canvas"`
	Shell  ShellConfig  `yaml:"shell"`
}

// DemoConfig holds the initial state of the demo.
type DemoConfig struct {
	Params repdemo.Params `yaml:"params"`
	Points int            `yaml:"points"`

	// Seed makes batches reproducible; nil draws from runtime entropy.
	Seed *uint64 `yaml:"seed"`
}

// CanvasConfig holds rendering settings.
type CanvasConfig struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	DPR    float64 `yaml:"dpr"`
	Theme  string  `yaml:"theme"`
	Output string  `yaml:"output"` // PNG path; empty means no file is written
}

// ShellConfig holds interactive shell settings.
type ShellConfig struct {
	HistoryFile string `yaml:"history_file"`
	Locale      string `yaml:"locale"` // BCP 47 tag used to format the readout
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Demo: DemoConfig{
			Params: repdemo.DefaultParams(),
			Points: repdemo.DefaultPointCount,
		},
		Canvas: CanvasConfig{
			Width:  plot.DefaultWidth,
			Height: plot.DefaultHeight,
			DPR:    1,
			Theme:  "light",
		},
		Shell: ShellConfig{
			Locale: "en",
		},
	}
}

// Load loads configuration from a file on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// LoadOrDefault loads config from path, or returns default if path is
// empty or the file does not exist.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	return Load(path)
}

// Validate checks the values that cannot be snapped into range.
func (c *Config) Validate() error {
	if c.Demo.Points <= 0 {
		return fmt.Errorf("demo.points must be positive, got %d", c.Demo.Points)
	}
	if _, err := c.Demo.Params.Normalize(); err != nil {
		return fmt.Errorf("demo.params: %w", err)
	}
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("canvas size must be positive, got %dx%d", c.Canvas.Width, c.Canvas.Height)
	}
	if !(c.Canvas.DPR > 0) || math.IsInf(c.Canvas.DPR, 0) {
		return fmt.Errorf("canvas.dpr must be a positive number, got %v", c.Canvas.DPR)
	}
	if _, err := plot.ParseTheme(c.Canvas.Theme); err != nil {
		return err
	}
	if _, err := c.Language(); err != nil {
		return err
	}
	return nil
}

// Theme returns the parsed canvas theme (light when invalid).
func (c *Config) Theme() plot.Theme {
	t, _ := plot.ParseTheme(c.Canvas.Theme)
	return t
}

// Language returns the parsed shell locale.
func (c *Config) Language() (language.Tag, error) {
	if c.Shell.Locale == "" {
		return language.English, nil
	}
	tag, err := language.Parse(c.Shell.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("shell.locale: %w", err)
	}
	return tag, nil
}

// ControllerOptions translates the demo section into controller options.
func (c *Config) ControllerOptions() []repdemo.Option {
	opts := []repdemo.Option{
		repdemo.WithParams(c.Demo.Params),
		repdemo.WithPointCount(c.Demo.Points),
	}
	if c.Demo.Seed != nil {
		opts = append(opts, repdemo.WithSeed(*c.Demo.Seed))
	}
	return opts
}
