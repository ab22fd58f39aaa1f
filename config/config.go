// Package config loads the engine configuration from YAML.
package config

import (
	"bytes"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/Stavrolet/ByteEngineD3D11/event"
	"github.com/Stavrolet/ByteEngineD3D11/render"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Window describes the main window at startup.
type Window struct {
	Title  string `yaml:"title"`
	Mode   string `yaml:"mode"` // windowed, maximized, borderless or exclusive
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

type Display struct {
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	Refresh uint32 `yaml:"refresh"` // Hz
}

type Render struct {
	Debug                bool          `yaml:"debug"`
	Attempts             int           `yaml:"attempts"`
	RetryDelay           time.Duration `yaml:"retry_delay"`
	FullscreenRetries    int           `yaml:"fullscreen_retries"`
	FullscreenRetryDelay time.Duration `yaml:"fullscreen_retry_delay"`
	Display              Display       `yaml:"display"`
	ClearColor           []float32     `yaml:"clear_color"` // RGBA, 0-1
}

type Logging struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
	File   string `yaml:"file,omitempty"`
}

type Config struct {
	Window  Window              `yaml:"window"`
	Render  Render              `yaml:"render"`
	Logging Logging             `yaml:"logging"`
	Actions map[string][]string `yaml:"actions"`
}

func DefaultConfig() *Config {
	rc := render.DefaultConfig()
	return &Config{
		Window: Window{
			Title:  "ByteEngine",
			Mode:   event.Windowed.String(),
			Width:  1280,
			Height: 720,
		},
		Render: Render{
			Attempts:             rc.Attempts,
			RetryDelay:           rc.RetryDelay,
			FullscreenRetries:    rc.FullscreenRetries,
			FullscreenRetryDelay: rc.FullscreenRetryDelay,
			Display: Display{
				Width:   rc.DisplayMode.Width,
				Height:  rc.DisplayMode.Height,
				Refresh: rc.DisplayMode.RefreshNumerator / rc.DisplayMode.RefreshDenominator,
			},
			ClearColor: rc.ClearColor[:],
		},
		Logging: Logging{
			Level:  "info",
			Format: "text",
		},
		Actions: map[string][]string{
			"quit":       {"Escape"},
			"windowed":   {"1"},
			"maximized":  {"2"},
			"borderless": {"3"},
			"exclusive":  {"4"},
		},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		cfg := DefaultConfig()
		return cfg, cfg.Validate()
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config %s", path)
	}
	cfg, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Parse decodes YAML from r over the defaults. Unknown keys are errors.
// Listed actions replace the default action of the same name.
func Parse(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "failed to parse")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	mode, err := event.ParseWindowMode(c.Window.Mode)
	if err != nil {
		return errors.Wrap(err, "window.mode")
	}
	if mode == event.Minimized {
		return errors.New("window.mode: a window cannot start minimized")
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return errors.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Render.Display.Width <= 0 || c.Render.Display.Height <= 0 {
		return errors.Errorf("render.display size must be positive, got %dx%d", c.Render.Display.Width, c.Render.Display.Height)
	}
	if c.Render.Attempts < 1 {
		return errors.Errorf("render.attempts must be at least 1, got %d", c.Render.Attempts)
	}
	if c.Render.FullscreenRetries < 1 {
		return errors.Errorf("render.fullscreen_retries must be at least 1, got %d", c.Render.FullscreenRetries)
	}
	if c.Render.RetryDelay < 0 || c.Render.FullscreenRetryDelay < 0 {
		return errors.New("render retry delays must not be negative")
	}
	if len(c.Render.ClearColor) != 4 {
		return errors.Errorf("render.clear_color needs 4 components, got %d", len(c.Render.ClearColor))
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return errors.Errorf("invalid logging.level %q", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return errors.Errorf("invalid logging.format %q", c.Logging.Format)
	}
	if _, err := c.Bindings(); err != nil {
		return err
	}
	return nil
}

// WindowMode is the parsed startup mode.
func (c *Config) WindowMode() event.WindowMode {
	mode, err := event.ParseWindowMode(c.Window.Mode)
	if err != nil {
		return event.Windowed
	}
	return mode
}

// RenderConfig converts the render section for render.WithConfig.
func (c *Config) RenderConfig() render.Config {
	rc := render.DefaultConfig()
	rc.Debug = c.Render.Debug
	rc.Attempts = c.Render.Attempts
	rc.RetryDelay = c.Render.RetryDelay
	rc.FullscreenRetries = c.Render.FullscreenRetries
	rc.FullscreenRetryDelay = c.Render.FullscreenRetryDelay
	rc.DisplayMode = render.DisplayMode{
		Width:              c.Render.Display.Width,
		Height:             c.Render.Display.Height,
		RefreshNumerator:   c.Render.Display.Refresh,
		RefreshDenominator: 1,
	}
	copy(rc.ClearColor[:], c.Render.ClearColor)
	return rc
}

// Binding is an action with its parsed keys.
type Binding struct {
	Action string
	Keys   []event.KeyCode
}

// Bindings parses the action table, sorted by action name.
func (c *Config) Bindings() ([]Binding, error) {
	names := make([]string, 0, len(c.Actions))
	for name := range c.Actions {
		names = append(names, name)
	}
	sort.Strings(names)

	bindings := make([]Binding, 0, len(names))
	for _, name := range names {
		if name == "" {
			return nil, errors.New("actions: empty action name")
		}
		b := Binding{Action: name}
		for _, key := range c.Actions[name] {
			code, err := event.ParseKeyCode(key)
			if err != nil {
				return nil, errors.Wrapf(err, "actions.%s", name)
			}
			b.Keys = append(b.Keys, code)
		}
		bindings = append(bindings, b)
	}
	return bindings, nil
}
