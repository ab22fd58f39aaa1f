package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Stavrolet/ByteEngineD3D11/event"
	"github.com/Stavrolet/ByteEngineD3D11/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "engine.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, event.Windowed, cfg.WindowMode())
	assert.Equal(t, render.DefaultConfig(), cfg.RenderConfig())
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadEmptyFileUsesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
window:
  mode: Exclusive
  width: 800
render:
  debug: true
  retry_delay: 10ms
  display:
    width: 2560
    height: 1440
    refresh: 144
  clear_color: [1, 0, 0, 1]
logging:
  level: debug
  format: json
actions:
  quit: [Escape, Q]
  fire: [MouseLeft]
`))
	require.NoError(t, err)

	assert.Equal(t, event.ExclusiveFullscreen, cfg.WindowMode())
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 720, cfg.Window.Height)
	assert.Equal(t, "ByteEngine", cfg.Window.Title)

	rc := cfg.RenderConfig()
	assert.True(t, rc.Debug)
	assert.Equal(t, 10*time.Millisecond, rc.RetryDelay)
	assert.Equal(t, 70*time.Millisecond, rc.FullscreenRetryDelay)
	assert.Equal(t, render.DisplayMode{Width: 2560, Height: 1440, RefreshNumerator: 144, RefreshDenominator: 1}, rc.DisplayMode)
	assert.Equal(t, [4]float32{1, 0, 0, 1}, rc.ClearColor)
	assert.Equal(t, "json", cfg.Logging.Format)

	bindings, err := cfg.Bindings()
	require.NoError(t, err)
	assert.Equal(t, Binding{Action: "fire", Keys: []event.KeyCode{event.MouseLeft}}, bindings[2])
	assert.Equal(t, Binding{Action: "quit", Keys: []event.KeyCode{event.KeyEscape, event.KeyQ}}, bindings[4])
	assert.Len(t, bindings, 6)
}

func TestLoadUnknownKey(t *testing.T) {
	path := writeConfig(t, "window:\n  colour: red\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "colour")
	assert.Contains(t, err.Error(), path)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		want   string
	}{
		{"unknown mode", func(c *Config) { c.Window.Mode = "tiled" }, `unknown window mode "tiled"`},
		{"minimized", func(c *Config) { c.Window.Mode = "minimized" }, "cannot start minimized"},
		{"window size", func(c *Config) { c.Window.Height = 0 }, "window size must be positive"},
		{"display size", func(c *Config) { c.Render.Display.Width = -1 }, "render.display size"},
		{"attempts", func(c *Config) { c.Render.Attempts = 0 }, "render.attempts"},
		{"fullscreen retries", func(c *Config) { c.Render.FullscreenRetries = 0 }, "render.fullscreen_retries"},
		{"delay", func(c *Config) { c.Render.RetryDelay = -time.Second }, "must not be negative"},
		{"clear color", func(c *Config) { c.Render.ClearColor = []float32{1} }, "4 components"},
		{"log level", func(c *Config) { c.Logging.Level = "loud" }, "logging.level"},
		{"log format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"action key", func(c *Config) { c.Actions["jump"] = []string{"Hyperspace"} }, `actions.jump: unknown key "Hyperspace"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, strings.Contains(err.Error(), tt.want), err.Error())
		})
	}
}
