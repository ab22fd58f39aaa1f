//go:build windows

// Command byteengine opens a window, renders a cleared frame every vsync and
// switches window modes from the keyboard.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"slices"

	byteengine "github.com/Stavrolet/ByteEngineD3D11"
	"github.com/Stavrolet/ByteEngineD3D11/config"
	"github.com/Stavrolet/ByteEngineD3D11/d3d11"
	"github.com/Stavrolet/ByteEngineD3D11/debug"
	"github.com/Stavrolet/ByteEngineD3D11/event"
	"github.com/Stavrolet/ByteEngineD3D11/input"
	"github.com/Stavrolet/ByteEngineD3D11/render"
	"github.com/Stavrolet/ByteEngineD3D11/video"
)

// modeActions maps the demo actions to the window mode they select.
var modeActions = map[string]event.WindowMode{
	"windowed":   event.Windowed,
	"maximized":  event.Maximized,
	"borderless": event.BorderlessFullscreen,
	"exclusive":  event.ExclusiveFullscreen,
}

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "byteengine.yaml", "path to the engine configuration")
	debugMode := flag.Bool("debug", false, "enable the Direct3D debug layer and debug logging")
	mode := flag.String("mode", "", "override the initial window mode")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	if *mode != "" {
		cfg.Window.Mode = *mode
	}
	if *debugMode {
		cfg.Render.Debug = true
		cfg.Logging.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	var out io.Writer = os.Stderr
	if cfg.Logging.File != "" {
		f, err := os.OpenFile(cfg.Logging.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 2
		}
		defer f.Close()
		out = f
	}
	logger, err := debug.NewLogger(out, cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	debug.SetLogger(logger)

	reporter := debug.New(debug.WithDebug(cfg.Render.Debug), debug.WithDialogs(true))

	window := video.NewWindow(video.NewHost(), reporter)
	if err := window.Initialize(cfg.Window.Title, cfg.WindowMode(), cfg.Window.Width, cfg.Window.Height, nil); err != nil {
		return 1
	}

	ctx := render.New(d3d11.New(), reporter, render.WithConfig(cfg.RenderConfig()))
	if err := ctx.Initialize(window); err != nil {
		window.Close()
		return 1
	}

	in := input.New()
	bindings, err := cfg.Bindings()
	if err != nil {
		reporter.Fatal("Invalid key bindings.", err)
		return 1
	}
	for _, b := range bindings {
		in.BindAction(b.Action, b.Keys...)
	}

	app := byteengine.New(window, ctx, in)
	app.Handle(func(app *byteengine.Application, ev event.Event) {
		key, ok := ev.(event.Key)
		if !ok || !key.Pressed {
			return
		}
		if slices.Contains(in.ActionKeys("quit"), key.Code) {
			app.Quit(0)
			return
		}
		for action, m := range modeActions {
			if slices.Contains(in.ActionKeys(action), key.Code) {
				window.SetWindowMode(m)
			}
		}
	})
	return app.Run()
}
