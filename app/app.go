// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package app runs the program: it brings up the platform, the
// window and the renderer, runs the render loop until the window
// is closed, and tears everything down again.
package app

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/aks-engine/aks/base/errors"
	"github.com/aks-engine/aks/config"
	"github.com/aks-engine/aks/display"
	"github.com/aks-engine/aks/events"
	"github.com/aks-engine/aks/scene"
	"github.com/aks-engine/aks/shaders"
	"github.com/go-gl/mathgl/mgl32"
)

// Exit codes returned by [App.Run].
const (
	ExitOK = 0

	// ExitFailure is the -1 of a C main, as the OS reports it.
	ExitFailure = 255
)

// Platform is the windowing system.
type Platform interface {

	// Init initializes the windowing system.
	Init() error

	// Terminate shuts the windowing system down.
	Terminate()

	// CreateWindow creates a window with a current GL context,
	// sized for the given fullscreen state.
	CreateWindow(cfg *config.Config, fullscreen bool) (Window, error)

	// LoadGL loads the GL functions for the current context.
	LoadGL() error
}

// Window is a window with a GL context.
type Window interface {
	ShouldClose() bool
	SetShouldClose(v bool)
	SetMonitor(fullscreen bool, size image.Point)
	FramebufferSize() image.Point
	SwapBuffers()

	// PollEvents processes pending events, sending them to Events.
	PollEvents()

	// Time returns the elapsed time in seconds.
	Time() float64

	Events() *events.Queue
	Destroy()
}

// Renderer draws the scene into the current GL context.
type Renderer interface {
	Viewport(size image.Point)
	Draw(mvp mgl32.Mat4)
	Reload(src shaders.Sources) error
	Release()
}

// NewRendererFunc creates the renderer once the GL functions are loaded.
type NewRendererFunc func(src shaders.Sources, clear []float32) (Renderer, error)

// App is the program.
type App struct {
	Config      *config.Config
	Platform    Platform
	NewRenderer NewRendererFunc

	// State is the display state, set by Run.
	State *display.State

	// Stats counts the frames drawn.
	Stats FrameStats

	win      Window
	renderer Renderer
	watcher  interface{ Close() error }
}

// Run runs the program to completion and returns the process exit
// code: [ExitOK] when the window is closed, and [ExitFailure] when
// any part of the setup fails. Setup failures are not retried.
func (a *App) Run() (code int) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error(fmt.Sprintf("Error: %v", r))
			a.teardown()
			code = ExitFailure
		}
	}()
	if err := a.setup(); err != nil {
		slog.Error("Error: " + err.Error())
		a.teardown()
		return ExitFailure
	}
	a.loop()
	a.teardown()
	return ExitOK
}

// setup runs everything up to the first frame. Whatever it managed
// to create is released by teardown.
func (a *App) setup() error {
	if err := a.Platform.Init(); err != nil {
		return fmt.Errorf("failed to initialize windowing: %w", err)
	}
	a.State = display.NewState(a.Config)
	win, err := a.Platform.CreateWindow(a.Config, a.State.Fullscreen)
	if err != nil {
		a.Platform.Terminate()
		return fmt.Errorf("failed to create window: %w", err)
	}
	a.win = win
	if err := a.Platform.LoadGL(); err != nil {
		return err
	}
	src, err := shaders.Load(a.Config.ShaderDir)
	if err != nil {
		return err
	}
	rd, err := a.NewRenderer(src, a.Config.ClearColor)
	if err != nil {
		return err
	}
	a.renderer = rd
	// the framebuffer can be larger than the window on high-DPI screens
	fb := a.win.FramebufferSize()
	a.State.Viewport = image.Rectangle{Max: fb}
	a.renderer.Viewport(fb)
	if a.Config.WatchShaders {
		w, err := shaders.NewWatcher(a.Config.ShaderDir, a.win.Events())
		if err != nil {
			return err
		}
		a.watcher = w
	}
	slog.Info("app: running", "title", a.Config.Title, "size", a.State.WindowSize(), "fullscreen", a.State.Fullscreen)
	return nil
}

// loop renders frames until the close flag of the window is set.
// Events queued by the previous poll are applied before the flag is
// checked, so a close request stops the loop before another frame.
func (a *App) loop() {
	a.Stats.Start(a.win.Time(), a.Config.FPS)
	for {
		a.processEvents()
		if a.win.ShouldClose() {
			return
		}
		t := a.win.Time()
		a.renderer.Draw(scene.MVP(t))
		a.win.SwapBuffers()
		a.Stats.Frame(t)
		a.win.PollEvents()
	}
}

// processEvents drains the event queue and applies the resulting
// commands. Shaders are reloaded at most once per frame.
func (a *App) processEvents() {
	reload := false
	for _, ev := range a.win.Events().Drain() {
		slog.Debug("app: event", "event", ev)
		for _, cmd := range a.State.Update(ev) {
			switch cmd := cmd.(type) {
			case display.RequestClose:
				a.win.SetShouldClose(true)
			case display.SetMonitor:
				a.win.SetMonitor(cmd.Fullscreen, cmd.Size)
			case display.SetViewport:
				a.renderer.Viewport(cmd.Size)
			case display.ReloadShaders:
				reload = true
			}
		}
	}
	if reload {
		a.reloadShaders()
	}
}

func (a *App) reloadShaders() {
	src, err := shaders.Load(a.Config.ShaderDir)
	if err == nil {
		err = a.renderer.Reload(src)
	}
	if err != nil {
		slog.Error("app: shader reload failed, keeping previous program", "err", err)
	}
}

// teardown releases whatever setup created, in reverse order.
func (a *App) teardown() {
	if a.watcher != nil {
		errors.Log(a.watcher.Close())
		a.watcher = nil
	}
	if a.renderer != nil {
		a.renderer.Release()
		a.renderer = nil
	}
	if a.win != nil {
		a.win.Destroy()
		a.win = nil
		a.Platform.Terminate()
	}
}
