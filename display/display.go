// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package display holds the fullscreen and viewport state of the
// window, and turns window events into the commands that the render
// loop applies to the window and the renderer.
package display

import (
	"image"
	"log/slog"

	"github.com/aks-engine/aks/config"
	"github.com/aks-engine/aks/events"
	"github.com/aks-engine/aks/events/key"
)

// State is the mutable display state. It is only ever accessed
// from the main thread.
type State struct {

	// Config provides the windowed and fullscreen sizes.
	Config *config.Config

	// Fullscreen is whether the window is on the primary monitor.
	Fullscreen bool

	// Viewport is the current GL viewport, in framebuffer pixels.
	Viewport image.Rectangle
}

// NewState returns the initial state for the given config.
func NewState(cfg *config.Config) *State {
	return &State{
		Config:     cfg,
		Fullscreen: cfg.Fullscreen,
		Viewport:   image.Rectangle{Max: cfg.WindowSize(cfg.Fullscreen)},
	}
}

// WindowSize returns the window geometry requested for the
// current fullscreen state.
func (st *State) WindowSize() image.Point {
	return st.Config.WindowSize(st.Fullscreen)
}

// Update applies the given event to the state and returns the
// commands needed to bring the window and renderer in line with it.
func (st *State) Update(ev events.Event) []Command {
	switch ev := ev.(type) {
	case events.KeyPressed:
		switch ev.Code {
		case key.CodeEscape:
			return []Command{RequestClose{}}
		case key.CodeF:
			return st.ToggleFullscreen()
		}
	case events.FramebufferResized:
		st.Viewport = image.Rectangle{Max: ev.Size}
		return []Command{SetViewport{Size: ev.Size}}
	case events.ShadersChanged:
		return []Command{ReloadShaders{}}
	}
	return nil
}

// ToggleFullscreen flips the fullscreen state. The window is moved on
// or off the primary monitor with the matching geometry, and the
// viewport is set to that geometry without waiting for the resize
// event.
func (st *State) ToggleFullscreen() []Command {
	st.Fullscreen = !st.Fullscreen
	sz := st.WindowSize()
	st.Viewport = image.Rectangle{Max: sz}
	slog.Debug("display: toggle fullscreen", "fullscreen", st.Fullscreen, "size", sz)
	return []Command{
		SetMonitor{Fullscreen: st.Fullscreen, Size: sz},
		SetViewport{Size: sz},
	}
}
