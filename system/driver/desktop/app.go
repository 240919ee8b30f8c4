// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package desktop implements the windowing platform of the program
// on top of glfw. Everything in it must run on the main thread,
// which must be locked with runtime.LockOSThread.
package desktop

import (
	"errors"

	"github.com/aks-engine/aks/app"
	"github.com/aks-engine/aks/config"
	"github.com/aks-engine/aks/gpu"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Platform is the [app.Platform] implementation for glfw.
type Platform struct{}

// Init initializes glfw.
func (p *Platform) Init() error {
	return Describe(glfw.Init())
}

// Terminate shuts down glfw, destroying any remaining windows.
func (p *Platform) Terminate() {
	glfw.Terminate()
}

// Hints sets the context creation hints from the config.
// They only affect windows created afterwards.
func Hints(cfg *config.Config) {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.Samples, cfg.Samples)
	glfw.WindowHint(glfw.ContextVersionMajor, cfg.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.GLMinor)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
}

// CreateWindow creates the window and its GL context, sized for the
// given fullscreen state, and makes the context current.
func (p *Platform) CreateWindow(cfg *config.Config, fullscreen bool) (app.Window, error) {
	Hints(cfg)
	var mon *glfw.Monitor
	if fullscreen {
		mon = glfw.GetPrimaryMonitor()
	}
	sz := cfg.WindowSize(fullscreen)
	glw, err := glfw.CreateWindow(sz.X, sz.Y, cfg.Title, mon, nil)
	if err != nil {
		return nil, Describe(err)
	}
	glw.MakeContextCurrent()
	w := NewWindow(glw)
	glfw.SwapInterval(cfg.SwapInterval)
	return w, nil
}

// LoadGL loads the OpenGL functions through glfw for the current context.
func (p *Platform) LoadGL() error {
	return gpu.Init(glfw.GetProcAddress)
}

// Describe returns an error whose message is the description of a
// glfw error, without its code prefix. Other errors are returned as is.
func Describe(err error) error {
	var gerr *glfw.Error
	if errors.As(err, &gerr) {
		return &DescribedError{Err: gerr}
	}
	return err
}

// DescribedError is a glfw error reported by its description.
type DescribedError struct {
	Err *glfw.Error
}

func (e *DescribedError) Error() string {
	return e.Err.Desc
}

func (e *DescribedError) Unwrap() error {
	return e.Err
}
