// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desktop

import (
	"image"

	"github.com/aks-engine/aks/events"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window is the [app.Window] implementation for glfw. Its methods
// must be called on the main thread.
type Window struct {

	// Glw is the glfw window
	Glw *glfw.Window

	// Queue receives the events of the glfw callbacks
	Queue *events.Queue
}

// NewWindow wraps the given glfw window and registers its key and
// framebuffer size callbacks.
func NewWindow(glw *glfw.Window) *Window {
	w := &Window{Glw: glw, Queue: events.NewQueue()}
	glw.SetKeyCallback(w.KeyEvent)
	glw.SetFramebufferSizeCallback(w.FbResized)
	return w
}

func (w *Window) ShouldClose() bool {
	return w.Glw.ShouldClose()
}

func (w *Window) SetShouldClose(v bool) {
	w.Glw.SetShouldClose(v)
}

// SetMonitor puts the window fullscreen on the primary monitor, or
// back into a regular window at the top-left of the screen, with the
// given size. The refresh rate is left to the monitor.
func (w *Window) SetMonitor(fullscreen bool, size image.Point) {
	var mon *glfw.Monitor
	if fullscreen {
		mon = glfw.GetPrimaryMonitor()
	}
	w.Glw.SetMonitor(mon, 0, 0, size.X, size.Y, glfw.DontCare)
}

func (w *Window) FramebufferSize() image.Point {
	width, height := w.Glw.GetFramebufferSize()
	return image.Pt(width, height)
}

func (w *Window) SwapBuffers() {
	w.Glw.SwapBuffers()
}

// PollEvents processes pending window events, calling the
// callbacks inline before returning.
func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// Time returns the seconds elapsed since glfw was initialized.
func (w *Window) Time() float64 {
	return glfw.GetTime()
}

func (w *Window) Events() *events.Queue {
	return w.Queue
}

func (w *Window) Destroy() {
	w.Glw.Destroy()
}
