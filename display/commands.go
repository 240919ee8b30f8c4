// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package display

import "image"

// Command is an action on the window or renderer produced by [State.Update].
type Command interface {
	isCommand()
}

// RequestClose sets the close flag of the window. The loop stops at
// its next check of the flag.
type RequestClose struct{}

// SetMonitor moves the window onto the primary monitor when Fullscreen
// is true, or back to a regular window otherwise, with the given size.
type SetMonitor struct {
	Fullscreen bool
	Size       image.Point
}

// SetViewport sets the GL viewport to (0, 0, Size.X, Size.Y).
type SetViewport struct {
	Size image.Point
}

// ReloadShaders recompiles the shader program from its sources.
type ReloadShaders struct{}

func (RequestClose) isCommand()  {}
func (SetMonitor) isCommand()    {}
func (SetViewport) isCommand()   {}
func (ReloadShaders) isCommand() {}
