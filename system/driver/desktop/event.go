// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desktop

import (
	"image"

	"github.com/aks-engine/aks/events"
	"github.com/aks-engine/aks/events/key"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// GlfwKeyCode returns the key code for the given glfw key.
func GlfwKeyCode(kcode glfw.Key) key.Codes {
	switch kcode {
	case glfw.KeyEscape:
		return key.CodeEscape
	case glfw.KeyF:
		return key.CodeF
	}
	return key.CodeUnknown
}

// KeyEvent is the glfw key callback. Presses of known keys are queued;
// releases, repeats and other keys are dropped.
func (w *Window) KeyEvent(gw *glfw.Window, ky glfw.Key, scancode int, action glfw.Action, mod glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}
	ec := GlfwKeyCode(ky)
	if ec == key.CodeUnknown {
		return
	}
	w.Queue.Send(events.KeyPressed{Code: ec})
}

// FbResized is the glfw framebuffer size callback.
func (w *Window) FbResized(gw *glfw.Window, width, height int) {
	w.Queue.Send(events.FramebufferResized{Size: image.Pt(width, height)})
}
