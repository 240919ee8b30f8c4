// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the window events the render loop consumes.
// The windowing library's callbacks are adapted into these types at
// the boundary and queued; the loop drains the queue once per frame.
package events

import (
	"fmt"
	"image"

	"github.com/aks-engine/aks/events/key"
)

// Event is a window event.
type Event interface {
	fmt.Stringer
	isEvent()
}

// KeyPressed is sent when a key goes down. Repeats and releases
// are not sent.
type KeyPressed struct {
	Code key.Codes
}

// FramebufferResized is sent when the framebuffer of the window
// changes size, in pixels.
type FramebufferResized struct {
	Size image.Point
}

// ShadersChanged is sent when the shader sources on disk change.
type ShadersChanged struct{}

func (KeyPressed) isEvent()         {}
func (FramebufferResized) isEvent() {}
func (ShadersChanged) isEvent()     {}

func (ev KeyPressed) String() string {
	return "KeyPressed(" + ev.Code.String() + ")"
}

func (ev FramebufferResized) String() string {
	return fmt.Sprintf("FramebufferResized(%dx%d)", ev.Size.X, ev.Size.Y)
}

func (ev ShadersChanged) String() string {
	return "ShadersChanged"
}
