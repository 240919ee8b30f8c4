// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpu manages the OpenGL resources of the triangle: the
// vertex array and buffer, the shader program, and the per-frame
// draw. All functions must be called on the main thread with the
// window's GL context current.
package gpu

import (
	"fmt"
	"log/slog"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// Init loads the OpenGL function pointers through the given
// proc-address lookup, typically glfw.GetProcAddress.
func Init(procAddr func(name string) unsafe.Pointer) error {
	if err := gl.InitWithProcAddrFunc(procAddr); err != nil {
		return fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	slog.Debug("gpu: OpenGL loaded",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)),
		"glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)))
	return nil
}

var errorNames = map[uint32]string{
	gl.INVALID_ENUM:                  "invalid enum",
	gl.INVALID_VALUE:                 "invalid value",
	gl.INVALID_OPERATION:             "invalid operation",
	gl.INVALID_FRAMEBUFFER_OPERATION: "invalid framebuffer operation",
	gl.OUT_OF_MEMORY:                 "out of memory",
}

// ErrorName returns a readable name for a glGetError code.
func ErrorName(code uint32) string {
	if nm, ok := errorNames[code]; ok {
		return nm
	}
	return fmt.Sprintf("error 0x%x", code)
}

// CheckError drains the GL error flags, logging each at debug level
// with the given location. It returns the number of errors found.
func CheckError(where string) int {
	n := 0
	for code := gl.GetError(); code != gl.NO_ERROR; code = gl.GetError() {
		slog.Debug("gpu: GL error", "where", where, "err", ErrorName(code))
		n++
	}
	return n
}
