// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/aks-engine/aks/shaders"
	"github.com/go-gl/gl/v3.3-core/gl"
)

// Stages are the shader stages.
type Stages uint32

const (
	VertexShader   Stages = gl.VERTEX_SHADER
	FragmentShader Stages = gl.FRAGMENT_SHADER
)

func (st Stages) String() string {
	switch st {
	case VertexShader:
		return "vertex"
	case FragmentShader:
		return "fragment"
	}
	return fmt.Sprintf("stage 0x%x", uint32(st))
}

// CompileError is returned when a shader stage fails to compile.
type CompileError struct {
	Stage Stages

	// Log is the shader info log of the driver.
	Log string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("gpu: %s shader failed to compile: %s", e.Stage, strings.TrimSpace(e.Log))
}

// LinkError is returned when the program fails to link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return "gpu: program failed to link: " + strings.TrimSpace(e.Log)
}

// Program is a linked shader program.
type Program struct {
	Handle uint32
}

// NewProgram compiles and links the given sources. Compile and link
// failures are returned as [*CompileError] and [*LinkError].
func NewProgram(src shaders.Sources) (*Program, error) {
	vs, err := compileShader(src.Vertex, VertexShader)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(vs)
	fs, err := compileShader(src.Fragment, FragmentShader)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(fs)

	handle := gl.CreateProgram()
	gl.AttachShader(handle, vs)
	gl.AttachShader(handle, fs)
	gl.BindFragDataLocation(handle, 0, gl.Str(shaders.FragDataOutput+"\x00"))
	gl.LinkProgram(handle)
	gl.DetachShader(handle, vs)
	gl.DetachShader(handle, fs)

	var status int32
	gl.GetProgramiv(handle, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(handle, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(handle, logLength, nil, gl.Str(log))
		gl.DeleteProgram(handle)
		return nil, &LinkError{Log: strings.TrimRight(log, "\x00")}
	}
	return &Program{Handle: handle}, nil
}

func compileShader(source string, stage Stages) (uint32, error) {
	shader := gl.CreateShader(uint32(stage))
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, &CompileError{Stage: stage, Log: strings.TrimRight(log, "\x00")}
	}
	return shader, nil
}

// Use makes this the current program.
func (p *Program) Use() {
	gl.UseProgram(p.Handle)
}

// Uniform returns the location of the named uniform, or -1 if the
// program has no active uniform of that name.
func (p *Program) Uniform(name string) int32 {
	loc := gl.GetUniformLocation(p.Handle, gl.Str(name+"\x00"))
	if loc < 0 {
		slog.Warn("gpu: uniform not found in program", "name", name)
	}
	return loc
}

// Attrib returns the location of the named vertex attribute, or -1
// if the program has no active attribute of that name.
func (p *Program) Attrib(name string) int32 {
	loc := gl.GetAttribLocation(p.Handle, gl.Str(name+"\x00"))
	if loc < 0 {
		slog.Warn("gpu: attribute not found in program", "name", name)
	}
	return loc
}

// Delete frees the program.
func (p *Program) Delete() {
	gl.DeleteProgram(p.Handle)
	p.Handle = 0
}
