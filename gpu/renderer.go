// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image"
	"log/slog"

	"github.com/aks-engine/aks/scene"
	"github.com/aks-engine/aks/shaders"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Renderer draws the triangle of package scene.
type Renderer struct {
	program *Program

	// vao records the attribute layout; core profile requires one
	vao uint32
	vbo uint32

	// mvp is the location of the MVP uniform in program
	mvp int32

	// attribs are the enabled attribute locations of program
	attribs []uint32
}

// NewRenderer uploads the vertex data, builds the program from the
// given sources and sets the clear color, which is RGBA.
func NewRenderer(src shaders.Sources, clear []float32) (*Renderer, error) {
	r := &Renderer{}
	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	data := scene.VertexData()
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)

	if err := r.setProgram(src); err != nil {
		r.Release()
		return nil, err
	}
	var c [4]float32
	copy(c[:], clear)
	gl.ClearColor(c[0], c[1], c[2], c[3])
	CheckError("new renderer")
	return r, nil
}

// setProgram builds a program from src and binds the vertex layout
// to its attributes. The current program is kept if building fails.
func (r *Renderer) setProgram(src shaders.Sources) error {
	p, err := NewProgram(src)
	if err != nil {
		return err
	}
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	for _, a := range r.attribs {
		gl.DisableVertexAttribArray(a)
	}
	r.attribs = r.attribs[:0]

	r.mvp = p.Uniform(shaders.MVPUniform)
	if pos := p.Attrib(shaders.PosAttrib); pos >= 0 {
		gl.EnableVertexAttribArray(uint32(pos))
		gl.VertexAttribPointerWithOffset(uint32(pos), scene.PosSize, gl.FLOAT, false, scene.Stride, scene.PosOffset)
		r.attribs = append(r.attribs, uint32(pos))
	}
	if col := p.Attrib(shaders.ColAttrib); col >= 0 {
		gl.EnableVertexAttribArray(uint32(col))
		gl.VertexAttribPointerWithOffset(uint32(col), scene.ColSize, gl.FLOAT, false, scene.Stride, scene.ColOffset)
		r.attribs = append(r.attribs, uint32(col))
	}
	if r.program != nil {
		r.program.Delete()
	}
	r.program = p
	return nil
}

// Reload rebuilds the program from the given sources. On failure the
// previous program stays in use and the error is returned.
func (r *Renderer) Reload(src shaders.Sources) error {
	if err := r.setProgram(src); err != nil {
		return err
	}
	slog.Info("gpu: shaders reloaded")
	return nil
}

// Viewport sets the GL viewport to the given framebuffer size.
func (r *Renderer) Viewport(size image.Point) {
	gl.Viewport(0, 0, int32(size.X), int32(size.Y))
}

// Draw clears the color buffer and draws the triangle with the given
// model-view-projection matrix.
func (r *Renderer) Draw(mvp mgl32.Mat4) {
	gl.Clear(gl.COLOR_BUFFER_BIT)
	r.program.Use()
	gl.UniformMatrix4fv(r.mvp, 1, false, &mvp[0])
	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(scene.Vertices)))
	CheckError("draw")
}

// Release frees all GL objects of the renderer.
func (r *Renderer) Release() {
	if r.program != nil {
		r.program.Delete()
		r.program = nil
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
		r.vbo = 0
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
}
