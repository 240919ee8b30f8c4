// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene defines the triangle that is drawn and the
// model-view-projection transform it is drawn with.
package scene

import (
	"math"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is one vertex of the triangle: a position and an RGB color.
// Only the x and y of the position are fed to the vertex shader.
type Vertex struct {
	Pos [3]float32
	Col [3]float32
}

// Vertices are the three vertices of the triangle, in draw order.
var Vertices = [3]Vertex{
	{Pos: [3]float32{-1, -1, 0}, Col: [3]float32{1, 0, 0}},
	{Pos: [3]float32{1, -1, 0}, Col: [3]float32{0, 1, 0}},
	{Pos: [3]float32{1, 1, 0}, Col: [3]float32{0, 0, 1}},
}

// Vertex attribute layout within the vertex buffer.
const (
	// Stride is the size of one [Vertex] in bytes.
	Stride = int32(unsafe.Sizeof(Vertex{}))

	// PosSize is the number of position components read per vertex.
	PosSize = 2

	// PosOffset is the byte offset of the position in a [Vertex].
	PosOffset = uintptr(unsafe.Offsetof(Vertex{}.Pos))

	// ColSize is the number of color components read per vertex.
	ColSize = 3

	// ColOffset is the byte offset of the color in a [Vertex].
	ColOffset = uintptr(unsafe.Offsetof(Vertex{}.Col))
)

// VertexData returns the interleaved vertex data that is uploaded
// to the vertex buffer.
func VertexData() []float32 {
	data := make([]float32, 0, len(Vertices)*6)
	for _, v := range Vertices {
		data = append(data, v.Pos[:]...)
		data = append(data, v.Col[:]...)
	}
	return data
}

// Ortho bounds of the fixed projection. Near and far are inverted
// relative to the usual convention; with z = 0 geometry this only
// flips the sign of the depth axis.
const (
	OrthoLeft   = -1.5
	OrthoRight  = 1.5
	OrthoBottom = -1.0
	OrthoTop    = 1.0
	OrthoNear   = 1.0
	OrthoFar    = -1.0
)

// Projection returns the fixed orthographic projection. It does not
// track the window aspect ratio.
func Projection() mgl32.Mat4 {
	return mgl32.Ortho(OrthoLeft, OrthoRight, OrthoBottom, OrthoTop, OrthoNear, OrthoFar)
}

// Angle returns the rotation angle in radians for the given elapsed
// time in seconds, reduced to [0, 2pi) before narrowing to float32.
func Angle(t float64) float32 {
	a := math.Mod(t, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return float32(a)
}

// Model returns the model matrix at elapsed time t: the identity
// rotated about the Z axis by t radians.
func Model(t float64) mgl32.Mat4 {
	return mgl32.Ident4().Mul4(mgl32.HomogRotate3DZ(Angle(t)))
}

// MVP returns the combined model-view-projection matrix at elapsed time t.
func MVP(t float64) mgl32.Mat4 {
	return Projection().Mul4(Model(t))
}
