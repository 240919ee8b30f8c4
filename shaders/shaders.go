// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shaders provides the GLSL sources of the triangle program,
// either built in or read from a directory, and watches that
// directory for changes.
package shaders

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
)

// File names of the shader stages, both built in and in a shader directory.
const (
	VertexFile   = "triangle.vert"
	FragmentFile = "triangle.frag"
)

// Names the program sources must declare.
const (
	MVPUniform     = "MVP"
	PosAttrib      = "vPos"
	ColAttrib      = "vCol"
	FragDataOutput = "fragColor"
)

//go:embed triangle.vert
var defaultVertex string

//go:embed triangle.frag
var defaultFragment string

// Sources are the sources of the two shader stages.
type Sources struct {
	Vertex   string
	Fragment string
}

// Default returns the built-in sources.
func Default() Sources {
	return Sources{Vertex: defaultVertex, Fragment: defaultFragment}
}

// Load reads [VertexFile] and [FragmentFile] from dir.
// An empty dir returns [Default].
func Load(dir string) (Sources, error) {
	if dir == "" {
		return Default(), nil
	}
	vs, err := os.ReadFile(filepath.Join(dir, VertexFile))
	if err != nil {
		return Sources{}, fmt.Errorf("shaders: %w", err)
	}
	fs, err := os.ReadFile(filepath.Join(dir, FragmentFile))
	if err != nil {
		return Sources{}, fmt.Errorf("shaders: %w", err)
	}
	return Sources{Vertex: string(vs), Fragment: string(fs)}, nil
}
