// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"errors"
	"testing"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/stretchr/testify/assert"
)

// These tests only cover what does not need a GL context.

func TestStagesString(t *testing.T) {
	assert.Equal(t, "vertex", VertexShader.String())
	assert.Equal(t, "fragment", FragmentShader.String())
	assert.Equal(t, "stage 0x1", Stages(1).String())
}

func TestCompileError(t *testing.T) {
	var err error = &CompileError{Stage: FragmentShader, Log: "0:3(1): error: syntax error\n"}
	assert.Equal(t, "gpu: fragment shader failed to compile: 0:3(1): error: syntax error", err.Error())

	var ce *CompileError
	assert.True(t, errors.As(err, &ce))
	assert.Equal(t, FragmentShader, ce.Stage)
}

func TestLinkError(t *testing.T) {
	err := &LinkError{Log: "  fragment shader output fragColor not written  "}
	assert.Equal(t, "gpu: program failed to link: fragment shader output fragColor not written", err.Error())
}

func TestErrorName(t *testing.T) {
	assert.Equal(t, "invalid operation", ErrorName(gl.INVALID_OPERATION))
	assert.Equal(t, "out of memory", ErrorName(gl.OUT_OF_MEMORY))
	assert.Equal(t, "error 0x1234", ErrorName(0x1234))
}
