// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package key defines the physical key codes the program responds to.
package key

// Codes are the physical key codes. Only the keys that have an
// effect are distinguished; everything else is [CodeUnknown].
type Codes int32

const (
	CodeUnknown Codes = iota

	// CodeEscape requests that the window close.
	CodeEscape

	// CodeF toggles between windowed and fullscreen mode.
	CodeF
)

var codeNames = [...]string{
	CodeUnknown: "Unknown",
	CodeEscape:  "Escape",
	CodeF:       "F",
}

// String returns the name of the key code.
func (c Codes) String() string {
	if c < 0 || int(c) >= len(codeNames) {
		return codeNames[CodeUnknown]
	}
	return codeNames[c]
}
