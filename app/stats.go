// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import "log/slog"

// StatsInterval is the number of seconds between frame rate reports.
const StatsInterval = 10.0

// FrameStats counts frames and reports the frame rate every
// [StatsInterval] seconds at debug level.
type FrameStats struct {

	// Frames is the total number of frames drawn.
	Frames int

	// Target is the configured frame rate the measured rate is compared to.
	Target int

	// LastFPS is the frame rate measured over the last full interval.
	LastFPS float64

	start  float64
	frames int
}

// Start resets the interval at the given time.
func (fs *FrameStats) Start(t float64, target int) {
	fs.Target = target
	fs.start = t
	fs.frames = 0
}

// Frame records a frame drawn at time t, reporting the frame rate
// when an interval has passed.
func (fs *FrameStats) Frame(t float64) {
	fs.Frames++
	fs.frames++
	dur := t - fs.start
	if dur < StatsInterval {
		return
	}
	fs.LastFPS = float64(fs.frames) / dur
	slog.Debug("app: frame rate", "fps", int(fs.LastFPS+0.5), "target", fs.Target, "frames", fs.Frames)
	fs.start = t
	fs.frames = 0
}
