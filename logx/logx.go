// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx sets up the structured logger used throughout the
// program, on top of log/slog.
package logx

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity level for logging. It defaults to
// [slog.LevelInfo], or [slog.LevelDebug] under the debug build tag.
var UserLevel = defaultUserLevel

// SetDefaultLogger sets the default slog logger to one that writes
// to stderr at [UserLevel].
func SetDefaultLogger() {
	slog.SetDefault(NewLogger(os.Stderr, UserLevel))
}

// NewLogger returns a logger writing to w at the given level.
// Each record is written as the level name followed by the
// key=value pairs of [slog.TextHandler]. The level name is colored
// when w is a terminal that supports it.
func NewLogger(w io.Writer, level slog.Leveler) *slog.Logger {
	h := &Handler{
		buf: &bytes.Buffer{},
		mu:  &sync.Mutex{},
		w:   w,
		out: termenv.NewOutput(w),
	}
	h.Handler = slog.NewTextHandler(h.buf, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && (a.Key == slog.TimeKey || a.Key == slog.LevelKey) {
				return slog.Attr{}
			}
			return a
		},
	})
	return slog.New(h)
}

// Handler is a [slog.Handler] that prefixes the output of a
// [slog.TextHandler] with a colored level name.
type Handler struct {
	slog.Handler
	buf *bytes.Buffer
	mu  *sync.Mutex
	w   io.Writer
	out *termenv.Output
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.buf.Reset()
	if err := h.Handler.Handle(ctx, r); err != nil {
		return err
	}
	_, err := io.WriteString(h.w, LevelString(h.out, r.Level)+" "+h.buf.String())
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	nh.Handler = h.Handler.WithAttrs(attrs)
	return &nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	nh := *h
	nh.Handler = h.Handler.WithGroup(name)
	return &nh
}

// LevelString returns the name of the given level, colored
// according to the color profile of the given output.
func LevelString(out *termenv.Output, lv slog.Level) string {
	s := lv.String()
	if out.Profile == termenv.Ascii {
		return s
	}
	var c termenv.Color
	switch {
	case lv >= slog.LevelError:
		c = out.Color("1")
	case lv >= slog.LevelWarn:
		c = out.Color("3")
	case lv >= slog.LevelInfo:
		c = out.Color("4")
	default:
		c = out.Color("8")
	}
	return out.String(s).Foreground(c).Bold().String()
}

// LevelFromString returns the level named by s, which is
// one of debug, info, warn or error (case insensitive).
func LevelFromString(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("logx: unknown log level %q", s)
}
