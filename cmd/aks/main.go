// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command aks opens a window and draws a rotating triangle.
// Escape closes the window and F toggles fullscreen.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/aks-engine/aks/app"
	"github.com/aks-engine/aks/base/errors"
	"github.com/aks-engine/aks/config"
	"github.com/aks-engine/aks/gpu"
	"github.com/aks-engine/aks/logx"
	"github.com/aks-engine/aks/shaders"
	"github.com/aks-engine/aks/system/driver/desktop"
	"github.com/spf13/pflag"
)

func init() {
	// glfw and GL calls must all happen on the main thread
	runtime.LockOSThread()
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	logx.SetDefaultLogger()
	cfg, err := Load(args)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return app.ExitOK
		}
		slog.Error("Error: " + err.Error())
		return app.ExitFailure
	}
	lv, err := logx.LevelFromString(cfg.LogLevel)
	if err != nil {
		slog.Error("Error: " + err.Error())
		return app.ExitFailure
	}
	logx.UserLevel = lv
	logx.SetDefaultLogger()

	a := &app.App{
		Config:   cfg,
		Platform: &desktop.Platform{},
		NewRenderer: func(src shaders.Sources, clear []float32) (app.Renderer, error) {
			r, err := gpu.NewRenderer(src, clear)
			if err != nil {
				return nil, err
			}
			return r, nil
		},
	}
	return a.Run()
}

// Load builds the config from the defaults, the config file and the
// command line flags, in increasing order of precedence.
func Load(args []string) (*config.Config, error) {
	fs := pflag.NewFlagSet("aks", pflag.ContinueOnError)
	file := fs.StringP("config", "c", "", "config file to read (.toml, .yaml or .yml); default "+config.DefaultFile())
	fullscreen := fs.BoolP("fullscreen", "f", false, "start in fullscreen mode")
	shaderDir := fs.String("shaders", "", "directory with triangle.vert and triangle.frag to use instead of the built-in shaders")
	watch := fs.BoolP("watch", "w", false, "reload the shaders when they change on disk")
	level := fs.String("log-level", "", "logging level: debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	cfg := config.New()
	if *file != "" {
		if err := cfg.Open(*file); err != nil {
			return nil, err
		}
	} else if err := cfg.OpenDefault(); err != nil {
		return nil, err
	}
	if fs.Changed("fullscreen") {
		cfg.Fullscreen = *fullscreen
	}
	if fs.Changed("shaders") {
		cfg.ShaderDir = *shaderDir
	}
	if fs.Changed("watch") {
		cfg.WatchShaders = *watch
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = *level
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
