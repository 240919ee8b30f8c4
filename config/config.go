// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the window and display configuration
// of the engine test program, and the loading of it from files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config is the main config struct that contains all of the
// configuration options for the window, the GL context and rendering.
// Zero-valued fields are set from their default tags by [New].
type Config struct {

	// the title of the window
	Title string `default:"Aks Engine Test" toml:"title" yaml:"title"`

	// the window width in windowed mode
	Width int `default:"1024" toml:"width" yaml:"width"`

	// the window height in windowed mode
	Height int `default:"768" toml:"height" yaml:"height"`

	// the target frame rate; it is only reported against the
	// measured rate, since frames are paced by the swap interval
	FPS int `default:"60" toml:"fps" yaml:"fps"`

	// the window width in fullscreen mode
	FullWidth int `default:"1440" toml:"full_width" yaml:"full_width"`

	// the window height in fullscreen mode
	FullHeight int `default:"900" toml:"full_height" yaml:"full_height"`

	// whether to start in fullscreen mode on the primary monitor
	Fullscreen bool `toml:"fullscreen" yaml:"fullscreen"`

	// the number of multisampling samples per pixel
	Samples int `default:"4" toml:"samples" yaml:"samples"`

	// the requested OpenGL major version
	GLMajor int `default:"3" toml:"gl_major" yaml:"gl_major"`

	// the requested OpenGL minor version
	GLMinor int `default:"3" toml:"gl_minor" yaml:"gl_minor"`

	// the number of screen updates to wait for before swapping buffers
	SwapInterval int `default:"1" toml:"swap_interval" yaml:"swap_interval"`

	// a directory holding triangle.vert and triangle.frag to use
	// instead of the built-in shaders
	ShaderDir string `toml:"shader_dir" yaml:"shader_dir"`

	// whether to recompile the shaders in ShaderDir when they change
	WatchShaders bool `toml:"watch_shaders" yaml:"watch_shaders"`

	// the logging level: debug, info, warn or error
	LogLevel string `default:"info" toml:"log_level" yaml:"log_level"`

	// the RGBA color the color buffer is cleared to each frame
	ClearColor []float32 `default:"0 0 0 1" toml:"clear_color" yaml:"clear_color"`
}

// New returns a new config with all default values set.
func New() *Config {
	c := &Config{}
	if err := SetFromDefaults(c); err != nil {
		panic(err) // only possible with a bad default tag
	}
	return c
}

// WindowSize returns the window size for the given fullscreen state.
func (c *Config) WindowSize(fullscreen bool) image.Point {
	if fullscreen {
		return image.Pt(c.FullWidth, c.FullHeight)
	}
	return image.Pt(c.Width, c.Height)
}

// Validate returns an error describing every invalid field, or nil.
func (c *Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Width, c.Height))
	}
	if c.FullWidth <= 0 || c.FullHeight <= 0 {
		errs = append(errs, fmt.Errorf("fullscreen size must be positive, got %dx%d", c.FullWidth, c.FullHeight))
	}
	if c.GLMajor < 3 || (c.GLMajor == 3 && c.GLMinor < 3) {
		errs = append(errs, fmt.Errorf("OpenGL version must be at least 3.3, got %d.%d", c.GLMajor, c.GLMinor))
	}
	if c.Samples < 0 {
		errs = append(errs, fmt.Errorf("samples must not be negative, got %d", c.Samples))
	}
	if c.SwapInterval < 0 {
		errs = append(errs, fmt.Errorf("swap interval must not be negative, got %d", c.SwapInterval))
	}
	if c.FPS < 0 {
		errs = append(errs, fmt.Errorf("fps must not be negative, got %d", c.FPS))
	}
	if len(c.ClearColor) != 4 {
		errs = append(errs, fmt.Errorf("clear color must have 4 components, got %d", len(c.ClearColor)))
	}
	if c.WatchShaders && c.ShaderDir == "" {
		errs = append(errs, errors.New("watching shaders requires a shader directory"))
	}
	return errors.Join(errs...)
}

// DefaultFile returns the path of the config file that is
// read when no file is named explicitly.
func DefaultFile() string {
	home, err := homedir.Dir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "aks", "config.toml")
}

// Open reads the given TOML or YAML file over the current values,
// based on its extension. Values absent from the file are unchanged.
func (c *Config) Open(filename string) error {
	b, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		err = c.ReadTOML(bytes.NewReader(b))
	case ".yaml", ".yml":
		err = c.ReadYAML(bytes.NewReader(b))
	default:
		return fmt.Errorf("config: unsupported file type %q for %s", ext, filename)
	}
	if err != nil {
		return fmt.Errorf("config: %s: %w", filename, err)
	}
	return nil
}

// OpenDefault reads [DefaultFile] if it exists. A missing file is not an error.
func (c *Config) OpenDefault() error {
	fn := DefaultFile()
	if fn == "" {
		return nil
	}
	err := c.Open(fn)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// ReadTOML reads TOML-encoded values over the current values.
// Unknown keys are an error.
func (c *Config) ReadTOML(r io.Reader) error {
	return toml.NewDecoder(r).DisallowUnknownFields().Decode(c)
}

// ReadYAML reads YAML-encoded values over the current values.
// Unknown keys are an error; an empty document changes nothing.
func (c *Config) ReadYAML(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	err := dec.Decode(c)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
