// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"errors"
	"image"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aks-engine/aks/config"
	"github.com/aks-engine/aks/events"
	"github.com/aks-engine/aks/events/key"
	"github.com/aks-engine/aks/scene"
	"github.com/aks-engine/aks/shaders"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type monitorCall struct {
	fullscreen bool
	size       image.Point
}

type fakeWindow struct {
	size      image.Point
	queue     *events.Queue
	close     bool
	t         float64
	polls     int
	destroyed bool
	monitors  []monitorCall

	// script maps a poll number to the events the callbacks deliver in it
	script map[int][]events.Event

	// osClose sets the close flag directly in the given poll
	osClose int

	// onPoll runs at the end of every poll
	onPoll func(w *fakeWindow)
}

func (w *fakeWindow) ShouldClose() bool     { return w.close }
func (w *fakeWindow) SetShouldClose(v bool) { w.close = v }
func (w *fakeWindow) SetMonitor(fullscreen bool, size image.Point) {
	w.monitors = append(w.monitors, monitorCall{fullscreen, size})
	w.size = size
}
func (w *fakeWindow) FramebufferSize() image.Point { return w.size }
func (w *fakeWindow) SwapBuffers()                 {}
func (w *fakeWindow) Time() float64                { return w.t }
func (w *fakeWindow) Events() *events.Queue        { return w.queue }
func (w *fakeWindow) Destroy()                     { w.destroyed = true }

func (w *fakeWindow) PollEvents() {
	w.polls++
	w.t += 0.5
	for _, ev := range w.script[w.polls] {
		w.queue.Send(ev)
	}
	if w.osClose == w.polls {
		w.close = true
	}
	if w.onPoll != nil {
		w.onPoll(w)
	}
	if w.polls > 1000 {
		panic("loop did not stop")
	}
}

type fakePlatform struct {
	initErr, createErr, loadErr error

	inits, terminates int
	created           []monitorCall
	win               *fakeWindow
	script            map[int][]events.Event
	osClose           int
	onPoll            func(w *fakeWindow)
}

func (p *fakePlatform) Init() error {
	p.inits++
	return p.initErr
}

func (p *fakePlatform) Terminate() { p.terminates++ }

func (p *fakePlatform) CreateWindow(cfg *config.Config, fullscreen bool) (Window, error) {
	if p.createErr != nil {
		return nil, p.createErr
	}
	sz := cfg.WindowSize(fullscreen)
	p.created = append(p.created, monitorCall{fullscreen, sz})
	p.win = &fakeWindow{size: sz, queue: events.NewQueue(), script: p.script, osClose: p.osClose, onPoll: p.onPoll}
	return p.win, nil
}

func (p *fakePlatform) LoadGL() error { return p.loadErr }

type fakeRenderer struct {
	src       shaders.Sources
	clear     []float32
	buffer    []float32
	viewports []image.Point
	draws     []mgl32.Mat4
	reloads   int
	reloadErr error
	released  bool
	drawPanic bool
}

func (r *fakeRenderer) Viewport(size image.Point) { r.viewports = append(r.viewports, size) }
func (r *fakeRenderer) Draw(mvp mgl32.Mat4) {
	if r.drawPanic {
		panic("lost context")
	}
	r.draws = append(r.draws, mvp)
}
func (r *fakeRenderer) Reload(src shaders.Sources) error {
	r.reloads++
	if r.reloadErr != nil {
		return r.reloadErr
	}
	r.src = src
	return nil
}
func (r *fakeRenderer) Release() { r.released = true }

func newTestApp(cfg *config.Config, p *fakePlatform) (*App, *fakeRenderer) {
	r := &fakeRenderer{}
	a := &App{
		Config:   cfg,
		Platform: p,
		NewRenderer: func(src shaders.Sources, clear []float32) (Renderer, error) {
			r.src = src
			r.clear = clear
			r.buffer = scene.VertexData()
			return r, nil
		},
	}
	return a, r
}

func escapeAt(poll int) map[int][]events.Event {
	return map[int][]events.Event{poll: {events.KeyPressed{Code: key.CodeEscape}}}
}

func TestRunEscape(t *testing.T) {
	p := &fakePlatform{script: escapeAt(3)}
	a, r := newTestApp(config.New(), p)

	assert.Equal(t, ExitOK, a.Run())
	// frames 1-3 are drawn; the escape from the third poll stops the loop
	assert.Len(t, r.draws, 3)
	assert.Equal(t, 3, a.Stats.Frames)
	assert.Equal(t, 3, p.win.polls)
	assert.True(t, p.win.destroyed)
	assert.True(t, r.released)
	assert.Equal(t, 1, p.terminates)
}

func TestRunOSClose(t *testing.T) {
	p := &fakePlatform{osClose: 2}
	a, r := newTestApp(config.New(), p)
	assert.Equal(t, ExitOK, a.Run())
	assert.Len(t, r.draws, 2)
}

func TestWindowCreatedWindowed(t *testing.T) {
	p := &fakePlatform{script: escapeAt(1)}
	a, r := newTestApp(config.New(), p)
	require.Equal(t, ExitOK, a.Run())

	assert.Equal(t, []monitorCall{{false, image.Pt(1024, 768)}}, p.created)
	assert.Equal(t, []image.Point{image.Pt(1024, 768)}, r.viewports)
	assert.Equal(t, []float32{0, 0, 0, 1}, r.clear)
	assert.Equal(t, shaders.Default(), r.src)
}

func TestVertexBufferContents(t *testing.T) {
	p := &fakePlatform{script: escapeAt(1)}
	a, r := newTestApp(config.New(), p)
	require.Equal(t, ExitOK, a.Run())
	assert.Equal(t, []float32{
		-1, -1, 0, 1, 0, 0,
		1, -1, 0, 0, 1, 0,
		1, 1, 0, 0, 0, 1,
	}, r.buffer)
}

func TestInitFailure(t *testing.T) {
	p := &fakePlatform{initErr: errors.New("no display")}
	a, r := newTestApp(config.New(), p)

	assert.Equal(t, ExitFailure, a.Run())
	assert.NotEqual(t, 0, ExitFailure)
	assert.Empty(t, p.created)
	assert.Nil(t, p.win)
	assert.Empty(t, r.draws)
	assert.Equal(t, 0, p.terminates)
}

func TestCreateWindowFailure(t *testing.T) {
	p := &fakePlatform{createErr: errors.New("no GL 3.3")}
	a, r := newTestApp(config.New(), p)

	assert.Equal(t, ExitFailure, a.Run())
	assert.Equal(t, 1, p.terminates)
	assert.Empty(t, r.draws)
}

func TestLoadGLFailure(t *testing.T) {
	p := &fakePlatform{loadErr: errors.New("failed to initialize OpenGL")}
	a, r := newTestApp(config.New(), p)

	assert.Equal(t, ExitFailure, a.Run())
	assert.True(t, p.win.destroyed)
	assert.Equal(t, 1, p.terminates)
	assert.Nil(t, r.buffer)
}

func TestRendererFailure(t *testing.T) {
	p := &fakePlatform{}
	a := &App{
		Config:   config.New(),
		Platform: p,
		NewRenderer: func(src shaders.Sources, clear []float32) (Renderer, error) {
			return nil, errors.New("gpu: vertex shader failed to compile")
		},
	}
	assert.Equal(t, ExitFailure, a.Run())
	assert.True(t, p.win.destroyed)
}

func TestPanicInLoop(t *testing.T) {
	p := &fakePlatform{}
	a, r := newTestApp(config.New(), p)
	r.drawPanic = true
	assert.Equal(t, ExitFailure, a.Run())
	assert.True(t, p.win.destroyed)
	assert.True(t, r.released)
	assert.Equal(t, 1, p.terminates)
}

func TestFullscreenToggle(t *testing.T) {
	f := events.KeyPressed{Code: key.CodeF}
	p := &fakePlatform{script: map[int][]events.Event{
		1: {f},
		2: {f},
		3: {events.KeyPressed{Code: key.CodeEscape}},
	}}
	a, r := newTestApp(config.New(), p)
	require.Equal(t, ExitOK, a.Run())

	assert.Equal(t, []monitorCall{
		{true, image.Pt(1440, 900)},
		{false, image.Pt(1024, 768)},
	}, p.win.monitors)
	assert.Equal(t, []image.Point{
		image.Pt(1024, 768),
		image.Pt(1440, 900),
		image.Pt(1024, 768),
	}, r.viewports)
	assert.False(t, a.State.Fullscreen)
	assert.Equal(t, image.Pt(1024, 768), p.win.size)
}

func TestStartFullscreen(t *testing.T) {
	cfg := config.New()
	cfg.Fullscreen = true
	p := &fakePlatform{script: escapeAt(1)}
	a, _ := newTestApp(cfg, p)
	require.Equal(t, ExitOK, a.Run())
	assert.Equal(t, []monitorCall{{true, image.Pt(1440, 900)}}, p.created)
}

func TestResize(t *testing.T) {
	p := &fakePlatform{script: map[int][]events.Event{
		1: {events.FramebufferResized{Size: image.Pt(800, 600)}},
		2: {events.KeyPressed{Code: key.CodeEscape}},
	}}
	a, r := newTestApp(config.New(), p)
	require.Equal(t, ExitOK, a.Run())
	assert.Equal(t, []image.Point{image.Pt(1024, 768), image.Pt(800, 600)}, r.viewports)
}

func TestMVPPerFrame(t *testing.T) {
	p := &fakePlatform{script: escapeAt(3)}
	a, r := newTestApp(config.New(), p)
	require.Equal(t, ExitOK, a.Run())
	require.Len(t, r.draws, 3)
	assert.Equal(t, scene.Projection(), r.draws[0])
	assert.Equal(t, scene.MVP(0.5), r.draws[1])
	assert.Equal(t, scene.MVP(1.0), r.draws[2])
}

func TestShaderReload(t *testing.T) {
	dir := t.TempDir()
	def := shaders.Default()
	require.NoError(t, os.WriteFile(filepath.Join(dir, shaders.VertexFile), []byte(def.Vertex), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, shaders.FragmentFile), []byte(def.Fragment), 0o644))

	cfg := config.New()
	cfg.ShaderDir = dir
	changed := events.ShadersChanged{}
	p := &fakePlatform{script: map[int][]events.Event{
		1: {changed, changed},
		2: {changed},
		3: {events.KeyPressed{Code: key.CodeEscape}},
	}}
	a, r := newTestApp(cfg, p)
	r.reloadErr = errors.New("gpu: program failed to link")

	require.Equal(t, ExitOK, a.Run())
	// once per frame with changes; failures keep the loop running
	assert.Equal(t, 2, r.reloads)
	assert.Len(t, r.draws, 3)
}

func TestShaderDirMissing(t *testing.T) {
	cfg := config.New()
	cfg.ShaderDir = filepath.Join(t.TempDir(), "missing")
	p := &fakePlatform{}
	a, _ := newTestApp(cfg, p)
	assert.Equal(t, ExitFailure, a.Run())
	assert.True(t, p.win.destroyed)
}

func TestFrameStats(t *testing.T) {
	var fs FrameStats
	fs.Start(1, 60)
	for i := 1; i <= 600; i++ {
		fs.Frame(1 + float64(i)/60)
	}
	assert.Equal(t, 600, fs.Frames)
	assert.InDelta(t, 60, fs.LastFPS, 1e-6)
	assert.Equal(t, 60, fs.Target)

	fs.Frame(12)
	assert.Equal(t, 601, fs.Frames)
	assert.InDelta(t, 60, fs.LastFPS, 1e-6)
}

func TestShaderWatch(t *testing.T) {
	dir := t.TempDir()
	def := shaders.Default()
	vert := filepath.Join(dir, shaders.VertexFile)
	require.NoError(t, os.WriteFile(vert, []byte(def.Vertex), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, shaders.FragmentFile), []byte(def.Fragment), 0o644))

	cfg := config.New()
	cfg.ShaderDir = dir
	cfg.WatchShaders = true
	edited := def.Vertex + "\n// edited\n"
	p := &fakePlatform{onPoll: func(w *fakeWindow) {
		switch w.polls {
		case 1:
			require.NoError(t, os.WriteFile(vert, []byte(edited), 0o644))
			deadline := time.Now().Add(5 * time.Second)
			for w.queue.Len() == 0 && time.Now().Before(deadline) {
				time.Sleep(10 * time.Millisecond)
			}
		case 2:
			w.queue.Send(events.KeyPressed{Code: key.CodeEscape})
		}
	}}
	a, r := newTestApp(cfg, p)
	require.Equal(t, ExitOK, a.Run())
	// one write can be seen as several changes
	assert.GreaterOrEqual(t, r.reloads, 1)
	assert.Equal(t, edited, r.src.Vertex)
	assert.Nil(t, a.watcher)
}
