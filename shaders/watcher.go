// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaders

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/aks-engine/aks/events"
	"github.com/fsnotify/fsnotify"
)

// Sender receives events; [events.Queue] is the usual one.
// Send must be safe to call from another goroutine.
type Sender interface {
	Send(ev events.Event)
}

// Watcher sends [events.ShadersChanged] whenever one of the shader
// files in a directory is written or created. The directory is
// watched rather than the files, so that editors which save by
// renaming a new file into place are seen.
type Watcher struct {
	fsw *fsnotify.Watcher
	wg  sync.WaitGroup
}

// NewWatcher starts watching dir, sending to the given sender.
func NewWatcher(dir string, to Sender) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("shaders: watch: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("shaders: watch %s: %w", dir, err)
	}
	w := &Watcher{fsw: fsw}
	w.wg.Add(1)
	go w.run(to)
	return w, nil
}

func (w *Watcher) run(to Sender) {
	defer w.wg.Done()
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if IsSourceChange(ev) {
				slog.Debug("shaders: changed", "file", ev.Name, "op", ev.Op.String())
				to.Send(events.ShadersChanged{})
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			slog.Warn("shaders: watch error", "err", err)
		}
	}
}

// IsSourceChange returns whether the given file event changes one
// of the shader sources.
func IsSourceChange(ev fsnotify.Event) bool {
	switch filepath.Base(ev.Name) {
	case VertexFile, FragmentFile:
		return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)
	}
	return false
}

// Close stops watching and waits for the watch goroutine to exit.
func (w *Watcher) Close() error {
	err := w.fsw.Close()
	w.wg.Wait()
	return err
}
