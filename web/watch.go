// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package web

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher rebuilds the app when a .go file in its directories changes.
// Changes within [Watcher.Debounce] of each other cause one rebuild.
type Watcher struct {
	// Dirs are watched along with all of their subdirectories, except
	// hidden ones and those in Skip.
	Dirs []string

	// Skip are directories not to watch, such as the build output.
	Skip []string

	Debounce time.Duration

	// Rebuild is called after changes. Reload is called after
	// each successful Rebuild.
	Rebuild func() error
	Reload  func()

	watcher *fsnotify.Watcher
}

// Start starts watching the directories. It is called by [Watcher.Run]
// if needed.
func (w *Watcher) Start() error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	w.watcher = fw
	for _, dir := range w.Dirs {
		if err := w.addTree(dir); err != nil {
			fw.Close()
			w.watcher = nil
			return err
		}
	}
	return nil
}

// Run handles changes until the context is done, and then stops watching.
func (w *Watcher) Run(ctx context.Context) error {
	if w.watcher == nil {
		if err := w.Start(); err != nil {
			return err
		}
	}
	fw := w.watcher
	defer func() {
		fw.Close()
		w.watcher = nil
	}()

	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if ev.Has(fsnotify.Create) {
				if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
					if err := w.addTree(ev.Name); err != nil {
						slog.Error("web: watching new directory", "dir", ev.Name, "err", err)
					}
					continue
				}
			}
			if !strings.HasSuffix(ev.Name, ".go") || ev.Op == fsnotify.Chmod {
				continue
			}
			slog.Debug("web: change", "file", ev.Name, "op", ev.Op)
			timer.Reset(w.Debounce)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			slog.Error("web: watcher", "err", err)
		case <-timer.C:
			if err := w.Rebuild(); err != nil {
				slog.Error("web: rebuild failed", "err", err)
				continue
			}
			w.Reload()
		}
	}
}

// addTree watches dir and all of its subdirectories.
func (w *Watcher) addTree(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if w.skip(path) {
			return filepath.SkipDir
		}
		return w.watcher.Add(path)
	})
}

func (w *Watcher) skip(path string) bool {
	base := filepath.Base(path)
	if base != "." && strings.HasPrefix(base, ".") {
		return true
	}
	for _, s := range w.Skip {
		if filepath.Clean(s) == filepath.Clean(path) {
			return true
		}
	}
	return false
}
