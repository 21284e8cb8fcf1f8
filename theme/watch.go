// Copyright (c) 2026, Veldt UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"log/slog"

	"github.com/fsnotify/fsnotify"
)

// watcher monitors the theme file and reloads on changes.
type watcher struct {
	fsw  *fsnotify.Watcher
	done chan bool
}

// Watch starts monitoring the theme file, reloading the theme whenever
// the file is written or recreated. Safe to call multiple times; only
// one watcher runs. Because reloads re-register metadata, Watch is
// meant for designer tooling sessions where the application is not
// concurrently registering properties or resolving metadata.
func (th *Theme) Watch() error {
	if th.watcher != nil {
		return nil
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := fsw.Add(th.File); err != nil {
		fsw.Close()
		return err
	}
	th.watcher = &watcher{fsw: fsw, done: make(chan bool)}
	go th.watcher.run(th)
	return nil
}

// StopWatch stops monitoring the theme file.
func (th *Theme) StopWatch() {
	if th.watcher == nil {
		return
	}
	close(th.watcher.done)
	th.watcher.fsw.Close()
	th.watcher = nil
}

func (w *watcher) run(th *Theme) {
	for {
		select {
		case <-w.done:
			return
		case event := <-w.fsw.Events:
			switch {
			case event.Op&fsnotify.Write == fsnotify.Write ||
				event.Op&fsnotify.Create == fsnotify.Create:
				if err := th.Reload(); err != nil {
					slog.Error("theme: reload failed", "file", th.File, "err", err)
				}
			}
		case err := <-w.fsw.Errors:
			if err != nil {
				slog.Error("theme: watcher error", "file", th.File, "err", err)
			}
		}
	}
}
