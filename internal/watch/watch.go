// ============================================================================
// fynk - Fynk language front end
// ============================================================================
//
// Package:     watch
// Description: File system watcher that reports changed Fynk sources so
//              `fynk check --watch` can re-check them
// Author:      fynk authors
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package watch

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	mdwerror "github.com/fynk-lang/fynk/foundation/core/error"
	mdwlog "github.com/fynk-lang/fynk/foundation/core/log"
	"github.com/fynk-lang/fynk/foundation/utils/filex"
)

// DefaultDebounce is how long a file must stay unchanged before it is reported
const DefaultDebounce = 200 * time.Millisecond

// Config controls which files are reported
type Config struct {
	// Patterns select files inside watched directories
	Patterns []string
	Debounce time.Duration
}

// Watcher reports created or written source files
type Watcher struct {
	watcher  *fsnotify.Watcher
	config   Config
	files    map[string]bool
	dirs     map[string]bool
	onChange func(path string)
	logger   *mdwlog.Logger
}

// New watches every path. Directories report files matching cfg.Patterns;
// a file path is reported whatever its name.
func New(paths []string, cfg Config, onChange func(path string), logger *mdwlog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = mdwlog.GetDefault()
	}
	if cfg.Debounce == 0 {
		cfg.Debounce = DefaultDebounce
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to create watcher").
			WithCode(mdwerror.CodeInternal).
			WithOperation("watch.New")
	}

	w := &Watcher{
		watcher:  fsw,
		config:   cfg,
		files:    make(map[string]bool),
		dirs:     make(map[string]bool),
		onChange: onChange,
		logger:   logger.WithField("component", "fynk-watch"),
	}

	// Files are watched through their directory; editors often replace a
	// file instead of writing it in place.
	watched := make(map[string]bool)
	for _, path := range paths {
		path = filepath.Clean(path)
		dir := path
		if filex.IsDir(path) {
			w.dirs[path] = true
		} else {
			w.files[path] = true
			dir = filepath.Dir(path)
		}
		if watched[dir] {
			continue
		}
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, mdwerror.Wrap(err, "failed to watch path").
				WithCode(mdwerror.CodeSourceRead).
				WithOperation("watch.New").
				WithDetail("path", dir)
		}
		watched[dir] = true
	}

	return w, nil
}

// Run delivers change reports until ctx is cancelled, then closes the watcher.
// A file is reported once no further event for it arrived for the debounce
// interval, so the report sees its final contents. Reports are delivered on
// the calling goroutine.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	w.logger.Debug("Watching for source changes", mdwlog.Fields{
		"files": len(w.files),
		"dirs":  len(w.dirs),
	})

	pending := make(map[string]*time.Timer)
	settled := make(chan string)
	done := make(chan struct{})
	defer close(done)
	defer func() {
		for _, timer := range pending {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}

			name := filepath.Clean(event.Name)
			if !w.Matches(name) {
				continue
			}
			if timer, ok := pending[name]; ok {
				timer.Reset(w.config.Debounce)
				continue
			}
			pending[name] = time.AfterFunc(w.config.Debounce, func() {
				select {
				case settled <- name:
				case <-done:
				}
			})

		case name := <-settled:
			delete(pending, name)
			w.logger.Debug("Source changed", mdwlog.Fields{"file": name})
			w.onChange(name)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.ErrorWithErr("Watcher error", err)
		}
	}
}

// Matches reports whether a change to name is delivered
func (w *Watcher) Matches(name string) bool {
	name = filepath.Clean(name)
	if w.files[name] {
		return true
	}
	if !w.dirs[filepath.Dir(name)] {
		return false
	}
	base := filepath.Base(name)
	for _, pattern := range w.config.Patterns {
		if ok, _ := filepath.Match(pattern, base); ok {
			return true
		}
	}
	return false
}
