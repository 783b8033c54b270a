package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// dumpWatcher reports changes to one snapshot file. It watches the parent
// directory so that dumps replaced by rename are still seen.
type dumpWatcher struct {
	path    string
	watcher *fsnotify.Watcher
}

func newDumpWatcher(path string) (*dumpWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}
	return &dumpWatcher{path: abs, watcher: w}, nil
}

// run calls onChange once the file has been quiet for delay after a create or
// write, until ctx is done or onChange fails. Watcher errors go to onError.
func (dw *dumpWatcher) run(ctx context.Context, delay time.Duration, onChange func() error, onError func(error)) error {
	defer dw.watcher.Close() //nolint:errcheck

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-dw.watcher.Events:
			if !ok {
				return nil
			}
			if dw.relevant(event) {
				pending = time.After(delay)
			}
		case <-pending:
			pending = nil
			if err := onChange(); err != nil {
				return err
			}
		case err, ok := <-dw.watcher.Errors:
			if !ok {
				return nil
			}
			onError(err)
		}
	}
}

func (dw *dumpWatcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != dw.path {
		return false
	}
	return event.Has(fsnotify.Create) || event.Has(fsnotify.Write)
}
