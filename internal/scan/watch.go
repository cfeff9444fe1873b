package scan

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"glyphwatch/internal/trace"
)

// DefaultDebounce collapses bursts of writes (editor saves, log
// rotation) into one rescan.
const DefaultDebounce = 200 * time.Millisecond

// Watch calls fn once, then again after each change to one of paths,
// until ctx is done. Parent directories are watched so files replaced
// by rename are picked up. Standard input is never watched. An error
// from fn stops the loop.
func Watch(ctx context.Context, paths []string, debounce time.Duration, fn func(context.Context) error) error {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	targets := make(map[string]struct{}, len(paths))
	dirs := make(map[string]struct{})
	for _, p := range paths {
		if p == StdinName {
			continue
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("resolve %q: %w", p, err)
		}
		targets[abs] = struct{}{}
		dir := filepath.Dir(abs)
		if _, ok := dirs[dir]; ok {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watch directory: %w", err)
		}
		dirs[dir] = struct{}{}
	}

	if err := fn(ctx); err != nil {
		return err
	}

	tracer := trace.FromContext(ctx)
	timer := time.NewTimer(debounce)
	timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if _, hit := targets[filepath.Clean(ev.Name)]; !hit {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			trace.Point(tracer, trace.ScopeBatch, "watch.change", ev.Name)
			timer.Reset(debounce)

		case <-timer.C:
			if err := fn(ctx); err != nil {
				return err
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			trace.Errorf(tracer, trace.ScopeBatch, "watch.error", "%v", err)
		}
	}
}
