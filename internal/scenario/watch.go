package scenario

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watch calls fn with the reloaded scenario each time the file at path is
// written or recreated. Bursts of events within the debounce window collapse
// into one reload. Watch blocks until ctx is done.
func Watch(ctx context.Context, path string, log *zap.Logger, fn func(*Scenario, error)) error {
	if log == nil {
		log = zap.NewNop()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fw.Close()

	// Watch the directory: editors often replace the file instead of writing it.
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	const debounce = 100 * time.Millisecond
	var pending time.Time
	ticker := time.NewTicker(debounce)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				pending = time.Now()
			}

		case <-ticker.C:
			if pending.IsZero() || time.Since(pending) < debounce {
				continue
			}
			pending = time.Time{}
			log.Debug("scenario changed", zap.String("path", abs))
			fn(Load(abs))

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			log.Warn("watch error", zap.Error(err))
		}
	}
}
