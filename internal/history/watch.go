package history

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultWatchDelay coalesces the burst of events one append produces.
const DefaultWatchDelay = 100 * time.Millisecond

// Watch calls onChange after the history at path changes, coalescing events
// that arrive within delay of each other. It blocks until ctx is done.
//
// The parent directory is watched rather than the file itself because the
// file store replaces the file by rename on every write.
func Watch(ctx context.Context, path string, delay time.Duration, onChange func()) error {
	if delay <= 0 {
		delay = DefaultWatchDelay
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create history directory: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	base := filepath.Base(path)
	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isHistoryFile(base, filepath.Base(event.Name)) || event.Op == fsnotify.Chmod {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(delay)
			} else {
				timer.Reset(delay)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			onChange()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch history: %w", err)
		}
	}
}

// isHistoryFile matches the store file and SQLite's -wal and -journal
// companions. Lock and temp files are ignored.
func isHistoryFile(base, name string) bool {
	return name == base || strings.HasPrefix(name, base+"-")
}
