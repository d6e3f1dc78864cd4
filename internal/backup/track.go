package backup

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"rund/internal/logger"
)

// WaitFunc blocks until the launched window has closed.
type WaitFunc func() error

// Options tunes change tracking for one launch.
type Options struct {
	BackupDir string
	Compress  bool
	Timeout   time.Duration // how long a detached launch is watched
	Settle    time.Duration // quiet period after the last write event
	Grace     time.Duration // extra delay after a waited process exits
}

// Track follows the target file while the launched app runs and creates a
// backup when the content hash changed. wait is non-nil for launches whose
// window close can be awaited; detached launches watch the filesystem
// instead. Returns the backup path (empty when none was written) and
// whether the file changed.
func Track(ctx context.Context, path, initialHash string, wait WaitFunc, opts Options) (string, bool, error) {
	if wait != nil {
		return trackWait(ctx, path, initialHash, wait, opts)
	}
	return trackWatch(ctx, path, initialHash, opts)
}

func trackWait(ctx context.Context, path, initialHash string, wait WaitFunc, opts Options) (string, bool, error) {
	done := make(chan error, 1)
	go func() { done <- wait() }()

	select {
	case err := <-done:
		// Non-zero exit of the app surfaces here; the file may still have
		// changed, so it never aborts tracking.
		if err != nil {
			logger.Debug("terminal wait returned error", "error", err)
		}
	case <-ctx.Done():
		return finish(path, initialHash, opts)
	}

	if opts.Grace > 0 {
		select {
		case <-time.After(opts.Grace):
		case <-ctx.Done():
		}
	}
	return finish(path, initialHash, opts)
}

func trackWatch(ctx context.Context, path, initialHash string, opts Options) (string, bool, error) {
	if opts.Timeout <= 0 {
		return "", false, nil
	}
	settle := opts.Settle
	if settle <= 0 {
		settle = 2 * time.Second
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return "", false, err
	}
	defer watcher.Close()

	// Watch the parent directory: editors often replace the file by a
	// rename, which would silently detach a watch on the file itself.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return "", false, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	limiter := rate.NewLimiter(rate.Every(500*time.Millisecond), 1)
	deadline := time.NewTimer(opts.Timeout)
	defer deadline.Stop()

	// Armed on the first relevant event, re-armed on each one after.
	quiet := time.NewTimer(settle)
	quiet.Stop()
	defer quiet.Stop()

	for {
		select {
		case <-ctx.Done():
			return finish(path, initialHash, opts)
		case <-deadline.C:
			return finish(path, initialHash, opts)
		case <-quiet.C:
			if err := limiter.Wait(ctx); err != nil {
				return finish(path, initialHash, opts)
			}
			backupPath, changed, err := finish(path, initialHash, opts)
			if err != nil || changed {
				return backupPath, changed, err
			}
			// Touched without a content change; keep watching.
		case event, ok := <-watcher.Events:
			if !ok {
				return finish(path, initialHash, opts)
			}
			if !sameFile(event.Name, abs) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			logger.Debug("target file event", "op", event.Op.String(), "path", event.Name)
			quiet.Reset(settle)
		case err, ok := <-watcher.Errors:
			if !ok {
				return finish(path, initialHash, opts)
			}
			logger.Warn("watch error", "error", err)
		}
	}
}

// finish re-hashes the target and writes the backup if the content moved.
// A missing target means nothing to back up.
func finish(path, initialHash string, opts Options) (string, bool, error) {
	if _, err := os.Stat(path); err != nil {
		return "", false, nil
	}
	finalHash, err := HashFile(path)
	if err != nil {
		return "", false, err
	}
	if finalHash == initialHash {
		return "", false, nil
	}
	backupPath, err := Create(path, opts.BackupDir, opts.Compress)
	if err != nil {
		return "", true, err
	}
	return backupPath, true, nil
}

func sameFile(eventName, abs string) bool {
	name, err := filepath.Abs(eventName)
	if err != nil {
		name = eventName
	}
	name = filepath.Clean(name)
	if runtime.GOOS == "windows" {
		return strings.EqualFold(name, abs)
	}
	return name == abs
}
