// Package clip moves clipboard text into files for the launched app.
package clip

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"

	"rund/internal/logger"
)

const tempPrefix = "rund_clipboard_"

// Read returns the current clipboard text.
func Read() (string, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("clipboard error: %w", err)
	}
	return text, nil
}

// WriteFile writes text to path, creating parent directories as needed.
func WriteFile(path, text string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(text), 0644)
}

// WriteTemp writes text to a fresh rund_clipboard_<unix>.txt in the system
// temp directory and returns its path.
func WriteTemp(text string) (string, error) {
	name := fmt.Sprintf("%s%d.txt", tempPrefix, time.Now().Unix())
	path := filepath.Join(os.TempDir(), name)
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return "", err
	}
	return path, nil
}

// Sweep removes leftover clipboard temp files older than ttl. Best effort;
// failures are logged and skipped.
func Sweep(ttl time.Duration) int {
	return sweepDir(os.TempDir(), ttl)
}

func sweepDir(dir string, ttl time.Duration) int {
	paths, err := filepath.Glob(filepath.Join(dir, tempPrefix+"*.txt"))
	if err != nil {
		return 0
	}
	cutoff := time.Now().Add(-ttl)
	removed := 0
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(path); err != nil {
			logger.Warn("failed to remove stale clipboard file", "path", path, "error", err)
			continue
		}
		removed++
	}
	if removed > 0 {
		logger.Debug("swept stale clipboard files", "dir", dir, "count", removed)
	}
	return removed
}
