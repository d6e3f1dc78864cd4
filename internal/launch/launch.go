// Package launch wires a single run together: clipboard capture, pause
// classification, the terminal window, and the post-run backup.
package launch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/google/uuid"

	"rund/internal/backup"
	"rund/internal/classify"
	"rund/internal/clip"
	"rund/internal/config"
	"rund/internal/logger"
	"rund/internal/terminal"
)

const (
	// waitGrace gives the app a moment to flush after its window closes.
	waitGrace = 500 * time.Millisecond
	// watchSettle is how long a watched file must stay quiet before its
	// content is compared.
	watchSettle = 2 * time.Second
)

// Options carries the per-run choices from the command line.
type Options struct {
	// App is the command to run, possibly with embedded arguments.
	App string
	// Args are extra arguments appended to App.
	Args []string
	// UseClipboard saves the clipboard text to a file handed to the app.
	UseClipboard bool
	// OutputFile is the target file. With UseClipboard it receives the
	// clipboard text before the app starts.
	OutputFile string
	// BackupDir overrides the configured backup directory.
	BackupDir string
	// AlwaysOnTop is accepted for compatibility and has no effect.
	AlwaysOnTop bool
	// DryRun prints the launch instead of performing it.
	DryRun bool
}

// Run launches the app in its own terminal window, then watches the
// target file and backs it up if the app changed it.
func Run(ctx context.Context, cfg *config.Config, opts Options) error {
	if cfg.TempTTLMinutes > 0 {
		clip.Sweep(time.Duration(cfg.TempTTLMinutes) * time.Minute)
	}

	filePath, err := resolveFile(opts)
	if err != nil {
		return err
	}

	windows := runtime.GOOS == "windows"
	command := terminal.JoinCommand(opts.App, AbsArgs(opts.Args), windows)

	cl := classify.New(cfg.EditorApps, cfg.ViewerApps, cfg.AlwaysPauseApps)
	pause, autoPause := pauseFor(cfg.PauseBehavior, cl, command, filePath)

	// type exits as soon as it has printed; piping through more keeps
	// long output readable without a pause.
	if classify.FirstWord(command) == "type" && !autoPause {
		command += " | more"
	}

	id := shortID()
	if opts.AlwaysOnTop {
		logger.Debug("always-on-top is not implemented", "id", id)
	}

	topts := terminal.Options{
		Command:   command,
		File:      filePath,
		Geometry:  cfg.GeometryFor(command),
		Pause:     pause,
		Title:     "rund_" + id,
		Preferred: cfg.Terminal,
		ConfigDir: configDir(cfg),
	}

	if opts.DryRun {
		fmt.Println(terminal.Describe(topts))
		return nil
	}

	var initialHash string
	if filePath != "" {
		initialHash, err = backup.HashFile(filePath)
		if err != nil {
			initialHash = ""
		}
	}

	logger.Info("launching", "id", id, "command", command, "file", filePath, "pause", pause)

	handle, err := terminal.Launch(topts)
	if err != nil {
		return err
	}
	if filePath == "" {
		return nil
	}

	backupDir := opts.BackupDir
	if backupDir == "" {
		backupDir = cfg.ResolveBackupDir()
	}

	bopts := backup.Options{
		BackupDir: backupDir,
		Compress:  cfg.CompressBackups,
		Grace:     waitGrace,
	}
	var wait backup.WaitFunc
	if handle.Waitable() {
		wait = handle.Wait
	} else {
		bopts.Timeout = time.Duration(cfg.WatchTimeoutSecs) * time.Second
		bopts.Settle = watchSettle
	}

	backupPath, changed, err := backup.Track(ctx, filePath, initialHash, wait, bopts)
	if err != nil {
		// The launch itself succeeded, a failed backup is not fatal.
		logger.Warn("backup failed", "id", id, "file", filePath, "error", err)
		return nil
	}
	if changed {
		fmt.Printf("Backup created: %s\n", backupPath)
	}
	return nil
}

// pauseFor combines the configured pause behavior with the classifier
// verdict. The verdict is returned too, auto-only decisions like the
// type pipe depend on it rather than on the override.
func pauseFor(behavior config.PauseBehavior, cl *classify.Classifier, command, file string) (pause, autoPause bool) {
	autoPause = cl.NeedsPause(command, file)
	switch behavior {
	case config.PauseAlways:
		return true, autoPause
	case config.PauseNever:
		return false, autoPause
	}
	return autoPause, autoPause
}

// resolveFile works out the file handed to the app. Clipboard capture
// without an explicit output file lands in a temp file.
func resolveFile(opts Options) (string, error) {
	if !opts.UseClipboard {
		return opts.OutputFile, nil
	}
	text, err := clip.Read()
	if err != nil {
		return "", err
	}
	if opts.OutputFile != "" {
		if err := clip.WriteFile(opts.OutputFile, text); err != nil {
			return "", err
		}
		return opts.OutputFile, nil
	}
	return clip.WriteTemp(text)
}

// AbsArgs replaces arguments naming existing files with absolute paths,
// so they stay valid whatever working directory the terminal ends up in.
func AbsArgs(args []string) []string {
	out := make([]string, len(args))
	for i, a := range args {
		out[i] = a
		if _, err := os.Stat(a); err != nil {
			continue
		}
		if abs, err := filepath.Abs(a); err == nil {
			out[i] = abs
		}
	}
	return out
}

func configDir(cfg *config.Config) string {
	if cfg.Path == "" {
		return ""
	}
	return filepath.Dir(cfg.Path)
}

func shortID() string {
	return uuid.NewString()[:8]
}
