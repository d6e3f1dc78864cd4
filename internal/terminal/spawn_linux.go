package terminal

import (
	"errors"
	"fmt"
	"os/exec"
	"syscall"

	"rund/internal/logger"
)

// Launch opens a terminal window running the composed command. Catalog
// emulators are tried in order, preferred one first; the first one that
// is installed and starts wins. Windows of blocking emulators can be
// awaited through the returned handle.
func Launch(opts Options) (*Handle, error) {
	emulators, err := Catalog(opts.ConfigDir)
	if err != nil {
		return nil, err
	}

	var lastErr error
	for _, e := range orderedCatalog(emulators, opts.Preferred) {
		if _, err := exec.LookPath(e.Name); err != nil {
			continue
		}
		cmd := exec.Command(e.Name, emulatorArgs(e, opts)...)
		// New session, so the window outlives this process.
		cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
		if err := cmd.Start(); err != nil {
			logger.Warn("terminal failed to start", "terminal", e.Name, "error", err)
			lastErr = err
			continue
		}
		logger.Debug("terminal started", "terminal", e.Name, "pid", cmd.Process.Pid)
		if e.Blocks {
			return &Handle{cmd: cmd}, nil
		}
		_ = cmd.Process.Release()
		return &Handle{}, nil
	}

	if lastErr != nil {
		return nil, fmt.Errorf("%s: %w", noTerminalMessage(emulators), lastErr)
	}
	return nil, errors.New(noTerminalMessage(emulators))
}
