package terminal

import (
	"fmt"
	"os/exec"
	"syscall"

	"rund/internal/logger"
)

// Launch asks Terminal.app to open a window running the composed
// command. osascript returns once the script is delivered, so the
// window can never be awaited.
func Launch(opts Options) (*Handle, error) {
	cmd := exec.Command("osascript", "-e", appleScript(opts))
	// New session, so the window outlives this process.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to run osascript: %w", err)
	}
	logger.Debug("osascript started", "pid", cmd.Process.Pid)
	_ = cmd.Process.Release()
	return &Handle{}, nil
}
