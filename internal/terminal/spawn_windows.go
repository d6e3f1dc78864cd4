package terminal

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"syscall"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"

	"rund/internal/config"
	"rund/internal/logger"
)

// Launch opens a console window for the composed command, through
// Windows Terminal or a classic cmd console depending on the configured
// preference. Only the cmd console can be awaited.
func Launch(opts Options) (*Handle, error) {
	if IsWindowsTerminal(opts.Preferred) {
		return launchWT(opts)
	}
	return launchCmd(opts)
}

func launchCmd(opts Options) (*Handle, error) {
	if opts.Title != "" {
		if err := seedConsoleRegistry(opts.Title, opts.Geometry); err != nil {
			return nil, err
		}
	}

	systemRoot := os.Getenv("SystemRoot")
	if systemRoot == "" {
		systemRoot = `C:\Windows`
	}
	cmdPath := filepath.Join(systemRoot, "System32", "cmd.exe")

	cmd := exec.Command(cmdPath)
	// cmd.exe must see the /C argument as one raw line, standard argv
	// quoting would mangle the embedded quotes and ampersands.
	cmd.SysProcAttr = &syscall.SysProcAttr{
		CmdLine:       fmt.Sprintf(`"%s" %s`, cmdPath, cmdCommandLine(opts)),
		CreationFlags: windows.CREATE_NEW_CONSOLE,
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to launch console: %w", err)
	}
	logger.Debug("console started", "title", opts.Title, "pid", cmd.Process.Pid)
	return &Handle{cmd: cmd}, nil
}

func launchWT(opts Options) (*Handle, error) {
	cmd := exec.Command("wt.exe", wtArgs(opts)...)
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to launch Windows Terminal: %w", err)
	}
	logger.Debug("windows terminal started", "pid", cmd.Process.Pid)
	_ = cmd.Process.Release()
	return &Handle{}, nil
}

// seedConsoleRegistry stores the window geometry under HKCU\Console for
// the console title about to be created, which is how a cmd window can
// be sized and placed before it exists. Auto-positioned launches clear
// any leftover values instead.
func seedConsoleRegistry(title string, g config.Geometry) error {
	key, _, err := registry.CreateKey(registry.CURRENT_USER, `Console\`+title, registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("failed to open console registry key: %w", err)
	}
	defer key.Close()

	if g.AutoPosition {
		_ = key.DeleteValue("WindowPosition")
		_ = key.DeleteValue("WindowSize")
		return nil
	}

	pos := uint32(g.Y)<<16 | uint32(g.X)&0xFFFF
	if err := key.SetDWordValue("WindowPosition", pos); err != nil {
		return fmt.Errorf("failed to set console position: %w", err)
	}
	size := uint32(g.Height/conCellHeight)<<16 | uint32(g.Width/conCellWidth)&0xFFFF
	if err := key.SetDWordValue("WindowSize", size); err != nil {
		return fmt.Errorf("failed to set console size: %w", err)
	}
	return nil
}
