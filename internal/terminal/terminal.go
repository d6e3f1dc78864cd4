// Package terminal composes and spawns detached terminal windows running
// a single command: a fresh cmd.exe console or Windows Terminal on
// Windows, Terminal.app via osascript on macOS, and the first installed
// emulator from a catalog on Linux.
package terminal

import (
	"os/exec"

	"rund/internal/config"
)

// Approximate pixel size of one console cell, used to convert pixel
// geometry into columns and rows.
const (
	conCellWidth  = 8
	conCellHeight = 16
	wtCellWidth   = 9
	wtCellHeight  = 19
)

const (
	pauseTailWindows = " & pause"
	pauseTailPosix   = "; read -p 'Press Enter to exit...'"
)

// Options describes one terminal launch.
type Options struct {
	// Command is the command line to run inside the window, app plus
	// already-quoted arguments.
	Command string
	// File is an optional target file appended to the command in double
	// quotes.
	File string
	// Geometry is the window size and placement. AutoPosition leaves
	// placement to the platform.
	Geometry config.Geometry
	// Pause keeps the window open for a keypress after the command exits.
	Pause bool
	// Title names the console window where the platform supports it.
	Title string
	// Preferred is the terminal choice from config: "cmd" or "wt" on
	// Windows, an emulator name tried first on Linux.
	Preferred string
	// ConfigDir is where a terminals.yaml catalog override may live.
	ConfigDir string
}

// Handle tracks a spawned terminal window.
type Handle struct {
	cmd *exec.Cmd
}

// Waitable reports whether closing of the window can be awaited.
func (h *Handle) Waitable() bool {
	return h != nil && h.cmd != nil
}

// Wait blocks until the spawned terminal process exits. Fire-and-forget
// launches return immediately.
func (h *Handle) Wait() error {
	if !h.Waitable() {
		return nil
	}
	return h.cmd.Wait()
}

// fullCommand is the in-window command line: the app command, the
// optional quoted file, and the pause tail.
func fullCommand(opts Options, windows bool) string {
	cmd := opts.Command
	if opts.File != "" {
		cmd += ` "` + opts.File + `"`
	}
	if opts.Pause {
		if windows {
			cmd += pauseTailWindows
		} else {
			cmd += pauseTailPosix
		}
	}
	return cmd
}
