package terminal

import (
	"fmt"
	"strings"
)

// IsWindowsTerminal reports whether the configured terminal name selects
// Windows Terminal rather than a classic cmd console.
func IsWindowsTerminal(preferred string) bool {
	switch preferred {
	case "wt", "wt.exe", "windows_terminal", "windowsterminal":
		return true
	}
	return false
}

// cmdCommandLine is the argument string handed to cmd.exe: set the
// window title, then run the command.
func cmdCommandLine(opts Options) string {
	return "/C title " + opts.Title + " & " + fullCommand(opts, true)
}

// wtArgs builds the Windows Terminal invocation. Position and size are
// omitted under auto placement, wt then applies its own defaults.
func wtArgs(opts Options) []string {
	var args []string
	if !opts.Geometry.AutoPosition {
		g := opts.Geometry
		args = append(args,
			"--pos", fmt.Sprintf("%d,%d", g.X, g.Y),
			"--size", fmt.Sprintf("%d,%d", g.Width/wtCellWidth, g.Height/wtCellHeight),
		)
	}
	return append(args, "--title", opts.Title, "cmd.exe", "/C", fullCommand(opts, true))
}

// appleScript builds the osascript program that opens a Terminal.app
// window, runs the command, and closes the window when it finishes.
// Double quotes in the command are escaped so they survive inside the
// AppleScript string literal.
func appleScript(opts Options) string {
	shellCmd := strings.ReplaceAll(opts.Command, `"`, `\"`)
	if opts.File != "" {
		shellCmd += ` \"` + opts.File + `\"`
	}
	if opts.Pause {
		shellCmd += pauseTailPosix
	}
	shellCmd += "; exit"

	var b strings.Builder
	b.WriteString("tell application \"Terminal\"\n")
	b.WriteString("\tactivate\n")
	if opts.Geometry.AutoPosition {
		fmt.Fprintf(&b, "\tdo script \"%s\"\n", shellCmd)
	} else {
		g := opts.Geometry
		fmt.Fprintf(&b, "\tset newWindow to do script \"%s\"\n", shellCmd)
		fmt.Fprintf(&b, "\tset bounds of front window to {%d, %d, %d, %d}\n",
			g.X, g.Y, g.X+g.Width, g.Y+g.Height)
	}
	b.WriteString("end tell")
	return b.String()
}
