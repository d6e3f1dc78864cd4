package terminal

import (
	"os/exec"
	"runtime"
	"strings"
)

// Describe renders the launch that would happen, for dry runs.
func Describe(opts Options) string {
	switch runtime.GOOS {
	case "windows":
		if IsWindowsTerminal(opts.Preferred) {
			return "wt.exe " + joinArgs(wtArgs(opts))
		}
		return "cmd.exe " + cmdCommandLine(opts)
	case "darwin":
		return "osascript -e " + ShellQuote(appleScript(opts))
	default:
		emulators, err := Catalog(opts.ConfigDir)
		if err != nil {
			return "(" + err.Error() + ")"
		}
		ordered := orderedCatalog(emulators, opts.Preferred)
		for _, e := range ordered {
			if _, err := exec.LookPath(e.Name); err != nil {
				continue
			}
			return e.Name + " " + joinArgs(emulatorArgs(e, opts))
		}
		first := ordered[0]
		return first.Name + " " + joinArgs(emulatorArgs(first, opts)) + " (not installed)"
	}
}

func joinArgs(args []string) string {
	quoted := make([]string, len(args))
	for i, a := range args {
		quoted[i] = ShellQuote(a)
	}
	return strings.Join(quoted, " ")
}
