package terminal

import "strings"

// ShellQuote returns s quoted for safe use in a POSIX shell command line.
func ShellQuote(s string) string {
	if s == "" {
		return "''"
	}
	if !strings.ContainsAny(s, " \t\n'\"\\$&;|*?<>`()[]{}") {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'"'"'`) + "'"
}

// CmdQuote returns s quoted for a cmd.exe command line. cmd.exe has no
// escape for an embedded double quote, so those are dropped.
func CmdQuote(s string) string {
	if s == "" {
		return `""`
	}
	if !strings.ContainsAny(s, " \t&|<>^()\"") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, "") + `"`
}

// JoinCommand builds the app command line from the app invocation and
// extra arguments, quoting each argument for the target shell. The app
// string itself is taken verbatim so multi-word invocations like
// "python -i" keep working.
func JoinCommand(app string, args []string, windows bool) string {
	if len(args) == 0 {
		return app
	}
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, app)
	for _, a := range args {
		if windows {
			parts = append(parts, CmdQuote(a))
		} else {
			parts = append(parts, ShellQuote(a))
		}
	}
	return strings.Join(parts, " ")
}
