// Package notify reports fatal errors to the user. Errors always go to
// stderr; a desktop dialog is added when stderr is not a terminal, so
// failures surface even for launches from a shortcut or file manager.
package notify

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

const dialogTitle = "rund - Error"

// Show prints the error and pops a dialog for windowless sessions.
func Show(msg string) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", msg)
	if term.IsTerminal(int(os.Stderr.Fd())) {
		return
	}
	showDialog(dialogTitle, msg)
}
