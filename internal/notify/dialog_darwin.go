package notify

import (
	"fmt"
	"os/exec"
	"strings"
)

func showDialog(title, msg string) {
	esc := strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(msg)
	script := fmt.Sprintf(
		`display dialog "%s" with title "%s" buttons {"OK"} default button "OK" with icon stop`,
		esc, title)
	exec.Command("osascript", "-e", script).Run()
}
