package notify

import "os/exec"

// showDialog walks the common dialog tools and stops at the first one
// that works. A missing desktop leaves just the stderr line.
func showDialog(title, msg string) {
	attempts := [][]string{
		{"zenity", "--error", "--title=" + title, "--text=" + msg, "--width=400"},
		{"kdialog", "--error", msg, "--title", title},
		{"notify-send", "-u", "critical", title, msg},
	}
	for _, attempt := range attempts {
		if _, err := exec.LookPath(attempt[0]); err != nil {
			continue
		}
		if err := exec.Command(attempt[0], attempt[1:]...).Run(); err == nil {
			return
		}
	}
}
