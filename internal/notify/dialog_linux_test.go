package notify

import (
	"os"
	"testing"
)

func TestShowDialog_NoToolsInstalled(t *testing.T) {
	oldPath := os.Getenv("PATH")
	os.Setenv("PATH", t.TempDir())
	defer os.Setenv("PATH", oldPath)

	// Must return quietly when no dialog tool exists.
	showDialog("rund - Error", "something broke")
}
