package terminal

import (
	"strings"
	"testing"

	"rund/internal/config"
)

func testGeometry() config.Geometry {
	return config.Geometry{Width: 800, Height: 600, X: 100, Y: 100}
}

func TestCmdCommandLine_WithFileAndPause(t *testing.T) {
	opts := Options{
		Command:  "nvim",
		File:     `C:\notes.txt`,
		Pause:    true,
		Title:    "rund_ab12",
		Geometry: testGeometry(),
	}
	got := cmdCommandLine(opts)
	want := `/C title rund_ab12 & nvim "C:\notes.txt" & pause`
	if got != want {
		t.Errorf("cmdCommandLine = %q, want %q", got, want)
	}
}

func TestCmdCommandLine_NoPause(t *testing.T) {
	opts := Options{Command: "bat readme.md", Title: "rund_x", Geometry: testGeometry()}
	got := cmdCommandLine(opts)
	want := "/C title rund_x & bat readme.md"
	if got != want {
		t.Errorf("cmdCommandLine = %q, want %q", got, want)
	}
}

func TestWtArgs_Positioned(t *testing.T) {
	opts := Options{Command: "bat", Pause: true, Title: "rund_x", Geometry: testGeometry()}
	args := wtArgs(opts)

	// 800x600 pixels at 9x19 per cell.
	want := []string{"--pos", "100,100", "--size", "88,31", "--title", "rund_x", "cmd.exe", "/C", "bat & pause"}
	if len(args) != len(want) {
		t.Fatalf("wtArgs = %v, want %v", args, want)
	}
	for i := range want {
		if args[i] != want[i] {
			t.Errorf("wtArgs[%d] = %q, want %q", i, args[i], want[i])
		}
	}
}

func TestWtArgs_AutoPositionOmitsGeometry(t *testing.T) {
	g := testGeometry()
	g.AutoPosition = true
	args := wtArgs(Options{Command: "bat", Title: "rund_x", Geometry: g})

	if args[0] != "--title" {
		t.Errorf("args[0] = %q, want --title", args[0])
	}
	for _, a := range args {
		if a == "--pos" || a == "--size" {
			t.Errorf("auto-positioned wtArgs still contain %q", a)
		}
	}
}

func TestAppleScript_Bounds(t *testing.T) {
	opts := Options{Command: "bat", File: "/tmp/x.txt", Geometry: testGeometry()}
	script := appleScript(opts)

	if !strings.Contains(script, `do script "bat \"/tmp/x.txt\"; exit"`) {
		t.Errorf("script missing quoted command: %q", script)
	}
	if !strings.Contains(script, "set bounds of front window to {100, 100, 900, 700}") {
		t.Errorf("script missing bounds: %q", script)
	}
}

func TestAppleScript_AutoPositionOmitsBounds(t *testing.T) {
	g := testGeometry()
	g.AutoPosition = true
	script := appleScript(Options{Command: "bat", Geometry: g})

	if strings.Contains(script, "set bounds") {
		t.Errorf("auto-positioned script still sets bounds: %q", script)
	}
}

func TestAppleScript_EscapesCommandQuotes(t *testing.T) {
	script := appleScript(Options{Command: `echo "hi"`, Geometry: testGeometry()})
	if !strings.Contains(script, `echo \"hi\"`) {
		t.Errorf("quotes not escaped: %q", script)
	}
}

func TestAppleScript_PauseTail(t *testing.T) {
	script := appleScript(Options{Command: "bat", Pause: true, Geometry: testGeometry()})
	if !strings.Contains(script, "; read -p 'Press Enter to exit...'; exit") {
		t.Errorf("pause tail missing: %q", script)
	}
}

func TestIsWindowsTerminal(t *testing.T) {
	for _, name := range []string{"wt", "wt.exe", "windows_terminal", "windowsterminal"} {
		if !IsWindowsTerminal(name) {
			t.Errorf("IsWindowsTerminal(%q) = false, want true", name)
		}
	}
	for _, name := range []string{"cmd", "alacritty", ""} {
		if IsWindowsTerminal(name) {
			t.Errorf("IsWindowsTerminal(%q) = true, want false", name)
		}
	}
}

func TestFullCommand_PauseTails(t *testing.T) {
	opts := Options{Command: "bat", File: "/tmp/a.txt", Pause: true}

	if got, want := fullCommand(opts, false), `bat "/tmp/a.txt"; read -p 'Press Enter to exit...'`; got != want {
		t.Errorf("posix fullCommand = %q, want %q", got, want)
	}
	if got, want := fullCommand(opts, true), `bat "/tmp/a.txt" & pause`; got != want {
		t.Errorf("windows fullCommand = %q, want %q", got, want)
	}
}
