package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestDir_XDGConfigHome(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		t.Skip("XDG layout only applies on Linux and friends")
	}
	tmp := t.TempDir()
	old := os.Getenv("XDG_CONFIG_HOME")
	os.Setenv("XDG_CONFIG_HOME", tmp)
	defer os.Setenv("XDG_CONFIG_HOME", old)

	want := filepath.Join(tmp, "rund")
	if got := Dir(); got != want {
		t.Errorf("Dir() = %q, want %q", got, want)
	}
}

func TestDir_HomeFallback(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		t.Skip("XDG layout only applies on Linux and friends")
	}
	old := os.Getenv("XDG_CONFIG_HOME")
	os.Setenv("XDG_CONFIG_HOME", "")
	defer os.Setenv("XDG_CONFIG_HOME", old)

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	want := filepath.Join(home, ".config", "rund")
	if got := Dir(); got != want {
		t.Errorf("Dir() = %q, want %q", got, want)
	}
}

func TestPath_NamesConfigToml(t *testing.T) {
	if got := filepath.Base(Path()); got != "config.toml" {
		t.Errorf("Path() basename = %q, want config.toml", got)
	}
}

func TestDirWritable(t *testing.T) {
	if !dirWritable(t.TempDir()) {
		t.Error("temp dir should be writable")
	}

	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("read-only probe is unreliable here")
	}
	ro := t.TempDir()
	os.Chmod(ro, 0o555)
	defer os.Chmod(ro, 0o755)
	if dirWritable(ro) {
		t.Error("read-only dir should not be writable")
	}
}
