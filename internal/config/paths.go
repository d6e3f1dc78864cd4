package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the per-user configuration directory for this platform.
func Dir() string {
	switch runtime.GOOS {
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "rund")
		}
	case "darwin":
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, "Library", "Application Support", "rund")
		}
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "rund")
		}
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, ".config", "rund")
		}
	}
	return "."
}

// Path returns the active config file path. A config.toml next to the
// executable wins, and a writable executable directory claims the portable
// location even before the file exists. Otherwise the per-user directory
// is used, created on demand.
func Path() string {
	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		portable := filepath.Join(exeDir, "config.toml")
		if _, err := os.Stat(portable); err == nil {
			return portable
		}
		if dirWritable(exeDir) {
			return portable
		}
	}

	dir := Dir()
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "config.toml")
}

func dirWritable(dir string) bool {
	probe := filepath.Join(dir, ".rund_write_test")
	f, err := os.Create(probe)
	if err != nil {
		return false
	}
	f.Close()
	os.Remove(probe)
	return true
}
