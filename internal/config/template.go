package config

import (
	"embed"
	"runtime"
)

//go:embed defaults/*.toml
var templatesFS embed.FS

// defaultTemplate is the commented config written on first run.
func defaultTemplate() []byte {
	name := "defaults/config_unix.toml"
	if runtime.GOOS == "windows" {
		name = "defaults/config_windows.toml"
	}
	data, err := templatesFS.ReadFile(name)
	if err != nil {
		panic(err)
	}
	return data
}
