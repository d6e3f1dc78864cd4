package terminal

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed terminals.yaml
var defaultCatalog []byte

// Emulator is one catalog entry for a Linux terminal emulator.
type Emulator struct {
	// Name is the binary looked up on PATH, and the name the preferred
	// terminal from config is matched against.
	Name string `yaml:"name"`
	// Args is the invocation template. {cmd}, {cols}, {rows}, {x} and
	// {y} are replaced per launch.
	Args []string `yaml:"args"`
	// AutoArgs replaces Args when the window is auto positioned. Empty
	// means Args is used either way.
	AutoArgs []string `yaml:"auto_args"`
	// Blocks marks emulators whose process lives as long as the window,
	// which makes the launch waitable.
	Blocks bool `yaml:"blocks"`
}

type catalogFile struct {
	Terminals []Emulator `yaml:"terminals"`
}

// Catalog returns the emulator catalog. A terminals.yaml next to the
// config file replaces the built-in one.
func Catalog(configDir string) ([]Emulator, error) {
	data := defaultCatalog
	if configDir != "" {
		if b, err := os.ReadFile(filepath.Join(configDir, "terminals.yaml")); err == nil {
			data = b
		}
	}
	var cf catalogFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("failed to parse terminal catalog: %w", err)
	}
	if len(cf.Terminals) == 0 {
		return nil, fmt.Errorf("terminal catalog is empty")
	}
	return cf.Terminals, nil
}

// orderedCatalog moves the preferred emulator to the front, leaving the
// rest in catalog order.
func orderedCatalog(emulators []Emulator, preferred string) []Emulator {
	if preferred == "" {
		return emulators
	}
	for i, e := range emulators {
		if strings.EqualFold(e.Name, preferred) {
			if i == 0 {
				return emulators
			}
			out := make([]Emulator, 0, len(emulators))
			out = append(out, e)
			out = append(out, emulators[:i]...)
			return append(out, emulators[i+1:]...)
		}
	}
	return emulators
}

// emulatorArgs expands one catalog entry's template for a launch.
func emulatorArgs(e Emulator, opts Options) []string {
	tmpl := e.Args
	if opts.Geometry.AutoPosition && len(e.AutoArgs) > 0 {
		tmpl = e.AutoArgs
	}
	g := opts.Geometry
	r := strings.NewReplacer(
		"{cmd}", fullCommand(opts, false),
		"{cols}", strconv.Itoa(g.Width/conCellWidth),
		"{rows}", strconv.Itoa(g.Height/conCellHeight),
		"{x}", strconv.Itoa(g.X),
		"{y}", strconv.Itoa(g.Y),
	)
	args := make([]string, len(tmpl))
	for i, a := range tmpl {
		args[i] = r.Replace(a)
	}
	return args
}

// noTerminalMessage names the catalog emulators in the error shown when
// none could be started.
func noTerminalMessage(emulators []Emulator) string {
	names := make([]string, len(emulators))
	for i, e := range emulators {
		names[i] = e.Name
	}
	list := names[0]
	if len(names) > 1 {
		list = strings.Join(names[:len(names)-1], ", ") + ", or " + names[len(names)-1]
	}
	return "no supported terminal found. Please install: " + list
}
