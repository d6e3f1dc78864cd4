package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
)

// Geometry is the size and placement of a terminal window.
type Geometry struct {
	Width        int  `toml:"width"`
	Height       int  `toml:"height"`
	X            int  `toml:"x"`
	Y            int  `toml:"y"`
	AutoPosition bool `toml:"auto_position"`
}

// PauseBehavior controls whether the window pauses before closing.
type PauseBehavior string

const (
	PauseAuto   PauseBehavior = "auto"
	PauseAlways PauseBehavior = "always"
	PauseNever  PauseBehavior = "never"
)

// UnmarshalText maps config values onto the known behaviors. Unrecognized
// values mean never.
func (p *PauseBehavior) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "auto":
		*p = PauseAuto
	case "always":
		*p = PauseAlways
	default:
		*p = PauseNever
	}
	return nil
}

// AppList is a comma separated list of command names.
type AppList []string

func (l *AppList) UnmarshalText(text []byte) error {
	var apps []string
	for _, part := range strings.Split(string(text), ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		apps = append(apps, part)
	}
	*l = apps
	return nil
}

func (l AppList) MarshalText() ([]byte, error) {
	return []byte(strings.Join(l, ", ")), nil
}

// Config is the resolved configuration. It is immutable after load and
// passed explicitly to everything that needs it.
type Config struct {
	Geometry
	Terminal         string        `toml:"terminal"`
	PauseBehavior    PauseBehavior `toml:"pause_behavior"`
	DefaultApp       string        `toml:"default_app"`
	BackupDir        string        `toml:"backup_dir"`
	EditorApps       AppList       `toml:"editor_apps"`
	ViewerApps       AppList       `toml:"viewer_apps"`
	AlwaysPauseApps  AppList       `toml:"always_pause_apps"`
	CompressBackups  bool          `toml:"compress_backups"`
	TempTTLMinutes   int           `toml:"temp_ttl_minutes"`
	WatchTimeoutSecs int           `toml:"watch_timeout_secs"`
	LogLevel         string        `toml:"log_level"`
	LogFile          string        `toml:"log_file"`

	// Per-app geometry overrides, keyed by lowercased section name.
	Apps map[string]Geometry `toml:"-"`

	// Path of the file this config was loaded from, empty when running on
	// built-in defaults.
	Path string `toml:"-"`
}

// Default returns the built-in configuration.
func Default() *Config {
	viewers := AppList{"bat", "less", "more", "cat"}
	if runtime.GOOS == "windows" {
		viewers = append(viewers, "type")
	}
	return &Config{
		Geometry:         Geometry{Width: 800, Height: 600, X: 100, Y: 100},
		Terminal:         "cmd",
		PauseBehavior:    PauseAuto,
		BackupDir:        defaultBackupDir(),
		EditorApps:       AppList{"vim", "nvim", "nano", "emacs", "micro", "helix", "hx", "code", "subl"},
		ViewerApps:       viewers,
		AlwaysPauseApps:  AppList{"python", "python3", "node", "ruby", "perl", "php"},
		TempTTLMinutes:   24 * 60,
		WatchTimeoutSecs: 300,
		LogLevel:         "warn",
		Apps:             map[string]Geometry{},
	}
}

// Load reads and parses the config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.Path = path
	return cfg, nil
}

// LoadOrInit loads the active config file, writing the commented default
// template first when none exists yet.
func LoadOrInit() (*Config, error) {
	path := Path()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.WriteFile(path, defaultTemplate(), 0644); err != nil {
			return nil, fmt.Errorf("failed to write default config: %w", err)
		}
	}
	return Load(path)
}

// Parse decodes TOML content. The [terminal] table holds the global
// settings; every other table is a per-app geometry override seeded from
// the globals. Unknown keys are ignored.
func Parse(content string) (*Config, error) {
	var sections map[string]toml.Primitive
	md, err := toml.Decode(content, &sections)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if prim, ok := sections["terminal"]; ok {
		if err := md.PrimitiveDecode(prim, cfg); err != nil {
			return nil, fmt.Errorf("section [terminal]: %w", err)
		}
	}
	cfg.normalize()

	for name, prim := range sections {
		if name == "terminal" || md.Type(name) != "Hash" {
			continue
		}
		var sec geometrySection
		if err := md.PrimitiveDecode(prim, &sec); err != nil {
			return nil, fmt.Errorf("section [%s]: %w", name, err)
		}
		geom := cfg.Geometry
		sec.apply(&geom)
		cfg.Apps[strings.ToLower(name)] = geom
	}

	return cfg, nil
}

func (c *Config) normalize() {
	c.Terminal = strings.ToLower(strings.TrimSpace(c.Terminal))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.BackupDir == "" {
		c.BackupDir = defaultBackupDir()
	}
}

// GeometryFor returns the window geometry for an app command, preferring a
// per-app section over the [terminal] globals. The lookup key is the first
// word of the command, lowercased.
func (c *Config) GeometryFor(app string) Geometry {
	if g, ok := c.Apps[firstWord(app)]; ok {
		return g
	}
	return c.Geometry
}

// ResolveBackupDir returns the backup directory, anchoring a relative
// value at the config file's own directory.
func (c *Config) ResolveBackupDir() string {
	if filepath.IsAbs(c.BackupDir) || c.Path == "" {
		return c.BackupDir
	}
	return filepath.Join(filepath.Dir(c.Path), c.BackupDir)
}

// geometrySection is a partial geometry; nil fields inherit the globals.
type geometrySection struct {
	Width        *int  `toml:"width"`
	Height       *int  `toml:"height"`
	X            *int  `toml:"x"`
	Y            *int  `toml:"y"`
	AutoPosition *bool `toml:"auto_position"`
}

func (s *geometrySection) apply(g *Geometry) {
	if s.Width != nil {
		g.Width = *s.Width
	}
	if s.Height != nil {
		g.Height = *s.Height
	}
	if s.X != nil {
		g.X = *s.X
	}
	if s.Y != nil {
		g.Y = *s.Y
	}
	if s.AutoPosition != nil {
		g.AutoPosition = *s.AutoPosition
	}
}

func firstWord(s string) string {
	fields := strings.Fields(strings.ToLower(s))
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func defaultBackupDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "backups"
	}
	return filepath.Join(filepath.Dir(exe), "backups")
}
