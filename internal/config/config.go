package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/llehouerou/cadence/internal/ui/canvas"
	"github.com/llehouerou/cadence/internal/ui/widget"
)

const appName = "cadence"

const (
	defaultFPS           = 30
	defaultButtonDelayMS = 500
	maxFPS               = 120
)

type Config struct {
	Icons         string `koanf:"icons"`           // "nerd", "unicode", or "none"
	IconsDir      string `koanf:"icons_dir"`       // play.png, pause.png, back.png, forward.png overrides
	ButtonDelayMS int    `koanf:"button_delay_ms"` // minimum time between two triggers of a held button
	FPS           int    `koanf:"fps"`

	SessionFile string `koanf:"session_file"` // defaults to $XDG_STATE_HOME/cadence/session.toml
	CacheFile   string `koanf:"cache_file"`   // defaults to $XDG_CACHE_HOME/cadence/library.db
	LogFile     string `koanf:"log_file"`     // empty disables logging

	Notifications bool `koanf:"notifications"` // desktop notification on track change
	MediaControl  bool `koanf:"media_control"` // MPRIS over D-Bus, Linux only

	Theme Theme `koanf:"theme"`
}

// Theme holds "#rrggbb" overrides for the interface colours. Empty values
// keep the built-in colour.
type Theme struct {
	Active          string `koanf:"active"`   // focused widgets, borders
	Hover           string `koanf:"hover"`    // hovered widgets
	Inactive        string `koanf:"inactive"` // idle widgets, progress fill
	Text            string `koanf:"text"`
	Prompt          string `koanf:"prompt"` // text box placeholder
	Trough          string `koanf:"trough"` // slider line, progress background
	Background      string `koanf:"background"`
	SetupBackground string `koanf:"setup_background"`
	SetupText       string `koanf:"setup_text"`
}

// Colours is the resolved theme.
type Colours struct {
	Palette         widget.Palette
	Background      colorful.Color
	SetupBackground colorful.Color
	SetupText       colorful.Color
}

// Load reads the user config file then ./config.toml, the latter winning.
// Missing files are skipped.
func Load() (*Config, error) {
	return load(getConfigPaths(), false)
}

// LoadFile reads only path, which must exist.
func LoadFile(path string) (*Config, error) {
	return load([]string{expandPath(path)}, true)
}

func load(paths []string, required bool) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			if required || !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("config %s: %w", path, err)
			}
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
	}

	cfg := &Config{
		FPS:           defaultFPS,
		ButtonDelayMS: defaultButtonDelayMS,
		MediaControl:  true,
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.FPS <= 0 || cfg.FPS > maxFPS {
		cfg.FPS = defaultFPS
	}
	if cfg.ButtonDelayMS < 0 {
		cfg.ButtonDelayMS = defaultButtonDelayMS
	}

	cfg.IconsDir = expandPath(cfg.IconsDir)
	cfg.SessionFile = expandPath(cfg.SessionFile)
	cfg.CacheFile = expandPath(cfg.CacheFile)
	cfg.LogFile = expandPath(cfg.LogFile)

	if _, err := cfg.Theme.Colours(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. $XDG_CONFIG_HOME/cadence/config.toml
	paths = append(paths, filepath.Join(xdg.ConfigHome, appName, "config.toml"))

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// FrameInterval returns the time between two frame ticks.
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}

// ButtonDelay returns the debounce of held buttons.
func (c *Config) ButtonDelay() time.Duration {
	return time.Duration(c.ButtonDelayMS) * time.Millisecond
}

// CachePath returns the metadata cache location.
func (c *Config) CachePath() (string, error) {
	if c.CacheFile != "" {
		return c.CacheFile, nil
	}
	return xdg.CacheFile(filepath.Join(appName, "library.db"))
}

// DefaultColours returns the built-in theme.
func DefaultColours() Colours {
	return Colours{
		Palette:         widget.DefaultPalette(),
		Background:      canvas.RGB(230, 230, 230),
		SetupBackground: canvas.RGB(20, 100, 20),
		SetupText:       canvas.RGB(240, 240, 240),
	}
}

// Colours resolves the theme on top of DefaultColours.
func (t Theme) Colours() (Colours, error) {
	c := DefaultColours()
	overrides := []struct {
		key string
		hex string
		dst *colorful.Color
	}{
		{"active", t.Active, &c.Palette.Active},
		{"hover", t.Hover, &c.Palette.Hover},
		{"inactive", t.Inactive, &c.Palette.Inactive},
		{"text", t.Text, &c.Palette.Text},
		{"prompt", t.Prompt, &c.Palette.Prompt},
		{"trough", t.Trough, &c.Palette.Trough},
		{"background", t.Background, &c.Background},
		{"setup_background", t.SetupBackground, &c.SetupBackground},
		{"setup_text", t.SetupText, &c.SetupText},
	}
	for _, o := range overrides {
		if o.hex == "" {
			continue
		}
		col, err := canvas.ParseHex(o.hex)
		if err != nil {
			return c, fmt.Errorf("theme.%s: %w", o.key, err)
		}
		*o.dst = col
	}
	return c, nil
}
