package config

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/Mavwarf/appicon/internal/icon"
	"github.com/Mavwarf/appicon/internal/paths"
)

// Rendering modes.
const (
	ModeText = "text"
	ModeLogo = "logo"
)

// Defaults applied before a config file is decoded.
const (
	DefaultMode       = ModeText
	DefaultOutputDir  = "ios/Runner/Assets.xcassets/AppIcon.appiconset"
	DefaultLogo       = "assets/logo.png"
	DefaultFilter     = "lanczos"
	DefaultBackground = "#000000"
	DefaultForeground = "#ffffff"
)

// Config holds everything needed to pick and set up a renderer and to place
// its output. Values come from, in increasing priority: defaults, the config
// file, APPICON_* environment variables, command-line flags.
type Config struct {
	Mode       string   `json:"mode,omitempty" env:"APPICON_MODE"`
	OutputDir  string   `json:"output_dir,omitempty" env:"APPICON_OUTPUT_DIR"`
	Logo       string   `json:"logo,omitempty" env:"APPICON_LOGO"`
	Text       string   `json:"text,omitempty" env:"APPICON_TEXT"`
	Fonts      []string `json:"fonts,omitempty" env:"APPICON_FONTS" envSeparator:","`
	FontScale  float64  `json:"font_scale,omitempty" env:"APPICON_FONT_SCALE"`
	LogoScale  float64  `json:"logo_scale,omitempty" env:"APPICON_LOGO_SCALE"`
	Filter     string   `json:"filter,omitempty" env:"APPICON_FILTER"`
	Background string   `json:"background,omitempty" env:"APPICON_BACKGROUND"`
	Foreground string   `json:"foreground,omitempty" env:"APPICON_FOREGROUND"`
}

// Default returns the built-in configuration: white ">/" on black, written to
// the Flutter iOS app icon set.
func Default() Config {
	return Config{
		Mode:       DefaultMode,
		OutputDir:  DefaultOutputDir,
		Logo:       DefaultLogo,
		Text:       icon.DefaultText,
		FontScale:  icon.DefaultFontScale,
		LogoScale:  icon.DefaultLogoScale,
		Filter:     DefaultFilter,
		Background: DefaultBackground,
		Foreground: DefaultForeground,
	}
}

// UnmarshalJSON sets defaults then decodes the JSON structure.
// Go's json.Unmarshal merges into existing struct fields, so only
// values present in JSON override the defaults.
func (c *Config) UnmarshalJSON(data []byte) error {
	*c = Default()
	type Alias Config
	return json.Unmarshal(data, (*Alias)(c))
}

// Load reads the config file. It tries, in order:
//  1. explicitPath (if non-empty; a missing file is an error)
//  2. appicon-config.json next to the running binary
//  3. ~/.config/appicon/appicon-config.json
//
// When no file is found at 2 or 3 the defaults are returned.
func Load(explicitPath string) (Config, error) {
	if explicitPath != "" {
		return readConfig(explicitPath)
	}
	var candidates []string
	if exe, err := os.Executable(); err == nil {
		candidates = append(candidates, filepath.Join(filepath.Dir(exe), paths.ConfigFileName))
	}
	candidates = append(candidates, paths.UserConfigFile())
	return loadFirst(candidates)
}

func loadFirst(candidates []string) (Config, error) {
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return readConfig(p)
		}
	}
	return Default(), nil
}

func readConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from APPICON_* environment variables. Unset
// variables leave the current value alone.
func ApplyEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate checks that the configuration can produce a renderer.
func (c Config) Validate() error {
	switch c.Mode {
	case ModeText:
		if c.Text == "" {
			return fmt.Errorf("text mode requires non-empty text")
		}
	case ModeLogo:
		if c.Logo == "" {
			return fmt.Errorf("logo mode requires a logo path")
		}
	default:
		return fmt.Errorf("unknown mode %q (want %s or %s)", c.Mode, ModeText, ModeLogo)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output directory is required")
	}
	if c.FontScale <= 0 || c.FontScale > 1 {
		return fmt.Errorf("font_scale must be in (0, 1], got %v", c.FontScale)
	}
	if c.LogoScale <= 0 || c.LogoScale > 1 {
		return fmt.Errorf("logo_scale must be in (0, 1], got %v", c.LogoScale)
	}
	if _, err := icon.Filter(c.Filter); err != nil {
		return err
	}
	if _, err := ParseHexColor(c.Background); err != nil {
		return fmt.Errorf("background: %w", err)
	}
	if _, err := ParseHexColor(c.Foreground); err != nil {
		return fmt.Errorf("foreground: %w", err)
	}
	return nil
}

// ParseHexColor parses "#rgb", "#rrggbb" or "#rrggbbaa"; the leading '#' is
// optional.
func ParseHexColor(s string) (color.NRGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
