package config

import (
	"encoding/json"
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Mavwarf/appicon/internal/icon"
)

func TestUnmarshalDefaults(t *testing.T) {
	var cfg Config
	if err := json.Unmarshal([]byte(`{}`), &cfg); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if cfg.Mode != ModeText {
		t.Errorf("Mode = %q, want %q", cfg.Mode, ModeText)
	}
	if cfg.OutputDir != DefaultOutputDir {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, DefaultOutputDir)
	}
	if cfg.Text != ">/" {
		t.Errorf("Text = %q, want %q", cfg.Text, ">/")
	}
	if cfg.FontScale != 0.4 {
		t.Errorf("FontScale = %v, want 0.4", cfg.FontScale)
	}
	if cfg.LogoScale != 0.95 {
		t.Errorf("LogoScale = %v, want 0.95", cfg.LogoScale)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestUnmarshalOverrides(t *testing.T) {
	data := []byte(`{
		"mode": "logo",
		"output_dir": "out",
		"logo": "brand/logo.png",
		"filter": "catmullrom",
		"fonts": ["JetBrainsMono-Regular.ttf"],
		"logo_scale": 0.8
	}`)

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if cfg.Mode != ModeLogo || cfg.OutputDir != "out" || cfg.Logo != "brand/logo.png" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Filter != "catmullrom" {
		t.Errorf("Filter = %q, want catmullrom", cfg.Filter)
	}
	if len(cfg.Fonts) != 1 || cfg.Fonts[0] != "JetBrainsMono-Regular.ttf" {
		t.Errorf("Fonts = %v", cfg.Fonts)
	}
	if cfg.LogoScale != 0.8 {
		t.Errorf("LogoScale = %v, want 0.8", cfg.LogoScale)
	}
	// Untouched fields keep their defaults.
	if cfg.Text != icon.DefaultText || cfg.Background != DefaultBackground {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadExplicitMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("expected error for missing explicit config")
	}
	if !strings.Contains(err.Error(), "reading config") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadExplicit(t *testing.T) {
	p := filepath.Join(t.TempDir(), "appicon-config.json")
	if err := os.WriteFile(p, []byte(`{"text": "OK"}`), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Text != "OK" {
		t.Errorf("Text = %q, want OK", cfg.Text)
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "appicon-config.json")
	if err := os.WriteFile(p, []byte(`{"text": `), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(p)
	if err == nil || !strings.Contains(err.Error(), "parsing config") {
		t.Errorf("err = %v, want parsing error", err)
	}
}

func TestLoadFirstFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := loadFirst([]string{filepath.Join(dir, "a.json"), filepath.Join(dir, "b.json")})
	if err != nil {
		t.Fatalf("loadFirst: %v", err)
	}
	if cfg.Mode != DefaultMode || cfg.OutputDir != DefaultOutputDir {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadFirstPicksFirstExisting(t *testing.T) {
	dir := t.TempDir()
	second := filepath.Join(dir, "b.json")
	if err := os.WriteFile(second, []byte(`{"mode": "logo"}`), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := loadFirst([]string{filepath.Join(dir, "a.json"), second})
	if err != nil {
		t.Fatalf("loadFirst: %v", err)
	}
	if cfg.Mode != ModeLogo {
		t.Errorf("Mode = %q, want logo", cfg.Mode)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("APPICON_MODE", "logo")
	t.Setenv("APPICON_LOGO", "/tmp/logo.png")
	t.Setenv("APPICON_FONTS", "a.ttf,b.ttf")
	t.Setenv("APPICON_LOGO_SCALE", "0.5")

	cfg := Default()
	if err := ApplyEnv(&cfg); err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}
	if cfg.Mode != ModeLogo || cfg.Logo != "/tmp/logo.png" {
		t.Errorf("cfg = %+v", cfg)
	}
	if len(cfg.Fonts) != 2 || cfg.Fonts[1] != "b.ttf" {
		t.Errorf("Fonts = %v", cfg.Fonts)
	}
	if cfg.LogoScale != 0.5 {
		t.Errorf("LogoScale = %v, want 0.5", cfg.LogoScale)
	}
	// Unset variables keep existing values.
	if cfg.OutputDir != DefaultOutputDir || cfg.Text != icon.DefaultText {
		t.Errorf("unset fields changed: %+v", cfg)
	}
}

func TestApplyEnvError(t *testing.T) {
	t.Setenv("APPICON_FONT_SCALE", "not-a-number")
	cfg := Default()
	err := ApplyEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Errorf("expected parse env prefix, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"unknown mode", func(c *Config) { c.Mode = "svg" }, "unknown mode"},
		{"empty text", func(c *Config) { c.Text = "" }, "non-empty text"},
		{"logo without path", func(c *Config) { c.Mode, c.Logo = ModeLogo, "" }, "logo path"},
		{"empty output", func(c *Config) { c.OutputDir = "" }, "output directory"},
		{"font scale zero", func(c *Config) { c.FontScale = 0 }, "font_scale"},
		{"logo scale too big", func(c *Config) { c.LogoScale = 1.5 }, "logo_scale"},
		{"bad filter", func(c *Config) { c.Filter = "nearest" }, "unknown filter"},
		{"bad background", func(c *Config) { c.Background = "black" }, "background"},
		{"bad foreground", func(c *Config) { c.Foreground = "#12345" }, "foreground"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not contain %q", err, tt.want)
			}
		})
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#000000", color.NRGBA{0, 0, 0, 255}},
		{"#ffffff", color.NRGBA{255, 255, 255, 255}},
		{"00ffff", color.NRGBA{0, 255, 255, 255}},
		{"#f0a", color.NRGBA{255, 0, 170, 255}},
		{"#11223380", color.NRGBA{0x11, 0x22, 0x33, 0x80}},
	}
	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		if err != nil {
			t.Errorf("ParseHexColor(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	for _, bad := range []string{"", "#", "#12", "#gggggg", "white"} {
		if _, err := ParseHexColor(bad); err == nil {
			t.Errorf("ParseHexColor(%q): expected error", bad)
		}
	}
}

func TestRendererText(t *testing.T) {
	cfg := Default()
	cfg.Fonts = []string{filepath.Join(t.TempDir(), "missing.ttf")}
	r, err := cfg.Renderer()
	if err != nil {
		t.Fatalf("Renderer: %v", err)
	}
	if r.Name() != ModeText {
		t.Errorf("Name() = %q, want text", r.Name())
	}
	img, err := r.Render(40)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 40 {
		t.Errorf("width = %d, want 40", img.Bounds().Dx())
	}
}

func TestRendererLogoMissing(t *testing.T) {
	cfg := Default()
	cfg.Mode = ModeLogo
	cfg.Logo = filepath.Join(t.TempDir(), "logo.png")
	_, err := cfg.Renderer()
	if !errors.Is(err, icon.ErrLogoNotFound) {
		t.Fatalf("err = %v, want ErrLogoNotFound", err)
	}
}
