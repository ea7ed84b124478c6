package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault_Validates(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
	if cfg.Window.Anchor != "top right" || cfg.Window.MarginTop != 20 {
		t.Fatalf("unexpected window defaults: %+v", cfg.Window)
	}
}

func TestLoad_MissingFileWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glint", "config.yaml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Clock.Face != FaceDigital {
		t.Fatalf("expected default face, got %q", cfg.Clock.Face)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected a default file to be created: %v", err)
	}
	if !strings.Contains(string(data), "anchor: top right") {
		t.Fatalf("default file missing anchor line")
	}

	// The generated file parses back to the same values.
	again, err := Load(path)
	if err != nil {
		t.Fatalf("reload of generated file: %v", err)
	}
	if again.Window.MarginRight != cfg.Window.MarginRight || again.Clock.FontSize != cfg.Clock.FontSize {
		t.Fatalf("generated file disagrees with defaults")
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "window:\n  anchor: bottom left\n  margin_bottom: 42\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Window.Anchor != "bottom left" || cfg.Window.MarginBottom != 42 {
		t.Fatalf("file values not applied: %+v", cfg.Window)
	}
	if cfg.Clock.FontSize != 48 || cfg.Window.Layer != "top" {
		t.Fatalf("absent fields must keep defaults: %+v", cfg)
	}
}

func TestLoad_ParseErrorSurfaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("window: [not a mapping"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected a parse error")
	}
}

func TestValidate_Ranges(t *testing.T) {
	cfg := Default()
	cfg.Window.Layer = "sideways"
	if err := cfg.Validate(); err == nil {
		t.Fatalf("bad layer must fail validation")
	}

	cfg = Default()
	cfg.Clock.HourFormat = 13
	if err := cfg.Validate(); err == nil {
		t.Fatalf("bad hour format must fail validation")
	}

	cfg = Default()
	cfg.Clock.FontSize = 2
	cfg.Clock.Diameter = 5
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if cfg.Clock.FontSize != MinFontSize || cfg.Clock.Diameter != MinDiameter {
		t.Fatalf("sizes must clamp to minimums, got %v/%d", cfg.Clock.FontSize, cfg.Clock.Diameter)
	}

	cfg = Default()
	cfg.Timezones = []TimezoneEntry{{Label: "a"}, {Label: "b"}, {Label: "c"}}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if len(cfg.Timezones) != 2 {
		t.Fatalf("timezones must truncate to 2, got %d", len(cfg.Timezones))
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#EF4444")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if c != (Color{0xEF, 0x44, 0x44, 0xFF}) {
		t.Fatalf("bad color %v", c)
	}

	c, err = ParseColor("1A1A2ECC")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if c[3] != 0xCC {
		t.Fatalf("alpha not parsed: %v", c)
	}

	if _, err := ParseColor("12345"); err == nil {
		t.Fatalf("short color must fail")
	}
	if _, err := ParseColor("GGGGGG"); err == nil {
		t.Fatalf("non-hex color must fail")
	}
}
