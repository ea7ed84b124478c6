package config

import (
	"fmt"
	"strconv"
	"strings"
)

// FaceMode selects which clock face is rendered.
type FaceMode string

const (
	FaceDigital  FaceMode = "digital"
	FaceAnalogue FaceMode = "analogue"
)

// Toggle flips between the two faces.
func (f FaceMode) Toggle() FaceMode {
	if f == FaceAnalogue {
		return FaceDigital
	}
	return FaceAnalogue
}

// Minimum content sizes; IPC size commands clamp to these.
const (
	MinFontSize = 10.0
	MinDiameter = 40
)

// Config is the full glint configuration file.
type Config struct {
	Window    WindowConfig    `yaml:"window"`
	Clock     ClockConfig     `yaml:"clock"`
	Theme     ThemeConfig     `yaml:"theme"`
	Battery   BatteryConfig   `yaml:"battery"`
	Timezones []TimezoneEntry `yaml:"timezones,omitempty"`
}

// WindowConfig holds the surface placement fields the daemon owns.
type WindowConfig struct {
	// Layer: background | bottom | top | overlay
	Layer string `yaml:"layer"`
	// Anchor edges, space-separated: "top right"
	Anchor       string  `yaml:"anchor"`
	MarginTop    int     `yaml:"margin_top"`
	MarginRight  int     `yaml:"margin_right"`
	MarginBottom int     `yaml:"margin_bottom"`
	MarginLeft   int     `yaml:"margin_left"`
	Opacity      float64 `yaml:"opacity"`
	Compact      bool    `yaml:"compact"`
	// Output name to appear on; empty picks the compositor default.
	Output string `yaml:"output,omitempty"`
}

// ClockConfig holds the clock-face settings.
type ClockConfig struct {
	Face        FaceMode `yaml:"face"`
	HourFormat  int      `yaml:"hour_format"` // 12 or 24
	ShowSeconds bool     `yaml:"show_seconds"`
	ShowDate    bool     `yaml:"show_date"`
	// DateFormat is a Go reference-time layout for the date line.
	DateFormat string  `yaml:"date_format"`
	FontSize   float64 `yaml:"font_size"` // digital face, px
	Diameter   int     `yaml:"diameter"`  // analogue face, px
}

// ThemeConfig holds colors, RRGGBB or RRGGBBAA hex.
type ThemeConfig struct {
	FgColor         Color `yaml:"fg_color"`
	BgColor         Color `yaml:"bg_color"`
	HourHandColor   Color `yaml:"hour_hand_color"`
	MinuteHandColor Color `yaml:"minute_hand_color"`
	SecondHandColor Color `yaml:"second_hand_color"`
	TickColor       Color `yaml:"tick_color"`
}

// BatteryConfig controls the battery indicator row.
type BatteryConfig struct {
	Enabled        bool `yaml:"enabled"`
	ShowPercentage bool `yaml:"show_percentage"`
}

// TimezoneEntry is one sub-clock row: a label and an IANA zone name.
type TimezoneEntry struct {
	Label string `yaml:"label"`
	TZ    string `yaml:"tz"`
}

// Color is an RGBA color parsed from hex at the config boundary.
type Color [4]uint8

// ParseColor parses "RRGGBB" or "RRGGBBAA", with an optional # prefix.
func ParseColor(s string) (Color, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 && len(s) != 8 {
		return Color{}, fmt.Errorf("color must be RRGGBB or RRGGBBAA, got %q", s)
	}
	var c Color
	for i := 0; i < len(s)/2; i++ {
		v, err := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
		}
		c[i] = uint8(v)
	}
	if len(s) == 6 {
		c[3] = 0xFF
	}
	return c, nil
}

// String formats the color back to RRGGBBAA hex.
func (c Color) String() string {
	return fmt.Sprintf("%02X%02X%02X%02X", c[0], c[1], c[2], c[3])
}

// UnmarshalYAML parses the hex string form.
func (c *Color) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalYAML writes the hex string form.
func (c Color) MarshalYAML() (interface{}, error) {
	return c.String(), nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Layer:       "top",
			Anchor:      "top right",
			MarginTop:   20,
			MarginRight: 20,
			Opacity:     1.0,
		},
		Clock: ClockConfig{
			Face:        FaceDigital,
			HourFormat:  12,
			ShowSeconds: true,
			ShowDate:    true,
			DateFormat:  "Monday, 02 January 2006",
			FontSize:    48,
			Diameter:    180,
		},
		Theme: ThemeConfig{
			FgColor:         Color{0xFF, 0xFF, 0xFF, 0xFF},
			BgColor:         Color{0x1A, 0x1A, 0x2E, 0xCC},
			HourHandColor:   Color{0xFF, 0xFF, 0xFF, 0xFF},
			MinuteHandColor: Color{0xFF, 0xFF, 0xFF, 0xFF},
			SecondHandColor: Color{0xEF, 0x44, 0x44, 0xFF},
			TickColor:       Color{0xCC, 0xCC, 0xCC, 0xFF},
		},
		Battery: BatteryConfig{
			Enabled:        false,
			ShowPercentage: true,
		},
	}
}

// Validate checks field ranges and normalizes what can be normalized.
func (c *Config) Validate() error {
	switch c.Window.Layer {
	case "background", "bottom", "top", "overlay":
	default:
		return fmt.Errorf("window.layer must be background, bottom, top or overlay, got %q", c.Window.Layer)
	}

	if c.Window.Opacity < 0 || c.Window.Opacity > 1 {
		return fmt.Errorf("window.opacity must be within 0.0-1.0, got %v", c.Window.Opacity)
	}

	switch c.Clock.Face {
	case FaceDigital, FaceAnalogue:
	default:
		return fmt.Errorf("clock.face must be digital or analogue, got %q", c.Clock.Face)
	}

	if c.Clock.HourFormat != 12 && c.Clock.HourFormat != 24 {
		return fmt.Errorf("clock.hour_format must be 12 or 24, got %d", c.Clock.HourFormat)
	}

	if c.Clock.FontSize < MinFontSize {
		c.Clock.FontSize = MinFontSize
	}
	if c.Clock.Diameter < MinDiameter {
		c.Clock.Diameter = MinDiameter
	}

	// At most two sub-clocks fit the layout.
	if len(c.Timezones) > 2 {
		c.Timezones = c.Timezones[:2]
	}

	return nil
}
