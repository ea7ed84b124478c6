// Package render draws the clock faces into a software framebuffer.
package render

import (
	"github.com/glintclock/glint/internal/clock"
	"github.com/glintclock/glint/internal/config"
)

// State is everything one frame depends on.
type State struct {
	Config  *config.Config
	Time    clock.Time
	Compact bool
	Battery *clock.Battery
}

// Render draws a full frame for the active face.
func Render(c *Canvas, f *Font, s *State) {
	switch s.Config.Clock.Face {
	case config.FaceAnalogue:
		renderAnalogue(c, f, s)
	default:
		renderDigital(c, f, s)
	}

	if s.Config.Battery.Enabled && s.Battery != nil {
		renderBattery(c, f, s, s.Battery)
	}
	if len(s.Config.Timezones) > 0 {
		renderSubclocks(c, f, s)
	}

	c.ApplyOpacity(s.Config.Window.Opacity)
}

// subclockSizing holds the derived text sizes for the sub-clock strip. The
// base is the compact-adjusted font size for the digital face and a quarter
// of the diameter for the analogue face.
type subclockSizing struct {
	labelSize float64
	timeSize  float64
	rowH      float64
	sepGap    float64
	areaH     float64
}

func subclockSizingFromBase(base float64) subclockSizing {
	padY := base * 0.25
	labelSize := base * 0.33
	if labelSize < 11 {
		labelSize = 11
	}
	timeSize := labelSize * 1.5
	if timeSize < 16 {
		timeSize = 16
	}
	rowH := labelSize + timeSize + labelSize*0.1
	sepGap := padY * 0.5
	return subclockSizing{
		labelSize: labelSize,
		timeSize:  timeSize,
		rowH:      rowH,
		sepGap:    sepGap,
		areaH:     sepGap + rowH + sepGap,
	}
}

// subclockBase returns the sizing base for the active face.
func subclockBase(cfg *config.Config, compact bool) float64 {
	if cfg.Clock.Face == config.FaceAnalogue {
		return float64(cfg.Clock.Diameter) * 0.25
	}
	if compact {
		return cfg.Clock.FontSize * 0.7
	}
	return cfg.Clock.FontSize
}

// subclockAreaHeight is zero when no timezones are configured.
func subclockAreaHeight(cfg *config.Config, compact bool) float64 {
	if len(cfg.Timezones) == 0 {
		return 0
	}
	return subclockSizingFromBase(subclockBase(cfg, compact)).areaH
}

func withAlpha(c config.Color, a uint8) config.Color {
	return config.Color{c[0], c[1], c[2], a}
}
