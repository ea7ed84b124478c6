package render

import (
	"fmt"

	"github.com/glintclock/glint/internal/clock"
	"github.com/glintclock/glint/internal/config"
)

var (
	batteryGreen  = config.Color{0x4A, 0xDE, 0x80, 0xFF}
	batteryYellow = config.Color{0xFB, 0xBF, 0x24, 0xFF}
	batteryRed    = config.Color{0xEF, 0x44, 0x44, 0xFF}
)

func renderBattery(c *Canvas, f *Font, s *State, battery *clock.Battery) {
	w := float64(c.Width())
	cfg := s.Config

	base := subclockBase(cfg, s.Compact)
	iconH := base * 0.3
	if iconH < 12 {
		iconH = 12
	}
	iconW := iconH * 1.8
	capW := iconW * 0.08
	capH := iconH * 0.35
	border := iconH * 0.08
	if border < 1.5 {
		border = 1.5
	}
	margin := base * 0.2

	x := w - iconW - capW - margin
	y := margin

	fill := batteryRed
	if battery.Percent > 50 {
		fill = batteryGreen
	} else if battery.Percent > 20 {
		fill = batteryYellow
	}

	outline := withAlpha(cfg.Theme.FgColor, 0xCC)

	c.DrawLine(x, y, x+iconW, y, outline, border)
	c.DrawLine(x, y+iconH, x+iconW, y+iconH, outline, border)
	c.DrawLine(x, y, x, y+iconH, outline, border)
	c.DrawLine(x+iconW, y, x+iconW, y+iconH, outline, border)

	// Terminal nub on the right.
	c.FillRect(x+iconW, y+(iconH-capH)/2, capW, capH, outline)

	innerMargin := border + 1
	innerW := iconW - innerMargin*2
	innerH := iconH - innerMargin*2
	fillW := innerW * float64(battery.Percent) / 100
	if fillW > 0 {
		c.FillRect(x+innerMargin, y+innerMargin, fillW, innerH, fill)
	}

	if battery.Charging {
		bolt := config.Color{0xFF, 0xFF, 0xFF, 0xFF}
		bx := x + iconW/2
		by := y + iconH/2
		bh := iconH * 0.35
		bw := iconW * 0.12
		stroke := border * 0.8
		if stroke < 1 {
			stroke = 1
		}
		c.DrawLine(bx+bw*0.3, by-bh, bx-bw*0.5, by+bh*0.1, bolt, stroke)
		c.DrawLine(bx-bw*0.5, by+bh*0.1, bx+bw*0.5, by-bh*0.1, bolt, stroke)
		c.DrawLine(bx+bw*0.5, by-bh*0.1, bx-bw*0.3, by+bh, bolt, stroke)
	}

	if cfg.Battery.ShowPercentage {
		text := fmt.Sprintf("%d%%", battery.Percent)
		fontSize := iconH * 0.75
		tw, _ := f.Measure(text, fontSize)
		f.Draw(c, text, x-tw-margin*0.4, y+(iconH-fontSize)/2, fontSize, cfg.Theme.FgColor)
	}
}
