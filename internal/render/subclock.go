package render

import "github.com/glintclock/glint/internal/clock"

// renderSubclocks draws the timezone strip along the bottom edge, one
// column per configured zone, at most two.
func renderSubclocks(c *Canvas, f *Font, s *State) {
	w := float64(c.Width())
	h := float64(c.Height())
	cfg := s.Config
	theme := &cfg.Theme

	timezones := cfg.Timezones
	if len(timezones) > 2 {
		timezones = timezones[:2]
	}
	if len(timezones) == 0 {
		return
	}

	sz := subclockSizingFromBase(subclockBase(cfg, s.Compact))
	tzYStart := h - sz.areaH

	c.DrawLine(w*0.05, tzYStart, w*0.95, tzYStart, withAlpha(theme.FgColor, 0x66), 1.0)

	colW := w / float64(len(timezones))
	contentH := sz.labelSize + sz.timeSize
	yOffset := tzYStart + (sz.areaH-contentH)/2

	for i, tz := range timezones {
		colCx := colW*float64(i) + colW/2

		timeStr, ok := clock.ZoneTime(tz.TZ, cfg.Clock.HourFormat, cfg.Clock.ShowSeconds)
		if !ok {
			timeStr = "??:??"
		}

		lw, _ := f.Measure(tz.Label, sz.labelSize)
		f.Draw(c, tz.Label, colCx-lw/2, yOffset, sz.labelSize, withAlpha(theme.FgColor, 0xAA))

		tw, _ := f.Measure(timeStr, sz.timeSize)
		f.Draw(c, timeStr, colCx-tw/2, yOffset+sz.labelSize*1.1, sz.timeSize, theme.FgColor)
	}
}
