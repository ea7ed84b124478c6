package render

func renderDigital(c *Canvas, f *Font, s *State) {
	w := float64(c.Width())
	h := float64(c.Height())
	cfg := s.Config
	theme := &cfg.Theme

	c.Clear(theme.BgColor)

	timeSize := cfg.Clock.FontSize
	if s.Compact {
		timeSize *= 0.7
	}
	padY := timeSize * 0.25

	fullTime := s.Time.FormatTime(cfg.Clock.HourFormat, cfg.Clock.ShowSeconds) +
		s.Time.Suffix(cfg.Clock.HourFormat)

	tw, _ := f.Measure(fullTime, timeSize)
	timeX := (w - tw) / 2

	var dateSize, dateGap float64
	if cfg.Clock.ShowDate && !s.Compact {
		dateSize = timeSize * 0.25
		dateGap = timeSize * 0.15
	}

	var batteryH, batteryGap float64
	if cfg.Battery.Enabled {
		batteryH = timeSize * 0.35
		batteryGap = padY * 0.5
	}

	// The sub-clock strip claims the bottom of the window; the clock block
	// centres in what remains.
	clockAreaH := h - subclockAreaHeight(cfg, s.Compact)
	contentH := batteryH + batteryGap + timeSize + dateGap + dateSize
	timeY := (clockAreaH-contentH)/2 + batteryH + batteryGap

	f.Draw(c, fullTime, timeX, timeY, timeSize, theme.FgColor)

	if cfg.Clock.ShowDate && !s.Compact {
		dw, _ := f.Measure(s.Time.Date, dateSize)
		f.Draw(c, s.Time.Date, (w-dw)/2, timeY+timeSize+dateGap, dateSize, theme.FgColor)
	}
}
