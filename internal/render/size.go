package render

import (
	"math"
	"time"

	"github.com/glintclock/glint/internal/config"
)

// ComputeSize returns the window dimensions the current configuration and
// compact state require. The width is measured against the widest possible
// time string so the window never resizes as digits tick over.
func ComputeSize(cfg *config.Config, f *Font, compact bool) (uint32, uint32) {
	if cfg.Clock.Face == config.FaceAnalogue {
		return computeAnalogueSize(cfg, f, compact)
	}
	return computeDigitalSize(cfg, f, compact)
}

func computeDigitalSize(cfg *config.Config, f *Font, compact bool) (uint32, uint32) {
	timeSize := cfg.Clock.FontSize
	if compact {
		timeSize *= 0.7
	}
	padX := timeSize * 0.4
	padY := timeSize * 0.25

	timeW, _ := f.Measure(widestTimeString(cfg), timeSize)

	var dateSize, dateW, dateGap float64
	if cfg.Clock.ShowDate && !compact {
		dateSize = timeSize * 0.25
		dateGap = timeSize * 0.15
		sample := time.Now().Format(cfg.Clock.DateFormat)
		dateW, _ = f.Measure(sample, dateSize)
	}

	var batteryH, batteryGap float64
	if cfg.Battery.Enabled {
		batteryH = timeSize * 0.35
		batteryGap = padY * 0.5
	}

	subW, subH := computeSubclockSize(cfg, f, timeSize)

	width := math.Max(timeW, math.Max(dateW, subW)) + padX*2
	height := padY + batteryH + batteryGap + timeSize + dateGap + dateSize + subH + padY

	return uint32(math.Ceil(width)), uint32(math.Ceil(height))
}

func computeAnalogueSize(cfg *config.Config, f *Font, compact bool) (uint32, uint32) {
	diameter := float64(cfg.Clock.Diameter)
	effective := diameter
	if compact {
		effective *= 0.75
	}
	const pad = 12.0

	subW, subH := computeSubclockSize(cfg, f, diameter*0.25)

	width := math.Max(effective, subW) + pad*2
	height := effective + subH + pad*2

	return uint32(math.Ceil(width)), uint32(math.Ceil(height))
}

func computeSubclockSize(cfg *config.Config, f *Font, base float64) (float64, float64) {
	if len(cfg.Timezones) == 0 {
		return 0, 0
	}
	tzCount := len(cfg.Timezones)
	if tzCount > 2 {
		tzCount = 2
	}

	sz := subclockSizingFromBase(base)

	timeW, _ := f.Measure(widestTimeString(cfg), sz.timeSize)
	var maxLabelW float64
	for _, tz := range cfg.Timezones[:tzCount] {
		lw, _ := f.Measure(tz.Label, sz.labelSize)
		if lw > maxLabelW {
			maxLabelW = lw
		}
	}
	colW := math.Max(timeW, maxLabelW) + base*0.2
	return colW * float64(tzCount), sz.areaH
}

func widestTimeString(cfg *config.Config) string {
	s := "00:00"
	if cfg.Clock.ShowSeconds {
		s = "00:00:00"
	}
	if cfg.Clock.HourFormat == 12 {
		s += " PM"
	}
	return s
}
