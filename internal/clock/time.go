package clock

import (
	"fmt"
	"time"
)

// Time is an immutable wall-clock snapshot taken once per redraw and
// handed to the renderer.
type Time struct {
	Hour   int // 0-23
	Minute int
	Second int
	Hour12 int // 1-12
	PM     bool
	Date   string // pre-formatted date line
}

// Now captures the local time, formatting the date line with the given Go
// reference layout.
func Now(dateFormat string) Time {
	return snapshot(time.Now(), dateFormat)
}

func snapshot(now time.Time, dateFormat string) Time {
	hour := now.Hour()
	hour12 := hour % 12
	if hour12 == 0 {
		hour12 = 12
	}
	return Time{
		Hour:   hour,
		Minute: now.Minute(),
		Second: now.Second(),
		Hour12: hour12,
		PM:     hour >= 12,
		Date:   now.Format(dateFormat),
	}
}

// FormatTime renders the main time string for the given hour format.
func (t Time) FormatTime(hourFormat int, showSeconds bool) string {
	h := t.Hour
	if hourFormat == 12 {
		h = t.Hour12
	}
	if showSeconds {
		return fmt.Sprintf("%02d:%02d:%02d", h, t.Minute, t.Second)
	}
	return fmt.Sprintf("%02d:%02d", h, t.Minute)
}

// Suffix returns " AM"/" PM" in 12-hour mode, empty otherwise.
func (t Time) Suffix(hourFormat int) string {
	if hourFormat != 12 {
		return ""
	}
	if t.PM {
		return " PM"
	}
	return " AM"
}

// ZoneTime formats the current time in the given IANA timezone for a
// sub-clock row. An unknown zone yields no value; the sub-clock is simply
// not drawn.
func ZoneTime(tz string, hourFormat int, showSeconds bool) (string, bool) {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return "", false
	}
	now := time.Now().In(loc)

	hour := now.Hour()
	h := hour
	suffix := ""
	if hourFormat == 12 {
		h = hour % 12
		if h == 0 {
			h = 12
		}
		if hour >= 12 {
			suffix = " PM"
		} else {
			suffix = " AM"
		}
	}
	if showSeconds {
		return fmt.Sprintf("%02d:%02d:%02d%s", h, now.Minute(), now.Second(), suffix), true
	}
	return fmt.Sprintf("%02d:%02d%s", h, now.Minute(), suffix), true
}
