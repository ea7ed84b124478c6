package render

import "math"

// Hand geometry as fractions of the face radius.
const (
	hourHandLength   = 0.50
	minuteHandLength = 0.75
	secondHandLength = 0.85
	hourHandWidth    = 0.06
	minuteHandWidth  = 0.04
	secondHandWidth  = 0.02
)

func renderAnalogue(c *Canvas, f *Font, s *State) {
	w := float64(c.Width())
	h := float64(c.Height())
	cfg := s.Config
	theme := &cfg.Theme

	c.Clear(theme.BgColor)

	diameter := float64(cfg.Clock.Diameter)
	effective := diameter
	handScale := 1.0
	if s.Compact {
		effective *= 0.75
		handScale = 0.8
	}
	radius := effective / 2

	clockAreaH := h - subclockAreaHeight(cfg, s.Compact)
	cx := w / 2
	cy := clockAreaH / 2

	// Face outline and ticks.
	c.DrawCircle(cx, cy, radius, theme.TickColor, false, 2.0)
	for i := 0; i < 60; i++ {
		isHour := i%5 == 0
		angle := (float64(i)*6 - 90) * math.Pi / 180
		inner := radius * 0.92
		tickWidth := 1.0
		if isHour {
			inner = radius * 0.85
			tickWidth = 2.5
		}
		outer := radius * 0.98
		c.DrawLine(
			cx+inner*math.Cos(angle), cy+inner*math.Sin(angle),
			cx+outer*math.Cos(angle), cy+outer*math.Sin(angle),
			theme.TickColor, tickWidth)
	}

	// Hands sweep continuously rather than jumping per unit.
	sec := float64(s.Time.Second)
	min := float64(s.Time.Minute) + sec/60
	hr := float64(s.Time.Hour%12) + min/60

	drawHand(c, cx, cy, hr*30, radius*hourHandLength*handScale, radius*hourHandWidth, theme.HourHandColor)
	drawHand(c, cx, cy, min*6, radius*minuteHandLength*handScale, radius*minuteHandWidth, theme.MinuteHandColor)
	drawHand(c, cx, cy, sec*6, radius*secondHandLength*handScale, radius*secondHandWidth, theme.SecondHandColor)

	// Centre boss.
	c.DrawCircle(cx, cy, radius*0.05, theme.FgColor, true, 0)
}

func drawHand(c *Canvas, cx, cy, angleDeg, length, width float64, col [4]uint8) {
	angle := (angleDeg - 90) * math.Pi / 180
	c.DrawLine(cx, cy, cx+length*math.Cos(angle), cy+length*math.Sin(angle), col, width)
}
