package render

import (
	"image"
	"math"

	"github.com/glintclock/glint/internal/config"
)

// Canvas is the software framebuffer one frame is drawn into. Pixels are
// kept premultiplied so they can go straight to an ARGB8888 wl_shm buffer.
type Canvas struct {
	img *image.RGBA
}

func NewCanvas(width, height uint32) *Canvas {
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, int(width), int(height)))}
}

func (c *Canvas) Width() int  { return c.img.Rect.Dx() }
func (c *Canvas) Height() int { return c.img.Rect.Dy() }

// Clear fills the whole canvas with a straight-alpha color.
func (c *Canvas) Clear(col config.Color) {
	a := uint32(col[3])
	r := uint8(uint32(col[0]) * a / 255)
	g := uint8(uint32(col[1]) * a / 255)
	b := uint8(uint32(col[2]) * a / 255)
	pix := c.img.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i] = r
		pix[i+1] = g
		pix[i+2] = b
		pix[i+3] = col[3]
	}
}

// FillRect fills an axis-aligned rectangle, clipped to the canvas.
func (c *Canvas) FillRect(x, y, w, h float64, col config.Color) {
	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))
	x1 := int(math.Ceil(x + w))
	y1 := int(math.Ceil(y + h))
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			c.blendPixel(px, py, col, uint32(col[3]))
		}
	}
}

// DrawLine strokes a line segment with the given width, antialiased with a
// one pixel soft edge.
func (c *Canvas) DrawLine(x1, y1, x2, y2 float64, col config.Color, width float64) {
	halfW := width / 2
	x0 := int(math.Floor(math.Min(x1, x2) - halfW - 1))
	y0 := int(math.Floor(math.Min(y1, y2) - halfW - 1))
	xe := int(math.Ceil(math.Max(x1, x2) + halfW + 1))
	ye := int(math.Ceil(math.Max(y1, y2) + halfW + 1))
	for py := y0; py <= ye; py++ {
		for px := x0; px <= xe; px++ {
			d := segmentDistance(float64(px)+0.5, float64(py)+0.5, x1, y1, x2, y2)
			cov := halfW + 0.5 - d
			if cov <= 0 {
				continue
			}
			if cov > 1 {
				cov = 1
			}
			c.blendPixel(px, py, col, uint32(cov*float64(col[3])))
		}
	}
}

// DrawCircle fills a disc or strokes a ring centred on (cx, cy).
func (c *Canvas) DrawCircle(cx, cy, r float64, col config.Color, fill bool, strokeWidth float64) {
	reach := r
	if !fill {
		reach += strokeWidth / 2
	}
	x0 := int(math.Floor(cx - reach - 1))
	y0 := int(math.Floor(cy - reach - 1))
	xe := int(math.Ceil(cx + reach + 1))
	ye := int(math.Ceil(cy + reach + 1))
	for py := y0; py <= ye; py++ {
		for px := x0; px <= xe; px++ {
			dx := float64(px) + 0.5 - cx
			dy := float64(py) + 0.5 - cy
			d := math.Sqrt(dx*dx + dy*dy)
			var cov float64
			if fill {
				cov = r + 0.5 - d
			} else {
				cov = strokeWidth/2 + 0.5 - math.Abs(d-r)
			}
			if cov <= 0 {
				continue
			}
			if cov > 1 {
				cov = 1
			}
			c.blendPixel(px, py, col, uint32(cov*float64(col[3])))
		}
	}
}

// ApplyOpacity multiplies the whole frame by a 0..1 factor.
func (c *Canvas) ApplyOpacity(opacity float64) {
	if opacity >= 1.0 {
		return
	}
	if opacity < 0 {
		opacity = 0
	}
	m := uint32(opacity * 255)
	pix := c.img.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i] = uint8(uint32(pix[i]) * m / 255)
		pix[i+1] = uint8(uint32(pix[i+1]) * m / 255)
		pix[i+2] = uint8(uint32(pix[i+2]) * m / 255)
		pix[i+3] = uint8(uint32(pix[i+3]) * m / 255)
	}
}

// ARGB8888 returns the frame as little-endian ARGB8888 bytes (BGRA order),
// the format wl_shm buffers expect.
func (c *Canvas) ARGB8888() []byte {
	pix := c.img.Pix
	out := make([]byte, len(pix))
	for i := 0; i < len(pix); i += 4 {
		out[i] = pix[i+2]
		out[i+1] = pix[i+1]
		out[i+2] = pix[i]
		out[i+3] = pix[i+3]
	}
	return out
}

// blendPixel composites a straight-alpha color over the premultiplied
// canvas pixel. alpha is the effective source alpha after coverage.
func (c *Canvas) blendPixel(x, y int, col config.Color, alpha uint32) {
	if x < 0 || y < 0 || x >= c.Width() || y >= c.Height() || alpha == 0 {
		return
	}
	i := c.img.PixOffset(x, y)
	pix := c.img.Pix
	inv := 255 - alpha
	pix[i] = uint8((uint32(col[0])*alpha + uint32(pix[i])*inv) / 255)
	pix[i+1] = uint8((uint32(col[1])*alpha + uint32(pix[i+1])*inv) / 255)
	pix[i+2] = uint8((uint32(col[2])*alpha + uint32(pix[i+2])*inv) / 255)
	pix[i+3] = uint8(alpha + uint32(pix[i+3])*inv/255)
}

func segmentDistance(px, py, x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	lenSq := dx*dx + dy*dy
	t := 0.0
	if lenSq > 0 {
		t = ((px-x1)*dx + (py-y1)*dy) / lenSq
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}
	}
	cx := x1 + t*dx
	cy := y1 + t*dy
	return math.Hypot(px-cx, py-cy)
}
