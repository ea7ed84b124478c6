package render

import (
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/glintclock/glint/internal/config"
)

// Font rasterizes text by rendering the built-in bitmap face at its native
// size and scaling the coverage mask to the requested pixel height.
type Font struct {
	face       font.Face
	baseHeight float64
}

func NewFont() *Font {
	return &Font{
		face:       basicfont.Face7x13,
		baseHeight: float64(basicfont.Face7x13.Height),
	}
}

// Measure returns the width and height of text drawn at the given pixel
// height.
func (f *Font) Measure(text string, size float64) (float64, float64) {
	if text == "" || size <= 0 {
		return 0, 0
	}
	baseW := float64(font.MeasureString(f.face, text)) / 64
	scale := size / f.baseHeight
	return baseW * scale, size
}

// Draw renders text with (x, y) as the top-left corner of a box whose
// height is size.
func (f *Font) Draw(c *Canvas, text string, x, y, size float64, col config.Color) {
	if text == "" || size <= 0 {
		return
	}
	baseW := int(font.MeasureString(f.face, text) >> 6)
	if baseW <= 0 {
		return
	}
	baseH := int(f.baseHeight)
	ascent := f.face.Metrics().Ascent.Ceil()

	mask := image.NewAlpha(image.Rect(0, 0, baseW, baseH))
	d := font.Drawer{
		Dst:  mask,
		Src:  image.White,
		Face: f.face,
		Dot:  fixed.P(0, ascent),
	}
	d.DrawString(text)

	scale := size / f.baseHeight
	tw := int(math.Ceil(float64(baseW) * scale))
	th := int(math.Ceil(size))
	if tw <= 0 || th <= 0 {
		return
	}
	scaled := image.NewAlpha(image.Rect(0, 0, tw, th))
	draw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), mask, mask.Bounds(), draw.Over, nil)

	ox := int(math.Round(x))
	oy := int(math.Round(y))
	for py := 0; py < th; py++ {
		for px := 0; px < tw; px++ {
			cov := uint32(scaled.AlphaAt(px, py).A)
			if cov == 0 {
				continue
			}
			c.blendPixel(ox+px, oy+py, col, cov*uint32(col[3])/255)
		}
	}
}
