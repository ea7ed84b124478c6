package render

import (
	"testing"

	"github.com/glintclock/glint/internal/clock"
	"github.com/glintclock/glint/internal/config"
)

func TestComputeSizeStableAcrossTimes(t *testing.T) {
	cfg := config.Default()
	f := NewFont()

	w1, h1 := ComputeSize(cfg, f, false)
	w2, h2 := ComputeSize(cfg, f, false)
	if w1 != w2 || h1 != h2 {
		t.Errorf("size not stable: %dx%d vs %dx%d", w1, h1, w2, h2)
	}
	if w1 == 0 || h1 == 0 {
		t.Fatalf("degenerate size %dx%d", w1, h1)
	}
}

func TestComputeSizeCompactShrinks(t *testing.T) {
	cfg := config.Default()
	f := NewFont()

	w, h := ComputeSize(cfg, f, false)
	cw, ch := ComputeSize(cfg, f, true)
	if cw >= w || ch >= h {
		t.Errorf("compact %dx%d not smaller than full %dx%d", cw, ch, w, h)
	}
}

func TestComputeSizeFontScales(t *testing.T) {
	cfg := config.Default()
	f := NewFont()

	w1, h1 := ComputeSize(cfg, f, false)
	cfg.Clock.FontSize *= 2
	w2, h2 := ComputeSize(cfg, f, false)
	if w2 <= w1 || h2 <= h1 {
		t.Errorf("doubled font did not grow window: %dx%d vs %dx%d", w2, h2, w1, h1)
	}
}

func TestComputeSizeAnalogueTracksDiameter(t *testing.T) {
	cfg := config.Default()
	cfg.Clock.Face = config.FaceAnalogue
	f := NewFont()

	w, h := ComputeSize(cfg, f, false)
	want := uint32(cfg.Clock.Diameter + 24)
	if w != want || h != want {
		t.Errorf("got %dx%d, want %dx%d", w, h, want, want)
	}
}

func TestComputeSizeTimezonesAddStrip(t *testing.T) {
	cfg := config.Default()
	f := NewFont()

	_, h1 := ComputeSize(cfg, f, false)
	cfg.Timezones = []config.TimezoneEntry{{Label: "UTC", TZ: "UTC"}}
	_, h2 := ComputeSize(cfg, f, false)
	if h2 <= h1 {
		t.Errorf("timezone strip did not grow height: %d vs %d", h2, h1)
	}
}

func TestRenderDigitalDrawsPixels(t *testing.T) {
	cfg := config.Default()
	f := NewFont()
	w, h := ComputeSize(cfg, f, false)
	c := NewCanvas(w, h)

	Render(c, f, &State{
		Config: cfg,
		Time:   clock.Time{Hour: 13, Minute: 37, Second: 42, Hour12: 1, PM: true, Date: "Friday, 29 August 2025"},
	})

	// The foreground must differ from the background somewhere.
	bg := cfg.Theme.BgColor
	c2 := NewCanvas(w, h)
	c2.Clear(bg)
	c2.ApplyOpacity(cfg.Window.Opacity)
	same := true
	a := c.ARGB8888()
	b := c2.ARGB8888()
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("rendered frame is indistinguishable from a cleared canvas")
	}
}

func TestRenderAnalogueDrawsPixels(t *testing.T) {
	cfg := config.Default()
	cfg.Clock.Face = config.FaceAnalogue
	cfg.Theme.BgColor = config.Color{0, 0, 0, 0}
	f := NewFont()
	w, h := ComputeSize(cfg, f, false)
	c := NewCanvas(w, h)

	Render(c, f, &State{
		Config: cfg,
		Time:   clock.Time{Hour: 10, Minute: 10, Second: 30, Hour12: 10},
	})

	// On a transparent background, any opaque pixel in the top half comes
	// from the dial outline or ticks.
	found := false
	img := c.ARGB8888()
	stride := int(w) * 4
	for y := 0; y < int(h)/2 && !found; y++ {
		for x := 0; x < int(w); x++ {
			if img[y*stride+x*4+3] > 0 {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("no dial pixels drawn")
	}
}

func TestApplyOpacity(t *testing.T) {
	c := NewCanvas(4, 4)
	c.Clear(config.Color{0xFF, 0xFF, 0xFF, 0xFF})
	c.ApplyOpacity(0.5)
	px := c.ARGB8888()
	if px[3] > 0x80 || px[3] < 0x7E {
		t.Errorf("alpha after 0.5 opacity: %#x", px[3])
	}
}

func TestARGB8888SwapsChannels(t *testing.T) {
	c := NewCanvas(1, 1)
	c.Clear(config.Color{0x10, 0x20, 0x30, 0xFF})
	px := c.ARGB8888()
	if px[0] != 0x30 || px[1] != 0x20 || px[2] != 0x10 || px[3] != 0xFF {
		t.Errorf("unexpected byte order: % x", px)
	}
}

func TestFontMeasureMonotonic(t *testing.T) {
	f := NewFont()
	w1, _ := f.Measure("00:00", 24)
	w2, _ := f.Measure("00:00:00", 24)
	if w2 <= w1 {
		t.Errorf("longer text not wider: %v vs %v", w2, w1)
	}
	w3, _ := f.Measure("00:00", 48)
	if w3 <= w1 {
		t.Errorf("larger size not wider: %v vs %v", w3, w1)
	}
}
