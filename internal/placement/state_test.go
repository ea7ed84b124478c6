package placement

import (
	"testing"

	"github.com/glintclock/glint/internal/topology"
)

func testOutput() *topology.Output {
	return &topology.Output{ID: 1, Name: "DP-1", Width: 1920, Height: 1080}
}

func TestClamp_AxisFitInvariant(t *testing.T) {
	s := &State{
		Anchor:  ParseAnchor("top right"),
		Margins: Margins{Top: 2000, Right: 5000},
		Width:   300,
		Height:  120,
	}
	s.Clamp(testOutput())

	if s.Margins.Right+int(s.Width) > 1920 {
		t.Fatalf("horizontal invariant violated: margin %d + width %d > 1920", s.Margins.Right, s.Width)
	}
	if s.Margins.Top+int(s.Height) > 1080 {
		t.Fatalf("vertical invariant violated: margin %d + height %d > 1080", s.Margins.Top, s.Height)
	}
	if s.Margins.Right != 1920-300 || s.Margins.Top != 1080-120 {
		t.Fatalf("expected margins clamped to the far bound, got %+v", s.Margins)
	}
}

func TestClamp_WindowLargerThanOutputFloorsAtZero(t *testing.T) {
	s := &State{
		Anchor:  ParseAnchor("top left"),
		Margins: Margins{Top: 50, Left: 50},
		Width:   2500,
		Height:  1200,
	}
	s.Clamp(testOutput())

	if s.Margins.Left != 0 || s.Margins.Top != 0 {
		t.Fatalf("oversized window must floor margins at 0, got %+v", s.Margins)
	}
}

func TestClamp_SkippedWithoutGeometry(t *testing.T) {
	s := &State{
		Anchor:  ParseAnchor("top right"),
		Margins: Margins{Top: 9999, Right: 9999},
		Width:   100,
		Height:  100,
	}
	s.Clamp(nil)
	if s.Margins.Right != 9999 {
		t.Fatalf("clamp must be skipped when output geometry is unknown")
	}
	s.Clamp(&topology.Output{ID: 2})
	if s.Margins.Top != 9999 {
		t.Fatalf("clamp must be skipped for zero-sized geometry")
	}
}

func TestClamp_IgnoresNonAnchoredAndStretchedAxes(t *testing.T) {
	s := &State{
		Anchor:  Anchor{Left: true, Right: true}, // stretched horizontally, free vertically
		Margins: Margins{Top: 9999, Left: 9999, Right: 9999},
		Width:   100,
		Height:  100,
	}
	s.Clamp(testOutput())
	if s.Margins != (Margins{Top: 9999, Left: 9999, Right: 9999}) {
		t.Fatalf("margins on undefined axes must be left alone, got %+v", s.Margins)
	}
}

func TestSetSize_Reclamps(t *testing.T) {
	s := &State{
		Anchor:  ParseAnchor("top right"),
		Margins: Margins{Top: 20, Right: 1800},
		Width:   100,
		Height:  50,
	}
	s.SetSize(400, 200, testOutput())
	if s.Width != 400 || s.Height != 200 {
		t.Fatalf("size not applied")
	}
	if s.Margins.Right != 1920-400 {
		t.Fatalf("expected right margin re-clamped to %d, got %d", 1920-400, s.Margins.Right)
	}
}

func TestSetAnchor_ReinterpretsMarginsUnderNewEdges(t *testing.T) {
	s := &State{
		Anchor:  ParseAnchor("top right"),
		Margins: Margins{Top: 20, Right: 20, Left: 5000},
		Width:   300,
		Height:  100,
	}
	s.SetAnchor(ParseAnchor("top left"), testOutput())
	if s.Margins.Left != 1920-300 {
		t.Fatalf("left margin must be clamped under the new anchor, got %d", s.Margins.Left)
	}
	// The now-inactive right margin is untouched.
	if s.Margins.Right != 20 {
		t.Fatalf("inactive margin must be preserved, got %d", s.Margins.Right)
	}
}

func TestSetOutput_TracksIdentityOnly(t *testing.T) {
	s := &State{}
	if s.OutputKnown {
		t.Fatalf("fresh state must not know an output")
	}
	s.SetOutput(7)
	if !s.OutputKnown || s.OutputID != 7 {
		t.Fatalf("expected output 7, got %+v", s)
	}
	s.ClearOutput()
	if s.OutputKnown {
		t.Fatalf("ClearOutput must forget the output")
	}
}
