package placement

import "testing"

func TestParseAnchor(t *testing.T) {
	a := ParseAnchor("top right")
	if !a.Top || !a.Right || a.Bottom || a.Left {
		t.Fatalf("parsed wrong edges: %+v", a)
	}
	if !a.Has(EdgeTop) || !a.Has(EdgeRight) {
		t.Fatalf("Has disagrees with fields")
	}
}

func TestParseAnchor_CaseAndUnknownKeywords(t *testing.T) {
	a := ParseAnchor("Bottom  LEFT wobble")
	if !a.Bottom || !a.Left || a.Top || a.Right {
		t.Fatalf("parsed wrong edges: %+v", a)
	}
}

func TestAnchorString_RoundTrip(t *testing.T) {
	for _, s := range []string{"top", "top right", "bottom left", "top bottom left right", ""} {
		if got := ParseAnchor(s).String(); got != s {
			t.Fatalf("round trip %q -> %q", s, got)
		}
	}
}

func TestAnchorFlip(t *testing.T) {
	a := ParseAnchor("top right").Flip(EdgeRight)
	if a.String() != "top left" {
		t.Fatalf("expected flip right->left, got %q", a.String())
	}
	a = ParseAnchor("bottom left").Flip(EdgeBottom)
	if a.String() != "top left" {
		t.Fatalf("expected flip bottom->top, got %q", a.String())
	}
}

func TestSingleAxisPredicates(t *testing.T) {
	a := ParseAnchor("top right")
	if e, ok := a.SingleHorizontal(); !ok || e != EdgeRight {
		t.Fatalf("expected single horizontal edge right")
	}
	if e, ok := a.SingleVertical(); !ok || e != EdgeTop {
		t.Fatalf("expected single vertical edge top")
	}

	// Both edges active on an axis: margin semantics undefined there.
	b := ParseAnchor("left right top")
	if _, ok := b.SingleHorizontal(); ok {
		t.Fatalf("left+right must not report a single horizontal edge")
	}
	if _, ok := ParseAnchor("").SingleVertical(); ok {
		t.Fatalf("empty axis must not report a single edge")
	}
}
