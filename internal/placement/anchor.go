package placement

import "strings"

// Edge is one output edge a surface can be anchored to.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeBottom
	EdgeLeft
	EdgeRight
)

// String returns the config/protocol keyword for the edge.
func (e Edge) String() string {
	switch e {
	case EdgeTop:
		return "top"
	case EdgeBottom:
		return "bottom"
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	default:
		return "unknown"
	}
}

// Anchor is the set of output edges the surface is pinned to. The usual
// configuration activates one edge per axis (a corner pin); both edges on
// an axis stretches the surface along it.
type Anchor struct {
	Top    bool
	Bottom bool
	Left   bool
	Right  bool
}

// Has reports whether the given edge is in the set.
func (a Anchor) Has(e Edge) bool {
	switch e {
	case EdgeTop:
		return a.Top
	case EdgeBottom:
		return a.Bottom
	case EdgeLeft:
		return a.Left
	case EdgeRight:
		return a.Right
	default:
		return false
	}
}

// SingleHorizontal reports whether exactly one of left/right is active,
// and which. Margin semantics on the horizontal axis are only defined in
// that case.
func (a Anchor) SingleHorizontal() (Edge, bool) {
	if a.Left && !a.Right {
		return EdgeLeft, true
	}
	if a.Right && !a.Left {
		return EdgeRight, true
	}
	return 0, false
}

// SingleVertical reports whether exactly one of top/bottom is active.
func (a Anchor) SingleVertical() (Edge, bool) {
	if a.Top && !a.Bottom {
		return EdgeTop, true
	}
	if a.Bottom && !a.Top {
		return EdgeBottom, true
	}
	return 0, false
}

// Flip replaces the given edge with its opposite on the same axis. Used on
// cross-output migration: leaving through the right edge means arriving at
// the new output's left side.
func (a Anchor) Flip(e Edge) Anchor {
	switch e {
	case EdgeLeft:
		a.Left = false
		a.Right = true
	case EdgeRight:
		a.Right = false
		a.Left = true
	case EdgeTop:
		a.Top = false
		a.Bottom = true
	case EdgeBottom:
		a.Bottom = false
		a.Top = true
	}
	return a
}

// ParseAnchor parses the space-separated keyword form used by the config
// file ("top right"). Unknown keywords are ignored, matching a tolerant
// read of hand-edited files.
func ParseAnchor(s string) Anchor {
	var a Anchor
	for _, part := range strings.Fields(s) {
		switch strings.ToLower(part) {
		case "top":
			a.Top = true
		case "bottom":
			a.Bottom = true
		case "left":
			a.Left = true
		case "right":
			a.Right = true
		}
	}
	return a
}

// String formats the anchor back to its keyword form, in the fixed order
// top bottom left right.
func (a Anchor) String() string {
	parts := make([]string, 0, 4)
	if a.Top {
		parts = append(parts, "top")
	}
	if a.Bottom {
		parts = append(parts, "bottom")
	}
	if a.Left {
		parts = append(parts, "left")
	}
	if a.Right {
		parts = append(parts, "right")
	}
	return strings.Join(parts, " ")
}
