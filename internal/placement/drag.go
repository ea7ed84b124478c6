package placement

import "github.com/glintclock/glint/internal/topology"

// DragSession is the transient state of a pointer drag: the pointer
// position at press and a snapshot of the margins at that moment. It
// exists only between a press and the matching release or pointer-leave;
// a locked surface never creates one.
type DragSession struct {
	startX, startY float64
	origin         Margins
}

// BeginDrag starts a drag session at the given pointer position with the
// current margins.
func BeginDrag(x, y float64, current Margins) *DragSession {
	return &DragSession{startX: x, startY: y, origin: current}
}

// Origin returns the margins captured at press time.
func (d *DragSession) Origin() Margins {
	return d.origin
}

// Motion converts the current pointer position into new margins relative
// to the press-time snapshot. A single anchored left edge grows the left
// margin with rightward motion; a single anchored right edge shrinks the
// right margin. Vertical is symmetric. Margins floor at 0 but are not
// clamped to the output bound mid-drag; the compositor re-clamps visually
// and the full clamp runs at release/leave.
func (d *DragSession) Motion(x, y float64, a Anchor) Margins {
	dx := int(x - d.startX)
	dy := int(y - d.startY)

	m := d.origin
	if edge, ok := a.SingleHorizontal(); ok {
		switch edge {
		case EdgeLeft:
			m.Left = floorZero(d.origin.Left + dx)
		case EdgeRight:
			m.Right = floorZero(d.origin.Right - dx)
		}
	}
	if edge, ok := a.SingleVertical(); ok {
		switch edge {
		case EdgeTop:
			m.Top = floorZero(d.origin.Top + dy)
		case EdgeBottom:
			m.Bottom = floorZero(d.origin.Bottom - dy)
		}
	}
	return m
}

// Moved reports whether the given margins differ from the press-time
// snapshot; only then does the drag warrant persisting.
func (d *DragSession) Moved(m Margins) bool {
	return m != d.origin
}

// LeaveDirection decides whether the pointer leaving mid-drag should
// trigger a cross-output migration, and in which direction. An anchored
// edge's margin selects its direction when it is now 0 and was dragged
// there (was >0 at press); failing that, a margin that was already 0 at
// press selects its direction too, so a surface starting flush against an
// edge can still migrate. Checks run left, right, up, down and the first
// match wins; with one active edge per axis at most one can match anyway.
func (d *DragSession) LeaveDirection(a Anchor, m Margins) (topology.Direction, bool) {
	h, hasH := a.SingleHorizontal()
	v, hasV := a.SingleVertical()

	switch {
	case hasH && h == EdgeLeft && m.Left == 0 && d.origin.Left > 0:
		return topology.DirLeft, true
	case hasH && h == EdgeRight && m.Right == 0 && d.origin.Right > 0:
		return topology.DirRight, true
	case hasV && v == EdgeTop && m.Top == 0 && d.origin.Top > 0:
		return topology.DirUp, true
	case hasV && v == EdgeBottom && m.Bottom == 0 && d.origin.Bottom > 0:
		return topology.DirDown, true
	}

	// Margin already flush at press: leaving on that side still counts.
	switch {
	case hasH && h == EdgeLeft && m.Left == 0:
		return topology.DirLeft, true
	case hasH && h == EdgeRight && m.Right == 0:
		return topology.DirRight, true
	case hasV && v == EdgeTop && m.Top == 0:
		return topology.DirUp, true
	case hasV && v == EdgeBottom && m.Bottom == 0:
		return topology.DirDown, true
	}

	return 0, false
}

func floorZero(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
