package placement

import "github.com/glintclock/glint/internal/topology"

// Margins are the pixel offsets from each anchored edge to the surface.
// Only the margins of active anchor edges are meaningful.
type Margins struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// State is the authoritative surface geometry: anchor edges, margins,
// content size, the output the surface currently sits on, and the drag
// lock. It is exclusively owned by the daemon loop; mutators never run
// concurrently.
type State struct {
	Anchor  Anchor
	Margins Margins
	Width   uint32
	Height  uint32

	// OutputID is the current output's compositor id; valid only when
	// OutputKnown is set. The topology owns the output itself.
	OutputID    uint32
	OutputKnown bool

	Locked bool
}

// SetSize updates the content size and re-clamps margins against the
// current output geometry.
func (s *State) SetSize(w, h uint32, out *topology.Output) {
	s.Width = w
	s.Height = h
	s.Clamp(out)
}

// SetMargins replaces the margins wholesale. Used by drag motion and by
// config reconciliation, both of which apply their own clamping rules.
func (s *State) SetMargins(m Margins) {
	s.Margins = m
}

// SetAnchor replaces the anchor set, reinterpreting the existing margins
// under the new edges, then clamps.
func (s *State) SetAnchor(a Anchor, out *topology.Output) {
	s.Anchor = a
	s.Clamp(out)
}

// SetOutput records which output the surface sits on. Surface recreation
// is the migration controller's job, not this setter's.
func (s *State) SetOutput(id uint32) {
	s.OutputID = id
	s.OutputKnown = true
}

// ClearOutput forgets the current output, e.g. after a surface-leave event.
func (s *State) ClearOutput() {
	s.OutputID = 0
	s.OutputKnown = false
}

// SetLocked sets the drag lock.
func (s *State) SetLocked(locked bool) {
	s.Locked = locked
}

// Clamp enforces the axis-fit invariant: for each axis with exactly one
// active anchor edge, that edge's margin is clamped to
// [0, outputSize−windowSize]. A window larger than the output floors the
// margin at 0 and is allowed to overflow visually. With no output
// geometry available the clamp is skipped.
func (s *State) Clamp(out *topology.Output) {
	if out == nil || out.Width == 0 || out.Height == 0 {
		return
	}

	if edge, ok := s.Anchor.SingleHorizontal(); ok {
		max := out.Width - int(s.Width)
		if max < 0 {
			max = 0
		}
		switch edge {
		case EdgeLeft:
			s.Margins.Left = clampInt(s.Margins.Left, 0, max)
		case EdgeRight:
			s.Margins.Right = clampInt(s.Margins.Right, 0, max)
		}
	}

	if edge, ok := s.Anchor.SingleVertical(); ok {
		max := out.Height - int(s.Height)
		if max < 0 {
			max = 0
		}
		switch edge {
		case EdgeTop:
			s.Margins.Top = clampInt(s.Margins.Top, 0, max)
		case EdgeBottom:
			s.Margins.Bottom = clampInt(s.Margins.Bottom, 0, max)
		}
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
