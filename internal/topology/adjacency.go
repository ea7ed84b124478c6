package topology

// Direction is a cardinal direction used for adjacency lookups.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}

// FindAdjacent returns the output adjacent to current in the given
// direction. An output B is adjacent to A on the right iff B's left edge
// touches A's right edge and their vertical spans overlap; the other
// directions are symmetric. When several outputs qualify, the one whose
// center is closest to A's center along the cross axis wins. No neighbor
// is not an error: callers treat a false result as "stay put".
func (t *Topology) FindAdjacent(current Output, dir Direction) (Output, bool) {
	var best Output
	bestDist := 0
	found := false

	for _, out := range t.outputs {
		if out.ID == current.ID {
			continue
		}

		adjacent := false
		switch dir {
		case DirRight:
			adjacent = out.X == current.X+current.Width &&
				out.Y < current.Y+current.Height && out.Y+out.Height > current.Y
		case DirLeft:
			adjacent = out.X+out.Width == current.X &&
				out.Y < current.Y+current.Height && out.Y+out.Height > current.Y
		case DirDown:
			adjacent = out.Y == current.Y+current.Height &&
				out.X < current.X+current.Width && out.X+out.Width > current.X
		case DirUp:
			adjacent = out.Y+out.Height == current.Y &&
				out.X < current.X+current.Width && out.X+out.Width > current.X
		}
		if !adjacent {
			continue
		}

		var dist int
		switch dir {
		case DirLeft, DirRight:
			dist = abs((out.Y + out.Height/2) - (current.Y + current.Height/2))
		case DirUp, DirDown:
			dist = abs((out.X + out.Width/2) - (current.X + current.Width/2))
		}
		if !found || dist < bestDist {
			best = out
			bestDist = dist
			found = true
		}
	}

	return best, found
}

// FindByName returns the output whose name exactly matches name.
func (t *Topology) FindByName(name string) (Output, bool) {
	for _, out := range t.outputs {
		if out.Name == name {
			return out, true
		}
	}
	return Output{}, false
}

// FindCycle returns the next (forward) or previous output relative to
// currentID in discovery order, wrapping around. With fewer than two
// outputs there is nothing to cycle to. An unknown currentID cycles
// relative to index 0.
func (t *Topology) FindCycle(currentID uint32, forward bool) (Output, bool) {
	if len(t.outputs) <= 1 {
		return Output{}, false
	}

	currentIdx := 0
	for i, out := range t.outputs {
		if out.ID == currentID {
			currentIdx = i
			break
		}
	}

	var nextIdx int
	if forward {
		nextIdx = (currentIdx + 1) % len(t.outputs)
	} else {
		nextIdx = (currentIdx + len(t.outputs) - 1) % len(t.outputs)
	}

	return t.outputs[nextIdx], true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
