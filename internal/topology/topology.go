package topology

// Output represents one display output as reported by the compositor.
type Output struct {
	ID     uint32 // compositor-assigned global name
	Name   string // e.g. "DP-1"; may be empty until the name event arrives
	X      int
	Y      int
	Width  int
	Height int
}

// Topology tracks the set of known outputs and their logical geometry.
// Outputs are kept in discovery order, which is what next/prev cycling
// iterates over.
type Topology struct {
	outputs []Output
}

// New creates an empty topology.
func New() *Topology {
	return &Topology{}
}

// Upsert adds a new output or updates the geometry of a known one. The
// compositor binding calls this on every geometry-change notification, so
// the stored snapshot is always the latest the compositor reported.
func (t *Topology) Upsert(out Output) {
	for i := range t.outputs {
		if t.outputs[i].ID == out.ID {
			t.outputs[i] = out
			return
		}
	}
	t.outputs = append(t.outputs, out)
}

// Remove drops an output on disconnect. Unknown ids are a no-op.
func (t *Topology) Remove(id uint32) {
	for i := range t.outputs {
		if t.outputs[i].ID == id {
			t.outputs = append(t.outputs[:i], t.outputs[i+1:]...)
			return
		}
	}
}

// Get returns the output with the given id.
func (t *Topology) Get(id uint32) (Output, bool) {
	for _, out := range t.outputs {
		if out.ID == id {
			return out, true
		}
	}
	return Output{}, false
}

// All returns the known outputs in discovery order. The returned slice is a
// copy; callers may keep it across Upsert calls.
func (t *Topology) All() []Output {
	out := make([]Output, len(t.outputs))
	copy(out, t.outputs)
	return out
}

// Len returns the number of known outputs.
func (t *Topology) Len() int {
	return len(t.outputs)
}
