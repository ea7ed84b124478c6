package compositor

import "github.com/glintclock/glint/internal/topology"

// Event is one compositor notification, delivered to the daemon loop over
// the binding's event channel.
type Event interface {
	compositorEvent()
}

// ConfigureEvent is the size handshake for the layer surface. The daemon
// must ack the serial before the next commit.
type ConfigureEvent struct {
	Serial uint32
	Width  uint32
	Height uint32
}

// ClosedEvent means the compositor dismissed the surface; the daemon
// shuts down.
type ClosedEvent struct{}

// PointerPressEvent is a left button press at surface-local coordinates.
type PointerPressEvent struct {
	X, Y float64
}

// PointerMotionEvent is pointer movement at surface-local coordinates.
type PointerMotionEvent struct {
	X, Y float64
}

// PointerReleaseEvent is a left button release.
type PointerReleaseEvent struct{}

// PointerLeaveEvent fires when the pointer leaves the surface, including
// when a drag pushes the surface past the output edge.
type PointerLeaveEvent struct{}

// OutputAddedEvent announces a new output with its geometry.
type OutputAddedEvent struct {
	Output topology.Output
}

// OutputChangedEvent carries updated geometry for a known output.
type OutputChangedEvent struct {
	Output topology.Output
}

// OutputRemovedEvent announces an unplugged output.
type OutputRemovedEvent struct {
	ID uint32
}

// SurfaceEnterEvent reports which output the surface is now shown on.
type SurfaceEnterEvent struct {
	OutputID uint32
}

// SurfaceLeaveEvent reports the surface left an output.
type SurfaceLeaveEvent struct {
	OutputID uint32
}

func (ConfigureEvent) compositorEvent()      {}
func (ClosedEvent) compositorEvent()         {}
func (PointerPressEvent) compositorEvent()   {}
func (PointerMotionEvent) compositorEvent()  {}
func (PointerReleaseEvent) compositorEvent() {}
func (PointerLeaveEvent) compositorEvent()   {}
func (OutputAddedEvent) compositorEvent()    {}
func (OutputChangedEvent) compositorEvent()  {}
func (OutputRemovedEvent) compositorEvent()  {}
func (SurfaceEnterEvent) compositorEvent()   {}
func (SurfaceLeaveEvent) compositorEvent()   {}
