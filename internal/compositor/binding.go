// Package compositor connects the daemon to the Wayland session: it owns
// the layer surface, forwards compositor events, and presents frames.
package compositor

import "github.com/glintclock/glint/internal/placement"

// SurfaceSpec describes the layer surface to create.
type SurfaceSpec struct {
	// Layer: background | bottom | top | overlay.
	Layer   string
	Anchor  placement.Anchor
	Margins placement.Margins
	Width   uint32
	Height  uint32
	// OutputID is the registry name of the output to appear on; zero lets
	// the compositor choose.
	OutputID uint32
}

// Binding is the daemon's view of the compositor connection. All methods
// are called from the daemon loop; events arrive on the channel from the
// connection's read goroutine.
type Binding interface {
	// Events delivers compositor notifications.
	Events() <-chan Event

	// CreateSurface creates the layer surface, destroying any existing
	// one first. Used both at startup and to migrate between outputs.
	CreateSurface(spec SurfaceSpec) error

	// AckConfigure acknowledges a configure serial.
	AckConfigure(serial uint32)

	SetAnchor(a placement.Anchor)
	SetMargins(m placement.Margins)
	SetSize(width, height uint32)

	// Commit applies pending surface state.
	Commit()

	// Present attaches a full ARGB8888 frame and commits it.
	Present(frame []byte, width, height uint32) error

	Close()
}
