package compositor

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"github.com/AvengeMedia/DankMaterialShell/core/pkg/go-wayland/wayland/client"

	"github.com/glintclock/glint/internal/placement"
	"github.com/glintclock/glint/internal/proto/wlr_layer_shell"
	"github.com/glintclock/glint/internal/topology"
)

const btnLeft = 0x110

// wl_shm.format ARGB8888, little-endian BGRA bytes.
const formatARGB8888 uint32 = 0

// Wayland is the live compositor connection. Requests are serialized
// through writeMu; events are read on a dedicated goroutine and forwarded
// over the event channel.
type Wayland struct {
	display  *client.Display
	ctx      *client.Context
	registry *client.Registry

	compositor *client.Compositor
	shm        *client.Shm
	seat       *client.Seat
	pointer    *client.Pointer
	layerShell *wlr_layer_shell.ZwlrLayerShellV1

	surface      *client.Surface
	layerSurface *wlr_layer_shell.ZwlrLayerSurfaceV1

	// outputs is written by the dispatch goroutine (registry and output
	// handlers) and read by the daemon goroutine; outputsMu covers the
	// map and each boundOutput's info.
	outputs   map[uint32]*boundOutput
	outputsMu sync.Mutex

	events  chan Event
	writeMu sync.Mutex
	closing atomic.Bool

	// Last surface-local pointer position, updated on enter and motion,
	// attached to press events.
	pointerX float64
	pointerY float64
}

type boundOutput struct {
	proxy     *client.Output
	info      topology.Output
	announced bool
}

// Connect establishes the Wayland connection and binds the globals glint
// needs. It fails when the compositor lacks wlr-layer-shell support.
func Connect() (*Wayland, error) {
	display, err := client.Connect("")
	if err != nil {
		return nil, fmt.Errorf("failed to connect to wayland display: %w", err)
	}

	w := &Wayland{
		display: display,
		ctx:     display.Context(),
		outputs: make(map[uint32]*boundOutput),
		events:  make(chan Event, 256),
	}

	registry, err := display.GetRegistry()
	if err != nil {
		w.ctx.Close()
		return nil, fmt.Errorf("failed to get registry: %w", err)
	}
	w.registry = registry
	registry.SetGlobalHandler(w.handleGlobal)
	registry.SetGlobalRemoveHandler(w.handleGlobalRemove)

	// First roundtrip binds globals, second collects output properties.
	if err := w.roundtrip(); err != nil {
		w.ctx.Close()
		return nil, err
	}
	if err := w.roundtrip(); err != nil {
		w.ctx.Close()
		return nil, err
	}

	if w.compositor == nil || w.shm == nil {
		w.ctx.Close()
		return nil, fmt.Errorf("missing core wayland globals")
	}
	if w.layerShell == nil {
		w.ctx.Close()
		return nil, fmt.Errorf("compositor does not support wlr-layer-shell-unstable-v1")
	}

	go w.dispatchLoop()

	return w, nil
}

func (w *Wayland) Events() <-chan Event { return w.events }

// CreateSurface destroys any existing layer surface and creates a fresh
// one with the given placement, on the named output when known.
func (w *Wayland) CreateSurface(spec SurfaceSpec) error {
	w.writeMu.Lock()
	defer w.writeMu.Unlock()

	if w.layerSurface != nil {
		w.layerSurface.Destroy()
		w.layerSurface = nil
	}
	if w.surface != nil {
		w.surface.Destroy()
		w.surface = nil
	}

	surface, err := w.compositor.CreateSurface()
	if err != nil {
		return fmt.Errorf("failed to create surface: %w", err)
	}

	var target *client.Output
	if spec.OutputID != 0 {
		w.outputsMu.Lock()
		if o, ok := w.outputs[spec.OutputID]; ok {
			target = o.proxy
		}
		w.outputsMu.Unlock()
	}

	ls, err := w.layerShell.GetLayerSurface(surface, target, layerValue(spec.Layer), "glint")
	if err != nil {
		surface.Destroy()
		return fmt.Errorf("failed to create layer surface: %w", err)
	}

	ls.SetConfigureHandler(func(e wlr_layer_shell.ZwlrLayerSurfaceV1ConfigureEvent) {
		w.emit(ConfigureEvent{Serial: e.Serial, Width: e.Width, Height: e.Height})
	})
	ls.SetClosedHandler(func(wlr_layer_shell.ZwlrLayerSurfaceV1ClosedEvent) {
		w.emit(ClosedEvent{})
	})
	surface.SetEnterHandler(func(e client.SurfaceEnterEvent) {
		if id, ok := w.outputID(e.Output); ok {
			w.emit(SurfaceEnterEvent{OutputID: id})
		}
	})
	surface.SetLeaveHandler(func(e client.SurfaceLeaveEvent) {
		if id, ok := w.outputID(e.Output); ok {
			w.emit(SurfaceLeaveEvent{OutputID: id})
		}
	})

	ls.SetSize(spec.Width, spec.Height)
	ls.SetAnchor(anchorBits(spec.Anchor))
	ls.SetMargin(int32(spec.Margins.Top), int32(spec.Margins.Right), int32(spec.Margins.Bottom), int32(spec.Margins.Left))
	ls.SetExclusiveZone(0)
	ls.SetKeyboardInteractivity(uint32(wlr_layer_shell.ZwlrLayerSurfaceV1KeyboardInteractivityNone))
	surface.Commit()

	w.surface = surface
	w.layerSurface = ls
	return nil
}

func (w *Wayland) AckConfigure(serial uint32) {
	w.writeMu.Lock()
	defer w.writeMu.Unlock()
	if w.layerSurface != nil {
		w.layerSurface.AckConfigure(serial)
	}
}

func (w *Wayland) SetAnchor(a placement.Anchor) {
	w.writeMu.Lock()
	defer w.writeMu.Unlock()
	if w.layerSurface != nil {
		w.layerSurface.SetAnchor(anchorBits(a))
	}
}

func (w *Wayland) SetMargins(m placement.Margins) {
	w.writeMu.Lock()
	defer w.writeMu.Unlock()
	if w.layerSurface != nil {
		w.layerSurface.SetMargin(int32(m.Top), int32(m.Right), int32(m.Bottom), int32(m.Left))
	}
}

func (w *Wayland) SetSize(width, height uint32) {
	w.writeMu.Lock()
	defer w.writeMu.Unlock()
	if w.layerSurface != nil {
		w.layerSurface.SetSize(width, height)
	}
}

func (w *Wayland) Commit() {
	w.writeMu.Lock()
	defer w.writeMu.Unlock()
	if w.surface != nil {
		w.surface.Commit()
	}
}

// Present copies a frame into a fresh shm buffer, attaches it and
// commits. The buffer is released once the compositor is done with it.
func (w *Wayland) Present(frame []byte, width, height uint32) error {
	w.writeMu.Lock()
	defer w.writeMu.Unlock()

	if w.surface == nil {
		return fmt.Errorf("no surface to present to")
	}

	buf, err := newShmBuffer(int(width), int(height))
	if err != nil {
		return err
	}
	copy(buf.data, frame)

	pool, err := w.shm.CreatePool(buf.fd, int32(buf.size()))
	if err != nil {
		buf.close()
		return fmt.Errorf("failed to create shm pool: %w", err)
	}
	wlBuf, err := pool.CreateBuffer(0, int32(width), int32(height), int32(buf.stride), formatARGB8888)
	if err != nil {
		pool.Destroy()
		buf.close()
		return fmt.Errorf("failed to create wl_buffer: %w", err)
	}
	pool.Destroy()

	wlBuf.SetReleaseHandler(func(client.BufferReleaseEvent) {
		w.writeMu.Lock()
		wlBuf.Destroy()
		w.writeMu.Unlock()
		buf.close()
	})

	w.surface.Attach(wlBuf, 0, 0)
	w.surface.DamageBuffer(0, 0, int32(width), int32(height))
	w.surface.Commit()
	return nil
}

func (w *Wayland) Close() {
	w.closing.Store(true)
	w.writeMu.Lock()
	if w.layerSurface != nil {
		w.layerSurface.Destroy()
		w.layerSurface = nil
	}
	if w.surface != nil {
		w.surface.Destroy()
		w.surface = nil
	}
	w.writeMu.Unlock()
	w.ctx.Close()
}

func (w *Wayland) dispatchLoop() {
	for {
		if err := w.ctx.Dispatch(); err != nil {
			if !w.closing.Load() {
				log.Printf("wayland dispatch error: %v", err)
				w.emit(ClosedEvent{})
			}
			return
		}
	}
}

// roundtrip blocks until the compositor has processed all prior requests.
func (w *Wayland) roundtrip() error {
	callback, err := w.display.Sync()
	if err != nil {
		return fmt.Errorf("display sync: %w", err)
	}
	done := false
	callback.SetDoneHandler(func(client.CallbackDoneEvent) {
		done = true
	})
	for !done {
		if err := w.ctx.Dispatch(); err != nil {
			return fmt.Errorf("dispatch: %w", err)
		}
	}
	return nil
}

// emit forwards an event to the daemon loop. Pointer motion is high-rate
// and coalesced by the loop, so it may be dropped under backpressure;
// every other event must arrive and blocks until the queue has room.
func (w *Wayland) emit(e Event) {
	if _, ok := e.(PointerMotionEvent); ok {
		select {
		case w.events <- e:
		default:
		}
		return
	}
	w.events <- e
}

func (w *Wayland) handleGlobal(e client.RegistryGlobalEvent) {
	switch e.Interface {
	case client.CompositorInterfaceName:
		comp := client.NewCompositor(w.ctx)
		if err := w.registry.Bind(e.Name, e.Interface, e.Version, comp); err == nil {
			w.compositor = comp
		}

	case client.ShmInterfaceName:
		shm := client.NewShm(w.ctx)
		if err := w.registry.Bind(e.Name, e.Interface, e.Version, shm); err == nil {
			w.shm = shm
		}

	case client.SeatInterfaceName:
		if w.seat != nil {
			return
		}
		seat := client.NewSeat(w.ctx)
		if err := w.registry.Bind(e.Name, e.Interface, e.Version, seat); err == nil {
			w.seat = seat
			w.setupSeat(seat)
		}

	case client.OutputInterfaceName:
		output := client.NewOutput(w.ctx)
		version := e.Version
		if version > 4 {
			version = 4
		}
		if err := w.registry.Bind(e.Name, e.Interface, version, output); err == nil {
			w.outputsMu.Lock()
			w.outputs[e.Name] = &boundOutput{
				proxy: output,
				info:  topology.Output{ID: e.Name},
			}
			w.outputsMu.Unlock()
			w.setupOutput(e.Name, output)
		}

	case wlr_layer_shell.ZwlrLayerShellV1InterfaceName:
		shell := wlr_layer_shell.NewZwlrLayerShellV1(w.ctx)
		version := e.Version
		if version > 4 {
			version = 4
		}
		if err := w.registry.Bind(e.Name, e.Interface, version, shell); err == nil {
			w.layerShell = shell
		}
	}
}

func (w *Wayland) handleGlobalRemove(e client.RegistryGlobalRemoveEvent) {
	w.outputsMu.Lock()
	_, ok := w.outputs[e.Name]
	if ok {
		delete(w.outputs, e.Name)
	}
	w.outputsMu.Unlock()
	if ok {
		w.emit(OutputRemovedEvent{ID: e.Name})
	}
}

func (w *Wayland) setupOutput(name uint32, output *client.Output) {
	output.SetGeometryHandler(func(e client.OutputGeometryEvent) {
		w.outputsMu.Lock()
		if o, ok := w.outputs[name]; ok {
			o.info.X = int(e.X)
			o.info.Y = int(e.Y)
		}
		w.outputsMu.Unlock()
	})
	output.SetModeHandler(func(e client.OutputModeEvent) {
		if e.Flags&uint32(client.OutputModeCurrent) == 0 {
			return
		}
		w.outputsMu.Lock()
		if o, ok := w.outputs[name]; ok {
			o.info.Width = int(e.Width)
			o.info.Height = int(e.Height)
		}
		w.outputsMu.Unlock()
	})
	output.SetNameHandler(func(e client.OutputNameEvent) {
		w.outputsMu.Lock()
		if o, ok := w.outputs[name]; ok {
			o.info.Name = e.Name
		}
		w.outputsMu.Unlock()
	})
	output.SetDoneHandler(func(client.OutputDoneEvent) {
		w.outputsMu.Lock()
		o, ok := w.outputs[name]
		if !ok {
			w.outputsMu.Unlock()
			return
		}
		first := !o.announced
		o.announced = true
		info := o.info
		w.outputsMu.Unlock()
		if first {
			w.emit(OutputAddedEvent{Output: info})
		} else {
			w.emit(OutputChangedEvent{Output: info})
		}
	})
}

func (w *Wayland) setupSeat(seat *client.Seat) {
	seat.SetCapabilitiesHandler(func(e client.SeatCapabilitiesEvent) {
		hasPointer := e.Capabilities&uint32(client.SeatCapabilityPointer) != 0
		if hasPointer && w.pointer == nil {
			pointer, err := seat.GetPointer()
			if err != nil {
				log.Printf("failed to get pointer: %v", err)
				return
			}
			w.pointer = pointer
			w.setupPointer(pointer)
		} else if !hasPointer && w.pointer != nil {
			w.pointer.Release()
			w.pointer = nil
		}
	})
}

func (w *Wayland) setupPointer(pointer *client.Pointer) {
	pointer.SetEnterHandler(func(e client.PointerEnterEvent) {
		w.pointerX = e.SurfaceX
		w.pointerY = e.SurfaceY
	})
	pointer.SetMotionHandler(func(e client.PointerMotionEvent) {
		w.pointerX = e.SurfaceX
		w.pointerY = e.SurfaceY
		w.emit(PointerMotionEvent{X: e.SurfaceX, Y: e.SurfaceY})
	})
	pointer.SetButtonHandler(func(e client.PointerButtonEvent) {
		if e.Button != btnLeft {
			return
		}
		if e.State == uint32(client.PointerButtonStatePressed) {
			w.emit(PointerPressEvent{X: w.pointerX, Y: w.pointerY})
		} else {
			w.emit(PointerReleaseEvent{})
		}
	})
	pointer.SetLeaveHandler(func(e client.PointerLeaveEvent) {
		w.emit(PointerLeaveEvent{})
	})
}

func (w *Wayland) outputID(proxy *client.Output) (uint32, bool) {
	w.outputsMu.Lock()
	defer w.outputsMu.Unlock()
	for name, o := range w.outputs {
		if o.proxy == proxy {
			return name, true
		}
	}
	return 0, false
}

func layerValue(layer string) uint32 {
	switch layer {
	case "background":
		return uint32(wlr_layer_shell.ZwlrLayerShellV1LayerBackground)
	case "bottom":
		return uint32(wlr_layer_shell.ZwlrLayerShellV1LayerBottom)
	case "overlay":
		return uint32(wlr_layer_shell.ZwlrLayerShellV1LayerOverlay)
	default:
		return uint32(wlr_layer_shell.ZwlrLayerShellV1LayerTop)
	}
}

func anchorBits(a placement.Anchor) uint32 {
	var bits uint32
	if a.Top {
		bits |= uint32(wlr_layer_shell.ZwlrLayerSurfaceV1AnchorTop)
	}
	if a.Bottom {
		bits |= uint32(wlr_layer_shell.ZwlrLayerSurfaceV1AnchorBottom)
	}
	if a.Left {
		bits |= uint32(wlr_layer_shell.ZwlrLayerSurfaceV1AnchorLeft)
	}
	if a.Right {
		bits |= uint32(wlr_layer_shell.ZwlrLayerSurfaceV1AnchorRight)
	}
	return bits
}
