// Package daemon is the single-threaded controller loop: it exclusively
// owns placement state, the output topology and the drag session, and
// serializes compositor events, IPC commands and redraw ticks.
package daemon

import (
	"log"
	"os"
	"time"

	"github.com/glintclock/glint/internal/clock"
	"github.com/glintclock/glint/internal/compositor"
	"github.com/glintclock/glint/internal/config"
	"github.com/glintclock/glint/internal/ipc"
	"github.com/glintclock/glint/internal/placement"
	"github.com/glintclock/glint/internal/render"
	"github.com/glintclock/glint/internal/topology"
)

// How long after startup to keep waiting for the configured output to
// appear before giving up and staying on the compositor default.
const pendingOutputTimeout = 2 * time.Second

type Controller struct {
	cfg        *config.Config
	configPath string

	binding compositor.Binding
	server  *ipc.Server
	font    *render.Font

	topo  *topology.Topology
	state placement.State
	drag  *placement.DragSession

	// compact is runtime state: seeded from the config but owned by the
	// session once toggled, so reloads carry it forward.
	compact bool

	pendingOutput   string
	pendingDeadline time.Time

	configured  bool
	needsRedraw bool
	quit        bool
	fatal       error
}

func New(cfg *config.Config, configPath string, binding compositor.Binding, server *ipc.Server) *Controller {
	c := &Controller{
		cfg:        cfg,
		configPath: configPath,
		binding:    binding,
		server:     server,
		font:       render.NewFont(),
		topo:       topology.New(),
		compact:    cfg.Window.Compact,
	}
	c.state.Anchor = placement.ParseAnchor(cfg.Window.Anchor)
	c.state.Margins = placement.Margins{
		Top:    cfg.Window.MarginTop,
		Right:  cfg.Window.MarginRight,
		Bottom: cfg.Window.MarginBottom,
		Left:   cfg.Window.MarginLeft,
	}
	c.state.Width, c.state.Height = render.ComputeSize(cfg, c.font, c.compact)

	if cfg.Window.Output != "" {
		c.pendingOutput = cfg.Window.Output
		c.pendingDeadline = time.Now().Add(pendingOutputTimeout)
	}
	return c
}

// Run creates the surface and drives the event loop until quit, a fatal
// migration failure, or a termination signal.
func (c *Controller) Run(sig <-chan os.Signal) error {
	if err := c.createSurface(0); err != nil {
		return err
	}

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()
	lastSecond := -1

	for !c.quit {
		select {
		case <-sig:
			c.quit = true
		case ev, ok := <-c.binding.Events():
			if !ok {
				c.quit = true
				break
			}
			c.handleEvent(ev)
			c.drainEvents()
		case <-ticker.C:
		}

		c.server.Poll(c.handleCommand)

		if s := time.Now().Second(); s != lastSecond {
			lastSecond = s
			c.needsRedraw = true
		}

		c.applyPendingOutput()

		if c.configured && c.needsRedraw && !c.quit {
			c.draw()
			c.needsRedraw = false
		}
	}
	return c.fatal
}

// drainEvents empties the queue so a burst of pointer motion collapses
// into one loop iteration.
func (c *Controller) drainEvents() {
	for {
		select {
		case ev, ok := <-c.binding.Events():
			if !ok {
				c.quit = true
				return
			}
			c.handleEvent(ev)
		default:
			return
		}
	}
}

// createSurface (re)creates the layer surface with the current placement,
// on the given output or the compositor default for id 0. Until the next
// configure handshake completes no frame is drawn.
func (c *Controller) createSurface(outputID uint32) error {
	err := c.binding.CreateSurface(compositor.SurfaceSpec{
		Layer:    c.cfg.Window.Layer,
		Anchor:   c.state.Anchor,
		Margins:  c.state.Margins,
		Width:    c.state.Width,
		Height:   c.state.Height,
		OutputID: outputID,
	})
	if err != nil {
		return err
	}
	if outputID != 0 {
		c.state.SetOutput(outputID)
	} else {
		c.state.ClearOutput()
	}
	c.configured = false
	c.needsRedraw = true
	return nil
}

func (c *Controller) currentOutput() *topology.Output {
	if !c.state.OutputKnown {
		return nil
	}
	if out, ok := c.topo.Get(c.state.OutputID); ok {
		return &out
	}
	return nil
}

// updateSize recomputes the content size and, when it changed, pushes the
// new geometry with re-clamped margins.
func (c *Controller) updateSize() {
	w, h := render.ComputeSize(c.cfg, c.font, c.compact)
	if w != c.state.Width || h != c.state.Height {
		c.state.SetSize(w, h, c.currentOutput())
		c.binding.SetSize(w, h)
		c.binding.SetMargins(c.state.Margins)
		c.binding.Commit()
	}
	c.needsRedraw = true
}

func (c *Controller) draw() {
	if c.state.Width == 0 || c.state.Height == 0 {
		return
	}

	canvas := render.NewCanvas(c.state.Width, c.state.Height)
	var battery *clock.Battery
	if c.cfg.Battery.Enabled {
		if b, ok := clock.ReadBattery(); ok {
			battery = &b
		}
	}
	render.Render(canvas, c.font, &render.State{
		Config:  c.cfg,
		Time:    clock.Now(c.cfg.Clock.DateFormat),
		Compact: c.compact,
		Battery: battery,
	})

	if err := c.binding.Present(canvas.ARGB8888(), c.state.Width, c.state.Height); err != nil {
		log.Printf("present failed: %v", err)
	}
}

// applyPendingOutput moves to the output named in the config once the
// compositor has announced it, or gives up after a grace period.
func (c *Controller) applyPendingOutput() {
	if c.pendingOutput == "" {
		return
	}
	if out, ok := c.topo.FindByName(c.pendingOutput); ok {
		log.Printf("moving to configured output %s", c.pendingOutput)
		c.pendingOutput = ""
		if err := c.createSurface(out.ID); err != nil {
			log.Printf("failed to move to configured output: %v", err)
			c.fatal = err
			c.quit = true
		}
		return
	}
	if time.Now().After(c.pendingDeadline) {
		log.Printf("configured output %q not found, staying on default", c.pendingOutput)
		c.pendingOutput = ""
	}
}

func (c *Controller) persistMargins() {
	m := c.state.Margins
	c.cfg.Window.MarginTop = m.Top
	c.cfg.Window.MarginRight = m.Right
	c.cfg.Window.MarginBottom = m.Bottom
	c.cfg.Window.MarginLeft = m.Left
	if err := config.SaveMargins(c.configPath, m.Top, m.Right, m.Bottom, m.Left); err != nil {
		log.Printf("failed to save margins: %v", err)
	}
}

func (c *Controller) persistAnchor() {
	anchor := c.state.Anchor.String()
	c.cfg.Window.Anchor = anchor
	if err := config.SaveAnchor(c.configPath, anchor); err != nil {
		log.Printf("failed to save anchor: %v", err)
	}
}

func (c *Controller) persistOutput() {
	out := c.currentOutput()
	if out == nil || out.Name == "" {
		return
	}
	c.cfg.Window.Output = out.Name
	if err := config.SaveOutput(c.configPath, out.Name); err != nil {
		log.Printf("failed to save output: %v", err)
	}
}
