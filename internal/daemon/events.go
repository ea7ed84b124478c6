package daemon

import (
	"log"

	"github.com/glintclock/glint/internal/compositor"
	"github.com/glintclock/glint/internal/placement"
	"github.com/glintclock/glint/internal/topology"
)

func (c *Controller) handleEvent(ev compositor.Event) {
	switch e := ev.(type) {
	case compositor.ConfigureEvent:
		if e.Width > 0 {
			c.state.Width = e.Width
		}
		if e.Height > 0 {
			c.state.Height = e.Height
		}
		c.binding.AckConfigure(e.Serial)
		c.configured = true
		c.needsRedraw = true

	case compositor.ClosedEvent:
		c.quit = true

	case compositor.PointerPressEvent:
		if !c.state.Locked {
			c.drag = placement.BeginDrag(e.X, e.Y, c.state.Margins)
		}

	case compositor.PointerMotionEvent:
		if c.drag == nil {
			return
		}
		m := c.drag.Motion(e.X, e.Y, c.state.Anchor)
		c.state.SetMargins(m)
		c.binding.SetMargins(m)
		c.binding.Commit()

	case compositor.PointerReleaseEvent:
		c.endDrag(false)

	case compositor.PointerLeaveEvent:
		c.endDrag(true)

	case compositor.OutputAddedEvent:
		c.topo.Upsert(e.Output)

	case compositor.OutputChangedEvent:
		c.topo.Upsert(e.Output)
		if out := c.currentOutput(); out != nil && out.ID == e.Output.ID {
			c.state.Clamp(out)
			c.binding.SetMargins(c.state.Margins)
			c.binding.Commit()
			c.needsRedraw = true
		}

	case compositor.OutputRemovedEvent:
		c.topo.Remove(e.ID)
		if c.state.OutputKnown && c.state.OutputID == e.ID {
			c.state.ClearOutput()
		}

	case compositor.SurfaceEnterEvent:
		c.state.SetOutput(e.OutputID)
		if out, ok := c.topo.Get(e.OutputID); ok {
			log.Printf("surface entered output %s", out.Name)
		}

	case compositor.SurfaceLeaveEvent:
		if c.state.OutputKnown && c.state.OutputID == e.OutputID {
			c.state.ClearOutput()
		}
	}
}

// endDrag finishes a drag at button release or pointer leave. Only the
// leave path can hand the surface off to an adjacent output; both paths
// apply the full margin clamp and persist margins that differ from the
// press-time snapshot.
func (c *Controller) endDrag(leave bool) {
	if c.drag == nil {
		return
	}
	drag := c.drag
	c.drag = nil

	migrated := false
	if leave {
		if dir, ok := drag.LeaveDirection(c.state.Anchor, c.state.Margins); ok {
			if cur := c.currentOutput(); cur != nil {
				if target, ok := c.topo.FindAdjacent(*cur, dir); ok {
					if err := c.migrate(dir, target); err != nil {
						// Without a surface there is nothing left to run.
						log.Printf("surface recreation failed: %v", err)
						c.fatal = err
						c.quit = true
						return
					}
					migrated = true
				}
			}
		}
	}

	// Margins are unclamped mid-drag; the drag end re-imposes the bound
	// before anything is persisted.
	unclamped := c.state.Margins
	c.state.Clamp(c.currentOutput())
	if c.state.Margins != unclamped {
		c.binding.SetMargins(c.state.Margins)
		c.binding.Commit()
	}

	if migrated || drag.Moved(c.state.Margins) {
		c.persistMargins()
	}
	if migrated {
		c.persistAnchor()
		c.persistOutput()
	}
}

// migrate flips the anchor on the crossed axis, lands flush against the
// arrival edge with both margins on that axis zeroed, keeps the
// perpendicular margin, and recreates the surface on the target output.
func (c *Controller) migrate(dir topology.Direction, target topology.Output) error {
	m := c.state.Margins
	switch dir {
	case topology.DirLeft:
		c.state.Anchor = c.state.Anchor.Flip(placement.EdgeLeft)
		m.Left, m.Right = 0, 0
	case topology.DirRight:
		c.state.Anchor = c.state.Anchor.Flip(placement.EdgeRight)
		m.Left, m.Right = 0, 0
	case topology.DirUp:
		c.state.Anchor = c.state.Anchor.Flip(placement.EdgeTop)
		m.Top, m.Bottom = 0, 0
	case topology.DirDown:
		c.state.Anchor = c.state.Anchor.Flip(placement.EdgeBottom)
		m.Top, m.Bottom = 0, 0
	}
	c.state.SetMargins(m)
	c.cfg.Window.Anchor = c.state.Anchor.String()

	if err := c.createSurface(target.ID); err != nil {
		return err
	}
	log.Printf("migrated %s to output %s", dir, target.Name)
	return nil
}
