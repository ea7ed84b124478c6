package daemon

import (
	"github.com/glintclock/glint/internal/config"
	"github.com/glintclock/glint/internal/ipc"
	"github.com/glintclock/glint/internal/placement"
	"github.com/glintclock/glint/internal/topology"
)

func (c *Controller) handleCommand(req *ipc.Request) *ipc.Response {
	switch req.Cmd {
	case ipc.CmdSetFace:
		face := config.FaceMode(req.Face)
		if face != config.FaceDigital && face != config.FaceAnalogue {
			return ipc.ErrorResponse("Unknown face: %s", req.Face)
		}
		c.cfg.Clock.Face = face
		c.updateSize()
		return ipc.OKResponse()

	case ipc.CmdToggleFace:
		c.cfg.Clock.Face = c.cfg.Clock.Face.Toggle()
		c.updateSize()
		return ipc.OKResponse()

	case ipc.CmdSetCompact:
		c.compact = req.Compact
		c.updateSize()
		return ipc.OKResponse()

	case ipc.CmdToggleCompact:
		c.compact = !c.compact
		c.updateSize()
		return ipc.OKResponse()

	case ipc.CmdSetFontSize:
		c.cfg.Clock.FontSize = req.Size
		if c.cfg.Clock.FontSize < config.MinFontSize {
			c.cfg.Clock.FontSize = config.MinFontSize
		}
		c.updateSize()
		return ipc.OKResponse()

	case ipc.CmdSetDiameter:
		c.cfg.Clock.Diameter = req.Diameter
		if c.cfg.Clock.Diameter < config.MinDiameter {
			c.cfg.Clock.Diameter = config.MinDiameter
		}
		c.updateSize()
		return ipc.OKResponse()

	case ipc.CmdScaleBy:
		if c.cfg.Clock.Face == config.FaceAnalogue {
			c.cfg.Clock.Diameter += req.Delta
			if c.cfg.Clock.Diameter < config.MinDiameter {
				c.cfg.Clock.Diameter = config.MinDiameter
			}
		} else {
			c.cfg.Clock.FontSize += float64(req.Delta)
			if c.cfg.Clock.FontSize < config.MinFontSize {
				c.cfg.Clock.FontSize = config.MinFontSize
			}
		}
		c.updateSize()
		return ipc.OKResponse()

	case ipc.CmdSetLocked:
		c.state.SetLocked(req.Locked)
		return ipc.OKResponse()

	case ipc.CmdToggleLocked:
		c.state.SetLocked(!c.state.Locked)
		return ipc.OKResponse()

	case ipc.CmdMoveToOutput:
		return c.moveToOutput(req.Name)

	case ipc.CmdReloadConfig:
		return c.reconcile()

	case ipc.CmdGetState:
		outputName := ""
		if out := c.currentOutput(); out != nil {
			outputName = out.Name
		}
		return ipc.StateResponse(ipc.StateSnapshot{
			Face:       string(c.cfg.Clock.Face),
			Compact:    c.compact,
			Width:      c.state.Width,
			Height:     c.state.Height,
			FontSize:   c.cfg.Clock.FontSize,
			Diameter:   c.cfg.Clock.Diameter,
			ConfigPath: c.configPath,
			Locked:     c.state.Locked,
			Output:     outputName,
		})

	case ipc.CmdQuit:
		c.quit = true
		return ipc.OKResponse()
	}

	return ipc.ErrorResponse("unknown command %q", req.Cmd)
}

func (c *Controller) moveToOutput(name string) *ipc.Response {
	var target topology.Output
	var ok bool
	switch name {
	case "next":
		target, ok = c.topo.FindCycle(c.state.OutputID, true)
	case "prev":
		target, ok = c.topo.FindCycle(c.state.OutputID, false)
	default:
		target, ok = c.topo.FindByName(name)
	}
	if !ok {
		return ipc.ErrorResponse("Output '%s' not found", name)
	}

	if err := c.createSurface(target.ID); err != nil {
		c.fatal = err
		c.quit = true
		return ipc.ErrorResponse("surface recreation failed: %v", err)
	}
	c.persistOutput()
	return ipc.OKResponse()
}

// reconcile re-reads the config file. Anchor and margins come from the
// file wholesale; face, compact and locked are session state and carry
// forward from the running values. On any load error the current state is
// left untouched.
func (c *Controller) reconcile() *ipc.Response {
	newCfg, err := config.Load(c.configPath)
	if err != nil {
		return ipc.ErrorResponse("Config reload failed: %v", err)
	}

	newCfg.Clock.Face = c.cfg.Clock.Face
	c.cfg = newCfg

	c.state.Anchor = placement.ParseAnchor(newCfg.Window.Anchor)
	c.state.SetMargins(placement.Margins{
		Top:    newCfg.Window.MarginTop,
		Right:  newCfg.Window.MarginRight,
		Bottom: newCfg.Window.MarginBottom,
		Left:   newCfg.Window.MarginLeft,
	})
	c.state.Clamp(c.currentOutput())

	c.binding.SetAnchor(c.state.Anchor)
	c.binding.SetMargins(c.state.Margins)
	c.updateSize()
	c.binding.Commit()
	return ipc.OKResponse()
}
