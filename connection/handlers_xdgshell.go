package connection

import (
	"github.com/winway/hostbridge/objects"
	"github.com/winway/hostbridge/protocol"
	"github.com/winway/hostbridge/render"
	"github.com/winway/hostbridge/wire"
)

func (c *Client) handleXdgWmBase(opcode uint16, r *wire.Reader) {
	switch opcode {
	case protocol.WmBaseRequestDestroy:
		c.wmBaseID = 0

	case protocol.WmBaseRequestCreatePositioner:
		positionerID, err := r.Object()
		if err != nil {
			c.log.Debug().Err(err).Msg("xdg_wm_base.create_positioner: truncated")
			return
		}
		c.objects.Insert(objects.Object{ID: positionerID, Interface: objects.XdgPositioner, Version: 3})

	case protocol.WmBaseRequestGetXdgSurface:
		req, err := protocol.DecodeGetXdgSurfaceRequest(r)
		if err != nil {
			c.log.Debug().Err(err).Msg("xdg_wm_base.get_xdg_surface: truncated")
			return
		}
		c.log.Debug().Uint32("xdg_surface_id", req.XdgSurfaceID).Uint32("surface_id", req.SurfaceID).
			Msg("xdg_wm_base.get_xdg_surface")

		c.objects.Insert(objects.Object{ID: req.XdgSurfaceID, Interface: objects.XdgSurface, Version: 3})
		c.xdgSurfaces[req.XdgSurfaceID] = &protocol.XdgSurface{ID: req.XdgSurfaceID, SurfaceID: req.SurfaceID}

	case protocol.WmBaseRequestPong:
		serial, err := r.Uint()
		if err != nil {
			c.log.Debug().Err(err).Msg("xdg_wm_base.pong: truncated")
			return
		}
		c.log.Debug().Uint32("serial", serial).Msg("xdg_wm_base.pong")

	default:
		c.log.Warn().Uint16("opcode", opcode).Msg("unknown xdg_wm_base opcode")
	}
}

func (c *Client) handleXdgSurface(xdgSurfaceID uint32, opcode uint16, r *wire.Reader) {
	switch opcode {
	case protocol.XdgSurfaceRequestDestroy:
		delete(c.xdgSurfaces, xdgSurfaceID)
		c.objects.Remove(xdgSurfaceID)

	case protocol.XdgSurfaceRequestGetToplevel:
		toplevelID, err := r.Object()
		if err != nil {
			c.log.Debug().Err(err).Msg("xdg_surface.get_toplevel: truncated")
			return
		}
		c.log.Debug().Uint32("toplevel_id", toplevelID).Msg("xdg_surface.get_toplevel")

		c.objects.Insert(objects.Object{ID: toplevelID, Interface: objects.XdgToplevel, Version: 3})
		if xdgSurface, ok := c.xdgSurfaces[xdgSurfaceID]; ok {
			xdgSurface.ToplevelID = toplevelID
		}
		c.toplevels[toplevelID] = &protocol.XdgToplevel{ID: toplevelID, XdgSurfaceID: xdgSurfaceID}

		// Initial configure handshake: propose an 800x600 activated toplevel,
		// then the xdg_surface configure that carries the serial the client
		// must ack.
		c.emit(protocol.ToplevelConfigure(toplevelID, 800, 600, []protocol.ToplevelState{protocol.ToplevelStateActivated}))
		c.emit(protocol.XdgSurfaceConfigure(xdgSurfaceID, protocol.NextSerial()))

	case protocol.XdgSurfaceRequestAckConfigure:
		serial, err := r.Uint()
		if err != nil {
			c.log.Debug().Err(err).Msg("xdg_surface.ack_configure: truncated")
			return
		}
		c.log.Debug().Uint32("serial", serial).Msg("xdg_surface.ack_configure")

	default:
		c.log.Debug().Uint16("opcode", opcode).Msg("xdg_surface opcode not handled")
	}
}

func (c *Client) handleXdgToplevel(toplevelID uint32, opcode uint16, r *wire.Reader) {
	switch opcode {
	case protocol.ToplevelRequestDestroy:
		delete(c.toplevels, toplevelID)
		c.objects.Remove(toplevelID)

	case protocol.ToplevelRequestSetTitle:
		title, err := r.String()
		if err != nil {
			c.log.Debug().Err(err).Msg("xdg_toplevel.set_title: truncated")
			return
		}
		c.log.Info().Uint32("toplevel_id", toplevelID).Str("title", title).Msg("toplevel title set")

		c.setToplevelTitle(toplevelID, title)

	case protocol.ToplevelRequestSetAppID:
		appID, err := r.String()
		if err != nil {
			c.log.Debug().Err(err).Msg("xdg_toplevel.set_app_id: truncated")
			return
		}
		if toplevel, ok := c.toplevels[toplevelID]; ok {
			toplevel.AppID = appID
		}

	default:
		c.log.Debug().Uint16("opcode", opcode).Msg("xdg_toplevel opcode not handled")
	}
}

// setToplevelTitle records the title and, if the toplevel's xdg_surface is
// still known, notifies the renderer which underlying surface it belongs to.
func (c *Client) setToplevelTitle(toplevelID uint32, title string) {
	toplevel, ok := c.toplevels[toplevelID]
	if !ok {
		return
	}
	toplevel.Title = title

	if xdgSurface, ok := c.xdgSurfaces[toplevel.XdgSurfaceID]; ok {
		c.emitRender(render.TitleChanged{SurfaceID: xdgSurface.SurfaceID, Title: title})
	}
}
