package connection

import (
	"github.com/winway/hostbridge/objects"
	"github.com/winway/hostbridge/protocol"
	"github.com/winway/hostbridge/render"
	"github.com/winway/hostbridge/wire"
)

func (c *Client) handleCompositor(opcode uint16, r *wire.Reader) {
	switch opcode {
	case protocol.CompositorRequestCreateSurface:
		surfaceID, err := r.Object()
		if err != nil {
			c.log.Debug().Err(err).Msg("wl_compositor.create_surface: truncated")
			return
		}
		c.log.Debug().Uint32("surface_id", surfaceID).Msg("wl_compositor.create_surface")

		c.objects.Insert(objects.Object{ID: surfaceID, Interface: objects.Surface, Version: 5})
		c.surfaces[surfaceID] = protocol.NewSurface(surfaceID)
		c.emitRender(render.SurfaceCreated{ID: surfaceID})

	case protocol.CompositorRequestCreateRegion:
		regionID, err := r.Object()
		if err != nil {
			c.log.Debug().Err(err).Msg("wl_compositor.create_region: truncated")
			return
		}
		c.objects.Insert(objects.Object{ID: regionID, Interface: objects.Region, Version: 1})

	default:
		c.log.Warn().Uint16("opcode", opcode).Msg("unknown wl_compositor opcode")
	}
}

func (c *Client) handleSurface(surfaceID uint32, opcode uint16, r *wire.Reader) {
	switch opcode {
	case protocol.SurfaceRequestDestroy:
		delete(c.surfaces, surfaceID)
		c.objects.Remove(surfaceID)
		c.emitRender(render.SurfaceDestroyed{ID: surfaceID})

	case protocol.SurfaceRequestAttach:
		req, err := protocol.DecodeAttachRequest(r)
		if err != nil {
			c.log.Debug().Err(err).Msg("wl_surface.attach: truncated")
			return
		}
		if surface, ok := c.surfaces[surfaceID]; ok {
			surface.BufferID = req.BufferID
			surface.BufferX = req.X
			surface.BufferY = req.Y
		}

	case protocol.SurfaceRequestFrame:
		callbackID, err := r.Object()
		if err != nil {
			c.log.Debug().Err(err).Msg("wl_surface.frame: truncated")
			return
		}
		c.objects.Insert(objects.Object{ID: callbackID, Interface: objects.Callback, Version: 1})
		if surface, ok := c.surfaces[surfaceID]; ok {
			surface.FrameCallback = callbackID
		}

	case protocol.SurfaceRequestCommit:
		c.commitSurface(surfaceID)

	default:
		c.log.Debug().Uint16("opcode", opcode).Msg("wl_surface opcode not handled")
	}
}

// commitSurface implements wl_surface.commit's observable effects in the
// fixed order the bridge guarantees: a pending attached buffer is delivered
// to the renderer and released first, then any pending frame callback is
// completed and its object freed.
func (c *Client) commitSurface(surfaceID uint32) {
	surface, ok := c.surfaces[surfaceID]
	if !ok {
		return
	}
	surface.Committed = true

	if surface.BufferID != 0 {
		if buffer, ok := c.buffers[surface.BufferID]; ok {
			c.emitRender(render.SurfaceCommit{
				SurfaceID: surfaceID,
				Width:     buffer.Width,
				Height:    buffer.Height,
				Data:      buffer.Data,
			})
			c.emit(protocol.BufferRelease(surface.BufferID))
		}
	}

	if surface.FrameCallback != 0 {
		callbackID := surface.FrameCallback
		surface.FrameCallback = 0
		c.emit(protocol.CallbackDone(callbackID, nowMillis()))
		c.emit(protocol.DisplayDeleteID(callbackID))
	}
}
