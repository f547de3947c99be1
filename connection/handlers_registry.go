package connection

import (
	"github.com/winway/hostbridge/objects"
	"github.com/winway/hostbridge/protocol"
	"github.com/winway/hostbridge/wire"
)

func (c *Client) handleRegistry(opcode uint16, r *wire.Reader) {
	if opcode != protocol.RegistryRequestBind {
		c.log.Warn().Uint16("opcode", opcode).Msg("unknown wl_registry opcode")
		return
	}

	req, err := protocol.DecodeBindRequest(r)
	if err != nil {
		c.log.Debug().Err(err).Msg("wl_registry.bind: truncated")
		return
	}
	c.log.Debug().Uint32("name", req.Name).Str("interface", req.Interface).
		Uint32("version", req.Version).Uint32("id", req.ID).Msg("wl_registry.bind")

	switch req.Interface {
	case "wl_compositor":
		c.compositorID = req.ID
		c.objects.Insert(objects.Object{ID: req.ID, Interface: objects.Compositor, Version: req.Version})
	case "wl_subcompositor":
		c.objects.Insert(objects.Object{ID: req.ID, Interface: objects.Subcompositor, Version: req.Version})
	case "wl_shm":
		c.shmID = req.ID
		c.objects.Insert(objects.Object{ID: req.ID, Interface: objects.Shm, Version: req.Version})
		for _, format := range protocol.SupportedFormats() {
			c.emit(protocol.ShmFormatEvent(req.ID, format))
		}
	case "xdg_wm_base":
		c.wmBaseID = req.ID
		c.objects.Insert(objects.Object{ID: req.ID, Interface: objects.XdgWmBase, Version: req.Version})
	case "wl_seat":
		c.seatID = req.ID
		c.objects.Insert(objects.Object{ID: req.ID, Interface: objects.Seat, Version: req.Version})
		c.emit(protocol.SeatCapabilities(req.ID))
		c.emit(protocol.SeatNameEvent(req.ID))
	case "wl_output":
		c.outputID = req.ID
		c.objects.Insert(objects.Object{ID: req.ID, Interface: objects.Output, Version: req.Version})
		for _, ev := range protocol.OutputBindEvents(req.ID) {
			c.emit(ev)
		}
	case "wl_data_device_manager":
		c.objects.Insert(objects.Object{ID: req.ID, Interface: objects.DataDeviceManager, Version: req.Version})
	default:
		c.log.Warn().Str("interface", req.Interface).Msg("unknown interface to bind")
	}
}
