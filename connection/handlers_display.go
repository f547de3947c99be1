package connection

import (
	"github.com/winway/hostbridge/objects"
	"github.com/winway/hostbridge/protocol"
	"github.com/winway/hostbridge/wire"
)

func (c *Client) handleDisplay(opcode uint16, r *wire.Reader) {
	switch opcode {
	case protocol.DisplayRequestSync:
		callbackID, err := r.Object()
		if err != nil {
			c.log.Debug().Err(err).Msg("wl_display.sync: truncated")
			return
		}
		c.log.Debug().Uint32("callback_id", callbackID).Msg("wl_display.sync")

		c.objects.Insert(objects.Object{ID: callbackID, Interface: objects.Callback, Version: 1})
		c.emit(protocol.CallbackDone(callbackID, nowMillis()))
		c.emit(protocol.DisplayDeleteID(callbackID))

	case protocol.DisplayRequestGetRegistry:
		registryID, err := r.Object()
		if err != nil {
			c.log.Debug().Err(err).Msg("wl_display.get_registry: truncated")
			return
		}
		c.log.Debug().Uint32("registry_id", registryID).Msg("wl_display.get_registry")

		c.registryID = registryID
		c.objects.Insert(objects.Object{ID: registryID, Interface: objects.Registry, Version: 1})

		for _, g := range protocol.StandardGlobals() {
			c.emit(protocol.RegistryGlobal(registryID, g.Name, g.Interface, g.Version))
		}

	default:
		c.log.Warn().Uint16("opcode", opcode).Msg("unknown wl_display opcode")
	}
}
