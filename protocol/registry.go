package protocol

import "github.com/winway/hostbridge/wire"

// wl_registry request opcodes (client -> server).
const RegistryRequestBind uint16 = 0

// wl_registry event opcodes (server -> client).
const (
	RegistryEventGlobal       uint16 = 0
	RegistryEventGlobalRemove uint16 = 1
)

// Global describes one name advertised through wl_registry.global.
type Global struct {
	Name      uint32
	Interface string
	Version   uint32
}

// StandardGlobals is the fixed set of globals advertised to every connecting
// client, in advertisement order.
func StandardGlobals() []Global {
	return []Global{
		{Name: 1, Interface: "wl_compositor", Version: 5},
		{Name: 2, Interface: "wl_subcompositor", Version: 1},
		{Name: 3, Interface: "wl_shm", Version: 1},
		{Name: 4, Interface: "xdg_wm_base", Version: 3},
		{Name: 5, Interface: "wl_seat", Version: 7},
		{Name: 6, Interface: "wl_output", Version: 4},
		{Name: 7, Interface: "wl_data_device_manager", Version: 3},
	}
}

// RegistryGlobal builds a wl_registry.global event.
func RegistryGlobal(registryID, name uint32, iface string, version uint32) wire.Message {
	return wire.NewMessage(registryID, RegistryEventGlobal).
		Uint(name).String(iface).Uint(version)
}

// RegistryGlobalRemove builds a wl_registry.global_remove event.
func RegistryGlobalRemove(registryID, name uint32) wire.Message {
	return wire.NewMessage(registryID, RegistryEventGlobalRemove).Uint(name)
}

// BindRequest is the decoded payload of a wl_registry.bind request.
type BindRequest struct {
	Name      uint32
	Interface string
	Version   uint32
	ID        uint32
}

// DecodeBindRequest parses a wl_registry.bind request payload.
func DecodeBindRequest(r *wire.Reader) (BindRequest, error) {
	var req BindRequest
	var err error
	if req.Name, err = r.Uint(); err != nil {
		return req, err
	}
	if req.Interface, err = r.String(); err != nil {
		return req, err
	}
	if req.Version, err = r.Uint(); err != nil {
		return req, err
	}
	if req.ID, err = r.Object(); err != nil {
		return req, err
	}
	return req, nil
}
