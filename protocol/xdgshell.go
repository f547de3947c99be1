package protocol

import "github.com/winway/hostbridge/wire"

// xdg_wm_base request opcodes (client -> server).
const (
	WmBaseRequestDestroy          uint16 = 0
	WmBaseRequestCreatePositioner uint16 = 1
	WmBaseRequestGetXdgSurface    uint16 = 2
	WmBaseRequestPong             uint16 = 3
)

// xdg_wm_base event opcodes (server -> client).
const WmBaseEventPing uint16 = 0

// xdg_surface request opcodes (client -> server).
const (
	XdgSurfaceRequestDestroy           uint16 = 0
	XdgSurfaceRequestGetToplevel       uint16 = 1
	XdgSurfaceRequestGetPopup          uint16 = 2
	XdgSurfaceRequestSetWindowGeometry uint16 = 3
	XdgSurfaceRequestAckConfigure      uint16 = 4
)

// xdg_surface event opcodes (server -> client).
const XdgSurfaceEventConfigure uint16 = 0

// xdg_toplevel request opcodes (client -> server).
const (
	ToplevelRequestDestroy        uint16 = 0
	ToplevelRequestSetParent      uint16 = 1
	ToplevelRequestSetTitle       uint16 = 2
	ToplevelRequestSetAppID       uint16 = 3
	ToplevelRequestShowWindowMenu uint16 = 4
	ToplevelRequestMove           uint16 = 5
	ToplevelRequestResize         uint16 = 6
	ToplevelRequestSetMaxSize     uint16 = 7
	ToplevelRequestSetMinSize     uint16 = 8
	ToplevelRequestSetMaximized   uint16 = 9
	ToplevelRequestUnsetMaximized uint16 = 10
	ToplevelRequestSetFullscreen  uint16 = 11
	ToplevelRequestUnsetFullscreen uint16 = 12
	ToplevelRequestSetMinimized   uint16 = 13
)

// xdg_toplevel event opcodes (server -> client).
const (
	ToplevelEventConfigure       uint16 = 0
	ToplevelEventClose           uint16 = 1
	ToplevelEventConfigureBounds uint16 = 2
)

// ToplevelState is one flag of the array xdg_toplevel.configure sends.
type ToplevelState uint32

const (
	ToplevelStateMaximized ToplevelState = 1
	ToplevelStateFullscreen ToplevelState = 2
	ToplevelStateResizing  ToplevelState = 3
	ToplevelStateActivated ToplevelState = 4
	ToplevelStateTiledLeft  ToplevelState = 5
	ToplevelStateTiledRight ToplevelState = 6
	ToplevelStateTiledTop   ToplevelState = 7
	ToplevelStateTiledBottom ToplevelState = 8
)

// XdgSurface is the state of one xdg_surface role object.
type XdgSurface struct {
	ID         uint32
	SurfaceID  uint32
	ToplevelID uint32 // 0 means no toplevel role yet
}

// XdgToplevel is the state of one xdg_toplevel role object.
type XdgToplevel struct {
	ID           uint32
	XdgSurfaceID uint32
	Title        string
	AppID        string
	MinWidth     int32
	MinHeight    int32
	MaxWidth     int32
	MaxHeight    int32
}

// WmBasePing builds an xdg_wm_base.ping event.
func WmBasePing(wmBaseID, serial uint32) wire.Message {
	return wire.NewMessage(wmBaseID, WmBaseEventPing).Uint(serial)
}

// XdgSurfaceConfigure builds an xdg_surface.configure event.
func XdgSurfaceConfigure(surfaceID, serial uint32) wire.Message {
	return wire.NewMessage(surfaceID, XdgSurfaceEventConfigure).Uint(serial)
}

// ToplevelConfigure builds an xdg_toplevel.configure event, packing states
// into a little-endian uint32 array as the wire format requires.
func ToplevelConfigure(toplevelID uint32, width, height int32, states []ToplevelState) wire.Message {
	statesBytes := make([]byte, 0, len(states)*4)
	for _, s := range states {
		v := uint32(s)
		statesBytes = append(statesBytes, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
	}
	return wire.NewMessage(toplevelID, ToplevelEventConfigure).
		Int(width).Int(height).Array(statesBytes)
}

// ToplevelClose builds an xdg_toplevel.close event.
func ToplevelClose(toplevelID uint32) wire.Message {
	return wire.NewMessage(toplevelID, ToplevelEventClose)
}

// GetXdgSurfaceRequest is the decoded payload of xdg_wm_base.get_xdg_surface.
type GetXdgSurfaceRequest struct {
	XdgSurfaceID uint32
	SurfaceID    uint32
}

// DecodeGetXdgSurfaceRequest parses an xdg_wm_base.get_xdg_surface payload.
func DecodeGetXdgSurfaceRequest(r *wire.Reader) (GetXdgSurfaceRequest, error) {
	var req GetXdgSurfaceRequest
	var err error
	if req.XdgSurfaceID, err = r.Object(); err != nil {
		return req, err
	}
	if req.SurfaceID, err = r.Object(); err != nil {
		return req, err
	}
	return req, nil
}
