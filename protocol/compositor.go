package protocol

import "github.com/winway/hostbridge/wire"

// wl_compositor request opcodes (client -> server).
const (
	CompositorRequestCreateSurface uint16 = 0
	CompositorRequestCreateRegion  uint16 = 1
)

// wl_surface request opcodes (client -> server).
const (
	SurfaceRequestDestroy            uint16 = 0
	SurfaceRequestAttach             uint16 = 1
	SurfaceRequestDamage             uint16 = 2
	SurfaceRequestFrame              uint16 = 3
	SurfaceRequestSetOpaqueRegion    uint16 = 4
	SurfaceRequestSetInputRegion     uint16 = 5
	SurfaceRequestCommit             uint16 = 6
	SurfaceRequestSetBufferTransform uint16 = 7
	SurfaceRequestSetBufferScale     uint16 = 8
	SurfaceRequestDamageBuffer       uint16 = 9
	SurfaceRequestOffset             uint16 = 10
)

// wl_surface event opcodes (server -> client).
const (
	SurfaceEventEnter                    uint16 = 0
	SurfaceEventLeave                    uint16 = 1
	SurfaceEventPreferredBufferScale     uint16 = 2
	SurfaceEventPreferredBufferTransform uint16 = 3
)

// wl_callback event opcodes (server -> client).
const CallbackEventDone uint16 = 0

// Surface holds the mutable state of one wl_surface between commits.
type Surface struct {
	ID             uint32
	BufferID       uint32 // 0 means no buffer attached
	BufferX        int32
	BufferY        int32
	Committed      bool
	FrameCallback  uint32 // 0 means no pending frame callback
}

// NewSurface returns a freshly created, unattached surface.
func NewSurface(id uint32) *Surface {
	return &Surface{ID: id}
}

// CallbackDone builds a wl_callback.done event carrying the given
// millisecond timestamp.
func CallbackDone(callbackID, timeMillis uint32) wire.Message {
	return wire.NewMessage(callbackID, CallbackEventDone).Uint(timeMillis)
}

// SurfaceEnter builds a wl_surface.enter event announcing the surface has
// entered the given output.
func SurfaceEnter(surfaceID, outputID uint32) wire.Message {
	return wire.NewMessage(surfaceID, SurfaceEventEnter).Uint(outputID)
}

// AttachRequest is the decoded payload of a wl_surface.attach request.
type AttachRequest struct {
	BufferID uint32
	X, Y     int32
}

// DecodeAttachRequest parses a wl_surface.attach request payload.
func DecodeAttachRequest(r *wire.Reader) (AttachRequest, error) {
	var req AttachRequest
	var err error
	if req.BufferID, err = r.Object(); err != nil {
		return req, err
	}
	if req.X, err = r.Int(); err != nil {
		return req, err
	}
	if req.Y, err = r.Int(); err != nil {
		return req, err
	}
	return req, nil
}
