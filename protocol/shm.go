package protocol

import "github.com/winway/hostbridge/wire"

// wl_shm request opcodes (client -> server).
const ShmRequestCreatePool uint16 = 0

// wl_shm event opcodes (server -> client).
const ShmEventFormat uint16 = 0

// wl_shm_pool request opcodes (client -> server).
const (
	PoolRequestCreateBuffer uint16 = 0
	PoolRequestDestroy      uint16 = 1
	PoolRequestResize       uint16 = 2
)

// wl_buffer request opcodes (client -> server).
const BufferRequestDestroy uint16 = 0

// wl_buffer event opcodes (server -> client).
const BufferEventRelease uint16 = 0

// SHM pixel formats this bridge advertises support for, by their Wayland
// wl_shm.format code.
const (
	ShmFormatArgb8888 uint32 = 0
	ShmFormatXrgb8888 uint32 = 1
)

// SupportedFormats is the set of formats advertised on wl_shm bind, in
// advertisement order.
func SupportedFormats() []uint32 {
	return []uint32{ShmFormatArgb8888, ShmFormatXrgb8888}
}

// ShmFormatEvent builds a wl_shm.format event.
func ShmFormatEvent(shmID, format uint32) wire.Message {
	return wire.NewMessage(shmID, ShmEventFormat).Uint(format)
}

// BufferRelease builds a wl_buffer.release event.
func BufferRelease(bufferID uint32) wire.Message {
	return wire.NewMessage(bufferID, BufferEventRelease)
}

// Pool is the state of one wl_shm_pool. The tunnel carries no fd, so unlike
// real Wayland there is no mapped memory here: size is bookkeeping only,
// pixel content for any buffer created from this pool arrives later via the
// PIXL sideband frame, keyed by surface id at commit time.
type Pool struct {
	ID   uint32
	Size uint32
}

// Buffer is the state of one wl_buffer: its geometry, as declared by
// wl_shm_pool.create_buffer, plus whatever pixel data the PIXL sideband has
// delivered for it so far.
type Buffer struct {
	ID     uint32
	PoolID uint32
	Offset int32
	Width  int32
	Height int32
	Stride int32
	Format uint32
	Data   []byte
}

// NewBuffer returns a Buffer with the given declared geometry and no data
// yet.
func NewBuffer(id, poolID uint32, offset, width, height, stride int32, format uint32) *Buffer {
	return &Buffer{
		ID:     id,
		PoolID: poolID,
		Offset: offset,
		Width:  width,
		Height: height,
		Stride: stride,
		Format: format,
	}
}

// CreateBufferRequest is the decoded payload of a wl_shm_pool.create_buffer
// request.
type CreateBufferRequest struct {
	BufferID uint32
	Offset   int32
	Width    int32
	Height   int32
	Stride   int32
	Format   uint32
}

// DecodeCreateBufferRequest parses a wl_shm_pool.create_buffer request
// payload.
func DecodeCreateBufferRequest(r *wire.Reader) (CreateBufferRequest, error) {
	var req CreateBufferRequest
	var err error
	if req.BufferID, err = r.Object(); err != nil {
		return req, err
	}
	if req.Offset, err = r.Int(); err != nil {
		return req, err
	}
	if req.Width, err = r.Int(); err != nil {
		return req, err
	}
	if req.Height, err = r.Int(); err != nil {
		return req, err
	}
	if req.Stride, err = r.Int(); err != nil {
		return req, err
	}
	if req.Format, err = r.Uint(); err != nil {
		return req, err
	}
	return req, nil
}
