// Package sideband implements the two frame formats that ride the same byte
// stream as Wayland protocol messages, distinguished from it and from each
// other by a 4-byte ASCII magic no Wayland object id can equal: PIXL carries
// guest-to-host pixel data, INPT carries host-to-guest input.
package sideband

import "encoding/binary"

// PixlHeaderSize is the fixed size of a PIXL frame's header, before its
// variable-length payload.
const PixlHeaderSize = 24

// pixlMagic is the 4 ASCII bytes "PIXL".
var pixlMagic = [4]byte{'P', 'I', 'X', 'L'}

// PixlFrame is a decoded guest-to-host pixel data frame.
type PixlFrame struct {
	SurfaceID uint32
	Width     uint32
	Height    uint32
	Format    uint32
	Data      []byte
}

// TryDecodePixl inspects buf for a complete PIXL frame without consuming
// anything itself: it reports (frame, totalLength, true) when one is fully
// present, or (zero value, 0, false) when buf doesn't start with the PIXL
// magic or doesn't yet hold the full frame. The caller is responsible for
// discarding totalLength bytes from its own buffer on success.
func TryDecodePixl(buf []byte) (PixlFrame, int, bool) {
	if len(buf) < PixlHeaderSize {
		return PixlFrame{}, 0, false
	}
	if buf[0] != pixlMagic[0] || buf[1] != pixlMagic[1] || buf[2] != pixlMagic[2] || buf[3] != pixlMagic[3] {
		return PixlFrame{}, 0, false
	}

	surfaceID := binary.LittleEndian.Uint32(buf[4:8])
	width := binary.LittleEndian.Uint32(buf[8:12])
	height := binary.LittleEndian.Uint32(buf[12:16])
	format := binary.LittleEndian.Uint32(buf[16:20])
	length := binary.LittleEndian.Uint32(buf[20:24])

	total := PixlHeaderSize + int(length)
	if len(buf) < total {
		return PixlFrame{}, 0, false
	}

	data := append([]byte(nil), buf[PixlHeaderSize:total]...)
	return PixlFrame{
		SurfaceID: surfaceID,
		Width:     width,
		Height:    height,
		Format:    format,
		Data:      data,
	}, total, true
}

// EncodePixl renders a PIXL frame to wire bytes. Production code never
// builds one (PIXL only flows guest-to-host); this exists for tests that
// exercise TryDecodePixl against a frame built the same way the guest side
// would build it.
func EncodePixl(f PixlFrame) []byte {
	out := make([]byte, PixlHeaderSize+len(f.Data))
	copy(out[0:4], pixlMagic[:])
	binary.LittleEndian.PutUint32(out[4:8], f.SurfaceID)
	binary.LittleEndian.PutUint32(out[8:12], f.Width)
	binary.LittleEndian.PutUint32(out[12:16], f.Height)
	binary.LittleEndian.PutUint32(out[16:20], f.Format)
	binary.LittleEndian.PutUint32(out[20:24], uint32(len(f.Data)))
	copy(out[24:], f.Data)
	return out
}
