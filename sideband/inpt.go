package sideband

import "encoding/binary"

// InptFrameSize is the fixed size of every INPT frame.
const InptFrameSize = 20

// inptMagic is the 4 ASCII bytes "INPT".
var inptMagic = [4]byte{'I', 'N', 'P', 'T'}

// INPT frame kinds.
const (
	InptKindKey    uint32 = 1
	InptKindMotion uint32 = 2
	InptKindButton uint32 = 3
)

// Input states carried in an INPT key/button frame's a field.
const (
	StateReleased uint32 = 0
	StatePressed  uint32 = 1
)

// InptFrame is one host-to-guest input command in its wire shape: kind
// selects how a and b are interpreted, pad is always zero and exists only
// to round the frame to 20 bytes.
type InptFrame struct {
	Kind uint32
	A    uint32
	B    uint32
}

// EncodeInpt renders an InptFrame to its fixed 20-byte wire form.
func EncodeInpt(f InptFrame) []byte {
	out := make([]byte, InptFrameSize)
	copy(out[0:4], inptMagic[:])
	binary.LittleEndian.PutUint32(out[4:8], f.Kind)
	binary.LittleEndian.PutUint32(out[8:12], f.A)
	binary.LittleEndian.PutUint32(out[12:16], f.B)
	// bytes 16:20 stay zero: the pad field.
	return out
}

// EncodeKey builds the INPT frame for a key press or release of a Linux
// evdev keycode.
func EncodeKey(state uint32, linuxKeycode uint32) []byte {
	return EncodeInpt(InptFrame{Kind: InptKindKey, A: state, B: linuxKeycode})
}

// EncodeMotion builds the INPT frame for a pointer motion to integer pixel
// coordinates.
func EncodeMotion(x, y int32) []byte {
	return EncodeInpt(InptFrame{Kind: InptKindMotion, A: uint32(x), B: uint32(y)})
}

// EncodeButton builds the INPT frame for a pointer button press or release.
func EncodeButton(state uint32, buttonCode uint32) []byte {
	return EncodeInpt(InptFrame{Kind: InptKindButton, A: state, B: buttonCode})
}

// DecodeInpt parses a 20-byte INPT frame. ok is false if buf isn't exactly
// InptFrameSize bytes or doesn't start with the INPT magic.
func DecodeInpt(buf []byte) (InptFrame, bool) {
	if len(buf) != InptFrameSize {
		return InptFrame{}, false
	}
	if buf[0] != inptMagic[0] || buf[1] != inptMagic[1] || buf[2] != inptMagic[2] || buf[3] != inptMagic[3] {
		return InptFrame{}, false
	}
	return InptFrame{
		Kind: binary.LittleEndian.Uint32(buf[4:8]),
		A:    binary.LittleEndian.Uint32(buf[8:12]),
		B:    binary.LittleEndian.Uint32(buf[12:16]),
	}, true
}
