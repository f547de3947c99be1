// Package wire implements the Wayland binary wire protocol: an 8-byte
// header (object id, size<<16|opcode) followed by typed, 4-byte-padded
// arguments.
//
// This is a from-scratch codec, not a binding to libwayland: the tunnel this
// module terminates carries no out-of-band file descriptors, so every
// argument that would normally ride an ancillary-data fd (wl_shm pool
// creation, keymap fds) is represented here without one — see the `fd`
// argument kind below.
package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// HeaderSize is the fixed size of a Wayland message header in bytes.
const HeaderSize = 8

// MaxFrameSize bounds a single decoded frame. The header's size field is 16
// bits wide, so no header can declare more than 65535 bytes and this bound
// is never exceeded by a decoded header.
const MaxFrameSize = 1 << 20

// ErrMalformedFrame is returned for a header whose declared size is smaller
// than the header itself, or larger than MaxFrameSize. It is fatal: the
// connection that produced it must be terminated.
var ErrMalformedFrame = errors.New("wire: malformed frame")

// Fixed is a 24.8 signed fixed-point number, Wayland's `fixed` argument type.
type Fixed int32

// NewFixed converts a float64 to a Fixed.
func NewFixed(v float64) Fixed {
	return Fixed(v * 256.0)
}

// Float64 converts a Fixed back to a float64.
func (f Fixed) Float64() float64 {
	return float64(f) / 256.0
}

// ArgKind identifies the wire encoding of a Message argument.
type ArgKind int

const (
	KindInt ArgKind = iota
	KindUint
	KindFixed
	KindString
	KindObject
	KindNewID
	KindArray
	KindFd // out-of-band in real Wayland; consumes no payload bytes here.
)

// Argument is a single typed request/event argument.
type Argument struct {
	Kind  ArgKind
	Int   int32
	Uint  uint32
	Fixed Fixed
	Str   string
	Bytes []byte
}

func ArgInt(v int32) Argument    { return Argument{Kind: KindInt, Int: v} }
func ArgUint(v uint32) Argument  { return Argument{Kind: KindUint, Uint: v} }
func ArgFixed(v Fixed) Argument  { return Argument{Kind: KindFixed, Fixed: v} }
func ArgString(v string) Argument {
	return Argument{Kind: KindString, Str: v}
}
func ArgObject(v uint32) Argument { return Argument{Kind: KindObject, Uint: v} }
func ArgNewID(v uint32) Argument  { return Argument{Kind: KindNewID, Uint: v} }
func ArgArray(v []byte) Argument  { return Argument{Kind: KindArray, Bytes: v} }

// Message is an outgoing request or event: an object id, an opcode, and an
// ordered argument list whose types are implied by (interface, opcode) and
// never transmitted.
type Message struct {
	ObjectID uint32
	Opcode   uint16
	Args     []Argument
}

// NewMessage starts building a Message for the given object and opcode.
func NewMessage(objectID uint32, opcode uint16) Message {
	return Message{ObjectID: objectID, Opcode: opcode}
}

func (m Message) Arg(a Argument) Message {
	m.Args = append(m.Args, a)
	return m
}

func (m Message) Int(v int32) Message    { return m.Arg(ArgInt(v)) }
func (m Message) Uint(v uint32) Message  { return m.Arg(ArgUint(v)) }
func (m Message) Fixed(v Fixed) Message  { return m.Arg(ArgFixed(v)) }
func (m Message) String(v string) Message { return m.Arg(ArgString(v)) }
func (m Message) Object(v uint32) Message { return m.Arg(ArgObject(v)) }
func (m Message) NewID(v uint32) Message  { return m.Arg(ArgNewID(v)) }
func (m Message) Array(v []byte) Message  { return m.Arg(ArgArray(v)) }

// pad4 returns the number of zero bytes needed to round n up to a multiple
// of 4.
func pad4(n int) int {
	return (4 - (n % 4)) % 4
}

// Encode renders the message to its wire bytes, computing size and padding.
func (m Message) Encode() []byte {
	payload := make([]byte, 0, 32)
	for _, a := range m.Args {
		switch a.Kind {
		case KindInt:
			payload = binary.LittleEndian.AppendUint32(payload, uint32(a.Int))
		case KindUint, KindObject, KindNewID:
			payload = binary.LittleEndian.AppendUint32(payload, a.Uint)
		case KindFixed:
			payload = binary.LittleEndian.AppendUint32(payload, uint32(a.Fixed))
		case KindString:
			b := []byte(a.Str)
			strLen := uint32(len(b) + 1) // length includes the NUL terminator
			payload = binary.LittleEndian.AppendUint32(payload, strLen)
			payload = append(payload, b...)
			payload = append(payload, 0)
			payload = append(payload, make([]byte, pad4(int(strLen)))...)
		case KindArray:
			payload = binary.LittleEndian.AppendUint32(payload, uint32(len(a.Bytes)))
			payload = append(payload, a.Bytes...)
			payload = append(payload, make([]byte, pad4(len(a.Bytes)))...)
		case KindFd:
			// No payload bytes: fds are not transmitted over this tunnel.
		}
	}

	size := uint32(HeaderSize + len(payload))
	out := make([]byte, HeaderSize, size)
	binary.LittleEndian.PutUint32(out[0:4], m.ObjectID)
	binary.LittleEndian.PutUint32(out[4:8], (size<<16)|uint32(m.Opcode))
	out = append(out, payload...)
	return out
}

// Decoder is a streaming Wayland frame reader: Push appends bytes, Decode
// pulls exactly one whole frame when available.
type Decoder struct {
	buf []byte
}

// NewDecoder returns an empty streaming decoder.
func NewDecoder() *Decoder {
	return &Decoder{buf: make([]byte, 0, 4096)}
}

// Push appends newly received bytes to the decoder's internal buffer.
func (d *Decoder) Push(b []byte) {
	d.buf = append(d.buf, b...)
}

// Buffered reports how many bytes are currently buffered and undecoded.
func (d *Decoder) Buffered() int {
	return len(d.buf)
}

// Peek returns the buffered bytes without consuming them, for callers (the
// connection engine) that need to look ahead for a sideband magic before
// committing to a Wayland decode.
func (d *Decoder) Peek() []byte {
	return d.buf
}

// Consume drops n bytes from the front of the internal buffer, used by
// callers that parsed a non-Wayland sideband frame out of Peek's view.
func (d *Decoder) Consume(n int) {
	d.buf = d.buf[n:]
}

// Decode returns the next whole frame's (object_id, opcode, payload) if one
// is fully buffered. It returns (0, 0, nil, false, nil) when more data is
// needed, and a non-nil error (ErrMalformedFrame) when the buffered header
// declares an impossible size — that error is fatal for the connection.
func (d *Decoder) Decode() (objectID uint32, opcode uint16, payload []byte, ok bool, err error) {
	if len(d.buf) < HeaderSize {
		return 0, 0, nil, false, nil
	}

	objectID = binary.LittleEndian.Uint32(d.buf[0:4])
	sizeOpcode := binary.LittleEndian.Uint32(d.buf[4:8])
	size := sizeOpcode >> 16
	opcode = uint16(sizeOpcode & 0xFFFF)

	if size < HeaderSize || size > MaxFrameSize {
		return 0, 0, nil, false, fmt.Errorf("%w: object %d declared size %d", ErrMalformedFrame, objectID, size)
	}
	if uint32(len(d.buf)) < size {
		return 0, 0, nil, false, nil
	}

	payload = append([]byte(nil), d.buf[HeaderSize:size]...)
	d.buf = d.buf[size:]
	return objectID, opcode, payload, true, nil
}
