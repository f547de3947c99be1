package wire

import (
	"bytes"
	"errors"
	"testing"
)

func TestMessageEncodeHeaderLayout(t *testing.T) {
	msg := NewMessage(5, 1).Uint(42)
	b := msg.Encode()

	if len(b) != HeaderSize+4 {
		t.Fatalf("expected %d bytes, got %d", HeaderSize+4, len(b))
	}
	objectID := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
	if objectID != 5 {
		t.Fatalf("expected object id 5, got %d", objectID)
	}
	sizeOpcode := uint32(b[4]) | uint32(b[5])<<8 | uint32(b[6])<<16 | uint32(b[7])<<24
	if opcode := uint16(sizeOpcode & 0xFFFF); opcode != 1 {
		t.Fatalf("expected opcode 1, got %d", opcode)
	}
	if size := sizeOpcode >> 16; size != uint32(len(b)) {
		t.Fatalf("expected size field %d, got %d", len(b), size)
	}
}

func TestStringArgumentLengthIncludesNulAndIsPadded(t *testing.T) {
	msg := NewMessage(1, 0).String("wl_compositor") // length 13, +1 NUL = 14, pad to 16
	b := msg.Encode()
	payload := b[HeaderSize:]

	strLen := uint32(payload[0]) | uint32(payload[1])<<8 | uint32(payload[2])<<16 | uint32(payload[3])<<24
	if strLen != 14 {
		t.Fatalf("expected string length 14 (13 chars + NUL), got %d", strLen)
	}
	if len(payload)-4 != 16 {
		t.Fatalf("expected padded string field of 16 bytes, got %d", len(payload)-4)
	}
	if payload[4+13] != 0 {
		t.Fatalf("expected NUL terminator at end of string bytes")
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cases := []Message{
		NewMessage(1, 1).Uint(7),
		NewMessage(2, 0).Int(-5).Uint(10).Fixed(NewFixed(3.5)),
		NewMessage(3, 2).String("xdg_wm_base").Uint(3).NewID(40),
		NewMessage(4, 9).Array([]byte{0x01, 0x02, 0x03}),
		NewMessage(5, 0), // no arguments
	}

	for i, msg := range cases {
		b := msg.Encode()
		d := NewDecoder()
		d.Push(b)

		objectID, opcode, payload, ok, err := d.Decode()
		if err != nil {
			t.Fatalf("case %d: unexpected error: %v", i, err)
		}
		if !ok {
			t.Fatalf("case %d: expected a decoded frame", i)
		}
		if objectID != msg.ObjectID {
			t.Fatalf("case %d: object id mismatch: got %d want %d", i, objectID, msg.ObjectID)
		}
		if opcode != msg.Opcode {
			t.Fatalf("case %d: opcode mismatch: got %d want %d", i, opcode, msg.Opcode)
		}
		if len(payload) != len(b)-HeaderSize {
			t.Fatalf("case %d: payload length mismatch: got %d want %d", i, len(payload), len(b)-HeaderSize)
		}
		if d.Buffered() != 0 {
			t.Fatalf("case %d: expected decoder to be drained, %d bytes left", i, d.Buffered())
		}
	}
}

// TestStreamingRobustness feeds an encoded message split at every possible
// byte boundary and checks the decoder only ever produces a complete frame
// once all the bytes have arrived, never early and never corrupted.
func TestStreamingRobustness(t *testing.T) {
	msg := NewMessage(9, 3).String("a test string").Uint(123).Int(-99)
	b := msg.Encode()

	for split := 0; split <= len(b); split++ {
		d := NewDecoder()
		d.Push(b[:split])

		objectID, _, _, ok, err := d.Decode()
		if err != nil {
			t.Fatalf("split %d: unexpected error: %v", split, err)
		}
		if split < len(b) {
			if ok {
				t.Fatalf("split %d: decoded a frame before all bytes arrived", split)
			}
			d.Push(b[split:])
			objectID, _, _, ok, err = d.Decode()
			if err != nil {
				t.Fatalf("split %d: unexpected error after completing frame: %v", split, err)
			}
		}
		if !ok {
			t.Fatalf("split %d: expected a complete frame once all bytes pushed", split)
		}
		if objectID != 9 {
			t.Fatalf("split %d: object id mismatch: got %d", split, objectID)
		}
	}
}

func TestDecodeNeedsMoreData(t *testing.T) {
	d := NewDecoder()
	d.Push([]byte{1, 0, 0, 0}) // only 4 of 8 header bytes

	_, _, _, ok, err := d.Decode()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatalf("expected Decode to report no frame yet")
	}
}

func TestDecodeRejectsUndersizedHeader(t *testing.T) {
	d := NewDecoder()
	// size field of 4 is smaller than HeaderSize (8): malformed.
	d.Push([]byte{1, 0, 0, 0, 0, 0, 4, 0})

	_, _, _, ok, err := d.Decode()
	if ok {
		t.Fatalf("expected decode to fail, not succeed")
	}
	if !errors.Is(err, ErrMalformedFrame) {
		t.Fatalf("expected ErrMalformedFrame, got %v", err)
	}
}

func TestDecodeRejectsOversizedHeader(t *testing.T) {
	d := NewDecoder()
	huge := uint32(MaxFrameSize + 1)
	d.Push([]byte{1, 0, 0, 0, byte(huge), byte(huge >> 8), byte(huge >> 16), byte(huge >> 24)})

	_, _, _, ok, err := d.Decode()
	if ok {
		t.Fatalf("expected decode to fail, not succeed")
	}
	if !errors.Is(err, ErrMalformedFrame) {
		t.Fatalf("expected ErrMalformedFrame, got %v", err)
	}
}

func TestReaderRoundTripsArguments(t *testing.T) {
	msg := NewMessage(1, 0).
		Int(-7).
		Uint(42).
		Fixed(NewFixed(1.25)).
		String("hello").
		Object(99).
		Array([]byte{9, 8, 7})
	b := msg.Encode()

	r := NewReader(b[HeaderSize:])

	if v, err := r.Int(); err != nil || v != -7 {
		t.Fatalf("Int: got %d, %v", v, err)
	}
	if v, err := r.Uint(); err != nil || v != 42 {
		t.Fatalf("Uint: got %d, %v", v, err)
	}
	if v, err := r.Fixed(); err != nil || v.Float64() != 1.25 {
		t.Fatalf("Fixed: got %v, %v", v.Float64(), err)
	}
	if v, err := r.String(); err != nil || v != "hello" {
		t.Fatalf("String: got %q, %v", v, err)
	}
	if v, err := r.Object(); err != nil || v != 99 {
		t.Fatalf("Object: got %d, %v", v, err)
	}
	if v, err := r.Array(); err != nil || !bytes.Equal(v, []byte{9, 8, 7}) {
		t.Fatalf("Array: got %v, %v", v, err)
	}
	if r.Remaining() != 0 {
		t.Fatalf("expected reader fully consumed, %d bytes left", r.Remaining())
	}
}

func TestReaderReturnsErrTruncated(t *testing.T) {
	r := NewReader([]byte{1, 2}) // too short for a uint32
	if _, err := r.Uint(); !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
}

func TestReaderStringTruncatedLength(t *testing.T) {
	// length field says 100 but there are no following bytes.
	r := NewReader([]byte{100, 0, 0, 0})
	if _, err := r.String(); !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
}

func TestFixedConversion(t *testing.T) {
	f := NewFixed(-12.5)
	if got := f.Float64(); got != -12.5 {
		t.Fatalf("expected -12.5 round trip, got %v", got)
	}
}

func TestPeekAndConsume(t *testing.T) {
	d := NewDecoder()
	d.Push([]byte("PIXLxxxx"))
	peeked := d.Peek()
	if string(peeked[:4]) != "PIXL" {
		t.Fatalf("expected PIXL magic in peeked bytes, got %q", peeked[:4])
	}
	d.Consume(4)
	if d.Buffered() != 4 {
		t.Fatalf("expected 4 bytes remaining after consume, got %d", d.Buffered())
	}
}
