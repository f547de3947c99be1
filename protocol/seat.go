package protocol

import "github.com/winway/hostbridge/wire"

// wl_seat request opcodes (client -> server).
const (
	SeatRequestGetPointer  uint16 = 0
	SeatRequestGetKeyboard uint16 = 1
	SeatRequestGetTouch    uint16 = 2
	SeatRequestRelease     uint16 = 3
)

// wl_seat event opcodes (server -> client).
const (
	SeatEventCapabilities uint16 = 0
	SeatEventName         uint16 = 1
)

// wl_seat capability flags (bitmask sent in wl_seat.capabilities).
const (
	SeatCapabilityPointer  uint32 = 1
	SeatCapabilityKeyboard uint32 = 2
	SeatCapabilityTouch    uint32 = 4
)

// SeatName is the name advertised through wl_seat.name.
const SeatName = "win-way-seat"

// wl_pointer event opcodes (server -> client).
const (
	PointerEventEnter  uint16 = 0
	PointerEventLeave  uint16 = 1
	PointerEventMotion uint16 = 2
	PointerEventButton uint16 = 3
	PointerEventAxis   uint16 = 4
	PointerEventFrame  uint16 = 5
)

// wl_keyboard event opcodes (server -> client).
const (
	KeyboardEventKeymap     uint16 = 0
	KeyboardEventEnter      uint16 = 1
	KeyboardEventLeave      uint16 = 2
	KeyboardEventKey        uint16 = 3
	KeyboardEventModifiers  uint16 = 4
	KeyboardEventRepeatInfo uint16 = 5
)

// wl_pointer/wl_keyboard key/button states.
const (
	KeyStateReleased uint32 = 0
	KeyStatePressed  uint32 = 1
)

// SeatCapabilities builds a wl_seat.capabilities event. This bridge always
// advertises both pointer and keyboard.
func SeatCapabilities(seatID uint32) wire.Message {
	return wire.NewMessage(seatID, SeatEventCapabilities).
		Uint(SeatCapabilityPointer | SeatCapabilityKeyboard)
}

// SeatNameEvent builds a wl_seat.name event.
func SeatNameEvent(seatID uint32) wire.Message {
	return wire.NewMessage(seatID, SeatEventName).String(SeatName)
}

// KeyboardKey builds a wl_keyboard.key event.
func KeyboardKey(keyboardID, serial, timeMillis, key, state uint32) wire.Message {
	return wire.NewMessage(keyboardID, KeyboardEventKey).
		Uint(serial).Uint(timeMillis).Uint(key).Uint(state)
}

// PointerMotion builds a wl_pointer.motion event; x and y are already
// converted to 24.8 fixed point.
func PointerMotion(pointerID, timeMillis uint32, x, y wire.Fixed) wire.Message {
	return wire.NewMessage(pointerID, PointerEventMotion).
		Uint(timeMillis).Fixed(x).Fixed(y)
}

// PointerButton builds a wl_pointer.button event.
func PointerButton(pointerID, serial, timeMillis, button, state uint32) wire.Message {
	return wire.NewMessage(pointerID, PointerEventButton).
		Uint(serial).Uint(timeMillis).Uint(button).Uint(state)
}
