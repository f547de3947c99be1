package connection

import (
	"github.com/winway/hostbridge/objects"
	"github.com/winway/hostbridge/protocol"
	"github.com/winway/hostbridge/wire"
)

func (c *Client) handleSeat(opcode uint16, r *wire.Reader) {
	switch opcode {
	case protocol.SeatRequestGetPointer:
		pointerID, err := r.Object()
		if err != nil {
			c.log.Debug().Err(err).Msg("wl_seat.get_pointer: truncated")
			return
		}
		c.objects.Insert(objects.Object{ID: pointerID, Interface: objects.Pointer, Version: 1})
		c.pointerID = pointerID

	case protocol.SeatRequestGetKeyboard:
		keyboardID, err := r.Object()
		if err != nil {
			c.log.Debug().Err(err).Msg("wl_seat.get_keyboard: truncated")
			return
		}
		c.objects.Insert(objects.Object{ID: keyboardID, Interface: objects.Keyboard, Version: 1})
		c.keyboardID = keyboardID

	default:
		// get_touch and release are accepted but produce no bound object:
		// this bridge never advertises the touch capability.
	}
}

// SendKey forwards a key event to the guest's wl_keyboard, if one is bound.
func (c *Client) SendKey(serial, timeMillis, key, state uint32) {
	if c.keyboardID == 0 {
		return
	}
	c.emit(protocol.KeyboardKey(c.keyboardID, serial, timeMillis, key, state))
}

// SendMotion forwards a pointer motion event to the guest's wl_pointer, if
// one is bound. x and y are host pixel coordinates.
func (c *Client) SendMotion(timeMillis uint32, x, y float64) {
	if c.pointerID == 0 {
		return
	}
	c.emit(protocol.PointerMotion(c.pointerID, timeMillis, wire.NewFixed(x), wire.NewFixed(y)))
}

// SendButton forwards a pointer button event to the guest's wl_pointer, if
// one is bound.
func (c *Client) SendButton(serial, timeMillis, button, state uint32) {
	if c.pointerID == 0 {
		return
	}
	c.emit(protocol.PointerButton(c.pointerID, serial, timeMillis, button, state))
}
