package protocol

import (
	"github.com/winway/hostbridge/objects"
	"github.com/winway/hostbridge/wire"
)

// wl_display request opcodes (client -> server).
const (
	DisplayRequestSync        uint16 = 0
	DisplayRequestGetRegistry uint16 = 1
)

// wl_display event opcodes (server -> client).
const (
	DisplayEventError    uint16 = 0
	DisplayEventDeleteID uint16 = 1
)

// DisplayError builds the wl_display.error event: object_id, an
// interface-defined error code, and a human-readable message.
func DisplayError(objectID, code uint32, message string) wire.Message {
	return wire.NewMessage(objects.DisplayObjectID, DisplayEventError).
		Uint(objectID).Uint(code).String(message)
}

// DisplayDeleteID builds the wl_display.delete_id event, announcing that id
// is free for the client to reuse.
func DisplayDeleteID(id uint32) wire.Message {
	return wire.NewMessage(objects.DisplayObjectID, DisplayEventDeleteID).Uint(id)
}
