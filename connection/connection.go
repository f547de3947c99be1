// Package connection implements the per-client Wayland connection engine:
// the object-graph-aware state machine that demultiplexes a single guest
// byte stream into Wayland protocol messages and PIXL sideband frames, and
// dispatches each Wayland message to the handler named by its object's
// interface tag.
//
// A Client never blocks and never touches a channel or goroutine itself —
// parsing and dispatch are synchronous; the transport supervisor owns all
// I/O and channel hand-off, draining outgoing messages and render events
// through TakeOutgoing and TakeRenderEvents after every Process call.
package connection

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/winway/hostbridge/objects"
	"github.com/winway/hostbridge/protocol"
	"github.com/winway/hostbridge/render"
	"github.com/winway/hostbridge/sideband"
	"github.com/winway/hostbridge/wire"
)

// Client is one guest connection's protocol state: its object graph, every
// live surface/pool/buffer/xdg role, and the queues of work the transport
// supervisor will drain after each Process call.
type Client struct {
	ID      uint32
	log     zerolog.Logger
	decoder *wire.Decoder
	objects *objects.Map

	surfaces    map[uint32]*protocol.Surface
	pools       map[uint32]*protocol.Pool
	buffers     map[uint32]*protocol.Buffer
	xdgSurfaces map[uint32]*protocol.XdgSurface
	toplevels   map[uint32]*protocol.XdgToplevel

	registryID    uint32
	shmID         uint32
	compositorID  uint32
	wmBaseID      uint32
	outputID      uint32
	seatID        uint32
	keyboardID    uint32
	pointerID     uint32

	outgoing     []wire.Message
	renderEvents []render.Event
}

// New returns a fresh connection engine for client id.
func New(id uint32, log zerolog.Logger) *Client {
	return &Client{
		ID:          id,
		log:         log.With().Uint32("client_id", id).Logger(),
		decoder:     wire.NewDecoder(),
		objects:     objects.New(),
		surfaces:    make(map[uint32]*protocol.Surface),
		pools:       make(map[uint32]*protocol.Pool),
		buffers:     make(map[uint32]*protocol.Buffer),
		xdgSurfaces: make(map[uint32]*protocol.XdgSurface),
		toplevels:   make(map[uint32]*protocol.XdgToplevel),
	}
}

// Process appends newly received bytes and drains every whole frame it can:
// a PIXL sideband frame becomes a render.PixelData event, a Wayland message
// is dispatched by its object's interface tag. It returns a non-nil error
// only for a fatal, connection-terminating condition (a malformed Wayland
// header); a truncated individual request is logged and skipped.
func (c *Client) Process(data []byte) error {
	c.decoder.Push(data)

	for {
		if frame, n, ok := sideband.TryDecodePixl(c.decoder.Peek()); ok {
			c.decoder.Consume(n)
			c.renderEvents = append(c.renderEvents, render.PixelData{
				SurfaceID: frame.SurfaceID,
				Width:     frame.Width,
				Height:    frame.Height,
				Format:    frame.Format,
				Data:      frame.Data,
			})
			continue
		}
		if buf := c.decoder.Peek(); len(buf) >= 4 && string(buf[:4]) == "PIXL" {
			// A PIXL frame that is not fully buffered yet: wait for more bytes.
			return nil
		}

		objectID, opcode, payload, ok, err := c.decoder.Decode()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		c.dispatch(objectID, opcode, payload)
	}
}

// TakeOutgoing drains and returns every Wayland message queued since the
// last call.
func (c *Client) TakeOutgoing() []wire.Message {
	out := c.outgoing
	c.outgoing = nil
	return out
}

// TakeRenderEvents drains and returns every render event queued since the
// last call.
func (c *Client) TakeRenderEvents() []render.Event {
	out := c.renderEvents
	c.renderEvents = nil
	return out
}

func (c *Client) emit(msg wire.Message) {
	c.outgoing = append(c.outgoing, msg)
}

func (c *Client) emitRender(ev render.Event) {
	c.renderEvents = append(c.renderEvents, ev)
}

func nowMillis() uint32 {
	return uint32(time.Now().UnixMilli())
}

func (c *Client) dispatch(objectID uint32, opcode uint16, payload []byte) {
	obj, known := c.objects.Get(objectID)
	if !known {
		c.log.Warn().Uint32("object_id", objectID).Uint16("opcode", opcode).Msg("unknown object")
		return
	}

	r := wire.NewReader(payload)

	switch obj.Interface {
	case objects.Display:
		c.handleDisplay(opcode, r)
	case objects.Registry:
		c.handleRegistry(opcode, r)
	case objects.Compositor:
		c.handleCompositor(opcode, r)
	case objects.Surface:
		c.handleSurface(objectID, opcode, r)
	case objects.Seat:
		c.handleSeat(opcode, r)
	case objects.Shm:
		c.handleShm(opcode, r)
	case objects.ShmPool:
		c.handleShmPool(objectID, opcode, r)
	case objects.Buffer:
		c.handleBuffer(objectID, opcode, r)
	case objects.XdgWmBase:
		c.handleXdgWmBase(opcode, r)
	case objects.XdgSurface:
		c.handleXdgSurface(objectID, opcode, r)
	case objects.XdgToplevel:
		c.handleXdgToplevel(objectID, opcode, r)
	case objects.Callback:
		// Callbacks carry no client -> server requests.
	case objects.DataDeviceManager:
		// get_data_device (opcode 1) registers the new wl_data_device; every
		// other request on the manager is ignored.
		if opcode == 1 {
			if deviceID, err := r.Object(); err == nil {
				c.objects.Insert(objects.Object{ID: deviceID, Interface: objects.DataDevice, Version: obj.Version})
			}
		}
	default:
		c.log.Debug().Str("interface", obj.Interface.String()).Uint32("object_id", objectID).
			Uint16("opcode", opcode).Msg("unhandled interface")
	}
}
