package connection

import (
	"github.com/winway/hostbridge/objects"
	"github.com/winway/hostbridge/protocol"
	"github.com/winway/hostbridge/wire"
)

func (c *Client) handleShm(opcode uint16, r *wire.Reader) {
	if opcode != protocol.ShmRequestCreatePool {
		c.log.Warn().Uint16("opcode", opcode).Msg("unknown wl_shm opcode")
		return
	}

	// No fd argument on the wire: this tunnel carries no out-of-band file
	// descriptors, so wl_shm.create_pool is read as (pool_id, size) only.
	poolID, err := r.Object()
	if err != nil {
		c.log.Debug().Err(err).Msg("wl_shm.create_pool: truncated")
		return
	}
	size, err := r.Uint()
	if err != nil {
		c.log.Debug().Err(err).Msg("wl_shm.create_pool: truncated size")
		return
	}
	c.log.Debug().Uint32("pool_id", poolID).Uint32("size", size).Msg("wl_shm.create_pool")

	c.objects.Insert(objects.Object{ID: poolID, Interface: objects.ShmPool, Version: 1})
	c.pools[poolID] = &protocol.Pool{ID: poolID, Size: size}
}

func (c *Client) handleShmPool(poolID uint32, opcode uint16, r *wire.Reader) {
	switch opcode {
	case protocol.PoolRequestCreateBuffer:
		req, err := protocol.DecodeCreateBufferRequest(r)
		if err != nil {
			c.log.Debug().Err(err).Msg("wl_shm_pool.create_buffer: truncated")
			return
		}
		c.log.Debug().Uint32("buffer_id", req.BufferID).Int32("width", req.Width).
			Int32("height", req.Height).Int32("stride", req.Stride).Msg("wl_shm_pool.create_buffer")

		c.objects.Insert(objects.Object{ID: req.BufferID, Interface: objects.Buffer, Version: 1})
		c.buffers[req.BufferID] = protocol.NewBuffer(req.BufferID, poolID, req.Offset, req.Width, req.Height, req.Stride, req.Format)

	case protocol.PoolRequestDestroy:
		delete(c.pools, poolID)
		c.objects.Remove(poolID)

	case protocol.PoolRequestResize:
		size, err := r.Int()
		if err != nil {
			c.log.Debug().Err(err).Msg("wl_shm_pool.resize: truncated")
			return
		}
		if pool, ok := c.pools[poolID]; ok {
			pool.Size = uint32(size)
		}

	default:
		c.log.Warn().Uint16("opcode", opcode).Msg("unknown wl_shm_pool opcode")
	}
}

func (c *Client) handleBuffer(bufferID uint32, opcode uint16, r *wire.Reader) {
	if opcode == protocol.BufferRequestDestroy {
		delete(c.buffers, bufferID)
		c.objects.Remove(bufferID)
	}
}

// SetBufferData installs pixel content received over the PIXL sideband into
// the buffer it names, for delivery on the next commit that references it.
func (c *Client) SetBufferData(bufferID uint32, data []byte) {
	if buffer, ok := c.buffers[bufferID]; ok {
		buffer.Data = data
	}
}
