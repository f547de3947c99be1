// Package render defines the events a connection engine produces for the
// external presenter, and the Sink contract that presenter implements.
//
// The renderer itself — compositing surfaces into a GPU-backed window — is
// an out-of-scope external collaborator; this package only carries the
// events across that boundary and provides a logging-only Sink so the rest
// of the bridge is runnable and testable without one.
package render

import "github.com/rs/zerolog"

// Event is one notification a connection engine emits for the renderer to
// act on. The concrete types below are the complete set.
type Event interface {
	isRenderEvent()
}

// SurfaceCreated announces a new wl_surface.
type SurfaceCreated struct {
	ID uint32
}

// SurfaceCommit carries a surface's committed buffer content, decoded from
// whichever attached wl_buffer was live when wl_surface.commit ran.
type SurfaceCommit struct {
	SurfaceID     uint32
	Width, Height int32
	Data          []byte
}

// SurfaceDestroyed announces a surface has been destroyed.
type SurfaceDestroyed struct {
	ID uint32
}

// TitleChanged announces an xdg_toplevel's title, attributed to the
// wl_surface it is a role of.
type TitleChanged struct {
	SurfaceID uint32
	Title     string
}

// PixelData carries pixel content delivered out-of-band via the PIXL
// sideband frame, keyed by surface id.
type PixelData struct {
	SurfaceID     uint32
	Width, Height uint32
	Format        uint32
	Data          []byte
}

func (SurfaceCreated) isRenderEvent()   {}
func (SurfaceCommit) isRenderEvent()    {}
func (SurfaceDestroyed) isRenderEvent() {}
func (TitleChanged) isRenderEvent()     {}
func (PixelData) isRenderEvent()        {}

// Sink is the external renderer's contract: one call per drained Event.
type Sink interface {
	Handle(clientID uint32, ev Event)
}

// LogSink is a Sink that only logs, standing in for a real GPU-backed
// presenter so the bridge runs and is exercised end to end without one.
type LogSink struct {
	log zerolog.Logger
}

// NewLogSink returns a Sink that logs every event at debug level.
func NewLogSink(log zerolog.Logger) *LogSink {
	return &LogSink{log: log.With().Str("component", "render").Logger()}
}

// Handle implements Sink.
func (s *LogSink) Handle(clientID uint32, ev Event) {
	switch e := ev.(type) {
	case SurfaceCreated:
		s.log.Debug().Uint32("client_id", clientID).Uint32("surface_id", e.ID).Msg("surface created")
	case SurfaceCommit:
		s.log.Debug().Uint32("client_id", clientID).Uint32("surface_id", e.SurfaceID).
			Int32("width", e.Width).Int32("height", e.Height).Int("bytes", len(e.Data)).Msg("surface commit")
	case SurfaceDestroyed:
		s.log.Debug().Uint32("client_id", clientID).Uint32("surface_id", e.ID).Msg("surface destroyed")
	case TitleChanged:
		s.log.Debug().Uint32("client_id", clientID).Uint32("surface_id", e.SurfaceID).
			Str("title", e.Title).Msg("title changed")
	case PixelData:
		s.log.Debug().Uint32("client_id", clientID).Uint32("surface_id", e.SurfaceID).
			Uint32("width", e.Width).Uint32("height", e.Height).Uint32("format", e.Format).
			Int("bytes", len(e.Data)).Msg("pixel data")
	}
}
