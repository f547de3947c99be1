// Package hostbridge is a host-side Wayland compositor endpoint for a
// tunneled Linux guest.
//
// It terminates Wayland protocol traffic carried over a single byte stream
// (a pipe to a child proxy process), tracks the guest client's object graph,
// and produces render events for an external GPU-accelerated presenter while
// forwarding host input back to the guest.
//
// # Components
//
//   - wire: Wayland wire codec (header + typed argument encode/decode).
//   - objects: per-connection object ID registry.
//   - protocol: per-interface opcodes, request decoders and event
//     constructors (display, registry, compositor/surface, shm, xdg_shell,
//     seat, output).
//   - connection: the per-interface request handlers, and the per-client
//     state machine that demultiplexes Wayland frames from sideband PIXL
//     frames and dispatches by object interface.
//   - sideband: the PIXL (pixel data) and INPT (input) sideband framings.
//   - input: host keycode/button translation and the input command
//     broadcaster.
//   - render: the renderer event types and sink contract.
//   - transport: the supervisor owning the child proxy process.
//   - config: optional YAML configuration with zero-value-safe defaults.
//
// # Basic Usage
//
//	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
//	commands := input.NewBroadcaster()
//	sup := transport.NewSupervisor(transport.Config{
//		Command: "win-way-guest-proxy",
//		Args:    []string{"--guest"},
//	}, render.NewLogSink(logger), commands, logger)
//	if err := sup.Run(ctx); err != nil {
//		log.Fatal(err)
//	}
//
// # Non-goals
//
// A full Wayland compositor (layer shell, subsurface composition, damage
// tracking, DMA-BUF, explicit sync), out-of-band file-descriptor passing, and
// multi-output support are explicitly out of scope.
package hostbridge
