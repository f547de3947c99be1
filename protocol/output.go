package protocol

import "github.com/winway/hostbridge/wire"

// wl_output event opcodes (server -> client).
const (
	OutputEventGeometry uint16 = 0
	OutputEventMode     uint16 = 1
	OutputEventDone     uint16 = 2
	OutputEventScale    uint16 = 3
)

// wl_output.mode flags.
const (
	OutputModeCurrent   uint32 = 1
	OutputModePreferred uint32 = 2
)

// wl_output.subpixel / wl_output.transform: unknown orientation, no
// subpixel hinting — this bridge has no physical display to report on.
const (
	OutputSubpixelUnknown  int32 = 0
	OutputTransformNormal  int32 = 0
)

// Fixed output geometry this bridge advertises. The tunnel has exactly one
// virtual output; real multi-output support is out of scope.
const (
	OutputWidthMM  int32 = 520
	OutputHeightMM int32 = 320
	OutputWidthPx  int32 = 1920
	OutputHeightPx int32 = 1080
	OutputRefreshMilliHz int32 = 60000
)

// OutputGeometry builds a wl_output.geometry event.
func OutputGeometry(outputID uint32) wire.Message {
	return wire.NewMessage(outputID, OutputEventGeometry).
		Int(0).Int(0). // x, y
		Int(OutputWidthMM).Int(OutputHeightMM).
		Int(OutputSubpixelUnknown).
		String("win-way").
		String("virtual").
		Int(OutputTransformNormal)
}

// OutputMode builds a wl_output.mode event for the bridge's single, fixed
// virtual mode, advertised as both current and preferred.
func OutputMode(outputID uint32) wire.Message {
	return wire.NewMessage(outputID, OutputEventMode).
		Uint(OutputModeCurrent | OutputModePreferred).
		Int(OutputWidthPx).Int(OutputHeightPx).
		Int(OutputRefreshMilliHz)
}

// OutputScale builds a wl_output.scale event; this bridge never scales.
func OutputScale(outputID uint32) wire.Message {
	return wire.NewMessage(outputID, OutputEventScale).Int(1)
}

// OutputDone builds a wl_output.done event, terminating the geometry/mode/
// scale burst a client waits on before treating the output as usable.
func OutputDone(outputID uint32) wire.Message {
	return wire.NewMessage(outputID, OutputEventDone)
}

// OutputBindEvents returns the full event sequence this bridge sends when a
// client binds wl_output: geometry, mode, scale, done — in that order,
// resolving the upstream gap where the global was advertised but the
// handshake never completed.
func OutputBindEvents(outputID uint32) []wire.Message {
	return []wire.Message{
		OutputGeometry(outputID),
		OutputMode(outputID),
		OutputScale(outputID),
		OutputDone(outputID),
	}
}
