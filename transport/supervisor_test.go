package transport

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/winway/hostbridge/connection"
	"github.com/winway/hostbridge/input"
	"github.com/winway/hostbridge/protocol"
	"github.com/winway/hostbridge/render"
	"github.com/winway/hostbridge/wire"
)

type recordingSink struct {
	events chan render.Event
}

func newRecordingSink() *recordingSink {
	return &recordingSink{events: make(chan render.Event, 16)}
}

func (s *recordingSink) Handle(clientID uint32, ev render.Event) {
	s.events <- ev
}

// TestSupervisorRunsAndShutsDownCleanly uses /bin/cat as a stand-in proxy
// that stays alive until killed, and checks that Shutdown stops the running
// child and makes Run return nil instead of restarting it.
func TestSupervisorRunsAndShutsDownCleanly(t *testing.T) {
	sink := newRecordingSink()
	commands := input.NewBroadcaster()
	log := zerolog.New(io.Discard)

	sup := NewSupervisor(Config{Command: "/bin/cat"}, sink, commands, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- sup.Run(ctx) }()

	// Give the child a moment to start, then request a clean shutdown.
	time.Sleep(50 * time.Millisecond)
	sup.Shutdown()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("expected clean shutdown, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("supervisor did not return after Shutdown")
	}
}

func TestSupervisorReportsSpawnFailureOnFirstAttempt(t *testing.T) {
	sink := newRecordingSink()
	commands := input.NewBroadcaster()
	log := zerolog.New(io.Discard)

	sup := NewSupervisor(Config{Command: "/nonexistent/binary/does-not-exist"}, sink, commands, log)

	err := sup.Run(context.Background())
	if err == nil {
		t.Fatalf("expected an error when the child binary does not exist")
	}
	var spawnErr *ErrSpawnFailed
	if !errors.As(err, &spawnErr) {
		t.Fatalf("expected ErrSpawnFailed, got %v (%T)", err, err)
	}
}

func TestEncodeCommandKeyUnmappedProducesNoFrame(t *testing.T) {
	if frame := encodeCommand(input.Command{Kind: input.CommandKey, Key: input.KeyUnknown}); frame != nil {
		t.Fatalf("expected no frame for an unmapped key, got %v", frame)
	}
}

func TestEncodeCommandMotionProducesInptFrame(t *testing.T) {
	frame := encodeCommand(input.Command{Kind: input.CommandMotion, X: 10, Y: 20})
	if frame == nil {
		t.Fatalf("expected a frame for a motion command")
	}
	if len(frame) != 20 {
		t.Fatalf("expected a 20-byte INPT frame, got %d bytes", len(frame))
	}
}

func TestDrainOutgoingEncodesAllQueuedMessages(t *testing.T) {
	msg := wire.NewMessage(1, protocol.DisplayEventDeleteID).Uint(5)
	encoded := msg.Encode()
	if len(encoded) == 0 {
		t.Fatalf("sanity: expected non-empty encoded message")
	}

	log := zerolog.New(io.Discard)
	sup := NewSupervisor(Config{}, newRecordingSink(), input.NewBroadcaster(), log)
	client := connection.New(1, log)
	if err := client.Process(wire.NewMessage(1, protocol.DisplayRequestGetRegistry).Uint(3).Encode()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var want []byte
	for _, g := range protocol.StandardGlobals() {
		want = append(want, protocol.RegistryGlobal(3, g.Name, g.Interface, g.Version).Encode()...)
	}
	var stdin bytes.Buffer
	var writeMu sync.Mutex
	sup.drainOutgoing(client, &stdin, &writeMu)
	if !bytes.Equal(stdin.Bytes(), want) {
		t.Fatalf("expected all queued global events written in order (%d bytes), got %d bytes", len(want), stdin.Len())
	}
}
