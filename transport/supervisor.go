// Package transport implements the supervisor that owns the child proxy
// process tunneling a guest's Wayland traffic: it pipes the child's stdio,
// pumps its stdout through a connection engine, serializes host input
// commands to INPT frames on its stdin, and restarts the child with a fixed
// backoff whenever the pipe breaks.
package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sys/unix"

	"github.com/winway/hostbridge/connection"
	"github.com/winway/hostbridge/input"
	"github.com/winway/hostbridge/render"
	"github.com/winway/hostbridge/sideband"
)

// RestartBackoff is the fixed delay between a child's exit and the next
// spawn attempt.
const RestartBackoff = 3 * time.Second

// readBufferSize bounds a single child-stdout read.
const readBufferSize = 64 * 1024

// Config configures the child proxy process.
type Config struct {
	Command string
	Args    []string
}

// ErrSpawnFailed wraps an error starting the child process; it is a
// resource error, retried after RestartBackoff, except on the very first
// attempt, where Run returns it instead.
type ErrSpawnFailed struct {
	Err error
}

func (e *ErrSpawnFailed) Error() string { return fmt.Sprintf("transport: spawn failed: %v", e.Err) }
func (e *ErrSpawnFailed) Unwrap() error { return e.Err }

// Supervisor owns the restart loop for a single client connection's child
// proxy process.
type Supervisor struct {
	cfg      Config
	sink     render.Sink
	log      zerolog.Logger
	commands *input.Broadcaster

	shutdown chan struct{}
	once     sync.Once
}

// NewSupervisor returns a Supervisor for the given child command, wired to
// sink for render events and commands for host input.
func NewSupervisor(cfg Config, sink render.Sink, commands *input.Broadcaster, log zerolog.Logger) *Supervisor {
	return &Supervisor{
		cfg:      cfg,
		sink:     sink,
		log:      log.With().Str("component", "transport").Logger(),
		commands: commands,
		shutdown: make(chan struct{}),
	}
}

// Shutdown requests a clean stop: the current child is killed, the run loop
// returns nil instead of restarting.
func (s *Supervisor) Shutdown() {
	s.once.Do(func() { close(s.shutdown) })
}

// Run spawns the child, pumps it, and restarts on failure until Shutdown is
// called or ctx is cancelled. It returns nil on clean shutdown, or the last
// spawn error if the child could never be started even once.
func (s *Supervisor) Run(ctx context.Context) error {
	const clientID = 1
	s.log.Info().Uint32("client_id", clientID).Msg("client connected")

	attempted := false
	for {
		select {
		case <-s.shutdown:
			return nil
		case <-ctx.Done():
			return nil
		default:
		}

		err := s.runOnce(ctx, clientID)
		if err == nil {
			s.log.Info().Uint32("client_id", clientID).Msg("client disconnected")
			return nil
		}

		var spawnErr *ErrSpawnFailed
		if !attempted && isSpawnFailure(err, &spawnErr) {
			return err
		}
		attempted = true

		s.log.Error().Err(err).Dur("backoff", RestartBackoff).Msg("connection failed, restarting")

		select {
		case <-s.shutdown:
			return nil
		case <-ctx.Done():
			return nil
		case <-time.After(RestartBackoff):
		}
	}
}

func isSpawnFailure(err error, target **ErrSpawnFailed) bool {
	for e := err; e != nil; {
		if se, ok := e.(*ErrSpawnFailed); ok {
			*target = se
			return true
		}
		u, ok := e.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		e = u.Unwrap()
	}
	return false
}

// runOnce spawns one child process instance, pumps it until it exits or an
// I/O error occurs, and returns that error (nil on clean EOF).
func (s *Supervisor) runOnce(ctx context.Context, clientID uint32) error {
	cmd := exec.CommandContext(ctx, s.cfg.Command, s.cfg.Args...)
	cmd.Stderr = os.Stderr
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return &ErrSpawnFailed{Err: err}
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return &ErrSpawnFailed{Err: err}
	}
	if err := cmd.Start(); err != nil {
		return &ErrSpawnFailed{Err: err}
	}
	defer killProcessGroup(cmd)

	client := connection.New(clientID, s.log)
	sub := s.commands.Subscribe()
	defer sub.Close()

	var writeMu sync.Mutex
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	group, gctx := errgroup.WithContext(runCtx)

	// A blocking Read on the child's stdout pipe won't notice gctx being
	// cancelled by the other loop's error or by Shutdown; killing the
	// process group unblocks it by closing the pipe out from under the Read.
	group.Go(func() error {
		select {
		case <-gctx.Done():
		case <-s.shutdown:
			cancel()
		}
		killProcessGroup(cmd)
		return nil
	})
	group.Go(func() error {
		// The end of the child's stdout ends this run: stop the other loops.
		defer cancel()
		return s.pumpStdout(gctx, stdout, stdin, &writeMu, client, clientID)
	})
	group.Go(func() error {
		return s.pumpInput(gctx, stdin, &writeMu, sub)
	})

	err = group.Wait()
	waitErr := cmd.Wait()
	if err != nil {
		return err
	}
	if waitErr != nil {
		return fmt.Errorf("transport: child exited: %w", waitErr)
	}
	return nil
}

func (s *Supervisor) pumpStdout(ctx context.Context, stdout io.Reader, stdin io.Writer, writeMu *sync.Mutex, client *connection.Client, clientID uint32) error {
	buf := make([]byte, readBufferSize)
	for {
		if ctx.Err() != nil {
			return nil
		}

		n, err := stdout.Read(buf)
		if n > 0 {
			if procErr := client.Process(buf[:n]); procErr != nil {
				return fmt.Errorf("transport: connection error: %w", procErr)
			}
			s.drainOutgoing(client, stdin, writeMu)
			s.drainRenderEvents(client, clientID)
		}
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("transport: read child stdout: %w", err)
		}
	}
}

func (s *Supervisor) drainOutgoing(client *connection.Client, stdin io.Writer, writeMu *sync.Mutex) {
	messages := client.TakeOutgoing()
	if len(messages) == 0 {
		return
	}
	var buf bytes.Buffer
	for _, msg := range messages {
		buf.Write(msg.Encode())
	}
	writeMu.Lock()
	defer writeMu.Unlock()
	if _, err := stdin.Write(buf.Bytes()); err != nil {
		s.log.Error().Err(err).Msg("write outgoing wayland frames")
	}
}

func (s *Supervisor) drainRenderEvents(client *connection.Client, clientID uint32) {
	for _, ev := range client.TakeRenderEvents() {
		s.sink.Handle(clientID, ev)
	}
}

func (s *Supervisor) pumpInput(ctx context.Context, stdin io.Writer, writeMu *sync.Mutex, sub *input.Subscription) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case cmd, ok := <-sub.C:
			if !ok {
				return nil
			}
			frame := encodeCommand(cmd)
			if frame == nil {
				continue
			}
			writeMu.Lock()
			_, err := stdin.Write(frame)
			writeMu.Unlock()
			if err != nil {
				return fmt.Errorf("transport: write input command: %w", err)
			}
		}
	}
}

func encodeCommand(cmd input.Command) []byte {
	switch cmd.Kind {
	case input.CommandKey:
		code, ok := input.ToEvdev(cmd.Key)
		if !ok {
			return nil
		}
		return sideband.EncodeKey(stateWire(cmd.State), code)
	case input.CommandMotion:
		return sideband.EncodeMotion(cmd.X, cmd.Y)
	case input.CommandButton:
		code, ok := input.ToEvdevButton(cmd.Button)
		if !ok {
			return nil
		}
		return sideband.EncodeButton(stateWire(cmd.State), code)
	default:
		return nil
	}
}

func stateWire(s input.State) uint32 {
	if s == input.Pressed {
		return sideband.StatePressed
	}
	return sideband.StateReleased
}

func killProcessGroup(cmd *exec.Cmd) {
	if cmd.Process == nil {
		return
	}
	_ = unix.Kill(-cmd.Process.Pid, syscall.SIGKILL)
}
