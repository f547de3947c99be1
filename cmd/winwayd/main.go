// Command winwayd is the host-side endpoint: it spawns the guest proxy,
// terminates the guest's Wayland protocol traffic, and forwards host input
// back down the same pipe.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/winway/hostbridge/config"
	"github.com/winway/hostbridge/input"
	"github.com/winway/hostbridge/render"
	"github.com/winway/hostbridge/transport"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath  = flag.String("config", "", "path to an optional YAML config file")
		proxyCmd    = flag.String("proxy-command", "", "override the configured proxy command")
		logLevel    = flag.String("log-level", "info", "debug, info, warn, or error")
		humanLog    = flag.Bool("pretty-log", false, "use a human-readable console log writer instead of JSON")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("winwayd: %w", err)
	}
	if *proxyCmd != "" {
		cfg.Proxy.Command = *proxyCmd
	}

	log := newLogger(*logLevel, *humanLog)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	sink := render.NewLogSink(log)
	commands := input.NewBroadcaster()
	sup := transport.NewSupervisor(transport.Config{
		Command: cfg.Proxy.Command,
		Args:    cfg.Proxy.Args,
	}, sink, commands, log)

	go func() {
		<-ctx.Done()
		log.Info().Msg("signal received, shutting down")
		sup.Shutdown()
	}()

	if err := sup.Run(ctx); err != nil {
		return fmt.Errorf("winwayd: %w", err)
	}
	return nil
}

func newLogger(level string, pretty bool) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	var writer = os.Stderr
	logger := zerolog.New(writer).With().Timestamp().Logger()
	if pretty {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: writer, TimeFormat: time.Kitchen}).With().Timestamp().Logger()
	}

	switch level {
	case "debug":
		logger = logger.Level(zerolog.DebugLevel)
	case "warn", "warning":
		logger = logger.Level(zerolog.WarnLevel)
	case "error":
		logger = logger.Level(zerolog.ErrorLevel)
	default:
		logger = logger.Level(zerolog.InfoLevel)
	}
	return logger
}
