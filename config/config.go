// Package config loads the optional YAML configuration file for winwayd: the
// child proxy command to supervise, its arguments, and the restart backoff.
// Every field has a zero-value-safe default, so running with no config file
// at all is a supported, common case.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultProxyCommand is the child process spawned when no command is
// configured: the guest-side proxy binary expected on PATH.
const DefaultProxyCommand = "win-way-guest-proxy"

// DefaultRestartBackoff mirrors transport.RestartBackoff; it is duplicated
// here as a literal default so this package does not import transport.
const DefaultRestartBackoff = 3 * time.Second

// Config is the root of the YAML configuration file.
type Config struct {
	Proxy     ProxyConfig `yaml:"proxy"`
	Transport TransportConfig `yaml:"transport"`
}

// ProxyConfig names the child process tunneling the guest's Wayland traffic.
type ProxyConfig struct {
	Command string   `yaml:"command"`
	Args    []string `yaml:"args,omitempty"`
}

// TransportConfig holds the restart backoff read from the file. winwayd does
// not pass it to the supervisor, which always waits transport.RestartBackoff
// between restarts.
type TransportConfig struct {
	RestartBackoff time.Duration `yaml:"restart_backoff"`
}

// Default returns a Config with every field set to its zero-value-safe
// default, equivalent to what Load returns when no config file exists.
func Default() *Config {
	return &Config{
		Proxy: ProxyConfig{
			Command: DefaultProxyCommand,
		},
		Transport: TransportConfig{
			RestartBackoff: DefaultRestartBackoff,
		},
	}
}

// Load reads and parses the YAML file at path, applying defaults to any
// field the file leaves unset. A missing path is not an error: Load returns
// Default() unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	applyDefaults(cfg)
	return cfg, nil
}

// applyDefaults fills in zero-valued fields left unset by the file.
func applyDefaults(cfg *Config) {
	if cfg.Proxy.Command == "" {
		cfg.Proxy.Command = DefaultProxyCommand
	}
	if cfg.Transport.RestartBackoff <= 0 {
		cfg.Transport.RestartBackoff = DefaultRestartBackoff
	}
}
