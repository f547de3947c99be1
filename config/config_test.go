package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Proxy.Command != DefaultProxyCommand {
		t.Errorf("got command %q, want default %q", cfg.Proxy.Command, DefaultProxyCommand)
	}
	if cfg.Transport.RestartBackoff != DefaultRestartBackoff {
		t.Errorf("got backoff %v, want default %v", cfg.Transport.RestartBackoff, DefaultRestartBackoff)
	}
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Proxy.Command != DefaultProxyCommand {
		t.Errorf("got command %q, want default %q", cfg.Proxy.Command, DefaultProxyCommand)
	}
}

func TestLoadParsesFileAndFillsUnsetDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
proxy:
  command: /usr/local/bin/win-way-guest-proxy
  args:
    - "--verbose"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write test config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Proxy.Command != "/usr/local/bin/win-way-guest-proxy" {
		t.Errorf("got command %q", cfg.Proxy.Command)
	}
	if len(cfg.Proxy.Args) != 1 || cfg.Proxy.Args[0] != "--verbose" {
		t.Errorf("got args %v", cfg.Proxy.Args)
	}
	// restart_backoff wasn't set in the file, so it must fall back to default.
	if cfg.Transport.RestartBackoff != DefaultRestartBackoff {
		t.Errorf("got backoff %v, want default %v", cfg.Transport.RestartBackoff, DefaultRestartBackoff)
	}
}

func TestLoadParsesExplicitRestartBackoff(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
transport:
  restart_backoff: 10s
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write test config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Transport.RestartBackoff != 10*time.Second {
		t.Errorf("got backoff %v, want 10s", cfg.Transport.RestartBackoff)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("proxy: [this is not a mapping"), 0644); err != nil {
		t.Fatalf("write test config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatalf("expected an error parsing malformed YAML")
	}
}
