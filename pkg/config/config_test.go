//go:build unit
// +build unit

package config

import (
	"os"
	"testing"
)

const testYAML = `
server:
  listen_address: ":9090"
github:
  token: abc123
`

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	file := dir + "/shields.yaml"
	if err := os.WriteFile(file, []byte(testYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(file)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.ListenAddress != ":9090" {
		t.Errorf("unexpected listen address: %q", cfg.Server.ListenAddress)
	}
	if cfg.GitHub.Token != "abc123" {
		t.Errorf("unexpected token: %q", cfg.GitHub.Token)
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.ListenAddress != ":8080" {
		t.Errorf("unexpected default listen address: %q", cfg.Server.ListenAddress)
	}
	if cfg.GitHub.Token != "" {
		t.Errorf("expected empty default token, got %q", cfg.GitHub.Token)
	}
}
