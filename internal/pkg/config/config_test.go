package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}
	return path
}

func TestNewConfig(t *testing.T) {
	path := writeConfig(t, `
db_username: "postgres"
db_password: "secret"
db_host: "localhost"
db_port: "5432"
db_name: "crm"
jwt_key: "k"
allowed_origins:
  - "http://localhost:3000"
`)

	cfg, err := NewConfig(path)
	if err != nil {
		t.Fatalf("NewConfig() error = %v", err)
	}

	if cfg.ServerPort != ":8080" {
		t.Errorf("ServerPort = %q, want default :8080", cfg.ServerPort)
	}
	if cfg.MediaDir != "media" {
		t.Errorf("MediaDir = %q, want default media", cfg.MediaDir)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "http://localhost:3000" {
		t.Errorf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
}

func TestNewConfigMissingDatabase(t *testing.T) {
	path := writeConfig(t, `
jwt_key: "k"
`)

	if _, err := NewConfig(path); err == nil {
		t.Error("expected an error for missing database configuration")
	}
}

func TestNewConfigMissingJWTKey(t *testing.T) {
	path := writeConfig(t, `
db_username: "postgres"
db_password: "secret"
db_host: "localhost"
db_name: "crm"
`)

	if _, err := NewConfig(path); err == nil {
		t.Error("expected an error for a missing jwt key")
	}
}

func TestNewConfigMissingFile(t *testing.T) {
	if _, err := NewConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
