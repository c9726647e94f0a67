package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := LoadConfig()
	if cfg.Render.Format != "svg" {
		t.Errorf("Render.Format = %q, want svg", cfg.Render.Format)
	}
	if !cfg.Render.Shaded {
		t.Error("Render.Shaded should default to true")
	}
	if cfg.Serve.Addr != ":8080" {
		t.Errorf("Serve.Addr = %q, want :8080", cfg.Serve.Addr)
	}
	if cfg.Serve.Store != "file" {
		t.Errorf("Serve.Store = %q, want file", cfg.Serve.Store)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	content := `
session_dir = "/tmp/derivations"

[render]
format = "png"
shaded = false

[serve]
addr = ":9999"
store = "mongo"
mongo_uri = "mongodb://localhost:27017"
`
	if err := os.MkdirAll(filepath.Join(dir, appName), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, appName, "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg := LoadConfig()
	if cfg.SessionDir != "/tmp/derivations" {
		t.Errorf("SessionDir = %q, want /tmp/derivations", cfg.SessionDir)
	}
	if cfg.Render.Format != "png" {
		t.Errorf("Render.Format = %q, want png", cfg.Render.Format)
	}
	if cfg.Render.Shaded {
		t.Error("Render.Shaded should be false")
	}
	if cfg.Serve.Addr != ":9999" {
		t.Errorf("Serve.Addr = %q, want :9999", cfg.Serve.Addr)
	}
	if cfg.Serve.MongoURI != "mongodb://localhost:27017" {
		t.Errorf("Serve.MongoURI = %q", cfg.Serve.MongoURI)
	}
}

func TestLoadConfigMalformedFallsBack(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	if err := os.MkdirAll(filepath.Join(dir, appName), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, appName, "config.toml"), []byte("not [valid toml"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg := LoadConfig()
	if cfg.Serve.Addr != ":8080" {
		t.Errorf("malformed config should fall back to defaults, got addr %q", cfg.Serve.Addr)
	}
}

func TestCacheDirUsesXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", dir)

	got, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir failed: %v", err)
	}
	if got != filepath.Join(dir, appName) {
		t.Errorf("cacheDir = %q, want %q", got, filepath.Join(dir, appName))
	}
}
