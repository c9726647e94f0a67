package cli

import (
	"context"
	"io"
	"testing"
)

func TestNewServeStoreBackends(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	c := New(io.Discard, LogInfo)
	c.Config.SessionDir = t.TempDir()
	ctx := context.Background()

	t.Run("memory", func(t *testing.T) {
		store, err := c.newServeStore(ctx, &serveOpts{store: "memory"})
		if err != nil {
			t.Fatalf("memory store: %v", err)
		}
		store.Close(ctx)
	})

	t.Run("file", func(t *testing.T) {
		store, err := c.newServeStore(ctx, &serveOpts{store: "file"})
		if err != nil {
			t.Fatalf("file store: %v", err)
		}
		store.Close(ctx)
	})

	t.Run("mongo requires uri", func(t *testing.T) {
		if _, err := c.newServeStore(ctx, &serveOpts{store: "mongo"}); err == nil {
			t.Error("expected error for mongo without --mongo-uri")
		}
	})

	t.Run("unknown backend", func(t *testing.T) {
		if _, err := c.newServeStore(ctx, &serveOpts{store: "postgres"}); err == nil {
			t.Error("expected error for unknown backend")
		}
	})
}
