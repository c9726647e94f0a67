package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/peircelab/peirce/internal/api"
	"github.com/peircelab/peirce/pkg/cache"
	"github.com/peircelab/peirce/pkg/session"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr      string // listen address
	store     string // session store backend: "memory", "file" or "mongo"
	redisAddr string // redis address for the diagram cache (empty disables)
	mongoURI  string // mongodb connection string
	mongoDB   string // mongodb database name
	noCache   bool   // disable the diagram cache entirely
}

// serveCommand creates the serve command that runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{
		addr:      c.Config.Serve.Addr,
		store:     c.Config.Serve.Store,
		redisAddr: c.Config.Serve.RedisAddr,
		mongoURI:  c.Config.Serve.MongoURI,
		mongoDB:   c.Config.Serve.MongoDB,
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Long: `Run the HTTP API server exposing parse, find, apply, render, and
session endpoints under /v1.

Session storage defaults to JSON files; pass --store mongo with a
connection string for multi-instance deployments. Rendered diagrams are
cached on disk, or in Redis when --redis is set.

Examples:
  peirce serve
  peirce serve --addr :9000 --store memory
  peirce serve --store mongo --mongo-uri mongodb://localhost:27017
  peirce serve --redis localhost:6379`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.store, "store", opts.store, "session store: file (default), memory, mongo")
	cmd.Flags().StringVar(&opts.redisAddr, "redis", opts.redisAddr, "redis address for the diagram cache")
	cmd.Flags().StringVar(&opts.mongoURI, "mongo-uri", opts.mongoURI, "mongodb connection string")
	cmd.Flags().StringVar(&opts.mongoDB, "mongo-db", opts.mongoDB, "mongodb database name")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the diagram cache")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, opts *serveOpts) error {
	store, err := c.newServeStore(ctx, opts)
	if err != nil {
		return err
	}
	defer store.Close(context.Background())

	diagrams, err := c.newServeCache(ctx, opts)
	if err != nil {
		return err
	}
	defer diagrams.Close()

	srv := &http.Server{
		Addr:              opts.addr,
		Handler:           api.NewServer(store, diagrams, c.Logger).Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Infof("Listening on %s", opts.addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		c.Logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// newServeStore builds the session store backend selected by flags or config.
func (c *CLI) newServeStore(ctx context.Context, opts *serveOpts) (session.Store, error) {
	switch opts.store {
	case "memory":
		return session.NewMemoryStore(), nil
	case "file", "":
		return session.NewFileStore(c.Config.SessionDir)
	case "mongo":
		if opts.mongoURI == "" {
			return nil, fmt.Errorf("--store mongo requires --mongo-uri")
		}
		return session.NewMongoStore(ctx, opts.mongoURI, opts.mongoDB)
	default:
		return nil, fmt.Errorf("unknown store backend: %s (file, memory, mongo)", opts.store)
	}
}

// newServeCache builds the diagram cache: redis when configured, otherwise
// the file cache, otherwise no caching at all.
func (c *CLI) newServeCache(ctx context.Context, opts *serveOpts) (cache.Cache, error) {
	if opts.noCache {
		return cache.NewNullCache(), nil
	}
	if opts.redisAddr != "" {
		return cache.NewRedisCache(ctx, opts.redisAddr)
	}
	return newRenderCache(false), nil
}
