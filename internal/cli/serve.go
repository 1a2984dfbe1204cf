package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/horizonlabs/horizon/internal/api"
	"github.com/horizonlabs/horizon/pkg/cache"
	"github.com/horizonlabs/horizon/pkg/universe"
)

// serveCommand creates the serve command running the layout API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr string
		path string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the layout HTTP API",
		Long: `Run the layout HTTP API.

Serves the normalized content tree, assembled scenes, and tree validation
over HTTP. The store and cache backends come from the configuration file:
a JSON file or a MongoDB collection for content, a file, Redis, or no
cache for results.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, path)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")
	cmd.Flags().StringVar(&path, "universe", "", "universe JSON file (overrides the configured store)")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr, path string) error {
	if addr == "" {
		addr = c.Config.Server.Addr
	}

	store, source, err := c.newStore(ctx, path)
	if err != nil {
		return err
	}

	serverCache, err := c.newServerCache(ctx)
	if err != nil {
		return err
	}

	srv := api.NewServer(api.Config{
		Store:  store,
		Cache:  serverCache,
		Keyer:  cache.NewScopedKeyer(nil, source+":"),
		Source: source,
		Logger: c.Logger,
	})
	defer srv.Close()

	printInfo("Serving layout API on %s", addr)
	return srv.ListenAndServe(ctx, addr)
}

// newStore builds the content store from config, or a file store for an
// explicit path. The second return is the store's stable identity, used to
// scope cache keys and to cache loaded trees.
func (c *CLI) newStore(ctx context.Context, path string) (universe.Store, string, error) {
	if path != "" {
		return universe.NewFileStore(path), "file://" + path, nil
	}
	switch c.Config.Store.Backend {
	case "mongo":
		store, err := universe.NewMongoStore(ctx, universe.MongoConfig{
			URI:      c.Config.Store.MongoURI,
			Database: c.Config.Store.MongoDatabase,
			Key:      c.Config.Store.MongoKey,
		})
		if err != nil {
			return nil, "", fmt.Errorf("connect mongo store: %w", err)
		}
		source := fmt.Sprintf("mongo://%s/%s", c.Config.Store.MongoDatabase, c.Config.Store.MongoKey)
		return store, source, nil
	case "file":
		if c.Config.Store.Path == "" {
			return nil, "", fmt.Errorf("store.path is required for the file store (or pass --universe)")
		}
		return universe.NewFileStore(c.Config.Store.Path), "file://" + c.Config.Store.Path, nil
	default:
		return nil, "", fmt.Errorf("unknown store backend %q", c.Config.Store.Backend)
	}
}

// newServerCache builds the server-side cache from config.
func (c *CLI) newServerCache(ctx context.Context) (cache.Cache, error) {
	switch c.Config.Cache.Backend {
	case "redis":
		// Redis may still be starting alongside us; connection errors
		// are marked retryable.
		var rc *cache.RedisCache
		err := cache.RetryWithBackoff(ctx, func() error {
			var err error
			rc, err = cache.NewRedisCache(ctx, cache.RedisConfig{
				Addr: c.Config.Cache.RedisAddr,
			})
			return err
		})
		if err != nil {
			return nil, fmt.Errorf("connect redis cache: %w", err)
		}
		return rc, nil
	case "memory":
		return cache.NewMemoryCache(), nil
	case "file":
		dir, err := c.cacheDir()
		if err != nil {
			return cache.NewNullCache(), nil
		}
		return cache.NewFileCache(dir)
	default:
		return cache.NewNullCache(), nil
	}
}
