package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/horizonlabs/horizon/pkg/layout"
)

// Config is the horizon configuration file, TOML at
// ~/.config/horizon/config.toml (overridable with --config).
type Config struct {
	Layout LayoutConfig `toml:"layout"`
	Cache  CacheConfig  `toml:"cache"`
	Store  StoreConfig  `toml:"store"`
	Server ServerConfig `toml:"server"`
}

// LayoutConfig sets default layout parameters for all commands.
type LayoutConfig struct {
	GalaxySpacing  float64 `toml:"galaxy_spacing"`
	ViewportRadius float64 `toml:"viewport_radius"`
}

// CacheConfig selects the cache backend.
type CacheConfig struct {
	Backend   string `toml:"backend"` // file, redis, memory, none
	Dir       string `toml:"dir"`
	RedisAddr string `toml:"redis_addr"`
}

// StoreConfig selects where the content tree lives.
type StoreConfig struct {
	Backend       string `toml:"backend"` // file, mongo
	Path          string `toml:"path"`
	MongoURI      string `toml:"mongo_uri"`
	MongoDatabase string `toml:"mongo_database"`
	MongoKey      string `toml:"mongo_key"`
}

// ServerConfig configures the serve command.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// DefaultConfig returns a fully-populated config. Every field has an
// explicit default; loading merges the file over these values.
func DefaultConfig() *Config {
	return &Config{
		Layout: LayoutConfig{
			GalaxySpacing:  layout.DefaultGalaxySpacing,
			ViewportRadius: 0,
		},
		Cache: CacheConfig{
			Backend:   "file",
			RedisAddr: "localhost:6379",
		},
		Store: StoreConfig{
			Backend:       "file",
			MongoURI:      "mongodb://localhost:27017",
			MongoDatabase: appName,
			MongoKey:      "default",
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
	}
}

// LoadConfig reads and validates the config file at path. An empty path
// means the default location; a missing file there yields the defaults.
// An explicitly given path must exist.
func LoadConfig(path string) (*Config, error) {
	explicit := path != ""
	if path == "" {
		var err error
		if path, err = defaultConfigPath(); err != nil {
			return DefaultConfig(), nil
		}
	}

	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// defaultConfigPath returns the XDG config location (~/.config/horizon/config.toml).
func defaultConfigPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

func (c *Config) validate() error {
	switch c.Cache.Backend {
	case "file", "redis", "memory", "none":
	default:
		return fmt.Errorf("cache.backend must be file, redis, memory, or none (got %q)", c.Cache.Backend)
	}
	switch c.Store.Backend {
	case "file", "mongo":
	default:
		return fmt.Errorf("store.backend must be file or mongo (got %q)", c.Store.Backend)
	}
	if c.Layout.GalaxySpacing < 0 {
		return fmt.Errorf("layout.galaxy_spacing must be non-negative (got %v)", c.Layout.GalaxySpacing)
	}
	if c.Layout.ViewportRadius < 0 {
		return fmt.Errorf("layout.viewport_radius must be non-negative (got %v)", c.Layout.ViewportRadius)
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr must not be empty")
	}
	return nil
}
