// Package cliconfig loads graphops' persistent CLI defaults from
// ~/.graphops.toml, using the same github.com/BurntSushi/toml decoder
// the teacher uses for Cargo.toml/pyproject.toml manifests
// (pkg/deps/rust/cargo.go, pkg/deps/python/poetry.go), applied here to a
// user config file instead of a dependency manifest.
package cliconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds defaults read from ~/.graphops.toml, overridable by
// explicit CLI flags.
type Config struct {
	Cache  CacheConfig  `toml:"cache"`
	Store  StoreConfig  `toml:"store"`
	Render RenderConfig `toml:"render"`
}

// CacheConfig selects and configures the cache backend (see pkg/cache).
type CacheConfig struct {
	Backend  string `toml:"backend"` // "file" (also when empty), "redis", or "none" (disabled)
	Dir      string `toml:"dir"`
	RedisURL string `toml:"redis_url"`
}

// StoreConfig selects and configures the saved-graph backend (see pkg/store).
type StoreConfig struct {
	Backend    string `toml:"backend"` // "file" or "mongo"
	Dir        string `toml:"dir"`
	MongoURI   string `toml:"mongo_uri"`
	MongoDB    string `toml:"mongo_database"`
	MongoColl  string `toml:"mongo_collection"`
}

// RenderConfig holds the [render] table. No subcommand reads these values;
// the dot subcommand takes its layout and scale from flags only.
type RenderConfig struct {
	Horizontal bool    `toml:"horizontal"`
	Scale      float64 `toml:"scale"`
}

// defaultPath returns ~/.graphops.toml.
func defaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".graphops.toml"), nil
}

// Load reads the config file at path. If path is empty, it defaults to
// ~/.graphops.toml. A missing file is not an error: Load returns the
// zero Config in that case.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := defaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	var cfg Config
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("stat config file: %w", err)
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return &cfg, nil
}
