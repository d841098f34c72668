package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the daemon settings. Zero or missing values fall back to
// the defaults, so a partial YAML file is fine.
type Config struct {
	// ListenAddr is the gRPC listen address.
	ListenAddr string `yaml:"listen_addr"`

	// MetricsAddr serves the Prometheus /metrics endpoint.
	MetricsAddr string `yaml:"metrics_addr"`

	// WALPath is the write-ahead log file.
	WALPath string `yaml:"wal_path"`

	Index IndexConfig `yaml:"index"`
}

type IndexConfig struct {
	// M : target per-node connectivity.
	M int `yaml:"m"`

	// EfSearch : default candidate pool size for searches.
	EfSearch int `yaml:"ef_search"`

	// Seed for the index random source; 0 picks a time-derived seed.
	Seed uint64 `yaml:"seed"`
}

func Default() Config {
	return Config{
		ListenAddr:  ":50051",
		MetricsAddr: ":9100",
		WALPath:     "smallworld.wal",
		Index: IndexConfig{
			M:        8,
			EfSearch: 20,
		},
	}
}

// Load reads a YAML config file on top of the defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if cfg.Index.M <= 0 {
		return Config{}, fmt.Errorf("index.m must be positive, got %d", cfg.Index.M)
	}
	if cfg.Index.EfSearch <= 0 {
		return Config{}, fmt.Errorf("index.ef_search must be positive, got %d", cfg.Index.EfSearch)
	}

	return cfg, nil
}
