package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/vietddude/suiscope/internal/core/domain"
	"github.com/vietddude/suiscope/internal/infra/cache"
)

// Load reads configuration from a YAML file. A missing file yields the defaults.
func Load(path string) (*AppConfig, error) {
	var cfg AppConfig
	// search.timeout may be set to 0 explicitly, so it is preset rather than
	// filled in afterwards.
	cfg.Search.Timeout = 15 * time.Second

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		applyDefaults(&cfg)
		return &cfg, nil
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables in the YAML content
	expandedData := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expandedData), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if cfg.Search.Timeout < 0 {
		return nil, fmt.Errorf("search.timeout must not be negative")
	}
	return &cfg, nil
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}

	if cfg.Node.Network == "" {
		cfg.Node.Network = domain.NetworkMainnet
	}
	if cfg.Node.URL == "" {
		cfg.Node.URL = domain.NetworkToFullnodeURL[cfg.Node.Network]
	}
	if cfg.Node.Name == "" {
		cfg.Node.Name = string(cfg.Node.Network)
	}
	if cfg.Node.Timeout == 0 {
		cfg.Node.Timeout = 30 * time.Second
	}

	if cfg.Cache.TTL == 0 {
		cfg.Cache.TTL = cache.DefaultTTL
	}

	if cfg.Search.AddressTxLimit == 0 {
		cfg.Search.AddressTxLimit = 5
	}
	if cfg.Search.AddressObjectLimit == 0 {
		cfg.Search.AddressObjectLimit = 10
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
}
