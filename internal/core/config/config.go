package config

import (
	"time"

	"github.com/vietddude/suiscope/internal/core/domain"
	"github.com/vietddude/suiscope/internal/infra/cache"
)

// AppConfig represents the top-level configuration.
type AppConfig struct {
	Server  ServerConfig  `yaml:"server"`
	Node    NodeConfig    `yaml:"node"`
	Cache   CacheConfig   `yaml:"cache"`
	Search  SearchConfig  `yaml:"search"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port int `yaml:"port"`
}

// NodeConfig holds settings for the upstream full node.
type NodeConfig struct {
	Name    string         `yaml:"name"`
	Network domain.Network `yaml:"network"` // mainnet, testnet, devnet; used when URL is empty
	URL     string         `yaml:"url"`
	Timeout time.Duration  `yaml:"timeout"`
}

// CacheConfig holds response cache settings.
type CacheConfig struct {
	TTL   time.Duration     `yaml:"ttl"`
	Redis cache.RedisConfig `yaml:"redis"` // empty URL = in-process cache
}

// SearchConfig holds search fan-out settings.
type SearchConfig struct {
	Timeout            time.Duration `yaml:"timeout"` // 0 = no deadline
	AddressTxLimit     int           `yaml:"address_tx_limit"`
	AddressObjectLimit int           `yaml:"address_object_limit"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}
