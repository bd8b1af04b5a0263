package control

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/vietddude/suiscope/internal/core/config"
	"github.com/vietddude/suiscope/internal/infra/cache"
	"github.com/vietddude/suiscope/internal/infra/chain/sui"
	"github.com/vietddude/suiscope/internal/infra/rpc"
	"github.com/vietddude/suiscope/internal/search"
	"github.com/vietddude/suiscope/internal/search/health"
)

// App wires one node client and one search orchestrator for the process.
type App struct {
	cfg          Config
	provider     *rpc.HTTPProvider
	cache        cache.ResponseCache
	redisCache   *cache.RedisCache
	memCache     *cache.MemoryCache
	client       *sui.Client
	orchestrator *search.Orchestrator
	healthMon    *health.Monitor
	server       *health.Server
	log          *slog.Logger
}

// Config holds the application configuration.
type Config struct {
	Port   int
	Node   config.NodeConfig
	Cache  config.CacheConfig
	Search search.Config
}

// ConfigFromApp maps the loaded file configuration onto Config.
func ConfigFromApp(cfg *config.AppConfig) Config {
	return Config{
		Port:  cfg.Server.Port,
		Node:  cfg.Node,
		Cache: cfg.Cache,
		Search: search.Config{
			Timeout:            cfg.Search.Timeout,
			AddressTxLimit:     cfg.Search.AddressTxLimit,
			AddressObjectLimit: cfg.Search.AddressObjectLimit,
		},
	}
}

// NewApp creates a new App with all dependencies initialized.
func NewApp(cfg Config) (*App, error) {
	log := slog.Default().With("component", "app")

	if cfg.Node.URL == "" {
		return nil, errors.New("node url is required")
	}
	name := cfg.Node.Name
	if name == "" {
		name = "node"
	}

	// 1. Transport
	provider := rpc.NewHTTPProvider(name, cfg.Node.URL, cfg.Node.Timeout)

	// 2. Response cache
	app := &App{cfg: cfg, provider: provider, log: log}
	if cfg.Cache.Redis.URL != "" {
		rc, err := cache.NewRedisCache(cfg.Cache.Redis, cfg.Cache.TTL)
		if err != nil {
			return nil, fmt.Errorf("failed to init redis cache: %w", err)
		}
		app.redisCache = rc
		app.cache = rc
		log.Info("Using Redis response cache", "ttl", rc.TTL())
	} else {
		mc := cache.NewMemoryCache(cfg.Cache.TTL)
		app.memCache = mc
		app.cache = mc
		log.Info("Using in-memory response cache", "ttl", mc.TTL())
	}

	// 3. Typed client and search
	app.client = sui.NewClient(provider, sui.WithCache(app.cache))
	app.orchestrator = search.NewOrchestrator(app.client, cfg.Search,
		search.WithTransitionCallback(func(t search.Transition) {
			log.Debug("search transition",
				"request_id", t.RequestID,
				"from", t.From,
				"to", t.To,
				"state", search.StateDescription(t.To),
				"reason", t.Reason,
			)
		}),
	)

	// 4. Health and API
	app.healthMon = health.NewMonitor(cfg.Node.URL, app.client, provider)
	app.server = health.NewServer(app.healthMon, app.orchestrator, app.client, cfg.Port)

	return app, nil
}

// Client returns the typed node client.
func (a *App) Client() *sui.Client {
	return a.client
}

// Orchestrator returns the search orchestrator.
func (a *App) Orchestrator() *search.Orchestrator {
	return a.orchestrator
}

// Server returns the API server.
func (a *App) Server() *health.Server {
	return a.server
}

// Start starts the API server in the background.
func (a *App) Start(ctx context.Context) error {
	// Fail fast if the node is unreachable
	if report := a.healthMon.CheckHealth(ctx); report.SystemStatus == health.StatusCritical {
		a.log.Warn("Node is not reachable", "endpoint", a.cfg.Node.URL, "error", report.Node.Error)
	}

	go func() {
		if err := a.server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("API server failed", "error", err)
		}
	}()

	a.log.Info("API server listening", "addr", a.server.Addr(), "node", a.cfg.Node.URL)
	return nil
}

// Stop stops the API server and releases connections.
func (a *App) Stop(ctx context.Context) error {
	var errs []error
	if err := a.server.Stop(ctx); err != nil {
		errs = append(errs, fmt.Errorf("stop server: %w", err))
	}
	if err := a.Close(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Close releases the node and cache connections without touching the server.
func (a *App) Close() error {
	var errs []error
	if err := a.provider.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close provider: %w", err))
	}
	if a.memCache != nil {
		hits, misses := a.memCache.Stats()
		a.log.Info("Response cache stats", "entries", a.memCache.Len(), "hits", hits, "misses", misses)
	}
	if a.redisCache != nil {
		if err := a.redisCache.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close redis: %w", err))
		}
	}
	return errors.Join(errs...)
}
