package control

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/vietddude/suiscope/internal/core/config"
	"github.com/vietddude/suiscope/internal/core/domain"
	"github.com/vietddude/suiscope/internal/infra/cache"
	"github.com/vietddude/suiscope/internal/search"
	"github.com/vietddude/suiscope/internal/search/health"
)

// newFakeNode answers every address lookup and counts requests.
func newFakeNode(t *testing.T, calls *atomic.Int32) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		var req struct {
			ID     uint64 `json:"id"`
			Method string `json:"method"`
			Params []any  `json:"params"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)

		var result any
		switch req.Method {
		case "suix_getBalance":
			result = map[string]any{"coinType": req.Params[1], "coinObjectCount": 1, "totalBalance": "5", "lockedBalance": map[string]any{}}
		case "suix_queryTransactionBlocks", "suix_getOwnedObjects":
			result = map[string]any{"data": []any{}, "hasNextPage": false, "nextCursor": nil}
		case "sui_getTotalTransactionBlocks":
			result = "77"
		case "sui_getTransactionBlock":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"jsonrpc": "2.0",
				"id":      req.ID,
				"error":   map[string]any{"code": -32602, "message": "Could not find the referenced transaction"},
			})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"jsonrpc": "2.0", "id": req.ID, "result": result})
	}))
	t.Cleanup(server.Close)
	return server
}

func TestNewApp_SearchThroughCache(t *testing.T) {
	var calls atomic.Int32
	node := newFakeNode(t, &calls)

	app, err := NewApp(Config{
		Node:   config.NodeConfig{Name: "fake", URL: node.URL, Timeout: 5 * time.Second},
		Cache:  config.CacheConfig{TTL: time.Minute},
		Search: search.DefaultConfig(),
	})
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}
	defer app.Close()

	address := "0x" + strings.Repeat("1", 40)
	ctx := context.Background()

	env, err := app.Orchestrator().Search(ctx, address)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if env.TotalCount != 1 || env.Entries[0].Kind != domain.EntityKindAddress {
		t.Fatalf("unexpected envelope %+v", env)
	}
	if got := calls.Load(); got != 3 {
		t.Errorf("expected 3 node calls, got %d", got)
	}

	if _, err := app.Orchestrator().Search(ctx, address); err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if got := calls.Load(); got != 3 {
		t.Errorf("expected repeat search to be served from cache, got %d calls", got)
	}

	hits, misses := app.memCache.Stats()
	if hits != 3 || misses != 3 {
		t.Errorf("expected 3 hits and 3 misses, got %d/%d", hits, misses)
	}
	if n := app.memCache.Len(); n != 3 {
		t.Errorf("expected 3 cached entries, got %d", n)
	}
}

func TestNewApp_HealthEndpoint(t *testing.T) {
	var calls atomic.Int32
	node := newFakeNode(t, &calls)

	app, err := NewApp(Config{
		Node:   config.NodeConfig{URL: node.URL, Timeout: 5 * time.Second},
		Search: search.DefaultConfig(),
	})
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}
	defer app.Close()

	rec := httptest.NewRecorder()
	app.Server().Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestNewApp_UnknownDigestsKeepNodeHealthy(t *testing.T) {
	var calls atomic.Int32
	node := newFakeNode(t, &calls)

	app, err := NewApp(Config{
		Node:   config.NodeConfig{URL: node.URL, Timeout: 5 * time.Second},
		Search: search.DefaultConfig(),
	})
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}
	defer app.Close()

	ctx := context.Background()
	for _, digest := range []string{
		"HP2mvVRHsQXMaDqLDkekhgcCTFTYLAXkjvysigJJqk9X",
		"7Yq2m8Hb3fRkTsZpLwXcV4nJd9eGtUyA6QoBiCa5KMsN",
	} {
		env, err := app.Orchestrator().Search(ctx, digest)
		if err != nil {
			t.Fatalf("Search failed: %v", err)
		}
		if env.TotalCount != 0 {
			t.Fatalf("expected no entries for unknown digest, got %d", env.TotalCount)
		}
	}

	report := app.healthMon.CheckHealth(ctx)
	if report.SystemStatus != health.StatusHealthy {
		t.Errorf("expected healthy node, got %s (error rate %v)", report.SystemStatus, report.Node.RPCErrorRate)
	}
	if report.Node.RPCErrorRate != 0 {
		t.Errorf("expected error rate 0, got %v", report.Node.RPCErrorRate)
	}
}

func TestNewApp_RequiresNodeURL(t *testing.T) {
	if _, err := NewApp(Config{}); err == nil {
		t.Fatal("expected error without node url")
	}
}

func TestNewApp_BadRedisURL(t *testing.T) {
	_, err := NewApp(Config{
		Node:  config.NodeConfig{URL: "http://127.0.0.1:1"},
		Cache: config.CacheConfig{Redis: cache.RedisConfig{URL: "not-a-url"}},
	})
	if err == nil {
		t.Fatal("expected redis init error")
	}
}

func TestConfigFromApp(t *testing.T) {
	cfg := &config.AppConfig{
		Server: config.ServerConfig{Port: 9000},
		Node:   config.NodeConfig{URL: "http://node"},
		Search: config.SearchConfig{Timeout: time.Second, AddressTxLimit: 3, AddressObjectLimit: 4},
	}

	got := ConfigFromApp(cfg)
	if got.Port != 9000 || got.Node.URL != "http://node" {
		t.Errorf("unexpected config %+v", got)
	}
	if got.Search.Timeout != time.Second || got.Search.AddressTxLimit != 3 || got.Search.AddressObjectLimit != 4 {
		t.Errorf("unexpected search config %+v", got.Search)
	}
}

func TestApp_GracefulShutdown(t *testing.T) {
	var calls atomic.Int32
	node := newFakeNode(t, &calls)

	app, err := NewApp(Config{
		Port:   0,
		Node:   config.NodeConfig{URL: node.URL, Timeout: time.Second},
		Search: search.DefaultConfig(),
	})
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}

	if err := app.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	// Let the listener come up
	time.Sleep(100 * time.Millisecond)

	stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		t.Errorf("Stop failed: %v", err)
	}
}
