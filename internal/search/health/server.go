package health

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vietddude/suiscope/internal/core/domain"
)

// Searcher resolves queries. search.Orchestrator implements it.
type Searcher interface {
	Search(ctx context.Context, query string) (domain.SearchResultEnvelope, error)
	Classify(query string) domain.ClassificationResult
	Suggest(query string) []domain.Suggestion
}

// StatsSource provides network-wide figures. sui.Client implements it.
type StatsSource interface {
	GetNetworkStats(ctx context.Context) domain.NetworkStats
}

// Server provides the HTTP API and health endpoints.
type Server struct {
	monitor  *Monitor
	searcher Searcher
	stats    StatsSource
	server   *http.Server
	log      *slog.Logger
}

// NewServer creates a new API server.
func NewServer(monitor *Monitor, searcher Searcher, stats StatsSource, port int) *Server {
	mux := http.NewServeMux()
	s := &Server{
		monitor:  monitor,
		searcher: searcher,
		stats:    stats,
		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           mux,
			ReadHeaderTimeout: 10 * time.Second,
		},
		log: slog.Default().With("component", "api"),
	}

	mux.HandleFunc("/search", s.handleSearch)
	mux.HandleFunc("/classify", s.handleClassify)
	mux.HandleFunc("/suggest", s.handleSuggest)
	mux.HandleFunc("/stats", s.handleStats)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/health/detailed", s.handleDetailed)
	mux.Handle("/metrics", promhttp.Handler())

	return s
}

// Handler returns the server's request router.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return s.server.Addr
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Stop stops the HTTP server.
func (s *Server) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q, ok := queryParam(w, r)
	if !ok {
		return
	}

	envelope, err := s.searcher.Search(r.Context(), q)
	if err != nil {
		s.log.Warn("search failed", "query", q, "error", err)
		writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, envelope)
}

func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	q, ok := queryParam(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.searcher.Classify(q))
}

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	q, ok := queryParam(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.searcher.Suggest(q))
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, s.stats.GetNetworkStats(r.Context()))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	report := s.monitor.CheckHealth(r.Context())

	response := map[string]string{"status": string(report.SystemStatus)}
	if report.SystemStatus == StatusCritical {
		writeJSON(w, http.StatusServiceUnavailable, response)
		return
	}
	writeJSON(w, http.StatusOK, response)
}

func (s *Server) handleDetailed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.monitor.CheckHealth(r.Context()))
}

func queryParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return "", false
	}
	return r.URL.Query().Get("q"), true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
