// Package search classifies a free-form query and fetches the matching
// entities from the node, merging them into one result envelope.
package search

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/vietddude/suiscope/internal/core/domain"
	"github.com/vietddude/suiscope/internal/infra/chain/sui"
	"github.com/vietddude/suiscope/internal/search/classifier"
	"github.com/vietddude/suiscope/internal/search/metrics"
)

// Relevance is assigned to every entry; there is no ranking.
const Relevance = 100

// Fetcher is the subset of sui.Client used to resolve a query.
type Fetcher interface {
	GetTransaction(ctx context.Context, digest string) (*domain.TransactionBlock, error)
	GetObject(ctx context.Context, objectID string) (*domain.ObjectResponse, error)
	GetBalance(ctx context.Context, address, coinType string) domain.Balance
	GetTransactionsByAddress(ctx context.Context, address string, limit int) domain.Page[domain.TransactionBlock]
	GetOwnedObjects(ctx context.Context, address string, limit int) domain.Page[domain.ObjectResponse]
}

var _ Fetcher = (*sui.Client)(nil)

// Config controls how a search fans out.
type Config struct {
	// Timeout bounds one Search; zero means no deadline.
	Timeout            time.Duration
	AddressTxLimit     int
	AddressObjectLimit int
}

// DefaultConfig returns the default search settings.
func DefaultConfig() Config {
	return Config{
		Timeout:            15 * time.Second,
		AddressTxLimit:     5,
		AddressObjectLimit: 10,
	}
}

// Orchestrator runs searches against a Fetcher.
type Orchestrator struct {
	fetcher      Fetcher
	cfg          Config
	log          *slog.Logger
	onTransition func(Transition)
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithLogger sets the orchestrator logger.
func WithLogger(log *slog.Logger) Option {
	return func(o *Orchestrator) {
		o.log = log
	}
}

// WithTransitionCallback registers fn to receive every lifecycle transition.
// fn is called synchronously from the searching goroutine.
func WithTransitionCallback(fn func(Transition)) Option {
	return func(o *Orchestrator) {
		o.onTransition = fn
	}
}

// NewOrchestrator creates an orchestrator. Non-positive limits fall back to
// DefaultConfig values.
func NewOrchestrator(fetcher Fetcher, cfg Config, opts ...Option) *Orchestrator {
	defaults := DefaultConfig()
	if cfg.AddressTxLimit <= 0 {
		cfg.AddressTxLimit = defaults.AddressTxLimit
	}
	if cfg.AddressObjectLimit <= 0 {
		cfg.AddressObjectLimit = defaults.AddressObjectLimit
	}
	if cfg.Timeout < 0 {
		cfg.Timeout = 0
	}

	o := &Orchestrator{
		fetcher: fetcher,
		cfg:     cfg,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(o)
	}
	o.log = o.log.With("component", "search")
	return o
}

// Classify returns the classification Search would use for query.
func (o *Orchestrator) Classify(query string) domain.ClassificationResult {
	return classifier.Classify(query)
}

// Search classifies query and fetches the matching entity. Lookup failures
// never fail the search: a missing transaction or object yields zero entries
// and a failed address sub-lookup keeps its empty default. An error is
// returned only when ctx is already done before any lookup is issued.
func (o *Orchestrator) Search(ctx context.Context, query string) (domain.SearchResultEnvelope, error) {
	start := time.Now()
	requestID := uuid.NewString()
	log := o.log.With("request_id", requestID)
	lc := newLifecycle(requestID, o.onTransition)

	trimmed := strings.TrimSpace(query)
	envelope := domain.SearchResultEnvelope{
		Query:   trimmed,
		Entries: []domain.SearchEntry{},
	}

	o.advance(log, lc, StateClassifying, "")
	result := classifier.Classify(trimmed)
	log.Debug("query classified", "query", trimmed, "kind", result.Kind, "confidence", result.Confidence)

	if o.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.cfg.Timeout)
		defer cancel()
	}

	if err := ctx.Err(); err != nil {
		o.advance(log, lc, StateFailed, err.Error())
		log.Warn("search abandoned", "query", trimmed, "error", err)
		return envelope, err
	}

	o.advance(log, lc, StateDispatching, string(result.Kind))
	entries := o.dispatch(ctx, log, trimmed, result.Kind)

	o.advance(log, lc, StateMerging, "")
	envelope.Entries = append(envelope.Entries, entries...)
	envelope.TotalCount = len(envelope.Entries)

	o.advance(log, lc, StateDone, "")

	kind := string(result.Kind)
	metrics.SearchesTotal.WithLabelValues(kind).Inc()
	metrics.SearchEntriesTotal.WithLabelValues(kind).Add(float64(envelope.TotalCount))
	metrics.SearchDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())

	log.Info("search completed",
		"kind", result.Kind,
		"entries", envelope.TotalCount,
		"duration", time.Since(start),
	)
	return envelope, nil
}

func (o *Orchestrator) advance(log *slog.Logger, lc *lifecycle, to State, reason string) {
	if err := lc.advance(to, reason); err != nil {
		log.Error("search lifecycle", "from", lc.state, "to", to, "error", err)
	}
}

func (o *Orchestrator) dispatch(ctx context.Context, log *slog.Logger, query string, kind domain.EntityKind) []domain.SearchEntry {
	switch kind {
	case domain.EntityKindTransaction:
		tx, err := o.fetcher.GetTransaction(ctx, query)
		if err != nil {
			logLookupFailure(log, "transaction", query, err)
			return nil
		}
		return []domain.SearchEntry{newEntry(tx)}

	case domain.EntityKindObject:
		obj, err := o.fetcher.GetObject(ctx, query)
		if err != nil {
			logLookupFailure(log, "object", query, err)
			return nil
		}
		return []domain.SearchEntry{newEntry(obj)}

	case domain.EntityKindAddress:
		return []domain.SearchEntry{newEntry(o.fetchAddress(ctx, query))}

	default:
		return nil
	}
}

// fetchAddress runs the three address lookups concurrently and waits for all
// of them. Each lookup returns its own default on failure, so the view is
// always complete.
func (o *Orchestrator) fetchAddress(ctx context.Context, address string) *domain.AddressView {
	view := &domain.AddressView{Address: address}

	var g errgroup.Group
	g.Go(func() error {
		view.Balance = o.fetcher.GetBalance(ctx, address, domain.DefaultCoinType)
		return nil
	})
	g.Go(func() error {
		view.Transactions = o.fetcher.GetTransactionsByAddress(ctx, address, o.cfg.AddressTxLimit)
		return nil
	})
	g.Go(func() error {
		view.Objects = o.fetcher.GetOwnedObjects(ctx, address, o.cfg.AddressObjectLimit)
		return nil
	})
	_ = g.Wait()

	return view
}

func newEntry(p domain.Payload) domain.SearchEntry {
	return domain.SearchEntry{
		Kind:      p.EntityKind(),
		Payload:   p,
		Relevance: Relevance,
	}
}

func logLookupFailure(log *slog.Logger, entity, query string, err error) {
	if errors.Is(err, sui.ErrNotFound) {
		log.Debug(entity+" not found", "query", query)
		return
	}
	log.Warn(entity+" lookup failed", "query", query, "error", err)
}
