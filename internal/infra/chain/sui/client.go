package sui

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/vietddude/suiscope/internal/core/domain"
	"github.com/vietddude/suiscope/internal/infra/cache"
	"github.com/vietddude/suiscope/internal/search/metrics"
)

// Caller sends one JSON-RPC request and returns the raw result.
// rpc.HTTPProvider implements it.
type Caller interface {
	Call(ctx context.Context, method string, params []any) (json.RawMessage, error)
}

// Client provides typed, cached access to a Sui full node.
//
// Entity lookups (GetTransaction, GetObject) return errors so callers can tell
// a missing digest or object apart. Aggregate lookups never fail: on any error
// they log it and return an empty default.
type Client struct {
	rpc   Caller
	cache cache.ResponseCache
	log   *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithCache replaces the default in-memory cache.
func WithCache(c cache.ResponseCache) Option {
	return func(cl *Client) {
		cl.cache = c
	}
}

// WithLogger sets the logger used for swallowed lookup errors.
func WithLogger(log *slog.Logger) Option {
	return func(cl *Client) {
		cl.log = log
	}
}

// NewClient creates a typed Sui client on top of caller.
func NewClient(caller Caller, opts ...Option) *Client {
	c := &Client{
		rpc: caller,
		log: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.cache == nil {
		c.cache = cache.NewMemoryCache(cache.DefaultTTL)
	}
	c.log = c.log.With("component", "sui_client")
	return c
}

// call serves from the cache when possible. A fetched result is memoized
// only once decode accepts it.
func (c *Client) call(ctx context.Context, method string, params []any, decode func(json.RawMessage) error) error {
	key, err := cache.Key(method, params)
	if err != nil {
		return err
	}

	if raw, ok := c.cache.Get(ctx, key); ok {
		metrics.CacheLookupsTotal.WithLabelValues(method, "hit").Inc()
		return decode(raw)
	}
	metrics.CacheLookupsTotal.WithLabelValues(method, "miss").Inc()

	raw, err := c.rpc.Call(ctx, method, params)
	if err != nil {
		return err
	}
	if err := decode(raw); err != nil {
		return err
	}

	c.cache.Set(ctx, key, raw)
	return nil
}

func callInto[T any](ctx context.Context, c *Client, method string, params []any) (T, error) {
	var out T
	err := c.call(ctx, method, params, func(raw json.RawMessage) error {
		if err := json.Unmarshal(raw, &out); err != nil {
			return fmt.Errorf("decode %s result: %w", method, err)
		}
		return nil
	})
	return out, err
}

func (c *Client) fallback(method string, err error, args ...any) {
	metrics.SentinelFallbacksTotal.WithLabelValues(method).Inc()
	c.log.Warn("lookup failed, using empty default",
		append([]any{"method", method, "error", err}, args...)...)
}

// GetTransaction returns a transaction block by digest with inputs, effects,
// events and changes. A digest the node does not know wraps ErrNotFound.
func (c *Client) GetTransaction(ctx context.Context, digest string) (*domain.TransactionBlock, error) {
	tx, err := callInto[*domain.TransactionBlock](ctx, c, MethodGetTransactionBlock,
		[]any{digest, transactionDetailOptions})
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("transaction %s %w: %w", digest, ErrNotFound, err)
		}
		return nil, fmt.Errorf("failed to get transaction %s: %w", digest, err)
	}

	if tx == nil {
		return nil, fmt.Errorf("transaction %s %w", digest, ErrNotFound)
	}
	return tx, nil
}

// GetObject returns an object by id. An object the node reports as missing
// or deleted wraps ErrNotFound.
func (c *Client) GetObject(ctx context.Context, objectID string) (*domain.ObjectResponse, error) {
	obj, err := callInto[*domain.ObjectResponse](ctx, c, MethodGetObject,
		[]any{objectID, objectDetailOptions})
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("object %s %w: %w", objectID, ErrNotFound, err)
		}
		return nil, fmt.Errorf("failed to get object %s: %w", objectID, err)
	}

	switch {
	case obj == nil:
		return nil, fmt.Errorf("object %s %w", objectID, ErrNotFound)
	case obj.Error != nil && objectMissingCodes[obj.Error.Code]:
		return nil, fmt.Errorf("object %s %w (%s)", objectID, ErrNotFound, obj.Error.Code)
	case obj.Error != nil:
		return nil, fmt.Errorf("failed to get object %s: %s", objectID, obj.Error.Code)
	case obj.Data == nil:
		return nil, fmt.Errorf("object %s %w", objectID, ErrNotFound)
	}
	return obj, nil
}

// GetOwnedObjects returns the first page of objects owned by address.
// On failure it returns an empty page.
func (c *Client) GetOwnedObjects(ctx context.Context, address string, limit int) domain.Page[domain.ObjectResponse] {
	if limit <= 0 {
		limit = DefaultOwnedObjectsLimit
	}
	page, err := callInto[domain.Page[domain.ObjectResponse]](ctx, c, MethodGetOwnedObjects,
		[]any{address, ObjectQuery{Options: ownedObjectOptions}, nil, limit})
	if err != nil {
		c.fallback(MethodGetOwnedObjects, err, "address", address)
		return domain.EmptyPage[domain.ObjectResponse]()
	}
	return normalizePage(page)
}

// GetTransactionsByAddress returns the most recent transactions sent by or
// affecting address, newest first. On failure it returns an empty page.
func (c *Client) GetTransactionsByAddress(ctx context.Context, address string, limit int) domain.Page[domain.TransactionBlock] {
	if limit <= 0 {
		limit = DefaultAddressTransactionsLimit
	}
	query := TransactionBlockQuery{
		Filter:  fromOrToAddress(address),
		Options: addressTransactionOptions,
	}
	page, err := callInto[domain.Page[domain.TransactionBlock]](ctx, c, MethodQueryTransactionBlocks,
		[]any{query, nil, limit, true})
	if err != nil {
		c.fallback(MethodQueryTransactionBlocks, err, "address", address)
		return domain.EmptyPage[domain.TransactionBlock]()
	}
	return normalizePage(page)
}

// GetLatestTransactions returns the newest transactions on the network.
// On failure it returns an empty page.
func (c *Client) GetLatestTransactions(ctx context.Context, limit int) domain.Page[domain.TransactionBlock] {
	if limit <= 0 {
		limit = DefaultLatestTransactionsLimit
	}
	query := TransactionBlockQuery{Options: latestTransactionOptions}
	page, err := callInto[domain.Page[domain.TransactionBlock]](ctx, c, MethodQueryTransactionBlocks,
		[]any{query, nil, limit, true})
	if err != nil {
		c.fallback(MethodQueryTransactionBlocks, err)
		return domain.EmptyPage[domain.TransactionBlock]()
	}
	return normalizePage(page)
}

// GetBalance returns the balance of one coin type held by address. An empty
// coinType means SUI. On failure it returns a zero balance.
func (c *Client) GetBalance(ctx context.Context, address, coinType string) domain.Balance {
	if coinType == "" {
		coinType = domain.DefaultCoinType
	}
	balance, err := callInto[domain.Balance](ctx, c, MethodGetBalance, []any{address, coinType})
	if err != nil {
		c.fallback(MethodGetBalance, err, "address", address)
		return domain.ZeroBalance(coinType)
	}
	if balance.LockedBalance == nil {
		balance.LockedBalance = map[string]string{}
	}
	return balance
}

// GetAllBalances returns every coin balance held by address. On failure it
// returns an empty slice.
func (c *Client) GetAllBalances(ctx context.Context, address string) []domain.Balance {
	balances, err := callInto[[]domain.Balance](ctx, c, MethodGetAllBalances, []any{address})
	if err != nil {
		c.fallback(MethodGetAllBalances, err, "address", address)
		return []domain.Balance{}
	}
	if balances == nil {
		return []domain.Balance{}
	}
	return balances
}

// GetSystemState returns the current system state, or nil on failure.
func (c *Client) GetSystemState(ctx context.Context) *domain.SystemState {
	state, err := callInto[*domain.SystemState](ctx, c, MethodGetSystemState, nil)
	if err != nil {
		c.fallback(MethodGetSystemState, err)
		return nil
	}
	return state
}

// GetTotalTransactionBlocks returns the number of transaction blocks the node
// has executed, or 0 on failure.
func (c *Client) GetTotalTransactionBlocks(ctx context.Context) uint64 {
	var total uint64
	err := c.call(ctx, MethodGetTotalTransactionBlocks, nil, func(raw json.RawMessage) (err error) {
		total, err = parseCount(raw)
		return err
	})
	if err != nil {
		c.fallback(MethodGetTotalTransactionBlocks, err)
		return 0
	}
	return total
}

// Ping asks the node for its transaction count, bypassing the cache.
func (c *Client) Ping(ctx context.Context) (uint64, error) {
	raw, err := c.rpc.Call(ctx, MethodGetTotalTransactionBlocks, nil)
	if err != nil {
		return 0, fmt.Errorf("ping: %w", err)
	}
	total, err := parseCount(raw)
	if err != nil {
		return 0, fmt.Errorf("ping: %w", err)
	}
	metrics.NodeTotalTransactions.Set(float64(total))
	return total, nil
}

// GetNetworkStats fetches the transaction count and system state concurrently
// and derives summary figures from whichever succeeded.
func (c *Client) GetNetworkStats(ctx context.Context) domain.NetworkStats {
	var (
		total uint64
		state *domain.SystemState
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		total = c.GetTotalTransactionBlocks(gctx)
		return nil
	})
	g.Go(func() error {
		state = c.GetSystemState(gctx)
		return nil
	})
	_ = g.Wait()

	stats := domain.NetworkStats{TotalTransactions: total}
	if state != nil {
		stats.Epoch = state.Epoch
		stats.ReferenceGasPrice = state.ReferenceGasPrice
		stats.TotalStake = state.TotalStake
		stats.ActiveValidators = len(state.ActiveValidators)
	}
	return stats
}

// parseCount accepts the count as a JSON string or number.
func parseCount(raw json.RawMessage) (uint64, error) {
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, fmt.Errorf("decode count: %w", err)
	}
	total, err := strconv.ParseUint(n.String(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("decode count %q: %w", n, err)
	}
	return total, nil
}

func normalizePage[T any](p domain.Page[T]) domain.Page[T] {
	if p.Data == nil {
		p.Data = []T{}
	}
	return p
}
