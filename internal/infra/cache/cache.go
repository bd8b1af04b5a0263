// Package cache provides the TTL response cache that sits in front of the
// JSON-RPC client.
//
// Entries are keyed by (method, params) and hold the raw JSON result of a
// successful call. An entry is served only while its age, computed at read
// time, is below the TTL. There is no size bound and no background sweeper:
// stale entries are dropped lazily when read, so a long-lived process that
// queries many distinct keys grows until those keys are read again.
package cache

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// DefaultTTL is used when a cache is constructed with a non-positive TTL.
const DefaultTTL = 30 * time.Second

// ResponseCache stores raw JSON-RPC results.
type ResponseCache interface {
	// Get returns the value stored under key if it is younger than the TTL.
	Get(ctx context.Context, key string) (json.RawMessage, bool)

	// Set stores value under key, replacing any previous entry.
	Set(ctx context.Context, key string, value json.RawMessage)

	// TTL returns the configured time-to-live.
	TTL() time.Duration
}

// Entry is a single cached result. Entries are replaced, never mutated.
type Entry struct {
	Key      string
	Value    json.RawMessage
	StoredAt time.Time
}

// Age returns how old the entry is at now.
func (e Entry) Age(now time.Time) time.Duration {
	return now.Sub(e.StoredAt)
}

// Key builds the cache key for a call. Params are serialized structurally
// with object keys sorted, so logically identical calls map to the same key
// regardless of how their maps or structs were built.
func Key(method string, params []any) (string, error) {
	if params == nil {
		params = []any{}
	}
	canonical, err := canonicalJSON(params)
	if err != nil {
		return "", fmt.Errorf("cache key for %s: %w", method, err)
	}
	return method + ":" + string(canonical), nil
}

// canonicalJSON round-trips v through a generic value: encoding/json sorts
// map keys, and decoding struct output into maps makes struct field order
// irrelevant too.
func canonicalJSON(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var generic any
	if err := dec.Decode(&generic); err != nil {
		return nil, err
	}
	return json.Marshal(generic)
}

func clone(v json.RawMessage) json.RawMessage {
	if v == nil {
		return nil
	}
	return bytes.Clone(v)
}
