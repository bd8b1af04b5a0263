// Package rpc provides the JSON-RPC client transport for a Sui full node.
//
// A single endpoint is assumed reachable; there is no failover or retry at
// this layer. Every call carries a request id drawn from a counter shared by
// all calls on one provider, and every failure is an *Error whose Kind says
// whether the transport, the HTTP status, the node's JSON-RPC error object or
// the response decoding went wrong.
//
// # Quick Start
//
//	import "github.com/vietddude/suiscope/internal/infra/rpc"
//
//	p := rpc.NewHTTPProvider("mainnet", "https://fullnode.mainnet.sui.io:443", 30*time.Second)
//	defer p.Close()
//
//	raw, err := p.Call(ctx, "sui_getTotalTransactionBlocks", nil)
//	if rpc.IsProtocol(err) {
//	    // node rejected the request
//	}
//
// # Package Structure
//
//   - provider/ - Provider interface, HTTPProvider, monitoring and error types
//
// Most types are re-exported at the root level for convenience.
package rpc

import (
	"time"

	"github.com/vietddude/suiscope/internal/infra/rpc/provider"
)

// Provider is the core interface for RPC endpoints.
type Provider = provider.Provider

// HTTPProvider implements Provider for JSON-RPC 2.0 over HTTP.
type HTTPProvider = provider.HTTPProvider

// ProviderMonitor tracks provider latency and rate limiting.
type ProviderMonitor = provider.ProviderMonitor

// ProviderStatus represents the health state of a provider.
type ProviderStatus = provider.ProviderStatus

// MonitorStats holds monitoring statistics for a provider.
type MonitorStats = provider.MonitorStats

// HealthStatus represents the health state of a provider.
type HealthStatus = provider.HealthStatus

// Error is the typed failure returned by Provider.Call.
type Error = provider.Error

// ErrorKind categorizes a failed call.
type ErrorKind = provider.ErrorKind

// Provider status constants
const (
	StatusHealthy   = provider.StatusHealthy
	StatusDegraded  = provider.StatusDegraded
	StatusThrottled = provider.StatusThrottled
	StatusBlocked   = provider.StatusBlocked
)

// Error kind constants
const (
	KindTransport  = provider.KindTransport
	KindHTTPStatus = provider.KindHTTPStatus
	KindProtocol   = provider.KindProtocol
	KindDecode     = provider.KindDecode
)

// NewHTTPProvider creates a new HTTP-based RPC provider.
func NewHTTPProvider(name, endpoint string, timeout time.Duration) *HTTPProvider {
	return provider.NewHTTPProvider(name, endpoint, timeout)
}

// AsError extracts an *Error from err's chain.
func AsError(err error) (*Error, bool) {
	return provider.AsError(err)
}

// IsTransport reports whether err is a network or HTTP-level failure.
func IsTransport(err error) bool {
	return provider.IsTransport(err)
}

// IsProtocol reports whether err is a JSON-RPC error reported by the node.
func IsProtocol(err error) bool {
	return provider.IsProtocol(err)
}

// IsThrottled reports whether err came from the node rate limiting this client.
func IsThrottled(err error) bool {
	return provider.IsThrottled(err)
}
