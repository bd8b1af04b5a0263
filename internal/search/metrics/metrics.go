package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RPCCallsTotal tracks JSON-RPC calls sent to the node
	RPCCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "suiscope_rpc_calls_total",
			Help: "Total number of RPC calls",
		},
		[]string{"provider", "method"},
	)

	// RPCErrorsTotal tracks failed RPC calls by error kind
	RPCErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "suiscope_rpc_errors_total",
			Help: "Total number of RPC errors",
		},
		[]string{"provider", "method", "error_type"},
	)

	// RPCLatency tracks RPC call latency
	RPCLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "suiscope_rpc_latency_seconds",
			Help:    "RPC call latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"provider", "method"},
	)

	// CacheLookupsTotal tracks response cache hits and misses per method
	CacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "suiscope_cache_lookups_total",
			Help: "Total number of response cache lookups",
		},
		[]string{"method", "result"},
	)

	// SentinelFallbacksTotal tracks aggregate lookups that failed and
	// returned an empty default instead
	SentinelFallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "suiscope_sentinel_fallbacks_total",
			Help: "Total number of failed lookups replaced by an empty default",
		},
		[]string{"method"},
	)

	// SearchesTotal tracks searches by classified entity kind
	SearchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "suiscope_searches_total",
			Help: "Total number of searches",
		},
		[]string{"kind"},
	)

	// SearchEntriesTotal tracks result entries returned by searches
	SearchEntriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "suiscope_search_entries_total",
			Help: "Total number of search result entries",
		},
		[]string{"kind"},
	)

	// SearchDuration tracks end-to-end search latency
	SearchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "suiscope_search_duration_seconds",
			Help:    "Search duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"kind"},
	)

	// NodeHealthStatus tracks node health (0=healthy, 1=degraded, 2=critical)
	NodeHealthStatus = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "suiscope_node_health_status",
			Help: "Node health status (0=healthy, 1=degraded, 2=critical)",
		},
	)

	// NodeTotalTransactions tracks the last observed total transaction count
	NodeTotalTransactions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "suiscope_node_total_transactions",
			Help: "Total transaction blocks reported by the node",
		},
	)
)
