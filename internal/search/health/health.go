// Package health reports node reachability and serves the HTTP API.
package health

import "time"

// SystemStatus represents the overall health state of the system or a component.
type SystemStatus string

const (
	StatusHealthy  SystemStatus = "healthy"
	StatusDegraded SystemStatus = "degraded"
	StatusCritical SystemStatus = "critical"
)

// NodeHealth contains health metrics for the upstream full node.
type NodeHealth struct {
	Endpoint          string        `json:"endpoint,omitempty"`
	Status            SystemStatus  `json:"status"`
	TotalTransactions uint64        `json:"total_transactions,omitempty"`
	PingLatency       time.Duration `json:"ping_latency"`
	RPCErrorRate      float64       `json:"rpc_error_rate"`
	ProviderStatus    string        `json:"provider_status,omitempty"`
	Error             string        `json:"error,omitempty"`
}

// HealthReport contains the full system health report.
type HealthReport struct {
	SystemStatus SystemStatus `json:"system_status"`
	Node         NodeHealth   `json:"node"`
	CheckedAt    time.Time    `json:"checked_at"`
}
