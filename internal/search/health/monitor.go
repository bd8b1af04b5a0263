package health

import (
	"context"
	"sync"
	"time"

	"github.com/vietddude/suiscope/internal/infra/rpc"
	"github.com/vietddude/suiscope/internal/search/metrics"
)

const (
	// DefaultCheckInterval is the minimum time between two live checks.
	DefaultCheckInterval = 10 * time.Second
	// SlowPingThreshold marks the node degraded when a ping takes longer.
	SlowPingThreshold = 3 * time.Second
	// HighErrorRate marks the node degraded when the provider error rate exceeds it.
	HighErrorRate = 0.3
)

// Pinger checks that the node answers.
type Pinger interface {
	Ping(ctx context.Context) (uint64, error)
}

// ProviderStats exposes transport-level health. rpc.HTTPProvider implements it.
type ProviderStats interface {
	GetHealth() rpc.HealthStatus
}

// Monitor aggregates node health from a ping and transport statistics.
type Monitor struct {
	endpoint   string
	pinger     Pinger
	provider   ProviderStats
	interval   time.Duration
	lastCheck  time.Time
	lastReport *HealthReport
	mu         sync.Mutex
}

// NewMonitor creates a new health monitor. provider may be nil.
func NewMonitor(endpoint string, pinger Pinger, provider ProviderStats) *Monitor {
	return &Monitor{
		endpoint: endpoint,
		pinger:   pinger,
		provider: provider,
		interval: DefaultCheckInterval,
	}
}

// CheckHealth pings the node and evaluates its status.
func (m *Monitor) CheckHealth(ctx context.Context) HealthReport {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Rate limit checks to avoid spamming RPC
	if m.lastReport != nil && time.Since(m.lastCheck) < m.interval {
		return *m.lastReport
	}

	node := NodeHealth{
		Endpoint: m.endpoint,
		Status:   StatusHealthy,
	}

	start := time.Now()
	total, err := m.pinger.Ping(ctx)
	node.PingLatency = time.Since(start)
	if err != nil {
		node.Status = StatusCritical
		node.Error = err.Error()
	} else {
		node.TotalTransactions = total
		if node.PingLatency > SlowPingThreshold {
			node.Status = StatusDegraded
		}
	}

	if m.provider != nil {
		ph := m.provider.GetHealth()
		node.RPCErrorRate = ph.ErrorRate
		if ph.MonitorStats != nil {
			node.ProviderStatus = ph.MonitorStats.Status
		}
		if node.Status == StatusHealthy && node.RPCErrorRate > HighErrorRate {
			node.Status = StatusDegraded
		}
	}

	report := HealthReport{
		SystemStatus: node.Status,
		Node:         node,
		CheckedAt:    time.Now(),
	}
	metrics.NodeHealthStatus.Set(statusValue(report.SystemStatus))

	m.lastCheck = report.CheckedAt
	m.lastReport = &report
	return report
}

func statusValue(s SystemStatus) float64 {
	switch s {
	case StatusDegraded:
		return 1
	case StatusCritical:
		return 2
	default:
		return 0
	}
}
