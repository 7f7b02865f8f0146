package infrastructure

import (
	"context"
	"time"

	"weatheredge.app/internal/ports"
)

const defaultPingTimeout = 2 * time.Second

// PingHealthChecker reports the health of any adapter that can ping its backend
// (flag store, forecast cache)
type PingHealthChecker struct {
	component string
	kind      string
	pinger    ports.Pinger
	timeout   time.Duration
}

// NewPingHealthChecker creates a checker for component; kind is reported as a detail (memory, redis)
func NewPingHealthChecker(component, kind string, pinger ports.Pinger) *PingHealthChecker {
	return &PingHealthChecker{
		component: component,
		kind:      kind,
		pinger:    pinger,
		timeout:   defaultPingTimeout,
	}
}

// Check pings the backend with a bounded timeout
func (p *PingHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: p.component,
		Details:   map[string]interface{}{"type": p.kind},
	}

	if p.pinger == nil {
		status.Status = StatusUnhealthy
		status.Error = p.component + " is not configured"
		return status
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	start := time.Now()
	if err := p.pinger.Ping(ctx); err != nil {
		status.Status = StatusUnhealthy
		status.Error = err.Error()
		return status
	}

	status.Status = StatusHealthy
	status.Details["latency_ms"] = time.Since(start).Milliseconds()
	return status
}
