package resolver

import (
	"context"
	"fmt"
	"time"

	"github.com/fysioscribe/dcsph-engine/internal/conversation"
	"github.com/fysioscribe/dcsph-engine/internal/kb"
	"github.com/fysioscribe/dcsph-engine/internal/memory"
)

// #region health

const (
	StatusHealthy   = "healthy"
	StatusDegraded  = "degraded"
	StatusUnhealthy = "unhealthy"
)

// Health is the outcome of a self-check.
type Health struct {
	Status            string `json:"status"`
	FallbackAvailable bool   `json:"fallbackAvailable"`
	Detail            string `json:"detail,omitempty"`
}

// HealthCheck runs a canned knee complaint through the full resolution
// path on a throwaway conversation store, so probing never touches live
// sessions or the ledger. A working AI path is healthy, a working
// fallback with a broken AI path is degraded, and anything that cannot
// produce an answer at all is unhealthy.
func (o *Orchestrator) HealthCheck(ctx context.Context) (h Health) {
	defer func() {
		if r := recover(); r != nil {
			h = Health{Status: StatusUnhealthy, Detail: fmt.Sprintf("panic: %v", r)}
		}
	}()

	fb := kb.Resolve(healthProbeQuery)
	h.FallbackAvailable = len(fb.Suggestions) > 0

	probe := *o
	probe.conversations = conversation.NewStore(nil)
	probe.ledger = nil
	probe.sleep = func(time.Duration) {}

	res, err := probe.Resolve(ctx, healthProbeQuery, "")
	switch {
	case err == nil && res.Source == memory.SourceAI:
		h.Status = StatusHealthy
	case err == nil && res.NeedsClarification:
		// A clarifying question is a working resolution path too.
		h.Status = StatusHealthy
	case err == nil && len(res.Suggestions) > 0:
		h.Status = StatusDegraded
		h.Detail = "answered via fallback"
	case h.FallbackAvailable:
		h.Status = StatusDegraded
		if err != nil {
			h.Detail = fmt.Sprintf("resolution failed: %v", err)
		}
	default:
		h.Status = StatusUnhealthy
		if err != nil {
			h.Detail = err.Error()
		}
	}
	return h
}

// #endregion
