package newsroom

import (
	"context"
	"time"
)

// Gate paces calls against the external providers' rate limits.
type Gate interface {
	Wait(ctx context.Context) error
}

// IntervalGate lets the first caller through immediately and makes every
// later caller wait a fixed interval. Not safe for concurrent use; the
// pipeline is a single sequential worker.
type IntervalGate struct {
	every  time.Duration
	passed bool
}

func NewIntervalGate(every time.Duration) *IntervalGate {
	return &IntervalGate{every: every}
}

func (g *IntervalGate) Wait(ctx context.Context) error {
	if !g.passed {
		g.passed = true
		return ctx.Err()
	}

	timer := time.NewTimer(g.every)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
