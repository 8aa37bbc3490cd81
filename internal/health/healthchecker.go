// Package health provides periodic liveness probing for control-tier
// collaborators. The control tier watches the session runtime and reports
// readiness through its ping route.
package health

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// Pinger is implemented by components that can verify their own liveness.
// HealthPing must return nil when the component is healthy.
type Pinger interface {
	HealthPing(ctx context.Context) error
}

// Checker periodically probes one component and caches the result so reads
// never block on a probe.
type Checker struct {
	name         string
	target       Pinger
	healthy      atomic.Int32
	log          zerolog.Logger
	probeTimeout time.Duration
}

// NewChecker creates a checker. It reports unhealthy until the first
// successful probe.
func NewChecker(name string, target Pinger, log zerolog.Logger, probeTimeout time.Duration) *Checker {
	c := &Checker{name: name, target: target, log: log, probeTimeout: probeTimeout}
	c.healthy.Store(0)
	return c
}

// Name returns the checker name.
func (c *Checker) Name() string { return c.name }

// IsHealthy returns the cached health status.
func (c *Checker) IsHealthy() bool { return c.healthy.Load() == 1 }

// Start probes immediately and then on every tick until ctx is cancelled.
func (c *Checker) Start(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := int32(0)
	check := func() {
		to := c.probeTimeout
		if to <= 0 {
			to = 2 * time.Second
		}
		probeCtx, cancel := context.WithTimeout(ctx, to)
		err := c.target.HealthPing(probeCtx)
		cancel()

		cur := int32(1)
		if err != nil {
			cur = 0
		}
		c.healthy.Store(cur)
		if cur != prev {
			if cur == 1 {
				c.log.Info().Str("checker", c.name).Msg("health: UP")
			} else {
				c.log.Error().Stack().Str("checker", c.name).Err(err).Msg("health: DOWN")
			}
			prev = cur
		}
	}

	check()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			check()
		}
	}
}
