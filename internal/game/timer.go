package game

import (
	"context"
	"sync"
	"time"
)

// Countdown emits a tick callback once per second until stopped. Start
// cancels any previous run before launching a new one, so a session never
// has two tickers racing, and Stop is safe to call at any time, including
// after the run already ended.
type Countdown struct {
	mu     sync.Mutex
	cancel context.CancelFunc
	period time.Duration
}

func NewCountdown() *Countdown {
	return &Countdown{period: time.Second}
}

// Start begins ticking, replacing any active run.
func (c *Countdown) Start(tick func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancel != nil {
		c.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel

	go func() {
		ticker := time.NewTicker(c.period)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				tick()
			}
		}
	}()
}

// Stop cancels the active run, if any. A tick already past the select when
// the cancel lands can still fire once after Stop returns; callers rely on
// the state machine treating such stale ticks as no-ops.
func (c *Countdown) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}
