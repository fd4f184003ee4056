package session

import (
	"context"
	"time"

	"teamplay/internal/logging"

	"go.uber.org/zap"
)

// Sweeper periodically resets conversation sessions that have been
// abandoned mid-flow, so a user who starts /add and walks away does not
// stay pending forever.
type Sweeper struct {
	manager  *Manager
	interval time.Duration
}

// NewSweeper creates a sweeper over the given manager
func NewSweeper(manager *Manager, interval time.Duration) *Sweeper {
	return &Sweeper{
		manager:  manager,
		interval: interval,
	}
}

// Start runs the sweep loop until the context is cancelled
func (s *Sweeper) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if swept := s.manager.SweepExpired(); swept > 0 {
				logging.Info("expired stale conversation sessions", zap.Int("count", swept))
			}
		case <-ctx.Done():
			logging.Info("session sweeper stopping")
			return
		}
	}
}
