package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type sessionPruner interface {
	PruneIdle(maxIdle time.Duration) []string
}

// Scheduler periodically evicts wizard sessions that have gone idle, so
// abandoned drafts don't pin memory forever.
type Scheduler struct {
	store    sessionPruner
	interval time.Duration
	maxIdle  time.Duration
	logger   logger.Logger
}

func New(
	store sessionPruner,
	interval time.Duration,
	maxIdle time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		store:    store,
		interval: interval,
		maxIdle:  maxIdle,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("session janitor started",
		logger.Duration("interval", s.interval),
		logger.Duration("max_idle", s.maxIdle),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("session janitor stopped")
			return
		case <-ticker.C:
			s.tick()
		}
	}
}

func (s *Scheduler) tick() {
	pruned := s.store.PruneIdle(s.maxIdle)
	for _, id := range pruned {
		s.logger.Info("idle wizard session pruned",
			logger.String("session_id", id),
		)
	}
}
