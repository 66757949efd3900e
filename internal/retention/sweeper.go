// Package retention runs the optional scheduled cleanup of aged search
// documents. It is disabled by default so completed searches stay readable
// indefinitely; operators opt in via the retention config block.
package retention

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"talexu-jobs/internal/config"
	"talexu-jobs/internal/logging"
	"talexu-jobs/internal/storage"
)

// Sweeper periodically purges search documents older than the configured age
type Sweeper struct {
	config *config.Config
	store  storage.SearchStore
	cron   *cron.Cron
	logger logging.Logger
}

// NewSweeper creates a retention sweeper over the given store
func NewSweeper(cfg *config.Config, store storage.SearchStore) *Sweeper {
	return &Sweeper{
		config: cfg,
		store:  store,
		cron:   cron.New(),
		logger: logging.GetGlobalLogger(),
	}
}

// Start registers the sweep schedule and begins running it. The first sweep
// runs immediately in the background.
func (s *Sweeper) Start() error {
	if !s.config.Retention.Enabled {
		s.logger.Info("Retention sweeper disabled, search results are kept indefinitely")
		return nil
	}

	if _, err := s.cron.AddFunc(s.config.Retention.Schedule, s.sweep); err != nil {
		return fmt.Errorf("failed to schedule retention sweep: %w", err)
	}

	s.cron.Start()
	go s.sweep()

	s.logger.Info("Retention sweeper started", map[string]interface{}{
		"schedule": s.config.Retention.Schedule,
		"max_age":  s.config.Retention.MaxAge.String(),
	})

	return nil
}

// Stop halts the schedule and waits for a running sweep to finish
func (s *Sweeper) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Sweeper) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	cutoff := time.Now().Add(-s.config.Retention.MaxAge)

	removed, err := s.store.PurgeOlderThan(ctx, cutoff)
	if err != nil {
		s.logger.Error("Retention sweep failed", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	if removed > 0 {
		s.logger.Info("Retention sweep completed", map[string]interface{}{
			"removed": removed,
			"cutoff":  cutoff.Format(time.RFC3339),
		})
	}
}
