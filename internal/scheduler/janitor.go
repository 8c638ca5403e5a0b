package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"

	"github.com/honeycarbs/career-hunter/pkg/logging"
)

// Purger drops expired entries and reports how many were removed
type Purger interface {
	PurgeExpired() int
}

// Janitor periodically purges expired cache entries so idle keys do not hold memory until evicted
type Janitor struct {
	cron   *cron.Cron
	purger Purger
	logger *logging.Logger
}

// NewJanitor schedules purger on spec (standard cron syntax or descriptors like "@every 10m")
func NewJanitor(spec string, purger Purger, logger *logging.Logger) (*Janitor, error) {
	if purger == nil {
		return nil, fmt.Errorf("janitor: purger is required")
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	j := &Janitor{
		purger: purger,
		logger: logger.Named("janitor"),
	}

	j.cron = cron.New(
		cron.WithLogger(cron.PrintfLogger(j.logger)),
		cron.WithChain(cron.Recover(cron.PrintfLogger(j.logger))),
	)

	if _, err := j.cron.AddFunc(spec, j.RunOnce); err != nil {
		return nil, fmt.Errorf("janitor: invalid schedule %q: %w", spec, err)
	}

	return j, nil
}

// RunOnce purges immediately
func (j *Janitor) RunOnce() {
	if n := j.purger.PurgeExpired(); n > 0 {
		j.logger.Info("purged expired cache entries", "entries", n)
	}
}

// Start begins the schedule in its own goroutine
func (j *Janitor) Start() {
	j.cron.Start()
	j.logger.Debug("cache janitor started")
}

// Shutdown stops the schedule and waits for a running purge, bounded by ctx
func (j *Janitor) Shutdown(ctx context.Context) error {
	done := j.cron.Stop()

	select {
	case <-done.Done():
		j.logger.Debug("cache janitor stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
