package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"

	"tool-rental-pos/internal/jobs"
	"tool-rental-pos/internal/logger"
)

// Scheduler manages cron job scheduling
type Scheduler struct {
	cron *cron.Cron
	jobs *jobs.JobRunner
}

// NewScheduler creates a scheduler that refreshes the catalog on
// refreshSchedule, a cron spec with seconds. An empty schedule registers
// nothing.
func NewScheduler(jobRunner *jobs.JobRunner, refreshSchedule string) (*Scheduler, error) {
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithSeconds(),
	)

	s := &Scheduler{
		cron: c,
		jobs: jobRunner,
	}

	if err := s.registerJobs(refreshSchedule); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scheduler) registerJobs(refreshSchedule string) error {
	if refreshSchedule == "" {
		logger.Info("Catalog refresh disabled")
		return nil
	}

	if _, err := s.cron.AddFunc(refreshSchedule, s.jobs.RefreshCatalog); err != nil {
		logger.Error("Failed to register RefreshCatalog job", "error", err)
		return err
	}

	logger.Info("Cron jobs registered", "refresh_schedule", refreshSchedule)
	return nil
}

// Start begins the cron scheduler
func (s *Scheduler) Start() {
	logger.Info("Starting cron scheduler...")
	s.cron.Start()
}

// Stop waits for running jobs and stops the cron scheduler
func (s *Scheduler) Stop() {
	logger.Info("Stopping cron scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info("Cron scheduler stopped")
}

// HasJobs reports whether any job is registered
func (s *Scheduler) HasJobs() bool {
	return len(s.cron.Entries()) > 0
}
