package jobs

import (
	"context"
	"time"

	"tool-rental-pos/internal/logger"
)

const defaultJobTimeout = 30 * time.Second

// CatalogReloader is implemented by catalogs that can re-read their source
type CatalogReloader interface {
	Reload(ctx context.Context) error
}

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	catalog CatalogReloader
	timeout time.Duration
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(catalog CatalogReloader) *JobRunner {
	return &JobRunner{
		catalog: catalog,
		timeout: defaultJobTimeout,
	}
}

// RefreshCatalog re-reads the tool catalog. A failed reload leaves the
// current catalog in service.
func (jr *JobRunner) RefreshCatalog() {
	jr.runWithRecovery("RefreshCatalog", func() {
		ctx, cancel := context.WithTimeout(context.Background(), jr.timeout)
		defer cancel()

		if err := jr.catalog.Reload(ctx); err != nil {
			logger.Error("Failed to refresh catalog", "error", err)
			return
		}
	})
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}
