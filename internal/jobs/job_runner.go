package jobs

import (
	"servicelog-backend/internal/config"
	"servicelog-backend/internal/logger"
	"servicelog-backend/internal/reminder"
	"servicelog-backend/internal/repository"
	"servicelog-backend/internal/storage"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	storage storage.StorageInterface
	records repository.ServiceRecordRepository
	config  *config.Config
	clock   reminder.Clock
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(store storage.StorageInterface, records repository.ServiceRecordRepository, cfg *config.Config, clock reminder.Clock) *JobRunner {
	if clock == nil {
		clock = reminder.SystemClock{}
	}
	return &JobRunner{
		storage: store,
		records: records,
		config:  cfg,
		clock:   clock,
	}
}

// Config exposes the configuration the runner was built with.
func (jr *JobRunner) Config() *config.Config {
	return jr.config
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

// RunAllNightlyJobs runs all nightly jobs (for manual execution)
func (jr *JobRunner) RunAllNightlyJobs() {
	jr.SweepOrphanedDocuments()
}
