package jobs

import (
	"fmt"
	"log/slog"
	"time"
)

// JobManager coordinates all background jobs in the application.
// Provides a unified interface to start and stop them.
type JobManager struct {
	scheduler       *PreparationScheduler
	monthlyResetJob *MonthlyResetJob
	autosaveJob     *AutosaveJob
}

// NewJobManager creates the job manager. The autosave job is left out when
// autosaveSchedule is empty, which is the case when there is no store.
func NewJobManager(
	readyHandler OrderReadyHandler,
	preparationDelay time.Duration,
	resetHandler MonthlyOrdersResetter,
	saveHandler StateSaver,
	autosaveSchedule string,
	logger *slog.Logger,
) *JobManager {
	jm := &JobManager{
		scheduler:       NewPreparationScheduler(readyHandler, preparationDelay, logger),
		monthlyResetJob: NewMonthlyResetJob(resetHandler, logger),
	}
	if autosaveSchedule != "" {
		jm.autosaveJob = NewAutosaveJob(saveHandler, autosaveSchedule, logger)
	}
	return jm
}

// Scheduler returns the preparation scheduler handed to PrepareOrder.
func (jm *JobManager) Scheduler() *PreparationScheduler {
	return jm.scheduler
}

// StartAll starts all cron jobs. The preparation scheduler needs no start.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.monthlyResetJob.Start(); err != nil {
		return fmt.Errorf("failed to start monthly reset job: %w", err)
	}

	if jm.autosaveJob != nil {
		if err := jm.autosaveJob.Start(); err != nil {
			// Stop already started jobs if this one fails
			jm.monthlyResetJob.Stop()
			return fmt.Errorf("failed to start autosave job: %w", err)
		}
	}

	return nil
}

// StopAll stops all jobs gracefully. Pending preparation timers are lost.
func (jm *JobManager) StopAll() {
	jm.scheduler.Stop()
	jm.monthlyResetJob.Stop()
	if jm.autosaveJob != nil {
		jm.autosaveJob.Stop()
	}
}
