// Package jobs provides the background work of the catering service.
//
// # Available Jobs
//
// 1. PreparationScheduler - one timer per order; marks the order READY after the configured preparation delay
// 2. MonthlyResetJob - cron job at 00:00 on the 1st of every month; resets the monthly order count of customers
// 3. AutosaveJob - cron job on the configured schedule; writes the whole state to the entity store
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(markReadyHandler, 2*time.Second, resetHandler, saveHandler, "@every 1m", logger)
//
//	// PrepareOrder arms timers through the scheduler
//	prepareHandler := commands.NewPrepareOrderCommandHandler(uowFactory, jobManager.Scheduler(), publisher)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - The scheduler logs a late timer for an order that is no longer PREPARING as a warning
// - Cron jobs log failures and try again on their next tick
// - Failed job starts will stop any already running jobs
package jobs
