// Package jobs provides scheduled background tasks for the ordering system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations the conversational flow cannot cover.
//
// # Available Jobs
//
// 1. PaymentReminderJob - Runs every minute to remind customers whose online
// orders are still awaiting payment past the configured threshold. Each order
// is reminded at most once per process lifetime.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(staleOrdersHandler, notifier, 15*time.Minute, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The reminder job uses the cron expression "0 * * * * *", firing at the top
// of every minute. Minute granularity is plenty for a reminder threshold
// measured in tens of minutes.
package jobs
