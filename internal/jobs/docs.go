// Package jobs provides scheduled background tasks for the order workflow.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// Schedules use the six-field form with a leading seconds field.
//
// # Available Jobs
//
// 1. OrderTimeoutJob - runs the prepayment timeout sweep (SWEEP_SCHEDULE)
// 2. LowStockAlertJob - logs materials whose stock fell below their minimum (LOW_STOCK_SCHEDULE)
//
// # Usage
//
//	jobManager := jobs.NewJobManager(sweepHandler, lowStockHandler, schedules, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed run is logged and the next tick starts from scratch. The sweep
// itself logs per-order failures and carries on, so a run only fails when
// the candidate list cannot be read.
package jobs
