package jobs

import (
	"fmt"
	"log/slog"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/application/usecases/queries"
)

// Schedules holds the cron expressions of the background jobs.
type Schedules struct {
	Sweep    string
	LowStock string
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderTimeoutJob  *OrderTimeoutJob
	lowStockAlertJob *LowStockAlertJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	sweepHandler commands.SweepExpiredOrdersCommandHandler,
	lowStockHandler queries.ListLowStockMaterialsQueryHandler,
	schedules Schedules,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderTimeoutJob:  NewOrderTimeoutJob(sweepHandler, schedules.Sweep, logger),
		lowStockAlertJob: NewLowStockAlertJob(lowStockHandler, schedules.LowStock, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderTimeoutJob.Start(); err != nil {
		return fmt.Errorf("failed to start order timeout job: %w", err)
	}

	if err := jm.lowStockAlertJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.orderTimeoutJob.Stop()
		return fmt.Errorf("failed to start low stock alert job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.lowStockAlertJob.Stop()
	jm.orderTimeoutJob.Stop()
}
