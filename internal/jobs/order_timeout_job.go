package jobs

import (
	"context"
	"log/slog"

	"orderflow/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderTimeoutJob periodically cancels orders whose prepayment is overdue.
type OrderTimeoutJob struct {
	handler  commands.SweepExpiredOrdersCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewOrderTimeoutJob(
	handler commands.SweepExpiredOrdersCommandHandler,
	schedule string,
	logger *slog.Logger,
) *OrderTimeoutJob {
	return &OrderTimeoutJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "order_timeout_job"),
	}
}

// Start registers the sweep on its schedule and starts the scheduler.
func (j *OrderTimeoutJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order timeout job started", "schedule", j.schedule)
	return nil
}

// Run performs a single sweep pass.
func (j *OrderTimeoutJob) Run(ctx context.Context) {
	result, err := j.handler.Handle(ctx, commands.NewSweepExpiredOrdersCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Order timeout sweep failed", "error", err)
		return
	}

	if len(result.Cancelled) > 0 || result.Failed > 0 {
		j.logger.InfoContext(ctx, "Order timeout sweep finished",
			"examined", result.Examined,
			"cancelled", len(result.Cancelled),
			"failed", result.Failed)
	}
}

// Stop stops the scheduler and waits for a running sweep to finish.
func (j *OrderTimeoutJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order timeout job stopped")
}
