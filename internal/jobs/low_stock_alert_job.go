package jobs

import (
	"context"
	"log/slog"

	"orderflow/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// LowStockAlertJob reports materials whose stock is below their minimum.
type LowStockAlertJob struct {
	handler  queries.ListLowStockMaterialsQueryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewLowStockAlertJob(
	handler queries.ListLowStockMaterialsQueryHandler,
	schedule string,
	logger *slog.Logger,
) *LowStockAlertJob {
	return &LowStockAlertJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "low_stock_alert_job"),
	}
}

func (j *LowStockAlertJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Low stock alert job started", "schedule", j.schedule)
	return nil
}

// Run logs one warning per material below its minimum and returns how many
// were found.
func (j *LowStockAlertJob) Run(ctx context.Context) int {
	materials, err := j.handler.Handle(ctx, queries.NewListLowStockMaterialsQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Low stock check failed", "error", err)
		return 0
	}

	for _, m := range materials {
		j.logger.WarnContext(ctx, "Material stock below minimum",
			"material_id", m.ID.String(),
			"name", m.Name,
			"stock", m.Stock,
			"min_quantity", m.MinQuantity)
	}
	return len(materials)
}

func (j *LowStockAlertJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Low stock alert job stopped")
}
