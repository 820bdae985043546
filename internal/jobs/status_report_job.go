package jobs

import (
	"context"
	"log/slog"
	"time"

	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// stalePendingThreshold is how long an order may sit in PENDING before the
// report flags it. A pending order older than this usually means its
// created event was lost (publish failed) or the consumer is down.
const stalePendingThreshold = 5 * time.Minute

// StatusReportJob periodically logs the distribution of orders across
// lifecycle states and warns about orders stuck in PENDING.
type StatusReportJob struct {
	handler queries.ListOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStatusReportJob creates a job that reports order status counts every minute.
func NewStatusReportJob(handler queries.ListOrdersQueryHandler, logger *slog.Logger) *StatusReportJob {
	return &StatusReportJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "status_report_job"),
	}
}

// Start begins the status report job to run every minute.
func (j *StatusReportJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		j.report(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Status report job started (running every minute)")
	return nil
}

// Stop stops the status report job.
func (j *StatusReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Status report job stopped")
}

func (j *StatusReportJob) report(ctx context.Context) {
	orders, err := j.handler.Handle(ctx, queries.NewListOrdersQuery(""))
	if err != nil {
		j.logger.ErrorContext(ctx, "Status report job failed", "error", err)
		return
	}

	counts := make(map[string]int)
	stalePending := 0
	now := time.Now().UTC()

	for _, o := range orders {
		counts[o.Status().String()]++

		if o.Status() == order.Pending && now.Sub(o.UpdatedAt()) > stalePendingThreshold {
			stalePending++
		}
	}

	j.logger.InfoContext(ctx, "Order status report",
		"total", len(orders),
		"counts", counts)

	if stalePending > 0 {
		j.logger.WarnContext(ctx, "Orders stuck in pending status",
			"count", stalePending,
			"olderThan", stalePendingThreshold.String())
	}
}
