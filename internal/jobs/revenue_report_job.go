package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"deliveryapi/internal/core/application/services"
)

// RevenueReportJob logs the previous day's revenue every morning.
// Revenue counts confirmed and delivered orders created that day.
type RevenueReportJob struct {
	orders services.OrderService
	cron   *cron.Cron
	logger *slog.Logger
}

// NewRevenueReportJob creates a job that reports daily revenue at 06:00.
func NewRevenueReportJob(orders services.OrderService, logger *slog.Logger) *RevenueReportJob {
	return &RevenueReportJob{
		orders: orders,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "revenue_report_job"),
	}
}

// Start schedules the report for 06:00 every day.
func (j *RevenueReportJob) Start() error {
	_, err := j.cron.AddFunc("0 0 6 * * *", j.report)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Revenue report job started (running daily at 06:00)")
	return nil
}

// Stop stops the revenue report job.
func (j *RevenueReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Revenue report job stopped")
}

func (j *RevenueReportJob) report() {
	ctx := context.Background()

	now := time.Now().UTC()
	to := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	from := to.Add(-24 * time.Hour)

	revenue, err := j.orders.TotalRevenue(ctx, from, to)
	if err != nil {
		j.logger.ErrorContext(ctx, "Revenue report job failed", "error", err)
		return
	}

	j.logger.InfoContext(ctx, "Daily revenue report",
		"date", from.Format("2006-01-02"),
		"revenue", revenue.StringFixed(2),
	)
}
