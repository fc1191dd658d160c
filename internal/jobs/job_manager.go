// Package jobs contains the application's scheduled background jobs.
package jobs

import (
	"fmt"
	"log/slog"

	"deliveryapi/internal/core/application/services"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	revenueReportJob *RevenueReportJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(orders services.OrderService, logger *slog.Logger) *JobManager {
	return &JobManager{
		revenueReportJob: NewRevenueReportJob(orders, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.revenueReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start revenue report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.revenueReportJob.Stop()
}
