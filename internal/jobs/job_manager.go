package jobs

import (
	"fmt"
	"log/slog"

	"frangodahora/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	marketplaceSyncJob *MarketplaceSyncJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	syncHandler *commands.SyncMarketplaceCommandHandler,
	syncSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		marketplaceSyncJob: NewMarketplaceSyncJob(syncHandler, syncSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.marketplaceSyncJob.Start(); err != nil {
		return fmt.Errorf("failed to start marketplace sync job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.marketplaceSyncJob.Stop()
}
