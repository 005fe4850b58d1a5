package jobs

import (
	"context"
	"errors"
	"log/slog"

	"frangodahora/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// MarketplaceSyncJob runs the marketplace polling cycle on a schedule. A
// cycle that is still running when the next tick fires reports
// ErrSyncCycleInProgress, which the job treats as benign: the running cycle
// already covers the tick's work.
type MarketplaceSyncJob struct {
	handler  *commands.SyncMarketplaceCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewMarketplaceSyncJob creates the polling job. The schedule uses the
// six-field cron format with seconds, e.g. "0 */2 * * * *" for every two
// minutes.
func NewMarketplaceSyncJob(
	handler *commands.SyncMarketplaceCommandHandler,
	schedule string,
	logger *slog.Logger,
) *MarketplaceSyncJob {
	return &MarketplaceSyncJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "marketplace_sync_job"),
	}
}

// Start schedules the polling cycle.
func (j *MarketplaceSyncJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd := commands.NewSyncMarketplaceCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			if errors.Is(err, commands.ErrSyncCycleInProgress) {
				j.logger.DebugContext(ctx, "Skipping tick, previous cycle still running")
				return
			}
			j.logger.ErrorContext(ctx, "Marketplace sync cycle failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Marketplace sync job started", "schedule", j.schedule)
	return nil
}

// Stop stops the polling job.
func (j *MarketplaceSyncJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Marketplace sync job stopped")
}
