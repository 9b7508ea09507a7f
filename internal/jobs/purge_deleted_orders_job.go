package jobs

import (
	"context"
	"log/slog"
	"time"

	"autoshop/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// purgeSchedule runs the purge nightly at 03:00.
const purgeSchedule = "0 0 3 * * *"

// PurgeDeletedOrdersJob periodically hard-deletes orders that stayed
// soft-deleted longer than the retention window.
type PurgeDeletedOrdersJob struct {
	handler   commands.PurgeDeletedOrdersCommandHandler
	retention time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewPurgeDeletedOrdersJob creates the purge job with the given retention window.
func NewPurgeDeletedOrdersJob(
	handler commands.PurgeDeletedOrdersCommandHandler,
	retention time.Duration,
	logger *slog.Logger,
) *PurgeDeletedOrdersJob {
	return &PurgeDeletedOrdersJob{
		handler:   handler,
		retention: retention,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "purge_deleted_orders_job"),
	}
}

// Start schedules the nightly purge.
func (j *PurgeDeletedOrdersJob) Start() error {
	_, err := j.cron.AddFunc(purgeSchedule, func() {
		ctx := context.Background()

		cmd, err := commands.NewPurgeDeletedOrdersCommand(j.retention)
		if err != nil {
			j.logger.ErrorContext(ctx, "Purge command rejected", "error", err)
			return
		}

		purged, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Purge of deleted orders failed", "error", err)
			return
		}

		if purged > 0 {
			j.logger.InfoContext(ctx, "Purged soft-deleted orders", "count", purged)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Purge job started", "retention", j.retention.String())
	return nil
}

// Stop stops the purge job.
func (j *PurgeDeletedOrdersJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Purge job stopped")
}
