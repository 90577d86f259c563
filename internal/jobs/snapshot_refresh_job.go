package jobs

import (
	"context"
	"log/slog"

	"epicerie/internal/core/application/usecases/commands"
	"epicerie/internal/core/domain/model/kernel"
	"epicerie/internal/pkg/bearer"
	"epicerie/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// SnapshotRefreshJob periodically re-syncs the épicerie's order list and
// driver pool from the marketplace so the cache stays warm between user
// actions. Runs with a service token; a user's own actions refresh the cache
// on their own through the command handlers.
type SnapshotRefreshJob struct {
	handler      commands.RefreshSnapshotsCommandHandler
	epicerieID   kernel.ID
	serviceToken string
	schedule     string
	cron         *cron.Cron
	logger       *slog.Logger
}

// NewSnapshotRefreshJob creates a job that refreshes the snapshot cache on
// the given cron schedule, e.g. "0 */5 * * * *" for every five minutes.
func NewSnapshotRefreshJob(
	handler commands.RefreshSnapshotsCommandHandler,
	epicerieID kernel.ID,
	serviceToken string,
	schedule string,
	logger *slog.Logger,
) *SnapshotRefreshJob {
	return &SnapshotRefreshJob{
		handler:      handler,
		epicerieID:   epicerieID,
		serviceToken: serviceToken,
		cron:         cron.New(cron.WithSeconds()),
		logger:       logger.With("component", "snapshot_refresh_job"),
		schedule:     schedule,
	}
}

// Start begins the periodic refresh.
func (j *SnapshotRefreshJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := bearer.WithToken(context.Background(), j.serviceToken)

		cmd, cmdErr := commands.NewRefreshSnapshotsCommand(j.epicerieID)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Snapshot refresh command rejected", "error", cmdErr)
			return
		}

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			// An unreachable marketplace is routine here; the cache simply
			// stays at its last-known state until the next tick.
			if errs.IsRetryable(handleErr) {
				j.logger.WarnContext(ctx, "Snapshot refresh skipped, marketplace unreachable",
					"error", handleErr)
				return
			}
			j.logger.ErrorContext(ctx, "Snapshot refresh failed", "error", handleErr)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Snapshot refresh job started",
		"schedule", j.schedule)
	return nil
}

// Stop stops the refresh job.
func (j *SnapshotRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Snapshot refresh job stopped")
}
