package jobs

import (
	"context"
	"log/slog"

	"restaurant/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StaleOrderSweeperJob periodically deletes orders stuck in received status
// past the confirmation window. Live watchers handle the common case; the
// sweeper exists for watchers lost with the process, so orders never wait for
// a driver forever across restarts.
type StaleOrderSweeperJob struct {
	handler commands.ExpireStaleOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStaleOrderSweeperJob creates a new job sweeping stale orders.
// Uses ExpireStaleOrdersCommandHandler to delete expired received orders every minute.
func NewStaleOrderSweeperJob(handler commands.ExpireStaleOrdersCommandHandler, logger *slog.Logger) *StaleOrderSweeperJob {
	return &StaleOrderSweeperJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "stale_order_sweeper"),
	}
}

// Start begins the stale order sweeper to run every minute.
func (j *StaleOrderSweeperJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewExpireStaleOrdersCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Stale order sweep failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order sweeper started (running every minute)")
	return nil
}

// Stop stops the stale order sweeper.
func (j *StaleOrderSweeperJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale order sweeper stopped")
}
