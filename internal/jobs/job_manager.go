package jobs

import (
	"fmt"
	"log/slog"

	"restaurant/internal/core/application/usecases/commands"
)

// JobManager coordinates the background machinery of the order pipeline: the
// per-order confirmation watchers and the stale-order sweeper backstop.
type JobManager struct {
	staleOrderSweeper *StaleOrderSweeperJob
	watcherPool       *ConfirmationWatcherPool
}

// NewJobManager creates a new job manager.
// The watcher pool is created elsewhere because order creation needs it as its
// confirmation scheduler; the manager only takes over its lifecycle.
func NewJobManager(
	expireStaleHandler commands.ExpireStaleOrdersCommandHandler,
	watcherPool *ConfirmationWatcherPool,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		staleOrderSweeper: NewStaleOrderSweeperJob(expireStaleHandler, logger),
		watcherPool:       watcherPool,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.staleOrderSweeper.Start(); err != nil {
		return fmt.Errorf("failed to start stale order sweeper: %w", err)
	}

	return nil
}

// StopAll stops the sweeper and cancels all running watchers.
func (jm *JobManager) StopAll() {
	jm.staleOrderSweeper.Stop()
	jm.watcherPool.Stop()
}
