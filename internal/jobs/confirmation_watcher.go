package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/ports"
)

// confirmHandler processes driver confirmations for a single order.
type confirmHandler interface {
	Handle(ctx context.Context, cmd commands.ConfirmOrderCommand) error
}

// expireHandler cancels an order whose confirmation window elapsed.
type expireHandler interface {
	Handle(ctx context.Context, cmd commands.ExpireOrderCommand) error
}

// ConfirmationWatcherPool tracks driver confirmation for newly created orders.
// Each watched order gets its own goroutine that races two outcomes: the
// availability poll reporting a driver, or the confirmation window elapsing.
// Whichever happens first triggers exactly one terminal action through the
// corresponding command handler; the loser of the race finds the order already
// advanced (or gone) and no-ops.
//
// The pool itself never touches order state. All state changes go through the
// command handlers, which re-check the order's status under a row lock, so a
// watcher racing a manual status update is safe.
type ConfirmationWatcherPool struct {
	confirm      confirmHandler
	expire       expireHandler
	availability ports.DriverAvailability
	window       time.Duration
	pollInterval time.Duration
	logger       *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewConfirmationWatcherPool creates a watcher pool.
// The window bounds how long each order may wait for a driver; pollInterval is
// the cadence of availability checks within that window.
func NewConfirmationWatcherPool(
	confirm confirmHandler,
	expire expireHandler,
	availability ports.DriverAvailability,
	window time.Duration,
	pollInterval time.Duration,
	logger *slog.Logger,
) *ConfirmationWatcherPool {
	ctx, cancel := context.WithCancel(context.Background())

	return &ConfirmationWatcherPool{
		confirm:      confirm,
		expire:       expire,
		availability: availability,
		window:       window,
		pollInterval: pollInterval,
		logger:       logger.With("component", "confirmation_watcher"),
		ctx:          ctx,
		cancel:       cancel,
	}
}

// Watch starts a detached watcher for the given order. It returns immediately;
// the watcher's outcome is only observable through subsequent reads of the
// order.
func (p *ConfirmationWatcherPool) Watch(orderID int64) {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.watch(orderID)
	}()
}

// Stop cancels all running watchers and waits for them to exit. Orders left
// unresolved are picked up by the stale-order sweeper on the next run.
func (p *ConfirmationWatcherPool) Stop() {
	p.cancel()
	p.wg.Wait()
	p.logger.InfoContext(context.Background(), "Confirmation watchers stopped")
}

func (p *ConfirmationWatcherPool) watch(orderID int64) {
	deadline := time.NewTimer(p.window)
	defer deadline.Stop()

	ticker := time.NewTicker(p.pollInterval)
	defer ticker.Stop()

	logger := p.logger.With("order_id", orderID)
	logger.InfoContext(p.ctx, "Watching order for driver confirmation", "window", p.window)

	for {
		select {
		case <-p.ctx.Done():
			logger.InfoContext(context.Background(), "Watcher cancelled before resolution")
			return

		case <-deadline.C:
			p.expireOrder(orderID, logger)
			return

		case <-ticker.C:
			available, err := p.availability.IsDriverAvailable(p.ctx)
			if err != nil {
				// The oracle being unreachable consumes this tick only; the
				// deadline keeps counting.
				logger.DebugContext(p.ctx, "Driver availability check failed", "error", err)
				continue
			}

			if !available {
				continue
			}

			p.confirmOrder(orderID, logger)
			return
		}
	}
}

// Terminal actions run on a background context: a transition that already
// started should commit even if the pool is shutting down.
func (p *ConfirmationWatcherPool) confirmOrder(orderID int64, logger *slog.Logger) {
	ctx := context.Background()

	cmd, err := commands.NewConfirmOrderCommand(orderID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to build confirm command", "error", err)
		return
	}

	if err = p.confirm.Handle(ctx, cmd); err != nil {
		logger.ErrorContext(ctx, "Driver confirmation failed", "error", err)
		return
	}

	logger.InfoContext(ctx, "Driver confirmed, order moved to preparing")
}

func (p *ConfirmationWatcherPool) expireOrder(orderID int64, logger *slog.Logger) {
	ctx := context.Background()

	cmd, err := commands.NewExpireOrderCommand(orderID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to build expire command", "error", err)
		return
	}

	if err = p.expire.Handle(ctx, cmd); err != nil {
		logger.ErrorContext(ctx, "Order expiry failed", "error", err)
		return
	}

	logger.InfoContext(ctx, "Confirmation window elapsed, order cancelled if still waiting")
}
