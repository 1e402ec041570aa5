// Package jobs provides the background machinery of the order pipeline.
//
// Two mechanisms live here:
//
//  1. ConfirmationWatcherPool - one goroutine per newly created order, racing
//     the driver-availability poll against the confirmation deadline. The
//     winner triggers exactly one terminal action (confirm or expire) through
//     a command handler.
//  2. StaleOrderSweeperJob - a cron job (github.com/robfig/cron/v3) running
//     every minute as a restart-safety backstop, deleting received orders
//     whose window elapsed while no watcher was alive to see it.
//
// # Usage
//
// The pool doubles as the confirmation scheduler for order creation:
//
//	pool := jobs.NewConfirmationWatcherPool(confirmHandler, expireHandler,
//		partnerClient, window, pollInterval, logger)
//	createHandler := commands.NewCreateOrderCommandHandler(uowFactory, pool)
//
//	jobManager := jobs.NewJobManager(expireStaleHandler, pool, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
//   - A failed availability poll consumes one tick and is logged; the deadline
//     keeps counting.
//   - Terminal actions are idempotent: both handlers re-check the order's
//     status under a row lock and no-op when another writer got there first,
//     so the watcher and sweeper may safely overlap.
//   - Stopping the pool abandons unresolved watchers; the sweeper picks those
//     orders up after the next restart.
package jobs
