package ports

import (
	"context"
	"errors"
)

// ErrDriverStatusUnavailable indicates the driver-availability check itself
// failed (transport error, bad response). The confirmation watcher treats this
// as "no driver yet" and retries on its next poll tick.
var ErrDriverStatusUnavailable = errors.New("driver status is unavailable")

// DriverAvailability is the external oracle answering whether a delivery
// driver is currently available. The check has no side effects and its
// internal logic is owned by the delivery partner.
type DriverAvailability interface {
	IsDriverAvailable(ctx context.Context) (bool, error)
}
