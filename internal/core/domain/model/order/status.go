package order

import (
	"fmt"

	"restaurant/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine over the fulfillment workflow:
//
//	Received ──> Preparing ──> Ready ──> Completed
//
// Received orders are waiting for a driver to be confirmed; the confirmation
// watcher promotes them to Preparing or removes them when the confirmation
// window elapses. Later stages are driven by manual status updates.
//
// Status is a value object that validates set membership, optionally validates
// forward-only ordering, and provides the wire string representation used for
// persistence and the HTTP API.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Received is the initial status assigned at creation. Orders in this
	// status are waiting for driver confirmation and may still be cancelled.
	Received

	// Preparing indicates a driver was confirmed and the kitchen is working.
	Preparing

	// Ready indicates the order is prepared and waiting for pickup.
	Ready

	// Completed indicates the order has been delivered.
	// This is a final state with no further transitions.
	Completed
)

// getStatusStrings returns the wire representation of every Status value.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Received:  "received",
		Preparing: "preparing",
		Ready:     "ready",
		Completed: "completed",
	}
}

// getValidStatusStrings returns only the statuses accepted from external input.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Received:  "received",
		Preparing: "preparing",
		Ready:     "ready",
		Completed: "completed",
	}
}

// StatusFromString parses the wire representation of a status.
// Accepts exactly "received", "preparing", "ready", or "completed".
// Returns a ValueIsInvalidError for anything else, including "unknown".
func StatusFromString(raw string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == raw {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", raw),
	)
}

// Validate checks if the Status value is a member of the valid set.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the wire representation of the status, or "unknown" for
// invalid values. Implements fmt.Stringer and is safe on any Status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// CanAdvanceTo reports whether moving to next keeps the forward-only ordering
// of the workflow. Both statuses must be valid and next must be strictly later
// in the path; repeating or rewinding a status is not an advance.
//
// This check is only applied when strict transition ordering is enabled;
// by default updates require set membership only.
func (s Status) CanAdvanceTo(next Status) bool {
	if s.Validate() != nil || next.Validate() != nil {
		return false
	}
	return next > s
}

// Confirm transitions the status to Preparing as the result of a driver
// confirmation.
//
// Valid transitions:
//   - Received -> Preparing
//
// Any other origin returns an error: confirmation is only meaningful while the
// order is still waiting for a driver.
func (s Status) Confirm() (Status, error) {
	if s != Received {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to confirm", s.String()),
		)
	}
	return Preparing, nil
}
