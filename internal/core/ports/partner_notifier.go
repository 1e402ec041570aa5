package ports

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/order"
)

// ErrPartnerUnreachable indicates the delivery partner did not acknowledge a
// status notification (transport failure or non-success response). The local
// status change is already committed when this error surfaces; callers report
// it without rolling anything back.
var ErrPartnerUnreachable = errors.New("delivery partner is unreachable")

// PartnerNotifier propagates a restaurant-side status change to the delivery
// partner so both sides converge. Notification is best-effort.
type PartnerNotifier interface {
	NotifyStatusChange(ctx context.Context, orderID int64, newStatus order.Status) error
}
