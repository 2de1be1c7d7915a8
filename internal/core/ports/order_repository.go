// Package ports defines the persistence and infrastructure contracts of the
// driver workflow. Adapters under internal/adapters implement them.
package ports

import (
	"context"
	"time"

	"driverapi/internal/core/domain/model/kernel"
	"driverapi/internal/core/domain/model/order"
)

// OrderRepository is the driver-side persistence contract for orders.
// Write methods return the number of affected rows so callers can detect
// no-op writes. Columns the schema doesn't have are skipped and report zero.
type OrderRepository interface {
	// GetForUpdate loads and classifies the order, holding an exclusive row
	// lock until the surrounding transaction ends.
	// Returns errs.ErrObjectNotFound when no row exists.
	GetForUpdate(ctx context.Context, id kernel.ID) (*order.Order, error)

	// Get loads the current persisted snapshot without locking.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	// Exists reports whether an order row exists.
	Exists(ctx context.Context, id kernel.ID) (bool, error)

	// UpdateStatus writes order_status and driver_status when they differ from the stored values.
	UpdateStatus(ctx context.Context, id kernel.ID, status order.BackendStatus, driverStatus order.DriverStatus) (int64, error)

	// AssignDriverIfAbsent sets assigned_driver_id only while it is NULL.
	AssignDriverIfAbsent(ctx context.Context, id kernel.ID, driverID kernel.ID) (int64, error)

	// MarkPickedUp stamps picked_up_at only while it is NULL.
	MarkPickedUp(ctx context.Context, id kernel.ID, at time.Time) (int64, error)

	// StampPaymentReceived sets payment_received_at and payment_received_by,
	// each only while NULL.
	StampPaymentReceived(ctx context.Context, id kernel.ID, at time.Time, by string) (int64, error)
}
