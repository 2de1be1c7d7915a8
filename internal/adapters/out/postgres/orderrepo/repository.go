package orderrepo

import (
	"context"
	"strings"
	"time"

	"driverapi/internal/adapters/out/postgres/pgerr"
	"driverapi/internal/adapters/out/postgres/schema"
	"driverapi/internal/core/domain/model/kernel"
	"driverapi/internal/core/domain/model/order"
	"driverapi/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
// Writes to columns the schema lacks are skipped and report zero rows.
type GormOrderRepository struct {
	db   *gorm.DB
	caps schema.Capabilities
}

// NewGormOrderRepository creates a repository for the given schema capabilities.
func NewGormOrderRepository(db *gorm.DB, caps schema.Capabilities) *GormOrderRepository {
	return &GormOrderRepository{
		db:   db,
		caps: caps,
	}
}

// GetForUpdate locks the order row until the surrounding transaction ends.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id kernel.ID) (*order.Order, error) {
	return r.load(ctx, id, " FOR UPDATE OF o")
}

// Get reads the order without locking.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	return r.load(ctx, id, "")
}

func (r *GormOrderRepository) load(ctx context.Context, id kernel.ID, locking string) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var row orderRow
	result := r.db.WithContext(ctx).
		Raw("SELECT "+selectList(r.caps)+" FROM orders o WHERE o.order_id = ?"+locking, id.Int64()).
		Scan(&row)
	if result.Error != nil {
		return nil, pgerr.Wrap("load order", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, errs.NewObjectNotFoundError("order", id.Int64())
	}

	return toDomain(row)
}

func (r *GormOrderRepository) Exists(ctx context.Context, id kernel.ID) (bool, error) {
	var exists bool
	err := r.db.WithContext(ctx).
		Raw("SELECT EXISTS (SELECT 1 FROM orders WHERE order_id = ?)", id.Int64()).
		Scan(&exists).Error
	if err != nil {
		return false, pgerr.Wrap("check order", err)
	}
	return exists, nil
}

// UpdateStatus only touches the row when a value actually changes, so zero
// affected rows means the order already had these statuses.
func (r *GormOrderRepository) UpdateStatus(
	ctx context.Context,
	id kernel.ID,
	status order.BackendStatus,
	driverStatus order.DriverStatus,
) (int64, error) {
	query := "UPDATE orders SET order_status = ? WHERE order_id = ? AND order_status IS DISTINCT FROM ?"
	args := []any{status.String(), id.Int64(), status.String()}

	if r.caps.Orders.DriverStatus {
		query = `UPDATE orders SET order_status = ?, driver_status = ?
			WHERE order_id = ? AND (order_status IS DISTINCT FROM ? OR driver_status IS DISTINCT FROM ?)`
		args = []any{status.String(), driverStatus.String(), id.Int64(), status.String(), driverStatus.String()}
	}

	return r.exec(ctx, "update order status", query, args...)
}

func (r *GormOrderRepository) AssignDriverIfAbsent(ctx context.Context, id kernel.ID, driverID kernel.ID) (int64, error) {
	if !r.caps.Orders.AssignedDriverID {
		return 0, nil
	}

	return r.exec(ctx, "assign driver",
		"UPDATE orders SET assigned_driver_id = ? WHERE order_id = ? AND assigned_driver_id IS NULL",
		driverID.Int64(), id.Int64(),
	)
}

func (r *GormOrderRepository) MarkPickedUp(ctx context.Context, id kernel.ID, at time.Time) (int64, error) {
	if !r.caps.Orders.PickedUpAt {
		return 0, nil
	}

	return r.exec(ctx, "mark picked up",
		"UPDATE orders SET picked_up_at = ? WHERE order_id = ? AND picked_up_at IS NULL",
		at, id.Int64(),
	)
}

// StampPaymentReceived fills whichever of the two columns exist and are still NULL.
func (r *GormOrderRepository) StampPaymentReceived(ctx context.Context, id kernel.ID, at time.Time, by string) (int64, error) {
	var sets, pending []string
	var args []any

	if r.caps.Orders.PaymentReceivedAt {
		sets = append(sets, "payment_received_at = COALESCE(payment_received_at, ?)")
		pending = append(pending, "payment_received_at IS NULL")
		args = append(args, at)
	}
	if r.caps.Orders.PaymentReceivedBy {
		sets = append(sets, "payment_received_by = COALESCE(payment_received_by, ?)")
		pending = append(pending, "payment_received_by IS NULL")
		args = append(args, by)
	}
	if len(sets) == 0 {
		return 0, nil
	}

	query := "UPDATE orders SET " + strings.Join(sets, ", ") +
		" WHERE order_id = ? AND (" + strings.Join(pending, " OR ") + ")"
	args = append(args, id.Int64())

	return r.exec(ctx, "stamp payment received", query, args...)
}

func (r *GormOrderRepository) exec(ctx context.Context, operation, query string, args ...any) (int64, error) {
	result := r.db.WithContext(ctx).Exec(query, args...)
	if result.Error != nil {
		return 0, pgerr.Wrap(operation, result.Error)
	}
	return result.RowsAffected, nil
}
