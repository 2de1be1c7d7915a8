package ports

import (
	"context"

	"driverapi/internal/core/domain/model/kernel"
	"driverapi/internal/core/domain/model/payment"
)

type PaymentRepository interface {
	// GetByOrder returns the payment row of an order, preferring a cash-on-delivery
	// row, or errs.ErrObjectNotFound.
	GetByOrder(ctx context.Context, orderID kernel.ID) (*payment.Payment, error)

	// Update persists status and amount of the payment row identified by p.ID().
	Update(ctx context.Context, p *payment.Payment) (int64, error)
}
