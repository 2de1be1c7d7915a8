// Package paymentrepo reads and updates rows of the shared payment table.
package paymentrepo

import (
	"context"
	"math"

	"driverapi/internal/adapters/out/postgres/pgerr"
	"driverapi/internal/core/domain/model/kernel"
	"driverapi/internal/core/domain/model/payment"
	"driverapi/internal/pkg/errs"

	"gorm.io/gorm"
)

// PaymentDTO maps the payment table. It is owned by the ordering system and
// only migrated by tests.
type PaymentDTO struct {
	PaymentID     int64   `gorm:"column:payment_id;primaryKey;autoIncrement"`
	OrderID       int64   `gorm:"column:order_id;index"`
	PaymentMethod *string `gorm:"column:payment_method;size:64"`
	PaymentStatus *string `gorm:"column:payment_status;size:32"`
	PaymentAmount float64 `gorm:"column:payment_amount;type:numeric(10,2);not null;default:0"`
}

func (PaymentDTO) TableName() string {
	return "payment"
}

// GormPaymentRepository implements ports.PaymentRepository using GORM.
type GormPaymentRepository struct {
	db *gorm.DB
}

func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

// GetByOrder returns the oldest cash-on-delivery payment row of the order, or
// its oldest row when none is cash on delivery.
func (r *GormPaymentRepository) GetByOrder(ctx context.Context, orderID kernel.ID) (*payment.Payment, error) {
	var dtos []PaymentDTO
	err := r.db.WithContext(ctx).Where("order_id = ?", orderID.Int64()).Order("payment_id").Find(&dtos).Error
	if err != nil {
		return nil, pgerr.Wrap("load payment", err)
	}
	if len(dtos) == 0 {
		return nil, errs.NewObjectNotFoundError("payment", orderID.Int64())
	}

	dto := dtos[0]
	for _, candidate := range dtos {
		if payment.IsCashOnDeliveryMethod(deref(candidate.PaymentMethod)) {
			dto = candidate
			break
		}
	}

	return payment.RestorePayment(
		kernel.ID(dto.PaymentID),
		kernel.ID(dto.OrderID),
		deref(dto.PaymentMethod),
		payment.Status(deref(dto.PaymentStatus)),
		kernel.MoneyFromCents(int64(math.Round(dto.PaymentAmount*100))),
	), nil
}

// Update writes status and amount on the payment row when they differ. Other
// payment rows of the same order are left alone.
func (r *GormPaymentRepository) Update(ctx context.Context, p *payment.Payment) (int64, error) {
	status := string(p.Status())
	amount := p.Amount().Float64()

	result := r.db.WithContext(ctx).Exec(
		`UPDATE payment SET payment_status = ?, payment_amount = ?
		WHERE payment_id = ? AND (payment_status IS DISTINCT FROM ? OR payment_amount IS DISTINCT FROM ?)`,
		status, amount, p.ID().Int64(), status, amount,
	)
	if result.Error != nil {
		return 0, pgerr.Wrap("update payment", result.Error)
	}
	return result.RowsAffected, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
