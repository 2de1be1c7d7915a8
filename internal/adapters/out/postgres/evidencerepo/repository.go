package evidencerepo

import (
	"context"
	"time"

	"driverapi/internal/adapters/out/postgres/pgerr"
	"driverapi/internal/core/domain/model/kernel"
	"driverapi/internal/core/domain/model/payment"
	"driverapi/internal/core/domain/services"
	"driverapi/internal/core/ports"

	"gorm.io/gorm"
)

// GormEvidenceRepository implements ports.EvidenceRepository using GORM.
type GormEvidenceRepository struct {
	db *gorm.DB
}

func NewGormEvidenceRepository(db *gorm.DB) *GormEvidenceRepository {
	return &GormEvidenceRepository{db: db}
}

// UpsertReceipt inserts a verified receipt or fills the empty fields of the
// existing one. A receipt that is already complete reports zero rows.
func (r *GormEvidenceRepository) UpsertReceipt(ctx context.Context, receipt ports.Receipt) (int64, error) {
	var proofPath *string
	if receipt.ProofPath != "" {
		proofPath = &receipt.ProofPath
	}

	result := r.db.WithContext(ctx).Exec(`
		INSERT INTO order_payment_receipt (order_id, payment_received_at, payment_received_by, proof_photo, status)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (order_id) DO UPDATE SET
			payment_received_at = COALESCE(order_payment_receipt.payment_received_at, EXCLUDED.payment_received_at),
			payment_received_by = COALESCE(order_payment_receipt.payment_received_by, EXCLUDED.payment_received_by),
			proof_photo = COALESCE(order_payment_receipt.proof_photo, EXCLUDED.proof_photo)
		WHERE order_payment_receipt.payment_received_at IS NULL
			OR order_payment_receipt.payment_received_by IS NULL
			OR (order_payment_receipt.proof_photo IS NULL AND EXCLUDED.proof_photo IS NOT NULL)`,
		receipt.OrderID.Int64(), receipt.ReceivedAt, receipt.ReceivedBy, proofPath, payment.ReceiptStatusVerified,
	)
	if result.Error != nil {
		return 0, pgerr.Wrap("upsert payment receipt", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *GormEvidenceRepository) AddProofPhoto(
	ctx context.Context,
	orderID kernel.ID,
	path string,
	at time.Time,
	uploadedBy kernel.ID,
) (int64, error) {
	by := uploadedBy.Int64()
	dto := ProofPhotoDTO{OrderID: orderID.Int64(), Path: path, UploadedAt: at, UploadedBy: &by}
	return r.create(ctx, "insert proof photo", &dto)
}

// UpsertSignature replaces path, time and author of the order's signature.
func (r *GormEvidenceRepository) UpsertSignature(
	ctx context.Context,
	orderID kernel.ID,
	path string,
	at time.Time,
	signedBy kernel.ID,
) (int64, error) {
	result := r.db.WithContext(ctx).Exec(`
		INSERT INTO order_signature (order_id, path, signed_at, signed_by)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (order_id) DO UPDATE SET
			path = EXCLUDED.path,
			signed_at = EXCLUDED.signed_at,
			signed_by = EXCLUDED.signed_by`,
		orderID.Int64(), path, at, signedBy.Int64(),
	)
	if result.Error != nil {
		return 0, pgerr.Wrap("upsert signature", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *GormEvidenceRepository) AppendHistory(ctx context.Context, orderID kernel.ID, event string, at time.Time) (int64, error) {
	dto := StatusHistoryDTO{OrderID: orderID.Int64(), Event: event, CreatedAt: at}
	return r.create(ctx, "append status history", &dto)
}

func (r *GormEvidenceRepository) AddNotification(ctx context.Context, n services.Notification, at time.Time) (int64, error) {
	dto := NotificationDTO{Type: n.Type, Title: n.Title, Message: n.Message, CreatedAt: at}
	return r.create(ctx, "insert notification", &dto)
}

func (r *GormEvidenceRepository) create(ctx context.Context, operation string, dto any) (int64, error) {
	result := r.db.WithContext(ctx).Create(dto)
	if result.Error != nil {
		return 0, pgerr.Wrap(operation, result.Error)
	}
	return result.RowsAffected, nil
}
