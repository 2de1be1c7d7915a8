package ports

import (
	"context"
	"time"

	"driverapi/internal/core/domain/model/kernel"
	"driverapi/internal/core/domain/services"
)

// Receipt is the payment receipt written when a driver confirms delivery.
// ProofPath is empty when no proof was captured.
type Receipt struct {
	OrderID    kernel.ID
	ReceivedAt time.Time
	ReceivedBy string
	ProofPath  string
}

// EvidenceRepository records what a driver leaves behind on an order:
// receipts, proof photos, signatures, history events and admin notifications.
// All writes are append or first-write-wins; nothing is ever deleted.
type EvidenceRepository interface {
	// UpsertReceipt fills empty fields of the order's receipt, or inserts a
	// verified receipt when none exists.
	UpsertReceipt(ctx context.Context, r Receipt) (int64, error)

	AddProofPhoto(ctx context.Context, orderID kernel.ID, path string, at time.Time, uploadedBy kernel.ID) (int64, error)

	// UpsertSignature keeps one signature per order; the latest one wins.
	UpsertSignature(ctx context.Context, orderID kernel.ID, path string, at time.Time, signedBy kernel.ID) (int64, error)

	AppendHistory(ctx context.Context, orderID kernel.ID, event string, at time.Time) (int64, error)

	AddNotification(ctx context.Context, n services.Notification, at time.Time) (int64, error)
}
