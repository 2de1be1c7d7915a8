// Package evidencerepo persists what drivers leave behind on orders: payment
// receipts, proof photos, signatures, status history and admin notifications.
// These tables are owned by the driver API and may be auto-migrated.
package evidencerepo

import "time"

type PaymentReceiptDTO struct {
	ReceiptID         int64      `gorm:"column:receipt_id;primaryKey;autoIncrement"`
	OrderID           int64      `gorm:"column:order_id;uniqueIndex;not null"`
	PaymentReceivedAt *time.Time `gorm:"column:payment_received_at"`
	PaymentReceivedBy *string    `gorm:"column:payment_received_by;size:255"`
	ProofPhoto        *string    `gorm:"column:proof_photo;size:255"`
	Status            string     `gorm:"column:status;size:32;not null;default:verified"`
}

func (PaymentReceiptDTO) TableName() string {
	return "order_payment_receipt"
}

type ProofPhotoDTO struct {
	PhotoID    int64     `gorm:"column:photo_id;primaryKey;autoIncrement"`
	OrderID    int64     `gorm:"column:order_id;index;not null"`
	Path       string    `gorm:"column:path;size:255;not null"`
	UploadedAt time.Time `gorm:"column:uploaded_at;not null"`
	UploadedBy *int64    `gorm:"column:uploaded_by"`
}

func (ProofPhotoDTO) TableName() string {
	return "order_proof_photo"
}

type SignatureDTO struct {
	OrderID  int64     `gorm:"column:order_id;primaryKey;autoIncrement:false"`
	Path     string    `gorm:"column:path;size:255;not null"`
	SignedAt time.Time `gorm:"column:signed_at;not null"`
	SignedBy *int64    `gorm:"column:signed_by"`
}

func (SignatureDTO) TableName() string {
	return "order_signature"
}

type StatusHistoryDTO struct {
	HistoryID int64     `gorm:"column:history_id;primaryKey;autoIncrement"`
	OrderID   int64     `gorm:"column:order_id;index;not null"`
	Event     string    `gorm:"column:event;size:64;not null"`
	CreatedAt time.Time `gorm:"column:created_at;not null"`
}

func (StatusHistoryDTO) TableName() string {
	return "order_status_history"
}

type NotificationDTO struct {
	NotificationID int64     `gorm:"column:notification_id;primaryKey;autoIncrement"`
	Type           string    `gorm:"column:type;size:32;not null"`
	Title          string    `gorm:"column:title;size:255;not null"`
	Message        string    `gorm:"column:message;type:text;not null"`
	CreatedAt      time.Time `gorm:"column:created_at;not null"`
}

func (NotificationDTO) TableName() string {
	return "notifications"
}

// Models lists the tables this package owns, for AutoMigrate.
func Models() []any {
	return []any{
		&PaymentReceiptDTO{},
		&ProofPhotoDTO{},
		&SignatureDTO{},
		&StatusHistoryDTO{},
		&NotificationDTO{},
	}
}
