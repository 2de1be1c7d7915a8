// Package remittancerepo persists driver cash remittances.
package remittancerepo

import (
	"context"
	"math"
	"time"

	"driverapi/internal/adapters/out/postgres/pgerr"
	"driverapi/internal/core/domain/model/cash"
	"driverapi/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

type RemittanceDTO struct {
	RemittanceID int64     `gorm:"column:remittance_id;primaryKey;autoIncrement"`
	DriverID     int64     `gorm:"column:driver_id;index;not null"`
	Amount       float64   `gorm:"column:amount;type:numeric(10,2);not null"`
	Note         *string   `gorm:"column:note;type:text"`
	ProofPath    *string   `gorm:"column:proof_path;size:255"`
	CreatedAt    time.Time `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP"`
}

func (RemittanceDTO) TableName() string {
	return "driver_cash_remittance"
}

// GormRemittanceRepository implements ports.RemittanceRepository using GORM.
type GormRemittanceRepository struct {
	db *gorm.DB
}

func NewGormRemittanceRepository(db *gorm.DB) *GormRemittanceRepository {
	return &GormRemittanceRepository{db: db}
}

func (r *GormRemittanceRepository) Add(ctx context.Context, remittance *cash.Remittance) (*cash.Remittance, error) {
	if err := remittance.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(remittance)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return nil, pgerr.Wrap("insert remittance", err)
	}

	return ToDomain(dto), nil
}

func fromDomain(r *cash.Remittance) RemittanceDTO {
	return RemittanceDTO{
		DriverID:  r.DriverID().Int64(),
		Amount:    r.Amount().Float64(),
		Note:      r.Note(),
		ProofPath: r.ProofPath(),
	}
}

// ToDomain restores a stored remittance.
func ToDomain(dto RemittanceDTO) *cash.Remittance {
	return cash.RestoreRemittance(
		kernel.ID(dto.RemittanceID),
		kernel.ID(dto.DriverID),
		kernel.MoneyFromCents(int64(math.Round(dto.Amount*100))),
		dto.Note,
		dto.ProofPath,
		dto.CreatedAt,
	)
}
