package queries

import (
	"context"
	"strings"
	"time"

	"driverapi/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

type driverProfileRow struct {
	DriverID     int64
	Name         string
	Gmail        string
	Status       *string
	CreatedAt    *time.Time
	LastLogin    *time.Time
	TokenExpires *time.Time
}

type GetDriverProfileQueryHandler struct {
	db   *gorm.DB
	caps CapabilitiesSource
}

func NewGetDriverProfileQueryHandler(db *gorm.DB, caps CapabilitiesSource) GetDriverProfileQueryHandler {
	return GetDriverProfileQueryHandler{db: db, caps: caps}
}

func (h GetDriverProfileQueryHandler) Handle(
	ctx context.Context,
	query GetDriverProfileQuery,
) (GetDriverProfileQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDriverProfileQueryResponse{}, err
	}

	d := h.caps.Load().Drivers
	cols := []string{
		"driver_id",
		"name",
		"gmail",
		column(d.Status, "drivers", "status"),
		column(d.CreatedAt, "drivers", "created_at"),
		column(d.LastLogin, "drivers", "last_login"),
		column(d.TokenExpires, "drivers", "token_expires"),
	}

	var row driverProfileRow
	result := h.db.WithContext(ctx).
		Raw("SELECT "+strings.Join(cols, ", ")+" FROM drivers WHERE driver_id = ?", query.DriverID().Int64()).
		Scan(&row)
	if result.Error != nil {
		return GetDriverProfileQueryResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return GetDriverProfileQueryResponse{}, ErrDriverNotFound
	}

	return GetDriverProfileQueryResponse{
		ID:           kernel.ID(row.DriverID),
		Name:         row.Name,
		Email:        row.Gmail,
		Status:       row.Status,
		CreatedAt:    row.CreatedAt,
		LastLogin:    row.LastLogin,
		TokenExpires: row.TokenExpires,
	}, nil
}
