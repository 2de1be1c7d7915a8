// Package driverrepo resolves drivers from the shared drivers table.
package driverrepo

import (
	"context"
	"time"

	"driverapi/internal/adapters/out/postgres/pgerr"
	"driverapi/internal/adapters/out/postgres/schema"
	"driverapi/internal/core/domain/model/driver"
	"driverapi/internal/core/domain/model/kernel"
	"driverapi/internal/pkg/errs"

	"gorm.io/gorm"
)

type driverRow struct {
	DriverID     int64
	Name         *string
	TokenExpires *time.Time
}

// GormDriverRepository implements ports.DriverRepository using GORM.
type GormDriverRepository struct {
	db       *gorm.DB
	registry *schema.Registry
}

func NewGormDriverRepository(db *gorm.DB, registry *schema.Registry) *GormDriverRepository {
	return &GormDriverRepository{
		db:       db,
		registry: registry,
	}
}

// GetByToken matches the token exactly and skips rows whose token has expired
// by the database clock. Schemas without token_expires yield drivers whose
// tokens never expire.
func (r *GormDriverRepository) GetByToken(ctx context.Context, token string) (*driver.Driver, error) {
	if token == "" {
		return nil, errs.NewValueIsRequiredError("token")
	}

	query := "SELECT driver_id, name, NULL AS token_expires FROM drivers WHERE api_token = ? LIMIT 1"
	if r.registry.Load().Drivers.TokenExpires {
		query = `SELECT driver_id, name, token_expires FROM drivers
			WHERE api_token = ? AND (token_expires IS NULL OR token_expires > now())
			ORDER BY driver_id LIMIT 1`
	}

	var row driverRow
	result := r.db.WithContext(ctx).Raw(query, token).Scan(&row)
	if result.Error != nil {
		return nil, pgerr.Wrap("load driver by token", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, errs.NewObjectNotFoundError("driver", "token")
	}

	var name string
	if row.Name != nil {
		name = *row.Name
	}
	return driver.RestoreDriver(kernel.ID(row.DriverID), name, row.TokenExpires)
}
