package ports

import (
	"context"

	"driverapi/internal/core/domain/model/driver"
)

type DriverRepository interface {
	// GetByToken returns the driver owning the exact api token when that token
	// has not expired, or errs.ErrObjectNotFound.
	GetByToken(ctx context.Context, token string) (*driver.Driver, error)
}
