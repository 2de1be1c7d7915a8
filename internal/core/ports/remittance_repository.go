package ports

import (
	"context"

	"driverapi/internal/core/domain/model/cash"
)

type RemittanceRepository interface {
	// Add persists a new remittance and returns it with its generated id and timestamp.
	Add(ctx context.Context, r *cash.Remittance) (*cash.Remittance, error)
}
