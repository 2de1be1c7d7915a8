package queries

import (
	"context"
	"errors"
	"fmt"

	"driverapi/internal/core/domain/model/driver"
	"driverapi/internal/core/ports"
	"driverapi/internal/pkg/errs"
)

// AuthenticateDriverQueryHandler accepts a token when the repository finds a
// driver whose token has not expired. It has no side effects.
type AuthenticateDriverQueryHandler struct {
	drivers ports.DriverRepository
}

func NewAuthenticateDriverQueryHandler(drivers ports.DriverRepository) AuthenticateDriverQueryHandler {
	return AuthenticateDriverQueryHandler{drivers: drivers}
}

func (h AuthenticateDriverQueryHandler) Handle(ctx context.Context, query AuthenticateDriverQuery) (*driver.Driver, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	d, err := h.drivers.GetByToken(ctx, query.Token())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrInvalidToken
	}
	if err != nil {
		return nil, fmt.Errorf("authenticate driver: %w", err)
	}

	return d, nil
}
