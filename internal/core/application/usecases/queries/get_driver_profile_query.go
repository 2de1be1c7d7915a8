package queries

import (
	"errors"
	"time"

	"driverapi/internal/core/domain/model/kernel"
	"driverapi/internal/pkg/guard"
)

var (
	ErrGetDriverProfileQueryIsNotConstructed = errors.New(
		"GetDriverProfileQuery must be created via NewGetDriverProfileQuery constructor",
	)
	ErrDriverNotFound = errors.New("driver not found")
)

type GetDriverProfileQuery struct {
	driverID kernel.ID

	guard guard.ConstructorGuard
}

func NewGetDriverProfileQuery(driverID kernel.ID) (GetDriverProfileQuery, error) {
	if err := driverID.Validate(); err != nil {
		return GetDriverProfileQuery{}, err
	}

	return GetDriverProfileQuery{
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q GetDriverProfileQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverProfileQueryIsNotConstructed)
}

func (q GetDriverProfileQuery) DriverID() kernel.ID {
	return q.driverID
}

// GetDriverProfileQueryResponse carries nil for columns the schema lacks.
type GetDriverProfileQueryResponse struct {
	ID           kernel.ID
	Name         string
	Email        string
	Status       *string
	CreatedAt    *time.Time
	LastLogin    *time.Time
	TokenExpires *time.Time
}
