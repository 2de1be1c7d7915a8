package queries

import (
	"errors"

	"driverapi/internal/core/domain/model/kernel"
	"driverapi/internal/pkg/guard"
)

var (
	ErrGetCashSummaryQueryIsNotConstructed = errors.New(
		"GetCashSummaryQuery must be created via NewGetCashSummaryQuery constructor",
	)
)

// RecentRemittancesLimit bounds the remittances returned with a summary.
const RecentRemittancesLimit = 10

// GetCashSummaryQuery computes how much cash-on-delivery money a driver
// collected and remitted, today and overall.
type GetCashSummaryQuery struct {
	driverID kernel.ID

	guard guard.ConstructorGuard
}

func NewGetCashSummaryQuery(driverID kernel.ID) (GetCashSummaryQuery, error) {
	if err := driverID.Validate(); err != nil {
		return GetCashSummaryQuery{}, err
	}

	return GetCashSummaryQuery{
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q GetCashSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetCashSummaryQueryIsNotConstructed)
}

func (q GetCashSummaryQuery) DriverID() kernel.ID {
	return q.driverID
}
