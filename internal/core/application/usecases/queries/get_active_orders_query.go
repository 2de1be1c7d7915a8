package queries

import (
	"errors"
	"time"

	"driverapi/internal/core/domain/model/kernel"
	"driverapi/internal/core/domain/model/order"
	"driverapi/internal/pkg/guard"
)

var (
	ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
		"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
	)
)

const (
	DefaultActiveOrdersLimit = 30
	MaxActiveOrdersLimit     = 100

	PaymentStatusPaid   = "paid"
	PaymentStatusUnpaid = "unpaid"
)

// GetActiveOrdersQuery lists the most recent orders a driver may work on.
// A missing or non-positive limit means DefaultActiveOrdersLimit; larger
// limits are capped at MaxActiveOrdersLimit.
//
// Example:
//
//	query := NewGetActiveOrdersQuery(nil)
//	orders, err := handler.Handle(ctx, query)
type GetActiveOrdersQuery struct {
	limit int

	guard guard.ConstructorGuard
}

func NewGetActiveOrdersQuery(limit *int) GetActiveOrdersQuery {
	l := DefaultActiveOrdersLimit
	if limit != nil && *limit > 0 {
		l = min(*limit, MaxActiveOrdersLimit)
	}

	return GetActiveOrdersQuery{
		limit: l,
		guard: guard.NewConstructorGuard(),
	}
}

func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

func (q GetActiveOrdersQuery) Limit() int {
	return q.limit
}

type ActiveOrderAddon struct {
	Name     string
	Price    float64
	Quantity int
}

type ActiveOrderItem struct {
	ID       int64
	Name     string
	Quantity int
	Price    float64
	Addons   []ActiveOrderAddon
}

// GetActiveOrdersQueryResponse is one order as the driver app shows it.
// Status is driver-first; DisplayStatus is the human label.
type GetActiveOrdersQueryResponse struct {
	ID               kernel.ID
	CustomerName     *string
	CustomerPhone    *string
	DeliveryAddress  string
	Lat              *float64
	Lng              *float64
	Items            []ActiveOrderItem
	TotalAmount      float64
	Status           order.DriverStatus
	DriverStatus     *order.DriverStatus
	DisplayStatus    string
	PaymentStatus    string
	AssignedDriverID *kernel.ID
	CreatedAt        time.Time
	PickedUpAt       *time.Time
	DeliveredAt      *time.Time
}
