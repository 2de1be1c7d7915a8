package order

import (
	"errors"
	"time"

	"driverapi/internal/core/domain/model/kernel"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via RestoreOrder constructor")

	// ErrPickupOrder is returned when a driver status update targets a pickup order.
	ErrPickupOrder = errors.New("pickup orders have no driver delivery lifecycle")
)

// State holds the persisted fields of an order that the driver workflow reads
// and writes. Nil pointers are NULL columns, or columns the schema does not have.
type State struct {
	Type              Type
	Status            BackendStatus
	DriverStatus      *DriverStatus
	AssignedDriverID  *kernel.ID
	PickedUpAt        *time.Time
	PaymentReceivedAt *time.Time
	PaymentReceivedBy *string
}

// Order is the driver-side view of a customer order. It is restored from the
// store, never created here: order placement belongs to another system.
type Order struct {
	id    kernel.ID
	state State

	isConstructed bool
}

// RestoreOrder rebuilds an order from persisted state.
func RestoreOrder(id kernel.ID, state State) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		state:         state,
		isConstructed: true,
	}, nil
}

// Validate ensures the order was restored through the constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() kernel.ID {
	return o.id
}

func (o *Order) Type() Type {
	return o.state.Type
}

func (o *Order) Status() BackendStatus {
	return o.state.Status
}

func (o *Order) DriverStatus() *DriverStatus {
	return o.state.DriverStatus
}

func (o *Order) AssignedDriver() *kernel.ID {
	return o.state.AssignedDriverID
}

// State returns a copy of the persisted fields.
func (o *Order) State() State {
	return o.state
}

func (o *Order) IsPickup() bool {
	return o.state.Type == TypePickup
}

// CheckDriverUpdatable returns ErrPickupOrder for orders outside the driver lifecycle.
func (o *Order) CheckDriverUpdatable() error {
	if o.IsPickup() {
		return ErrPickupOrder
	}
	return nil
}

// CanBeClaimedBy reports whether reporting status would assign driverID.
// Assignment is first-write-wins: an assigned order is never reassigned here.
func (o *Order) CanBeClaimedBy(status DriverStatus) bool {
	return status.AssignsDriver() && o.state.AssignedDriverID == nil
}

// DriverFacingStatus is what the driver app shows: the driver status when set,
// otherwise a fallback derived from the backend status.
func (o *Order) DriverFacingStatus() DriverStatus {
	if ds := o.state.DriverStatus; ds != nil && *ds != "" {
		return *ds
	}
	return o.state.Status.DriverStatus()
}

// IsPaymentReceived reports whether a driver has confirmed payment for the order.
func (o *Order) IsPaymentReceived() bool {
	return o.state.PaymentReceivedAt != nil
}
