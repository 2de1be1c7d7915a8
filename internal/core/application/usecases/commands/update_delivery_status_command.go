package commands

import (
	"errors"

	"driverapi/internal/core/domain/model/driver"
	"driverapi/internal/core/domain/model/kernel"
	"driverapi/internal/core/domain/model/order"
	"driverapi/internal/core/domain/model/proof"
	"driverapi/internal/pkg/errs"
	"driverapi/internal/pkg/guard"
)

var ErrUpdateDeliveryStatusCommandIsNotConstructed = errors.New(
	"UpdateDeliveryStatusCommand must be created via NewUpdateDeliveryStatusCommand constructor",
)

// UpdateDeliveryStatusCommand is a driver reporting progress on an order.
// The status is validated here, so a command never carries a value outside
// the driver status set.
//
// Example:
//
//	cmd, err := NewUpdateDeliveryStatusCommand(orderID, "delivered", drv, &collected, img)
//	if errors.Is(err, order.ErrInvalidDriverStatus) {
//	    return badRequest("invalid_status")
//	}
//	result, err := handler.Handle(ctx, cmd)
type UpdateDeliveryStatusCommand struct {
	orderID         kernel.ID
	status          order.DriverStatus
	driver          *driver.Driver
	collectedAmount *kernel.Money
	proof           proof.Image

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryStatusCommand validates the request. A collected amount
// that is missing, zero, negative or not a number is treated as not reported.
func NewUpdateDeliveryStatusCommand(
	orderID kernel.ID,
	status string,
	drv *driver.Driver,
	collectedAmount *float64,
	img proof.Image,
) (UpdateDeliveryStatusCommand, error) {
	if err := orderID.Validate(); err != nil {
		return UpdateDeliveryStatusCommand{}, err
	}
	if status == "" {
		return UpdateDeliveryStatusCommand{}, errs.NewValueIsRequiredError("status")
	}
	if err := drv.Validate(); err != nil {
		return UpdateDeliveryStatusCommand{}, errs.NewValueIsRequiredErrorWithCause("driver", err)
	}

	driverStatus, err := order.ParseDriverStatus(status)
	if err != nil {
		return UpdateDeliveryStatusCommand{}, err
	}

	var collected *kernel.Money
	if collectedAmount != nil {
		if m, moneyErr := kernel.NewMoney(*collectedAmount); moneyErr == nil && m.IsPositive() {
			collected = &m
		}
	}

	return UpdateDeliveryStatusCommand{
		orderID:         orderID,
		status:          driverStatus,
		driver:          drv,
		collectedAmount: collected,
		proof:           img,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryStatusCommandIsNotConstructed)
}

func (c UpdateDeliveryStatusCommand) OrderID() kernel.ID {
	return c.orderID
}

func (c UpdateDeliveryStatusCommand) Status() order.DriverStatus {
	return c.status
}

func (c UpdateDeliveryStatusCommand) Driver() *driver.Driver {
	return c.driver
}

// CollectedAmount is nil unless a positive amount was reported.
func (c UpdateDeliveryStatusCommand) CollectedAmount() *kernel.Money {
	return c.collectedAmount
}

func (c UpdateDeliveryStatusCommand) Proof() proof.Image {
	return c.proof
}
