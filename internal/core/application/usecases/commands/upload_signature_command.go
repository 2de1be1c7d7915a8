package commands

import (
	"errors"

	"driverapi/internal/core/domain/model/driver"
	"driverapi/internal/core/domain/model/kernel"
	"driverapi/internal/core/domain/model/proof"
	"driverapi/internal/pkg/errs"
	"driverapi/internal/pkg/guard"
)

var ErrUploadSignatureCommandIsNotConstructed = errors.New(
	"UploadSignatureCommand must be created via NewUploadSignatureCommand constructor",
)

// UploadSignatureCommand replaces the customer signature of an order.
type UploadSignatureCommand struct {
	orderID   kernel.ID
	driver    *driver.Driver
	signature proof.Image

	guard guard.ConstructorGuard
}

func NewUploadSignatureCommand(
	orderID kernel.ID,
	drv *driver.Driver,
	signature proof.Image,
) (UploadSignatureCommand, error) {
	if err := orderID.Validate(); err != nil {
		return UploadSignatureCommand{}, err
	}
	if err := drv.Validate(); err != nil {
		return UploadSignatureCommand{}, errs.NewValueIsRequiredErrorWithCause("driver", err)
	}

	return UploadSignatureCommand{
		orderID:   orderID,
		driver:    drv,
		signature: signature,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c UploadSignatureCommand) Validate() error {
	return c.guard.Validate(ErrUploadSignatureCommandIsNotConstructed)
}

func (c UploadSignatureCommand) OrderID() kernel.ID {
	return c.orderID
}

func (c UploadSignatureCommand) Driver() *driver.Driver {
	return c.driver
}

func (c UploadSignatureCommand) Signature() proof.Image {
	return c.signature
}
