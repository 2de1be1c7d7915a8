package commands

import (
	"errors"

	"driverapi/internal/core/domain/model/driver"
	"driverapi/internal/core/domain/model/kernel"
	"driverapi/internal/core/domain/model/proof"
	"driverapi/internal/pkg/errs"
	"driverapi/internal/pkg/guard"
)

var ErrUploadProofPhotosCommandIsNotConstructed = errors.New(
	"UploadProofPhotosCommand must be created via NewUploadProofPhotosCommand constructor",
)

// UploadProofPhotosCommand attaches delivery photos to an order.
// An empty photo list is allowed and stores nothing.
type UploadProofPhotosCommand struct {
	orderID kernel.ID
	driver  *driver.Driver
	photos  []proof.Image

	guard guard.ConstructorGuard
}

func NewUploadProofPhotosCommand(
	orderID kernel.ID,
	drv *driver.Driver,
	photos []proof.Image,
) (UploadProofPhotosCommand, error) {
	if err := orderID.Validate(); err != nil {
		return UploadProofPhotosCommand{}, err
	}
	if err := drv.Validate(); err != nil {
		return UploadProofPhotosCommand{}, errs.NewValueIsRequiredErrorWithCause("driver", err)
	}

	return UploadProofPhotosCommand{
		orderID: orderID,
		driver:  drv,
		photos:  photos,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c UploadProofPhotosCommand) Validate() error {
	return c.guard.Validate(ErrUploadProofPhotosCommandIsNotConstructed)
}

func (c UploadProofPhotosCommand) OrderID() kernel.ID {
	return c.orderID
}

func (c UploadProofPhotosCommand) Driver() *driver.Driver {
	return c.driver
}

func (c UploadProofPhotosCommand) Photos() []proof.Image {
	return c.photos
}
