package commands

import (
	"errors"

	"driverapi/internal/core/domain/model/cash"
	"driverapi/internal/core/domain/model/driver"
	"driverapi/internal/core/domain/model/kernel"
	"driverapi/internal/core/domain/model/proof"
	"driverapi/internal/pkg/errs"
	"driverapi/internal/pkg/guard"
)

var ErrSubmitRemittanceCommandIsNotConstructed = errors.New(
	"SubmitRemittanceCommand must be created via NewSubmitRemittanceCommand constructor",
)

// SubmitRemittanceCommand records cash a driver handed back to the business.
type SubmitRemittanceCommand struct {
	driver *driver.Driver
	amount kernel.Money
	note   *string
	proof  proof.Image

	guard guard.ConstructorGuard
}

// NewSubmitRemittanceCommand returns cash.ErrAmountMustBePositive for amounts
// that are not strictly positive numbers.
func NewSubmitRemittanceCommand(
	drv *driver.Driver,
	amount float64,
	note *string,
	img proof.Image,
) (SubmitRemittanceCommand, error) {
	if err := drv.Validate(); err != nil {
		return SubmitRemittanceCommand{}, errs.NewValueIsRequiredErrorWithCause("driver", err)
	}

	money, err := kernel.NewMoney(amount)
	if err != nil || !money.IsPositive() {
		return SubmitRemittanceCommand{}, cash.ErrAmountMustBePositive
	}

	return SubmitRemittanceCommand{
		driver: drv,
		amount: money,
		note:   note,
		proof:  img,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c SubmitRemittanceCommand) Validate() error {
	return c.guard.Validate(ErrSubmitRemittanceCommandIsNotConstructed)
}

func (c SubmitRemittanceCommand) Driver() *driver.Driver {
	return c.driver
}

func (c SubmitRemittanceCommand) Amount() kernel.Money {
	return c.amount
}

func (c SubmitRemittanceCommand) Note() *string {
	return c.note
}

func (c SubmitRemittanceCommand) Proof() proof.Image {
	return c.proof
}
