// Package driver models the authenticated delivery driver.
package driver

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"driverapi/internal/core/domain/model/kernel"
)

var ErrDriverIsNotConstructed = errors.New("Driver must be created via RestoreDriver constructor")

// Driver is the identity resolved from a bearer token.
type Driver struct {
	id           kernel.ID
	name         string
	tokenExpires *time.Time

	isConstructed bool
}

// RestoreDriver rebuilds a driver from the store. The name may be blank.
// tokenExpires is nil for tokens without expiry.
func RestoreDriver(id kernel.ID, name string, tokenExpires *time.Time) (*Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Driver{
		id:            id,
		name:          strings.TrimSpace(name),
		tokenExpires:  tokenExpires,
		isConstructed: true,
	}, nil
}

func (d *Driver) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDriverIsNotConstructed
	}
	return nil
}

func (d *Driver) ID() kernel.ID {
	return d.id
}

func (d *Driver) Name() string {
	return d.name
}

func (d *Driver) TokenExpires() *time.Time {
	return d.tokenExpires
}

// DisplayName is the driver's name, or "#<id>" for drivers without one.
func (d *Driver) DisplayName() string {
	if d.name == "" {
		return fmt.Sprintf("#%d", d.id.Int64())
	}
	return d.name
}

// Attribution is the "received by" label stamped on orders and payment receipts.
func (d *Driver) Attribution() string {
	if d.name == "" {
		return fmt.Sprintf("Driver #%d", d.id.Int64())
	}
	return fmt.Sprintf("Driver #%d - %s", d.id.Int64(), d.name)
}
