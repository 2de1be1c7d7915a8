package kernel

import (
	"fmt"
	"strconv"
	"strings"

	"driverapi/internal/pkg/errs"
)

// ID identifies a row in the shared schema (orders, drivers, remittances).
// Valid identifiers are strictly positive.
type ID int64

// NewID validates a raw identifier.
func NewID(v int64) (ID, error) {
	id := ID(v)
	if err := id.Validate(); err != nil {
		return 0, err
	}
	return id, nil
}

// ParseID parses an identifier sent by the mobile app, which may arrive as a
// JSON number or a form string.
func ParseID(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errs.NewValueIsRequiredError("id")
	}

	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%q is not an integer", s))
	}

	return NewID(v)
}

func (id ID) Validate() error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not greater than 0", int64(id)))
	}
	return nil
}

func (id ID) Int64() int64 {
	return int64(id)
}

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}
