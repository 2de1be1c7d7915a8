// Package pgerr classifies PostgreSQL errors raised through gorm and pgx.
package pgerr

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"driverapi/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes that are worth retrying.
const (
	LockNotAvailable     = "55P03"
	SerializationFailure = "40001"
	DeadlockDetected     = "40P01"
	QueryCanceled        = "57014"
	AdminShutdown        = "57P01"
	CannotConnectNow     = "57P03"
)

// Wrap annotates err with the failed operation. Transient failures become
// *errs.TransientError so callers can match errs.ErrTransient.
func Wrap(operation string, err error) error {
	if err == nil {
		return nil
	}
	if IsTransient(err) {
		return errs.NewTransientError(operation, err)
	}
	return fmt.Errorf("%s: %w", operation, err)
}

// IsTransient reports lock wait timeouts, deadlocks, serialization conflicts
// and connection failures.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case LockNotAvailable, SerializationFailure, DeadlockDetected, QueryCanceled, AdminShutdown, CannotConnectNow:
			return true
		}
		// class 08: connection exception
		return len(pgErr.Code) == 5 && pgErr.Code[:2] == "08"
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	return errors.Is(err, driver.ErrBadConn) || pgconn.Timeout(err) || pgconn.SafeToRetry(err)
}
