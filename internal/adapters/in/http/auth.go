package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"driverapi/internal/core/application/usecases/queries"
	"driverapi/internal/core/domain/model/driver"

	"github.com/labstack/echo/v4"
)

const driverContextKey = "driver"

type DriverAuthenticator interface {
	Handle(ctx context.Context, query queries.AuthenticateDriverQuery) (*driver.Driver, error)
}

// BearerAuth resolves the driver from "Authorization: Bearer <token>" and
// stores it in the echo context.
func BearerAuth(authenticator DriverAuthenticator, logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			query, err := queries.NewAuthenticateDriverQuery(bearerToken(c.Request()))
			if err != nil {
				return writeError(c, http.StatusUnauthorized, CodeMissingToken, "")
			}

			d, err := authenticator.Handle(c.Request().Context(), query)
			switch {
			case errors.Is(err, queries.ErrInvalidToken):
				return writeError(c, http.StatusUnauthorized, CodeInvalidToken, "")
			case err != nil:
				logger.Error("driver authentication failed", "error", err)
				return writeError(c, http.StatusInternalServerError, CodeServerError, "")
			}

			c.Set(driverContextKey, d)
			return next(c)
		}
	}
}

// DriverFrom returns the driver stored by BearerAuth, or nil.
func DriverFrom(c echo.Context) *driver.Driver {
	d, _ := c.Get(driverContextKey).(*driver.Driver)
	return d
}

func bearerToken(r *http.Request) string {
	const prefix = "bearer "

	header := r.Header.Get(echo.HeaderAuthorization)
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return header[len(prefix):]
}
