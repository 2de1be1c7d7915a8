package queries

import (
	"errors"
	"strings"

	"driverapi/internal/pkg/guard"
)

var (
	ErrAuthenticateDriverQueryIsNotConstructed = errors.New(
		"AuthenticateDriverQuery must be created via NewAuthenticateDriverQuery constructor",
	)

	// ErrUnauthenticated means no bearer token was presented.
	ErrUnauthenticated = errors.New("missing bearer token")
	// ErrInvalidToken means the token matches no driver or has expired.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// AuthenticateDriverQuery resolves the driver behind an opaque API token.
//
// Example:
//
//	query, err := NewAuthenticateDriverQuery(token)
//	if err != nil {
//	    return err // ErrUnauthenticated
//	}
//
//	drv, err := handler.Handle(ctx, query)
type AuthenticateDriverQuery struct {
	token string

	guard guard.ConstructorGuard
}

// NewAuthenticateDriverQuery returns ErrUnauthenticated for a blank token.
func NewAuthenticateDriverQuery(token string) (AuthenticateDriverQuery, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return AuthenticateDriverQuery{}, ErrUnauthenticated
	}

	return AuthenticateDriverQuery{
		token: token,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q AuthenticateDriverQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateDriverQueryIsNotConstructed)
}

func (q AuthenticateDriverQuery) Token() string {
	return q.token
}
