package http

import (
	"errors"
	"net/http"
	"time"

	"driverapi/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

type profileResponse struct {
	Driver driverResponse `json:"driver"`
}

type driverResponse struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Status       *string    `json:"status"`
	CreatedAt    *time.Time `json:"createdAt"`
	LastLogin    *time.Time `json:"lastLogin"`
	TokenExpires *time.Time `json:"tokenExpires"`
}

// GetProfile handles GET /api/v1/driver/profile.
func (s *Server) GetProfile(c echo.Context) error {
	query, err := queries.NewGetDriverProfileQuery(DriverFrom(c).ID())
	if err != nil {
		return writeError(c, http.StatusUnauthorized, CodeInvalidToken, "")
	}

	p, err := s.handlers.Profile.Handle(c.Request().Context(), query)
	if errors.Is(err, queries.ErrDriverNotFound) {
		return writeError(c, http.StatusUnauthorized, CodeInvalidToken, "")
	}
	if err != nil {
		s.logger.Error("failed to load profile", "error", err)
		return writeError(c, http.StatusInternalServerError, CodeServerError, "")
	}

	return c.JSON(http.StatusOK, profileResponse{Driver: driverResponse{
		ID:           p.ID.Int64(),
		Name:         p.Name,
		Email:        p.Email,
		Status:       p.Status,
		CreatedAt:    p.CreatedAt,
		LastLogin:    p.LastLogin,
		TokenExpires: p.TokenExpires,
	}})
}
