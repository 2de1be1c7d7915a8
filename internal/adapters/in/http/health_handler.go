package http

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const (
	healthPingTimeout = 2 * time.Second
	codeDBConnect     = "db_connect_failed"
)

type healthResponse struct {
	DBOK  bool    `json:"db_ok"`
	MS    int64   `json:"ms"`
	Error *string `json:"error"`
}

// Health handles GET /api/v1/driver/health. It always answers 200; the body
// says whether the database answered.
func (s *Server) Health(c echo.Context) error {
	started := time.Now()

	ctx, cancel := context.WithTimeout(c.Request().Context(), healthPingTimeout)
	defer cancel()

	resp := healthResponse{DBOK: true}
	if err := s.handlers.DB.PingContext(ctx); err != nil {
		s.logger.Warn("database ping failed", "error", err)
		code := codeDBConnect
		resp.DBOK = false
		resp.Error = &code
	}
	resp.MS = time.Since(started).Milliseconds()

	return c.JSON(http.StatusOK, resp)
}

// Liveness handles GET /health.
func Liveness(c echo.Context) error {
	return c.String(http.StatusOK, "Healthy")
}
