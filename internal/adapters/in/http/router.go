package http

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

const (
	APIPrefix = "/api/v1/driver"
	bodyLimit = "32M"
)

// NewRouter builds the echo instance with every route of the driver API.
func NewRouter(server *Server, auth echo.MiddlewareFunc, docs *APIDocs, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(RequestID())
	e.Use(RequestLogger(logger))
	e.Use(Metrics())
	e.Use(middleware.BodyLimit(bodyLimit))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
	}))

	e.GET("/health", Liveness)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	if docs != nil {
		e.GET("/openapi.json", docs.Serve)
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	api := e.Group(APIPrefix)
	api.GET("/health", server.Health)

	driver := api.Group("", auth)
	driver.POST("/status", server.UpdateStatus)
	driver.GET("/orders", server.GetOrders)
	driver.GET("/profile", server.GetProfile)
	driver.GET("/cash-summary", server.GetCashSummary)
	driver.POST("/remittances", server.SubmitRemittance)
	driver.POST("/proofs", server.UploadProofs)
	driver.POST("/signature", server.UploadSignature)

	return e
}
