package http

import (
	"errors"
	"net/http"

	"driverapi/internal/core/application/usecases/commands"
	"driverapi/internal/core/domain/model/cash"
	"driverapi/internal/core/domain/model/order"
	"driverapi/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error codes returned to the driver app.
const (
	CodeMissingFields = "missing_fields"
	CodeInvalidStatus = "invalid_status"
	CodeInvalidAmount = "invalid_amount"
	CodeNoSignature   = "no_signature"
	CodeMissingToken  = "missing_token"
	CodeInvalidToken  = "invalid_token"
	CodeOrderNotFound = "order_not_found"
	CodeNotApplicable = "not_applicable"
	CodeUpdateFailed  = "update_failed"
	CodeUploadFailed  = "upload_failed"
	CodeServerError   = "server_error"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func writeError(c echo.Context, status int, code, details string) error {
	return c.JSON(status, ErrorResponse{Error: code, Details: details})
}

// statusUpdateError maps a status workflow failure. Store failures never
// carry details to the client.
func statusUpdateError(err error) (int, string) {
	switch {
	case errors.Is(err, order.ErrInvalidDriverStatus):
		return http.StatusBadRequest, CodeInvalidStatus
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return http.StatusBadRequest, CodeMissingFields
	case errors.Is(err, commands.ErrOrderNotFound):
		return http.StatusNotFound, CodeOrderNotFound
	case errors.Is(err, commands.ErrOrderNotApplicable):
		return http.StatusConflict, CodeNotApplicable
	case errors.Is(err, commands.ErrTransientStoreFailure):
		return http.StatusServiceUnavailable, CodeUpdateFailed
	default:
		return http.StatusInternalServerError, CodeUpdateFailed
	}
}

func uploadError(err error) (int, string) {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return http.StatusBadRequest, CodeMissingFields
	case errors.Is(err, commands.ErrOrderNotFound):
		return http.StatusNotFound, CodeOrderNotFound
	case errors.Is(err, commands.ErrNoSignature):
		return http.StatusBadRequest, CodeNoSignature
	default:
		return http.StatusInternalServerError, CodeUploadFailed
	}
}

func remittanceError(err error) (int, string) {
	if errors.Is(err, cash.ErrAmountMustBePositive) {
		return http.StatusBadRequest, CodeInvalidAmount
	}
	return http.StatusInternalServerError, CodeServerError
}
