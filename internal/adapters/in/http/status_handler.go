package http

import (
	"net/http"
	"time"

	"driverapi/internal/core/application/usecases/commands"
	"driverapi/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

const resultNoChange = "no_change"

type affectedResponse struct {
	Status       int64 `json:"status"`
	Assignment   int64 `json:"assignment"`
	PickedUp     int64 `json:"pickedUp"`
	PaymentStamp int64 `json:"paymentStamp"`
	Receipt      int64 `json:"receipt"`
	ProofPhoto   int64 `json:"proofPhoto"`
	History      int64 `json:"history"`
	Notification int64 `json:"notification"`
	Payment      int64 `json:"payment"`
}

type currentOrderResponse struct {
	Type              string     `json:"type"`
	OrderStatus       string     `json:"orderStatus"`
	DriverStatus      *string    `json:"driverStatus"`
	AssignedDriverID  *int64     `json:"assignedDriverId"`
	PickedUpAt        *time.Time `json:"pickedUpAt"`
	PaymentReceivedAt *time.Time `json:"paymentReceivedAt"`
	PaymentReceivedBy *string    `json:"paymentReceivedBy"`
}

type statusResponse struct {
	OK        bool                 `json:"ok"`
	OrderID   string               `json:"orderId"`
	Status    string               `json:"status"`
	DBStatus  *string              `json:"dbStatus"`
	Result    string               `json:"result,omitempty"`
	ProofPath string               `json:"proofPath,omitempty"`
	Affected  affectedResponse     `json:"affected"`
	Current   currentOrderResponse `json:"current"`
}

// UpdateStatus handles POST /api/v1/driver/status.
func (s *Server) UpdateStatus(c echo.Context) error {
	req, err := bindStatusRequest(c)
	if err != nil {
		return writeError(c, http.StatusBadRequest, CodeMissingFields, "malformed request body")
	}
	if req.OrderID == "" || req.Status == "" {
		return writeError(c, http.StatusBadRequest, CodeMissingFields, "")
	}
	orderID, ok := parseOrderID(string(req.OrderID))
	if !ok {
		return writeError(c, http.StatusBadRequest, CodeMissingFields, "orderId must be a positive integer")
	}

	cmd, err := commands.NewUpdateDeliveryStatusCommand(
		orderID,
		req.Status,
		DriverFrom(c),
		parseAmount(string(req.CollectedAmount)),
		s.image(c, "proof", req.ProofBase64),
	)
	if err != nil {
		status, code := statusUpdateError(err)
		return writeError(c, status, code, "")
	}

	result, err := s.handlers.UpdateStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		status, code := statusUpdateError(err)
		return writeError(c, status, code, "")
	}

	return c.JSON(http.StatusOK, toStatusResponse(result))
}

func toStatusResponse(result commands.UpdateDeliveryStatusResult) statusResponse {
	a := result.Affected
	resp := statusResponse{
		OK:        true,
		OrderID:   result.OrderID.String(),
		Status:    result.Status.String(),
		ProofPath: result.ProofPath,
		Affected: affectedResponse{
			Status:       a.Status,
			Assignment:   a.Assignment,
			PickedUp:     a.PickedUp,
			PaymentStamp: a.PaymentStamp,
			Receipt:      a.Receipt,
			ProofPhoto:   a.ProofPhoto,
			History:      a.History,
			Notification: a.Notification,
			Payment:      a.Payment,
		},
		Current: toCurrentOrder(result.Current),
	}
	if result.DBStatus != nil {
		db := result.DBStatus.String()
		resp.DBStatus = &db
	}
	if result.NoChange {
		resp.Result = resultNoChange
	}
	return resp
}

func toCurrentOrder(state order.State) currentOrderResponse {
	current := currentOrderResponse{
		Type:              state.Type.String(),
		OrderStatus:       state.Status.String(),
		PickedUpAt:        state.PickedUpAt,
		PaymentReceivedAt: state.PaymentReceivedAt,
		PaymentReceivedBy: state.PaymentReceivedBy,
	}
	if state.DriverStatus != nil {
		ds := state.DriverStatus.String()
		current.DriverStatus = &ds
	}
	if state.AssignedDriverID != nil {
		id := state.AssignedDriverID.Int64()
		current.AssignedDriverID = &id
	}
	return current
}
