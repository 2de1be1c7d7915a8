package http

import (
	"net/http"
	"strconv"
	"time"

	"driverapi/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

type addonResponse struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type itemResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    float64         `json:"price"`
	Addons   []addonResponse `json:"addons"`
}

type orderResponse struct {
	ID               string         `json:"id"`
	CustomerName     *string        `json:"customerName"`
	CustomerPhone    *string        `json:"customerPhone"`
	DeliveryAddress  string         `json:"deliveryAddress"`
	Lat              *float64       `json:"lat"`
	Lng              *float64       `json:"lng"`
	Items            []itemResponse `json:"items"`
	TotalAmount      float64        `json:"totalAmount"`
	EstimatedTime    string         `json:"estimatedTime"`
	Status           string         `json:"status"`
	DriverStatus     *string        `json:"driverStatus"`
	DisplayStatus    string         `json:"displayStatus"`
	PaymentStatus    string         `json:"paymentStatus"`
	AssignedDriverID *int64         `json:"assignedDriverId"`
	CreatedAt        time.Time      `json:"createdAt"`
	PickedUpAt       *time.Time     `json:"pickedUpAt"`
	DeliveredAt      *time.Time     `json:"deliveredAt"`
}

type ordersResponse struct {
	Orders []orderResponse `json:"orders"`
}

// GetOrders handles GET /api/v1/driver/orders?limit=.
// An unparsable limit falls back to the default.
func (s *Server) GetOrders(c echo.Context) error {
	var limit *int
	if err := runtime.BindQueryParameter("form", true, false, "limit", c.QueryParams(), &limit); err != nil {
		limit = nil
	}

	orders, err := s.handlers.ActiveOrders.Handle(c.Request().Context(), queries.NewGetActiveOrdersQuery(limit))
	if err != nil {
		s.logger.Error("failed to list orders", "error", err)
		return writeError(c, http.StatusInternalServerError, CodeServerError, "failed to fetch orders")
	}

	resp := ordersResponse{Orders: make([]orderResponse, 0, len(orders))}
	for _, o := range orders {
		resp.Orders = append(resp.Orders, toOrderResponse(o))
	}

	return c.JSON(http.StatusOK, resp)
}

func toOrderResponse(o queries.GetActiveOrdersQueryResponse) orderResponse {
	items := make([]itemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		addons := make([]addonResponse, 0, len(it.Addons))
		for _, a := range it.Addons {
			addons = append(addons, addonResponse(a))
		}
		items = append(items, itemResponse{
			ID:       strconv.FormatInt(it.ID, 10),
			Name:     it.Name,
			Quantity: it.Quantity,
			Price:    it.Price,
			Addons:   addons,
		})
	}

	resp := orderResponse{
		ID:              o.ID.String(),
		CustomerName:    o.CustomerName,
		CustomerPhone:   o.CustomerPhone,
		DeliveryAddress: o.DeliveryAddress,
		Lat:             o.Lat,
		Lng:             o.Lng,
		Items:           items,
		TotalAmount:     o.TotalAmount,
		Status:          o.Status.String(),
		DisplayStatus:   o.DisplayStatus,
		PaymentStatus:   o.PaymentStatus,
		CreatedAt:       o.CreatedAt,
		PickedUpAt:      o.PickedUpAt,
		DeliveredAt:     o.DeliveredAt,
	}
	if o.DriverStatus != nil {
		ds := o.DriverStatus.String()
		resp.DriverStatus = &ds
	}
	if o.AssignedDriverID != nil {
		id := o.AssignedDriverID.Int64()
		resp.AssignedDriverID = &id
	}
	return resp
}
