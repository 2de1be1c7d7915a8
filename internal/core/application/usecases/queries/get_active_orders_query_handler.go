package queries

import (
	"context"
	"strings"
	"time"

	"driverapi/internal/adapters/out/postgres/schema"
	"driverapi/internal/core/domain/model/kernel"
	"driverapi/internal/core/domain/model/order"
	"driverapi/internal/core/domain/services"

	"gorm.io/gorm"
)

// CapabilitiesSource returns the schema capabilities probed at startup.
// *schema.Registry satisfies it.
type CapabilitiesSource interface {
	Load() schema.Capabilities
}

var listedStatuses = []string{
	order.StatusPending.String(),
	order.StatusProcessing.String(),
	order.StatusReadyToDeliver.String(),
	order.StatusOnTheWay.String(),
	order.StatusDelivered.String(),
}

type activeOrderRow struct {
	OrderID           int64
	OrderDate         time.Time
	OrderAmount       float64
	ContactNumber     *string
	OrderStatus       string
	DriverStatus      *string
	AssignedDriverID  *int64
	PickedUpAt        *time.Time
	PaymentReceivedAt *time.Time
	CustomerLat       *float64
	CustomerLng       *float64
	Street            *string
	Barangay          *string
	City              *string
	CustomerName      *string
}

type activeItemRow struct {
	OrderID     int64
	OrderItemID int64
	ProductName string
	Quantity    int
	Price       float64
}

type activeAddonRow struct {
	OrderID     int64
	OrderItemID int64
	AddonName   string
	AddonPrice  float64
	Quantity    int
}

// GetActiveOrdersQueryHandler lists orders in a listed status that carry any
// contact or address information, newest first. The statement is built from
// the schema capabilities: absent columns come back as NULL and absent
// tables are not joined.
type GetActiveOrdersQueryHandler struct {
	db        *gorm.DB
	caps      CapabilitiesSource
	presenter services.StatusPresenter
}

func NewGetActiveOrdersQueryHandler(db *gorm.DB, caps CapabilitiesSource) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{
		db:        db,
		caps:      caps,
		presenter: services.NewStatusPresenter(),
	}
}

func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	caps := h.caps.Load()

	var rows []activeOrderRow
	statement, args := activeOrdersStatement(caps, query.Limit())
	if err := h.db.WithContext(ctx).Raw(statement, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}

	orders := make([]GetActiveOrdersQueryResponse, 0, len(rows))
	if len(rows) == 0 {
		return orders, nil
	}

	items, err := h.items(ctx, caps, rows)
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		resp, err := h.toResponse(row)
		if err != nil {
			return nil, err
		}
		resp.Items = items[row.OrderID]
		if resp.Items == nil {
			resp.Items = []ActiveOrderItem{}
		}
		orders = append(orders, resp)
	}

	return orders, nil
}

func (h GetActiveOrdersQueryHandler) toResponse(row activeOrderRow) (GetActiveOrdersQueryResponse, error) {
	state := order.State{
		Status:            order.BackendStatus(row.OrderStatus),
		PickedUpAt:        row.PickedUpAt,
		PaymentReceivedAt: row.PaymentReceivedAt,
	}
	if row.DriverStatus != nil && *row.DriverStatus != "" {
		ds := order.DriverStatus(*row.DriverStatus)
		state.DriverStatus = &ds
	}

	o, err := order.RestoreOrder(kernel.ID(row.OrderID), state)
	if err != nil {
		return GetActiveOrdersQueryResponse{}, err
	}
	presented := h.presenter.Present(o)

	resp := GetActiveOrdersQueryResponse{
		ID:              o.ID(),
		CustomerName:    row.CustomerName,
		CustomerPhone:   row.ContactNumber,
		DeliveryAddress: joinAddress(row.Street, row.Barangay, row.City),
		Lat:             row.CustomerLat,
		Lng:             row.CustomerLng,
		TotalAmount:     row.OrderAmount,
		Status:          presented.Status,
		DriverStatus:    presented.DriverStatus,
		DisplayStatus:   presented.DisplayStatus,
		PaymentStatus:   PaymentStatusUnpaid,
		CreatedAt:       row.OrderDate,
		PickedUpAt:      row.PickedUpAt,
		DeliveredAt:     row.PaymentReceivedAt,
	}
	if o.IsPaymentReceived() {
		resp.PaymentStatus = PaymentStatusPaid
	}
	if row.AssignedDriverID != nil {
		id := kernel.ID(*row.AssignedDriverID)
		resp.AssignedDriverID = &id
	}

	return resp, nil
}

// items loads line items and their addons for all listed orders in two statements.
func (h GetActiveOrdersQueryHandler) items(
	ctx context.Context,
	caps schema.Capabilities,
	rows []activeOrderRow,
) (map[int64][]ActiveOrderItem, error) {
	result := make(map[int64][]ActiveOrderItem, len(rows))
	if !caps.Listing.HasItems() {
		return result, nil
	}

	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.OrderID)
	}

	var itemRows []activeItemRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT oi.order_id, oi.order_item_id, p.product_name, oi.quantity, oi.price
		FROM order_item oi
		JOIN product p ON p.product_id = oi.product_id
		WHERE oi.order_id IN ?
		ORDER BY oi.order_id, oi.order_item_id
	`, ids).Scan(&itemRows).Error
	if err != nil {
		return nil, err
	}

	addons := make(map[int64][]ActiveOrderAddon)
	if caps.Listing.ItemAddons {
		var addonRows []activeAddonRow
		err = h.db.WithContext(ctx).Raw(`
			SELECT order_id, order_item_id, addon_name, addon_price, quantity
			FROM order_item_addons
			WHERE order_id IN ?
			ORDER BY addon_id
		`, ids).Scan(&addonRows).Error
		if err != nil {
			return nil, err
		}
		for _, a := range addonRows {
			addons[a.OrderItemID] = append(addons[a.OrderItemID], ActiveOrderAddon{
				Name:     a.AddonName,
				Price:    a.AddonPrice,
				Quantity: a.Quantity,
			})
		}
	}

	for _, it := range itemRows {
		itemAddons := addons[it.OrderItemID]
		if itemAddons == nil {
			itemAddons = []ActiveOrderAddon{}
		}
		result[it.OrderID] = append(result[it.OrderID], ActiveOrderItem{
			ID:       it.OrderItemID,
			Name:     it.ProductName,
			Quantity: it.Quantity,
			Price:    it.Price,
			Addons:   itemAddons,
		})
	}

	return result, nil
}

func activeOrdersStatement(caps schema.Capabilities, limit int) (string, []any) {
	o := caps.Orders
	a := caps.Address
	withAddress := a.Table
	withCustomer := o.CustomerID && caps.Listing.Customers

	cols := []string{
		"o.order_id",
		"o.order_date",
		"o.order_amount",
		column(o.ContactNumber, "o", "contact_number"),
		"o.order_status",
		column(o.DriverStatus, "o", "driver_status"),
		column(o.AssignedDriverID, "o", "assigned_driver_id"),
		column(o.PickedUpAt, "o", "picked_up_at"),
		column(o.PaymentReceivedAt, "o", "payment_received_at"),
		column(withAddress && a.Lat, "addr", "customer_lat"),
		column(withAddress && a.Lng, "addr", "customer_lng"),
		column(withAddress && a.Street, "addr", "street"),
		column(withAddress && a.Barangay, "addr", "barangay"),
		column(withAddress && a.City, "addr", "city"),
		column(withCustomer, "c", "customer_name"),
	}

	var reachable []string
	if withAddress && a.HasCoordinates() {
		reachable = append(reachable, "(addr.customer_lat IS NOT NULL AND addr.customer_lng IS NOT NULL)")
	}
	if o.ContactNumber {
		reachable = append(reachable, "o.contact_number IS NOT NULL")
	}
	if withAddress {
		var parts []string
		for _, c := range []struct {
			present bool
			name    string
		}{{a.Street, "street"}, {a.Barangay, "barangay"}, {a.City, "city"}} {
			if c.present {
				parts = append(parts, "addr."+c.name+" IS NOT NULL")
			}
		}
		if len(parts) > 0 {
			reachable = append(reachable, "("+strings.Join(parts, " OR ")+")")
		}
	}

	var b strings.Builder
	b.WriteString("SELECT " + strings.Join(cols, ", ") + " FROM orders o")
	if withAddress {
		b.WriteString(" LEFT JOIN order_address addr ON addr.order_id = o.order_id")
	}
	if withCustomer {
		b.WriteString(" LEFT JOIN customer c ON c.customer_id = o.customer_id")
	}
	b.WriteString(" WHERE o.order_status IN ?")
	if len(reachable) > 0 {
		b.WriteString(" AND (" + strings.Join(reachable, " OR ") + ")")
	}
	b.WriteString(" ORDER BY o.order_date DESC, o.order_id DESC LIMIT ?")

	return b.String(), []any{listedStatuses, limit}
}

func column(present bool, table, name string) string {
	if present {
		return table + "." + name
	}
	return "NULL AS " + name
}

func joinAddress(parts ...*string) string {
	var nonEmpty []string
	for _, p := range parts {
		if p != nil && strings.TrimSpace(*p) != "" {
			nonEmpty = append(nonEmpty, strings.TrimSpace(*p))
		}
	}
	return strings.Join(nonEmpty, ", ")
}
