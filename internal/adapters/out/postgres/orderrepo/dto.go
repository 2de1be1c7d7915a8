// Package orderrepo persists the driver-facing fields of the shared orders table.
// The table is owned by the ordering system, so this package reads and updates
// rows but never creates or migrates the table.
package orderrepo

import (
	"strings"
	"time"

	"driverapi/internal/adapters/out/postgres/schema"
	"driverapi/internal/core/domain/model/kernel"
	"driverapi/internal/core/domain/model/order"

	"github.com/lib/pq"
)

// orderRow is one orders row joined with address presence.
// Optional columns the schema lacks are selected as NULL.
type orderRow struct {
	OrderID           int64
	OrderStatus       string
	OrderType         *string
	DriverStatus      *string
	AssignedDriverID  *int64
	PickedUpAt        *time.Time
	PaymentReceivedAt *time.Time
	PaymentReceivedBy *string
	HasAddress        bool
}

// selectList builds the column list for the capabilities, quoting every identifier.
func selectList(caps schema.Capabilities) string {
	cols := []string{
		"o.order_id",
		"o.order_status",
		optional(caps.Orders.OrderType, "order_type"),
		optional(caps.Orders.DriverStatus, "driver_status"),
		optional(caps.Orders.AssignedDriverID, "assigned_driver_id"),
		optional(caps.Orders.PickedUpAt, "picked_up_at"),
		optional(caps.Orders.PaymentReceivedAt, "payment_received_at"),
		optional(caps.Orders.PaymentReceivedBy, "payment_received_by"),
	}

	if caps.Address.Table {
		cols = append(cols, "EXISTS (SELECT 1 FROM order_address a WHERE a.order_id = o.order_id) AS has_address")
	} else {
		cols = append(cols, "FALSE AS has_address")
	}

	return strings.Join(cols, ", ")
}

func optional(present bool, column string) string {
	quoted := pq.QuoteIdentifier(column)
	if present {
		return "o." + quoted
	}
	return "NULL AS " + quoted
}

// toDomain classifies the order and restores it.
func toDomain(row orderRow) (*order.Order, error) {
	state := order.State{
		Type:              order.ClassifyType(deref(row.OrderType), row.HasAddress),
		Status:            order.BackendStatus(row.OrderStatus),
		PickedUpAt:        row.PickedUpAt,
		PaymentReceivedAt: row.PaymentReceivedAt,
		PaymentReceivedBy: row.PaymentReceivedBy,
	}

	if row.DriverStatus != nil && *row.DriverStatus != "" {
		ds := order.DriverStatus(*row.DriverStatus)
		state.DriverStatus = &ds
	}

	if row.AssignedDriverID != nil {
		id, err := kernel.NewID(*row.AssignedDriverID)
		if err != nil {
			return nil, err
		}
		state.AssignedDriverID = &id
	}

	return order.RestoreOrder(kernel.ID(row.OrderID), state)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
