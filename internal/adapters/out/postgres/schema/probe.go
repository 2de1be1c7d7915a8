package schema

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Probe inspects the live database through the gorm migrator.
// orders and drivers are required; everything else is optional.
func Probe(ctx context.Context, db *gorm.DB) (Capabilities, error) {
	m := db.WithContext(ctx).Migrator()

	for _, table := range []string{"orders", "drivers"} {
		if !m.HasTable(table) {
			return Capabilities{}, fmt.Errorf("required table %q is missing", table)
		}
	}

	var c Capabilities
	c.Orders = OrderColumns{
		OrderType:         m.HasColumn("orders", "order_type"),
		ContactNumber:     m.HasColumn("orders", "contact_number"),
		CustomerID:        m.HasColumn("orders", "customer_id"),
		DriverStatus:      m.HasColumn("orders", "driver_status"),
		AssignedDriverID:  m.HasColumn("orders", "assigned_driver_id"),
		PickedUpAt:        m.HasColumn("orders", "picked_up_at"),
		PaymentReceivedAt: m.HasColumn("orders", "payment_received_at"),
		PaymentReceivedBy: m.HasColumn("orders", "payment_received_by"),
	}

	if m.HasTable("order_address") {
		c.Address = AddressColumns{
			Table:    true,
			Street:   m.HasColumn("order_address", "street"),
			Barangay: m.HasColumn("order_address", "barangay"),
			City:     m.HasColumn("order_address", "city"),
			Lat:      m.HasColumn("order_address", "customer_lat"),
			Lng:      m.HasColumn("order_address", "customer_lng"),
		}
	}

	c.Drivers = DriverColumns{
		TokenExpires: m.HasColumn("drivers", "token_expires"),
		Status:       m.HasColumn("drivers", "status"),
		CreatedAt:    m.HasColumn("drivers", "created_at"),
		LastLogin:    m.HasColumn("drivers", "last_login"),
	}

	c.Listing = ListingTables{
		OrderItems: m.HasTable("order_item"),
		Products:   m.HasTable("product"),
		ItemAddons: m.HasTable("order_item_addons"),
		Customers:  m.HasTable("customer"),
	}

	return c, nil
}
