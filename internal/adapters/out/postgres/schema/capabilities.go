// Package schema describes which optional tables and columns the shared
// database has. Capabilities are probed once at startup (and on a schedule)
// instead of on every request.
package schema

import (
	"fmt"
	"strings"
)

// Version changes whenever a field is added to Capabilities.
const Version = 1

type Capabilities struct {
	Orders  OrderColumns
	Address AddressColumns
	Drivers DriverColumns
	Listing ListingTables
}

// OrderColumns are the optional columns of orders.
type OrderColumns struct {
	OrderType         bool
	ContactNumber     bool
	CustomerID        bool
	DriverStatus      bool
	AssignedDriverID  bool
	PickedUpAt        bool
	PaymentReceivedAt bool
	PaymentReceivedBy bool
}

// AddressColumns describe order_address. Table is false when the table is missing.
type AddressColumns struct {
	Table    bool
	Street   bool
	Barangay bool
	City     bool
	Lat      bool
	Lng      bool
}

type DriverColumns struct {
	TokenExpires bool
	Status       bool
	CreatedAt    bool
	LastLogin    bool
}

// ListingTables are the tables the order listing joins when present.
type ListingTables struct {
	OrderItems bool
	Products   bool
	ItemAddons bool
	Customers  bool
}

// Full is a schema with every optional table and column present.
func Full() Capabilities {
	return Capabilities{
		Orders: OrderColumns{
			OrderType:         true,
			ContactNumber:     true,
			CustomerID:        true,
			DriverStatus:      true,
			AssignedDriverID:  true,
			PickedUpAt:        true,
			PaymentReceivedAt: true,
			PaymentReceivedBy: true,
		},
		Address: AddressColumns{Table: true, Street: true, Barangay: true, City: true, Lat: true, Lng: true},
		Drivers: DriverColumns{TokenExpires: true, Status: true, CreatedAt: true, LastLogin: true},
		Listing: ListingTables{OrderItems: true, Products: true, ItemAddons: true, Customers: true},
	}
}

// HasAddressText reports whether any address text column can be read.
func (a AddressColumns) HasAddressText() bool {
	return a.Table && (a.Street || a.Barangay || a.City)
}

// HasCoordinates reports whether both coordinate columns can be read.
func (a AddressColumns) HasCoordinates() bool {
	return a.Table && a.Lat && a.Lng
}

// HasItems reports whether order items can be listed with product names.
func (l ListingTables) HasItems() bool {
	return l.OrderItems && l.Products
}

// Fingerprint is a compact, stable representation used to log schema changes.
func (c Capabilities) Fingerprint() string {
	flags := []bool{
		c.Orders.OrderType, c.Orders.ContactNumber, c.Orders.CustomerID, c.Orders.DriverStatus,
		c.Orders.AssignedDriverID, c.Orders.PickedUpAt, c.Orders.PaymentReceivedAt, c.Orders.PaymentReceivedBy,
		c.Address.Table, c.Address.Street, c.Address.Barangay, c.Address.City, c.Address.Lat, c.Address.Lng,
		c.Drivers.TokenExpires, c.Drivers.Status, c.Drivers.CreatedAt, c.Drivers.LastLogin,
		c.Listing.OrderItems, c.Listing.Products, c.Listing.ItemAddons, c.Listing.Customers,
	}

	var b strings.Builder
	for _, f := range flags {
		if f {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return fmt.Sprintf("v%d:%s", Version, b.String())
}
