package ports

import (
	"context"
	"time"
)

// OrderStatusChanged is emitted after a status update has been committed.
type OrderStatusChanged struct {
	OrderID      int64     `json:"orderId"`
	DriverID     int64     `json:"driverId"`
	DriverStatus string    `json:"driverStatus"`
	OrderStatus  string    `json:"orderStatus,omitempty"`
	OccurredAt   time.Time `json:"occurredAt"`
}

type EventPublisher interface {
	PublishOrderStatusChanged(ctx context.Context, event OrderStatusChanged) error
}
