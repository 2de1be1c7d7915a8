package services

import (
	"fmt"

	"driverapi/internal/core/domain/model/driver"
	"driverapi/internal/core/domain/model/kernel"
)

const (
	NotificationTypePayment  = "payment"
	NotificationTitleConfirm = "Payment Confirmed"
)

// Notification is the admin-facing message created when delivery is confirmed.
type Notification struct {
	Type    string
	Title   string
	Message string
}

// DeliveryConfirmation builds the records a delivered report leaves behind.
type DeliveryConfirmation struct{}

func NewDeliveryConfirmation() DeliveryConfirmation {
	return DeliveryConfirmation{}
}

func (DeliveryConfirmation) Notification(d *driver.Driver, orderID kernel.ID) Notification {
	return Notification{
		Type:    NotificationTypePayment,
		Title:   NotificationTitleConfirm,
		Message: fmt.Sprintf("Driver %s confirmed payment for Order #%d", d.DisplayName(), orderID.Int64()),
	}
}
