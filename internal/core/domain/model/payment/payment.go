// Package payment models order payments and the driver-side payment receipt.
package payment

import (
	"strings"

	"driverapi/internal/core/domain/model/kernel"
)

// Status is the payment_status column value.
type Status string

const (
	StatusPaid   Status = "Paid"
	StatusUnpaid Status = "Unpaid"
)

// MethodCOD is the canonical cash-on-delivery method value.
const MethodCOD = "COD"

// ReceiptStatusVerified marks receipts created by the driver app.
const ReceiptStatusVerified = "verified"

// Payment is the payment row associated to an order.
type Payment struct {
	id      kernel.ID
	orderID kernel.ID
	method  string
	status  Status
	amount  kernel.Money
}

func RestorePayment(id kernel.ID, orderID kernel.ID, method string, status Status, amount kernel.Money) *Payment {
	return &Payment{
		id:      id,
		orderID: orderID,
		method:  method,
		status:  status,
		amount:  amount,
	}
}

func (p *Payment) ID() kernel.ID {
	return p.id
}

func (p *Payment) OrderID() kernel.ID {
	return p.orderID
}

func (p *Payment) Method() string {
	return p.method
}

func (p *Payment) Status() Status {
	return p.status
}

func (p *Payment) Amount() kernel.Money {
	return p.amount
}

// IsCashOnDelivery treats an unset method as cash on delivery.
func (p *Payment) IsCashOnDelivery() bool {
	return IsCashOnDeliveryMethod(p.method)
}

// CollectCash records cash collected by the driver. It only applies to positive
// amounts on cash-on-delivery (or unset) payments and reports whether the
// payment changed; other methods are never overwritten.
func (p *Payment) CollectCash(amount kernel.Money) bool {
	if !amount.IsPositive() || !p.IsCashOnDelivery() {
		return false
	}

	p.status = StatusPaid
	p.amount = amount
	return true
}

// IsCashOnDeliveryMethod accepts "COD", "cod", "Cash on Delivery" and an empty method.
func IsCashOnDeliveryMethod(method string) bool {
	var b strings.Builder
	for _, r := range strings.ToLower(method) {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}

	switch b.String() {
	case "", "cod", "cashondelivery":
		return true
	default:
		return false
	}
}
