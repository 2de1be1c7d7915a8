package payment_test

import (
	"testing"

	"driverapi/internal/core/domain/model/kernel"
	"driverapi/internal/core/domain/model/payment"

	"github.com/stretchr/testify/assert"
)

func TestIsCashOnDeliveryMethod(t *testing.T) {
	for _, method := range []string{"COD", "cod", "Cash on Delivery", "cash-on-delivery", ""} {
		assert.True(t, payment.IsCashOnDeliveryMethod(method), method)
	}
	for _, method := range []string{"card", "GCash", "paypal"} {
		assert.False(t, payment.IsCashOnDeliveryMethod(method), method)
	}
}

func TestPayment_CollectCash(t *testing.T) {
	amount := kernel.MoneyFromCents(2500)

	t.Run("cash on delivery becomes paid with collected amount", func(t *testing.T) {
		p := payment.RestorePayment(5, 1, "COD", payment.StatusUnpaid, kernel.MoneyFromCents(2000))

		changed := p.CollectCash(amount)

		assert.True(t, changed)
		assert.Equal(t, kernel.ID(5), p.ID())
		assert.Equal(t, payment.StatusPaid, p.Status())
		assert.Equal(t, int64(2500), p.Amount().Cents())
	})

	t.Run("unset method is treated as cash on delivery", func(t *testing.T) {
		p := payment.RestorePayment(1, 1, "", payment.StatusUnpaid, kernel.Money{})

		assert.True(t, p.CollectCash(amount))
	})

	t.Run("card payment is left untouched", func(t *testing.T) {
		p := payment.RestorePayment(1, 1, "card", payment.StatusUnpaid, kernel.MoneyFromCents(1000))

		changed := p.CollectCash(amount)

		assert.False(t, changed)
		assert.Equal(t, payment.StatusUnpaid, p.Status())
		assert.Equal(t, int64(1000), p.Amount().Cents())
	})

	t.Run("zero amount changes nothing", func(t *testing.T) {
		p := payment.RestorePayment(1, 1, "COD", payment.StatusUnpaid, kernel.Money{})

		assert.False(t, p.CollectCash(kernel.Money{}))
		assert.Equal(t, payment.StatusUnpaid, p.Status())
	})
}
