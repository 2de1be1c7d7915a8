package order_test

import (
	"testing"

	"driverapi/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
)

func TestClassifyType(t *testing.T) {
	testCases := []struct {
		name       string
		raw        string
		hasAddress bool
		expected   order.Type
	}{
		{name: "plain pickup", raw: "pickup", expected: order.TypePickup},
		{name: "mixed case with dash", raw: "Pick-Up", expected: order.TypePickup},
		{name: "spaced and padded", raw: "  PICK UP ", expected: order.TypePickup},
		{name: "pickup even with address", raw: "pickup", hasAddress: true, expected: order.TypePickup},
		{name: "delivery", raw: "Delivery", expected: order.TypeDelivery},
		{name: "unknown non empty type is deliverable", raw: "dine-in", expected: order.TypeDelivery},
		{name: "empty with address", raw: "", hasAddress: true, expected: order.TypeDelivery},
		{name: "empty without address", raw: "", expected: order.TypeUnspecified},
		{name: "digits only", raw: "123", expected: order.TypeUnspecified},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, order.ClassifyType(tc.raw, tc.hasAddress))
		})
	}
}

func TestNormalizeType(t *testing.T) {
	assert.Equal(t, "pickup", order.NormalizeType("Pick_Up!"))
	assert.Equal(t, "", order.NormalizeType("  -- "))
}
