package services_test

import (
	"testing"

	"driverapi/internal/core/domain/model/order"
	"driverapi/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
)

func TestStatusPresenter_Present(t *testing.T) {
	onTheWay := order.OnTheWay
	pickedUp := order.PickedUp
	delivered := order.Delivered

	testCases := []struct {
		name            string
		state           order.State
		expectedStatus  order.DriverStatus
		expectedDisplay string
	}{
		{
			name:            "untouched pending order",
			state:           order.State{Status: order.StatusPending},
			expectedStatus:  order.Assigned,
			expectedDisplay: "Pending",
		},
		{
			name:            "processing shows preparing",
			state:           order.State{Status: order.StatusProcessing},
			expectedStatus:  order.Assigned,
			expectedDisplay: services.DisplayPreparing,
		},
		{
			name:            "picked up by driver is out for delivery",
			state:           order.State{Status: order.StatusProcessing, DriverStatus: &pickedUp},
			expectedStatus:  order.PickedUp,
			expectedDisplay: services.DisplayOutForDelivery,
		},
		{
			name:            "backend on the way",
			state:           order.State{Status: order.StatusOnTheWay},
			expectedStatus:  order.OnTheWay,
			expectedDisplay: services.DisplayOutForDelivery,
		},
		{
			name:            "driver on the way",
			state:           order.State{Status: order.StatusPending, DriverStatus: &onTheWay},
			expectedStatus:  order.OnTheWay,
			expectedDisplay: services.DisplayOutForDelivery,
		},
		{
			name:            "ready to deliver",
			state:           order.State{Status: order.StatusReadyToDeliver},
			expectedStatus:  order.Assigned,
			expectedDisplay: "Ready to deliver",
		},
		{
			name:            "delivered",
			state:           order.State{Status: order.StatusDelivered, DriverStatus: &delivered},
			expectedStatus:  order.Delivered,
			expectedDisplay: "Delivered",
		},
	}

	presenter := services.NewStatusPresenter()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			o, err := order.RestoreOrder(1, tc.state)
			assert.NoError(t, err)

			p := presenter.Present(o)

			assert.Equal(t, tc.expectedStatus, p.Status)
			assert.Equal(t, tc.expectedDisplay, p.DisplayStatus)
		})
	}
}
