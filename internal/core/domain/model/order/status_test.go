package order_test

import (
	"fmt"
	"testing"

	"driverapi/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDriverStatus(t *testing.T) {
	t.Run("should accept every allowed status", func(t *testing.T) {
		for _, status := range order.AllDriverStatuses() {
			t.Run(status.String(), func(t *testing.T) {
				parsed, err := order.ParseDriverStatus(status.String())

				require.NoError(t, err)
				assert.Equal(t, status, parsed)
			})
		}
	})

	t.Run("should reject values outside the allowed set", func(t *testing.T) {
		for _, raw := range []string{"banana", "", "Delivered", "picked-up", " accepted"} {
			t.Run(fmt.Sprintf("should reject %q", raw), func(t *testing.T) {
				_, err := order.ParseDriverStatus(raw)

				require.ErrorIs(t, err, order.ErrInvalidDriverStatus)
			})
		}
	})
}

func TestDriverStatus_BackendStatus(t *testing.T) {
	testCases := []struct {
		status   order.DriverStatus
		expected order.BackendStatus
	}{
		{order.Assigned, order.StatusPending},
		{order.Accepted, order.StatusOnTheWay},
		{order.OnTheWay, order.StatusOnTheWay},
		{order.PickedUp, order.StatusProcessing},
		{order.Delivered, order.StatusDelivered},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("should map %s to %s", tc.status, tc.expected), func(t *testing.T) {
			backend, ok := tc.status.BackendStatus()

			assert.True(t, ok)
			assert.Equal(t, tc.expected, backend)
		})
	}

	t.Run("rejected has no backend status", func(t *testing.T) {
		_, ok := order.Rejected.BackendStatus()

		assert.False(t, ok)
	})
}

func TestDriverStatus_AssignsDriver(t *testing.T) {
	assigning := map[order.DriverStatus]bool{
		order.Assigned:  false,
		order.Accepted:  true,
		order.OnTheWay:  true,
		order.PickedUp:  true,
		order.Delivered: true,
		order.Rejected:  false,
	}

	for status, expected := range assigning {
		assert.Equal(t, expected, status.AssignsDriver(), status.String())
	}
}

func TestBackendStatus_DriverStatus(t *testing.T) {
	assert.Equal(t, order.Assigned, order.StatusPending.DriverStatus())
	assert.Equal(t, order.Assigned, order.StatusProcessing.DriverStatus())
	assert.Equal(t, order.Assigned, order.StatusReadyToDeliver.DriverStatus())
	assert.Equal(t, order.OnTheWay, order.StatusOnTheWay.DriverStatus())
	assert.Equal(t, order.Delivered, order.StatusDelivered.DriverStatus())
	assert.Equal(t, order.Rejected, order.StatusCancelled.DriverStatus())
	assert.Equal(t, order.Assigned, order.BackendStatus("Unknown").DriverStatus())
}
