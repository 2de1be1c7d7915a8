package guard_test

import (
	"errors"
	"testing"

	"driverapi/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// When
		err := g.Validate(errors.New("not constructed"))

		// Then
		require.NoError(t, err)
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expectedError := errors.New("command not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
	})
}

// TestConstructorGuardUsageExample shows the guard embedded in a command-like value.
func TestConstructorGuardUsageExample(t *testing.T) {
	type remittance struct {
		amount float64
		guard  guard.ConstructorGuard
	}

	errRemittanceNotConstructed := errors.New("remittance must be created via newRemittance")

	newRemittance := func(amount float64) (remittance, error) {
		if amount <= 0 {
			return remittance{}, errors.New("amount must be positive")
		}
		return remittance{amount: amount, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		r, err := newRemittance(150)

		require.NoError(t, err)
		require.NoError(t, r.guard.Validate(errRemittanceNotConstructed))
		assert.InDelta(t, 150.0, r.amount, 0.001)
	})

	t.Run("zero_value_construction_validation", func(t *testing.T) {
		var r remittance

		err := r.guard.Validate(errRemittanceNotConstructed)

		require.ErrorIs(t, err, errRemittanceNotConstructed)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		_, err := newRemittance(0)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "amount must be positive")
	})
}

// TestConstructorGuardConcurrency verifies that ConstructorGuard is safe for concurrent use.
func TestConstructorGuardConcurrency(t *testing.T) {
	g := guard.NewConstructorGuard()
	validationError := errors.New("not constructed")

	done := make(chan bool)
	for range 50 {
		go func() {
			for range 500 {
				assert.NoError(t, g.Validate(validationError))
			}
			done <- true
		}()
	}

	for range 50 {
		<-done
	}
}

func BenchmarkConstructorGuard(b *testing.B) {
	b.Run("Validate_Success", func(b *testing.B) {
		g := guard.NewConstructorGuard()
		err := errors.New("not constructed")
		b.ResetTimer()
		for range b.N {
			_ = g.Validate(err)
		}
	})
}
