package guard_test

import (
	"errors"
	"testing"

	"fulfilment/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("constructed_guard_accepts_any_error", func(t *testing.T) {
		// When
		g := guard.NewConstructorGuard()

		// Then
		require.NoError(t, g.Validate(errors.New("warehouse not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expectedError := errors.New("fulfillment not constructed")

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
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

func TestConstructorGuard_EmbeddedInValueObject(t *testing.T) {
	errQuotaNotConstructed := errors.New("Quota must be created via newQuota")

	type quota struct {
		limit int
		guard guard.ConstructorGuard
	}

	newQuota := func(limit int) (quota, error) {
		if limit < 1 {
			return quota{}, errors.New("limit must be positive")
		}
		return quota{limit: limit, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructor_built_value_validates", func(t *testing.T) {
		// When
		q, err := newQuota(3)

		// Then
		require.NoError(t, err)
		require.NoError(t, q.guard.Validate(errQuotaNotConstructed))
		assert.Equal(t, 3, q.limit)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		// Given
		var q quota

		// Then
		assert.Equal(t, errQuotaNotConstructed, q.guard.Validate(errQuotaNotConstructed))
	})

	t.Run("constructor_rejects_invalid_limit", func(t *testing.T) {
		// When
		_, err := newQuota(0)

		// Then
		require.Error(t, err)
	})
}
