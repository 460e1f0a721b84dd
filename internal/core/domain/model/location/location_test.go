package location_test

import (
	"testing"

	"fulfilment/internal/core/domain/model/location"
	"fulfilment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocation(t *testing.T) {
	t.Run("should create location with limits", func(t *testing.T) {
		loc, err := location.NewLocation(" AMSTERDAM-001 ", 5, 100)

		require.NoError(t, err)
		assert.Equal(t, "AMSTERDAM-001", loc.Identification())
		assert.Equal(t, 5, loc.MaxNumberOfWarehouses())
		assert.Equal(t, 100, loc.MaxCapacity())
		assert.False(t, loc.IsUnknown())
	})

	t.Run("should accept zero limits", func(t *testing.T) {
		loc, err := location.NewLocation("CLOSED-001", 0, 0)

		require.NoError(t, err)
		assert.Equal(t, 0, loc.MaxNumberOfWarehouses())
	})

	t.Run("should reject blank identification", func(t *testing.T) {
		_, err := location.NewLocation("  ", 1, 1)

		require.ErrorIs(t, err, location.ErrIdentificationIsRequired)
	})

	t.Run("should reject negative limits", func(t *testing.T) {
		_, err := location.NewLocation("ZWOLLE-001", -1, 40)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = location.NewLocation("ZWOLLE-001", 1, -40)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestUnknown(t *testing.T) {
	loc := location.Unknown()

	assert.True(t, loc.IsUnknown())
	assert.Empty(t, loc.Identification())
	assert.Zero(t, loc.MaxNumberOfWarehouses())
	assert.Zero(t, loc.MaxCapacity())
	assert.Equal(t, location.Location{}, loc)
}
