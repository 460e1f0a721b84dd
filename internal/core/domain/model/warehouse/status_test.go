package warehouse_test

import (
	"testing"

	"fulfilment/internal/core/domain/model/warehouse"
	"fulfilment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	assert.Equal(t, 0, int(warehouse.Unknown))
	assert.Equal(t, 1, int(warehouse.Active))
	assert.Equal(t, 2, int(warehouse.Archived))
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate known statuses", func(t *testing.T) {
		require.NoError(t, warehouse.Active.Validate())
		require.NoError(t, warehouse.Archived.Validate())
	})

	t.Run("should reject Unknown and out of range values", func(t *testing.T) {
		for _, s := range []warehouse.Status{warehouse.Unknown, warehouse.Status(7), warehouse.Status(-1)} {
			err := s.Validate()

			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Contains(t, err.Error(), "is not a valid status")
		}
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Active", warehouse.Active.String())
	assert.Equal(t, "Archived", warehouse.Archived.String())
	assert.Equal(t, "Unknown", warehouse.Unknown.String())
	assert.Equal(t, "Unknown", warehouse.Status(42).String())
}

func TestStatus_Archive(t *testing.T) {
	t.Run("should move Active to Archived", func(t *testing.T) {
		next, err := warehouse.Active.Archive()

		require.NoError(t, err)
		assert.Equal(t, warehouse.Archived, next)
	})

	t.Run("should reject archiving twice", func(t *testing.T) {
		_, err := warehouse.Archived.Archive()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Archived is not a valid status to archive")
	})

	t.Run("should reject Unknown", func(t *testing.T) {
		_, err := warehouse.Unknown.Archive()

		require.Error(t, err)
	})
}
