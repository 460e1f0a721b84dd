package kernel_test

import (
	"strings"
	"testing"

	"fulfilment/internal/core/domain/model/kernel"
	"fulfilment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBusinessUnitCode(t *testing.T) {
	t.Run("should trim surrounding whitespace", func(t *testing.T) {
		code, err := kernel.NewBusinessUnitCode("  MWH.001 ")

		require.NoError(t, err)
		assert.Equal(t, "MWH.001", code.String())
		assert.NoError(t, code.Validate())
	})

	t.Run("should reject blank values", func(t *testing.T) {
		for _, raw := range []string{"", "   ", "\t\n"} {
			_, err := kernel.NewBusinessUnitCode(raw)

			require.ErrorIs(t, err, kernel.ErrBusinessUnitCodeIsRequired)
			require.ErrorIs(t, err, errs.ErrValueIsRequired)
		}
	})

	t.Run("should reject overlong values", func(t *testing.T) {
		_, err := kernel.NewBusinessUnitCode(strings.Repeat("W", kernel.MaxBusinessUnitCodeLength+1))

		require.ErrorIs(t, err, kernel.ErrBusinessUnitCodeIsTooLong)
	})

	t.Run("should accept maximum length", func(t *testing.T) {
		_, err := kernel.NewBusinessUnitCode(strings.Repeat("W", kernel.MaxBusinessUnitCodeLength))

		require.NoError(t, err)
	})
}

func TestBusinessUnitCode_IsEqual(t *testing.T) {
	a, _ := kernel.NewBusinessUnitCode("MWH.001")
	b, _ := kernel.NewBusinessUnitCode(" MWH.001")
	c, _ := kernel.NewBusinessUnitCode("MWH.012")

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

func TestBusinessUnitCode_Validate(t *testing.T) {
	var code kernel.BusinessUnitCode

	assert.Equal(t, kernel.ErrBusinessUnitCodeIsRequired, code.Validate())
}
