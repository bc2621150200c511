package kernel_test

import (
	"testing"

	"pizzahome/internal/core/domain/model/kernel"
	"pizzahome/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPoint(t *testing.T) {
	t.Run("valid_coordinates", func(t *testing.T) {
		p, err := kernel.NewGeoPoint(33.5651, 73.0169)

		require.NoError(t, err)
		assert.Equal(t, 33.5651, p.Lat())
		assert.Equal(t, 73.0169, p.Lng())
		require.NoError(t, p.Validate())
	})

	t.Run("boundary_coordinates", func(t *testing.T) {
		for _, c := range [][2]float64{{-90, -180}, {90, 180}, {0, 0}} {
			_, err := kernel.NewGeoPoint(c[0], c[1])
			require.NoError(t, err)
		}
	})

	t.Run("out_of_range", func(t *testing.T) {
		for _, c := range [][2]float64{{-90.1, 0}, {90.1, 0}, {0, -180.1}, {0, 180.1}} {
			_, err := kernel.NewGeoPoint(c[0], c[1])
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestGeoPoint_Validate_ZeroValue(t *testing.T) {
	var p kernel.GeoPoint
	require.Error(t, p.Validate())
}

func TestGeoPoint_IsEqual(t *testing.T) {
	a, _ := kernel.NewGeoPoint(1, 2)
	b, _ := kernel.NewGeoPoint(1, 2)
	c, _ := kernel.NewGeoPoint(2, 1)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
