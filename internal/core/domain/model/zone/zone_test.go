package zone_test

import (
	"testing"

	"pizzahome/internal/core/domain/model/zone"
	"pizzahome/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewZone(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		z, err := zone.NewZone("City Center", 80)
		require.NoError(t, err)
		assert.Equal(t, "City Center", z.Name())
		assert.Equal(t, 80, z.Fee())
	})

	t.Run("zero_fee_is_allowed", func(t *testing.T) {
		_, err := zone.NewZone("Next Door", 0)
		require.NoError(t, err)
	})

	t.Run("empty_name", func(t *testing.T) {
		_, err := zone.NewZone("", 80)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("negative_fee", func(t *testing.T) {
		_, err := zone.NewZone("City Center", -1)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewTable(t *testing.T) {
	center, _ := zone.NewZone("City Center", 80)
	outskirts, _ := zone.NewZone("Outskirts", 150)

	t.Run("rejects_empty", func(t *testing.T) {
		_, err := zone.NewTable(nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_duplicates", func(t *testing.T) {
		_, err := zone.NewTable([]zone.Zone{center, center})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("keeps_definition_order_and_first", func(t *testing.T) {
		tbl, err := zone.NewTable([]zone.Zone{center, outskirts})
		require.NoError(t, err)

		zones := tbl.Zones()
		require.Len(t, zones, 2)
		assert.Equal(t, "City Center", zones[0].Name())
		assert.Equal(t, "Outskirts", zones[1].Name())
		assert.Equal(t, "City Center", tbl.First().Name())
	})
}
