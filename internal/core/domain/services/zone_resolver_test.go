package services_test

import (
	"testing"

	"pizzahome/internal/core/domain/model/zone"
	"pizzahome/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultZones(t *testing.T) zone.Table {
	t.Helper()

	mustZone := func(name string, fee int) zone.Zone {
		z, err := zone.NewZone(name, fee)
		require.NoError(t, err)
		return z
	}

	table, err := zone.NewTable([]zone.Zone{
		mustZone("City Center", 80),
		mustZone("Fauji Colony", 100),
		mustZone("Near DHQ", 120),
		mustZone("Outskirts", 150),
	})
	require.NoError(t, err)
	return table
}

func TestZoneResolver(t *testing.T) {
	resolver := services.NewZoneResolver()
	table := defaultZones(t)

	t.Run("matches zone name case-insensitively", func(t *testing.T) {
		z := resolver.Resolve(table, "House 7, fauji colony, street 3")

		assert.Equal(t, "Fauji Colony", z.Name())
		assert.Equal(t, 100, z.Fee())
	})

	t.Run("table definition order wins over position in address", func(t *testing.T) {
		z := resolver.Resolve(table, "Near DHQ chowk, backside of Fauji Colony")

		assert.Equal(t, "Fauji Colony", z.Name())
	})

	t.Run("unknown address falls back to first zone", func(t *testing.T) {
		z := resolver.Resolve(table, "123 Main Street, Somewhere")

		assert.Equal(t, "City Center", z.Name())
		assert.Equal(t, 80, z.Fee())
	})
}
