package catalogstore_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"pizzahome/internal/adapters/out/catalogstore"
	"pizzahome/internal/core/domain/model/menu"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*catalogstore.Store, string, string) {
	t.Helper()

	dir := t.TempDir()
	menuPath := filepath.Join(dir, "menu.json")
	zonesPath := filepath.Join(dir, "delivery_charges.json")

	store, err := catalogstore.NewStore(menuPath, zonesPath,
		slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return store, menuPath, zonesPath
}

func TestNewStore_SeedsDefaultsOnFirstStart(t *testing.T) {
	store, menuPath, zonesPath := newTestStore(t)

	catalog := store.Catalog()
	assert.Equal(t, 5, catalog.Len())
	assert.Equal(t, "Chicken Tikka Pizza", catalog.Items()[0].Name())

	price, ok := catalog.Items()[0].PriceFor(menu.SizeLarge)
	require.True(t, ok)
	assert.Equal(t, 950, price)

	zones := store.Zones()
	assert.Equal(t, "City Center", zones.First().Name())
	assert.Equal(t, 80, zones.First().Fee())

	// Both files were written for the next start.
	for _, path := range []string{menuPath, zonesPath} {
		_, err := os.Stat(path)
		assert.NoError(t, err)
	}
}

func TestNewStore_ReadsExistingFiles(t *testing.T) {
	dir := t.TempDir()
	menuPath := filepath.Join(dir, "menu.json")
	zonesPath := filepath.Join(dir, "delivery_charges.json")

	menuDoc := catalogstore.MenuDocument{Items: []catalogstore.MenuItemDocument{
		{Name: "Calzone", Prices: []catalogstore.PriceDocument{{Label: "Medium", Amount: 500}}},
	}}
	raw, err := json.Marshal(menuDoc)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(menuPath, raw, 0o644))

	zonesDoc := catalogstore.ZonesDocument{Zones: []catalogstore.ZoneDocument{
		{Name: "Satellite Town", Fee: 90},
	}}
	raw, err = json.Marshal(zonesDoc)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(zonesPath, raw, 0o644))

	store, err := catalogstore.NewStore(menuPath, zonesPath,
		slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	assert.Equal(t, 1, store.Catalog().Len())
	assert.Equal(t, "Calzone", store.Catalog().Items()[0].Name())
	assert.Equal(t, "Satellite Town", store.Zones().First().Name())
}

func TestStore_ReplaceCatalogPersists(t *testing.T) {
	store, menuPath, _ := newTestStore(t)

	doc := catalogstore.MenuDocument{Items: []catalogstore.MenuItemDocument{
		{Name: "BBQ Ranch", Prices: []catalogstore.PriceDocument{
			{Label: "Medium", Amount: 750},
			{Label: "Large", Amount: 1050},
		}},
	}}
	require.NoError(t, store.ReplaceCatalog(doc))

	assert.Equal(t, 1, store.Catalog().Len())
	assert.Equal(t, "BBQ Ranch", store.Catalog().Items()[0].Name())

	raw, err := os.ReadFile(menuPath)
	require.NoError(t, err)
	var persisted catalogstore.MenuDocument
	require.NoError(t, json.Unmarshal(raw, &persisted))
	require.Len(t, persisted.Items, 1)
	assert.Equal(t, "BBQ Ranch", persisted.Items[0].Name)
}

func TestStore_ReplaceCatalogRejectsInvalid(t *testing.T) {
	store, _, _ := newTestStore(t)

	err := store.ReplaceCatalog(catalogstore.MenuDocument{})
	require.Error(t, err)

	err = store.ReplaceCatalog(catalogstore.MenuDocument{Items: []catalogstore.MenuItemDocument{
		{Name: "Broken", Prices: []catalogstore.PriceDocument{{Label: "Medium", Amount: -5}}},
	}})
	require.Error(t, err)

	// Current catalog stays intact after a rejected upload.
	assert.Equal(t, 5, store.Catalog().Len())
}

func TestStore_ReplaceZonesPersists(t *testing.T) {
	store, _, zonesPath := newTestStore(t)

	doc := catalogstore.ZonesDocument{Zones: []catalogstore.ZoneDocument{
		{Name: "Airport Road", Fee: 200},
		{Name: "City Center", Fee: 90},
	}}
	require.NoError(t, store.ReplaceZones(doc))

	assert.Equal(t, "Airport Road", store.Zones().First().Name())

	raw, err := os.ReadFile(zonesPath)
	require.NoError(t, err)
	var persisted catalogstore.ZonesDocument
	require.NoError(t, json.Unmarshal(raw, &persisted))
	require.Len(t, persisted.Zones, 2)
	assert.Equal(t, 200, persisted.Zones[0].Fee)
}
