// Package catalogstore keeps the menu and delivery zone tables on disk as
// JSON and serves them to the rest of the application. Tables are read-mostly:
// lookups take a snapshot under a read lock, admin uploads validate, swap the
// snapshot wholesale and persist the new file. Entry order is preserved in the
// files because both tables resolve ties and fallbacks by definition order.
package catalogstore

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"pizzahome/internal/core/domain/model/menu"
	"pizzahome/internal/core/domain/model/zone"
	"pizzahome/internal/pkg/errs"
)

// MenuDocument is the on-disk and upload shape of the menu.
type MenuDocument struct {
	Items []MenuItemDocument `json:"items"`
}

// MenuItemDocument is one menu entry with its ordered price table.
type MenuItemDocument struct {
	Name   string          `json:"name"`
	Prices []PriceDocument `json:"prices"`
}

// PriceDocument is one size/amount pair.
type PriceDocument struct {
	Label  string `json:"label"`
	Amount int    `json:"amount"`
}

// ZonesDocument is the on-disk and upload shape of the delivery zone table.
type ZonesDocument struct {
	Zones []ZoneDocument `json:"zones"`
}

// ZoneDocument is one zone/fee pair.
type ZoneDocument struct {
	Name string `json:"name"`
	Fee  int    `json:"fee"`
}

// Store is the file-backed catalog and zone provider.
type Store struct {
	menuPath  string
	zonesPath string

	mu      sync.RWMutex
	catalog menu.Catalog
	zones   zone.Table

	logger *slog.Logger
}

// NewStore loads the menu and zone files, writing the built-in defaults first
// when a file does not exist yet.
func NewStore(menuPath, zonesPath string, logger *slog.Logger) (*Store, error) {
	s := &Store{
		menuPath:  menuPath,
		zonesPath: zonesPath,
		logger:    logger.With("component", "catalogstore"),
	}

	menuDoc, err := loadOrSeed(menuPath, DefaultMenu())
	if err != nil {
		return nil, fmt.Errorf("load menu: %w", err)
	}
	if s.catalog, err = buildCatalog(menuDoc); err != nil {
		return nil, fmt.Errorf("menu file %s: %w", menuPath, err)
	}

	zonesDoc, err := loadOrSeed(zonesPath, DefaultZones())
	if err != nil {
		return nil, fmt.Errorf("load zones: %w", err)
	}
	if s.zones, err = buildZoneTable(zonesDoc); err != nil {
		return nil, fmt.Errorf("zones file %s: %w", zonesPath, err)
	}

	return s, nil
}

// Catalog returns the current menu snapshot.
func (s *Store) Catalog() menu.Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog
}

// Zones returns the current delivery zone snapshot.
func (s *Store) Zones() zone.Table {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.zones
}

// ReplaceCatalog validates the uploaded menu, swaps it in and persists it.
// An invalid document leaves the current catalog untouched.
func (s *Store) ReplaceCatalog(doc MenuDocument) error {
	catalog, err := buildCatalog(doc)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err = writeJSON(s.menuPath, doc); err != nil {
		return err
	}
	s.catalog = catalog

	s.logger.Info("menu replaced", "items", catalog.Len())
	return nil
}

// ReplaceZones validates the uploaded zone table, swaps it in and persists it.
func (s *Store) ReplaceZones(doc ZonesDocument) error {
	table, err := buildZoneTable(doc)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err = writeJSON(s.zonesPath, doc); err != nil {
		return err
	}
	s.zones = table

	s.logger.Info("delivery zones replaced", "zones", len(table.Zones()))
	return nil
}

func buildCatalog(doc MenuDocument) (menu.Catalog, error) {
	if len(doc.Items) == 0 {
		return menu.Catalog{}, errs.NewValueIsRequiredError("items")
	}

	items := make([]menu.Item, 0, len(doc.Items))
	for _, it := range doc.Items {
		prices := make([]menu.PricePoint, 0, len(it.Prices))
		for _, p := range it.Prices {
			prices = append(prices, menu.PricePoint{
				Label:  menu.Size(p.Label),
				Amount: p.Amount,
			})
		}

		item, err := menu.NewItem(it.Name, prices)
		if err != nil {
			return menu.Catalog{}, err
		}
		items = append(items, item)
	}
	return menu.NewCatalog(items)
}

func buildZoneTable(doc ZonesDocument) (zone.Table, error) {
	if len(doc.Zones) == 0 {
		return zone.Table{}, errs.NewValueIsRequiredError("zones")
	}

	zones := make([]zone.Zone, 0, len(doc.Zones))
	for _, z := range doc.Zones {
		built, err := zone.NewZone(z.Name, z.Fee)
		if err != nil {
			return zone.Table{}, err
		}
		zones = append(zones, built)
	}
	return zone.NewTable(zones)
}

func loadOrSeed[T any](path string, defaults T) (T, error) {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if err = writeJSON(path, defaults); err != nil {
			return defaults, err
		}
		return defaults, nil
	}
	if err != nil {
		return defaults, err
	}

	var doc T
	if err = json.Unmarshal(raw, &doc); err != nil {
		return defaults, err
	}
	return doc, nil
}

func writeJSON(path string, doc any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}

// DefaultMenu is the menu seeded on first start.
func DefaultMenu() MenuDocument {
	sized := func(s, m, l int) []PriceDocument {
		return []PriceDocument{
			{Label: "Small", Amount: s},
			{Label: "Medium", Amount: m},
			{Label: "Large", Amount: l},
		}
	}

	return MenuDocument{Items: []MenuItemDocument{
		{Name: "Chicken Tikka Pizza", Prices: sized(350, 650, 950)},
		{Name: "Pepperoni Pizza", Prices: sized(400, 700, 1000)},
		{Name: "Margherita Pizza", Prices: sized(300, 550, 800)},
		{Name: "Fries", Prices: []PriceDocument{{Label: "OneSize", Amount: 120}}},
		{Name: "Pepsi 1.5L", Prices: []PriceDocument{{Label: "OneSize", Amount: 250}}},
	}}
}

// DefaultZones is the zone table seeded on first start. Order matters: the
// first zone is the fallback fee for unrecognized addresses.
func DefaultZones() ZonesDocument {
	return ZonesDocument{Zones: []ZoneDocument{
		{Name: "City Center", Fee: 80},
		{Name: "Fauji Colony", Fee: 100},
		{Name: "Near DHQ", Fee: 120},
		{Name: "Outskirts", Fee: 150},
	}}
}
