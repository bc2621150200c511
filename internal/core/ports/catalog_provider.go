package ports

import (
	"pizzahome/internal/core/domain/model/menu"
	"pizzahome/internal/core/domain/model/zone"
)

// CatalogProvider hands out the current menu catalog. Implementations swap
// the catalog in wholesale on admin reload; a returned Catalog never changes.
type CatalogProvider interface {
	Catalog() menu.Catalog
}

// ZoneTableProvider hands out the current delivery zone table, with the same
// swap-in-wholesale reload semantics as CatalogProvider.
type ZoneTableProvider interface {
	Zones() zone.Table
}
