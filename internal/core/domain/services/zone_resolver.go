package services

import (
	"strings"

	"pizzahome/internal/core/domain/model/zone"
)

// ZoneResolver maps a free-text delivery address to a zone and its fee.
type ZoneResolver struct{}

// NewZoneResolver creates a ZoneResolver.
func NewZoneResolver() ZoneResolver {
	return ZoneResolver{}
}

// Resolve scans the address for each zone name, case-insensitively, in the
// table's definition order; the first zone whose name appears wins. An
// address matching no zone falls back to the first zone in the table rather
// than failing, so an unrecognized address never blocks checkout. The
// trade-off is a possibly mis-priced delivery fee on such addresses.
func (r ZoneResolver) Resolve(table zone.Table, addressText string) zone.Zone {
	addr := strings.ToLower(addressText)
	for _, z := range table.Zones() {
		if strings.Contains(addr, strings.ToLower(z.Name())) {
			return z
		}
	}

	return table.First()
}
