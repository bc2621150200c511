// Package zone provides the delivery-pricing side of the domain model: named
// delivery zones with flat fees, collected into an ordered table. Zone order
// is significant: address resolution scans zones in definition order and the
// first-defined zone doubles as the fallback when no zone name appears in an
// address.
package zone

import (
	"fmt"

	"pizzahome/internal/pkg/errs"
)

// Zone is a named delivery-pricing region with a flat fee in rupees.
type Zone struct {
	name string
	fee  int
}

// NewZone creates a zone, validating a non-empty name and a non-negative fee.
func NewZone(name string, fee int) (Zone, error) {
	if name == "" {
		return Zone{}, errs.NewValueIsRequiredError("name")
	}
	if fee < 0 {
		return Zone{}, errs.NewValueIsInvalidErrorWithCause("fee",
			fmt.Errorf("%d is negative", fee))
	}
	return Zone{name: name, fee: fee}, nil
}

// Name returns the unique zone name.
func (z Zone) Name() string {
	return z.name
}

// Fee returns the flat delivery fee.
func (z Zone) Fee() int {
	return z.fee
}

// Table is the immutable, ordered zone list. The first entry is the fallback
// zone for unmatched addresses, so the definition order carries meaning beyond
// presentation.
type Table struct {
	zones []Zone
}

// NewTable creates a zone table, validating at least one zone and unique names.
func NewTable(zones []Zone) (Table, error) {
	if len(zones) == 0 {
		return Table{}, errs.NewValueIsRequiredError("zones")
	}

	seen := make(map[string]bool, len(zones))
	for _, z := range zones {
		if seen[z.name] {
			return Table{}, errs.NewValueIsInvalidErrorWithCause("zones",
				fmt.Errorf("duplicate zone name %q", z.name))
		}
		seen[z.name] = true
	}

	cp := make([]Zone, len(zones))
	copy(cp, zones)
	return Table{zones: cp}, nil
}

// Zones returns a copy of the ordered zone list.
func (t Table) Zones() []Zone {
	cp := make([]Zone, len(t.zones))
	copy(cp, t.zones)
	return cp
}

// First returns the first-defined zone, used as the resolution fallback.
func (t Table) First() Zone {
	return t.zones[0]
}
