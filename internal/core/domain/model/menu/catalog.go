package menu

import (
	"fmt"
	"strings"

	"pizzahome/internal/pkg/errs"
)

// Catalog is the immutable, ordered collection of menu items used by the
// resolver. Item order is significant: fuzzy-match ties break in favor of the
// item defined first. Admin reloads build a fresh Catalog and swap it in
// wholesale; a Catalog in the hands of a resolution call never changes.
type Catalog struct {
	items []Item
}

// NewCatalog creates a catalog from the given items, validating that at least
// one item exists and names are unique.
func NewCatalog(items []Item) (Catalog, error) {
	if len(items) == 0 {
		return Catalog{}, errs.NewValueIsRequiredError("items")
	}

	seen := make(map[string]bool, len(items))
	for _, it := range items {
		if seen[it.Name()] {
			return Catalog{}, errs.NewValueIsInvalidErrorWithCause("items",
				fmt.Errorf("duplicate item name %q", it.Name()))
		}
		seen[it.Name()] = true
	}

	cp := make([]Item, len(items))
	copy(cp, items)
	return Catalog{items: cp}, nil
}

// Items returns a copy of the ordered item list.
func (c Catalog) Items() []Item {
	cp := make([]Item, len(c.items))
	copy(cp, c.items)
	return cp
}

// Len returns the number of items.
func (c Catalog) Len() int {
	return len(c.items)
}

// Render produces the customer-facing text listing, one line per item with its
// full price table.
func (c Catalog) Render() string {
	var b strings.Builder
	b.WriteString("Menu:")
	for _, it := range c.items {
		parts := make([]string, 0, len(it.prices))
		for _, p := range it.prices {
			parts = append(parts, fmt.Sprintf("%s: Rs %d", p.Label, p.Amount))
		}
		b.WriteString(fmt.Sprintf("\n- %s (%s)", it.Name(), strings.Join(parts, ", ")))
	}
	return b.String()
}
