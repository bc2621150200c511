package menu

import (
	"fmt"

	"pizzahome/internal/pkg/errs"
)

// PricePoint is one entry of an item's price table: a size label and its
// positive amount in rupees.
type PricePoint struct {
	Label  Size
	Amount int
}

// Item is a single menu entry with an ordered price table. Entry order is
// preserved from the catalog definition because the final price fallback is
// "first defined entry". Items are immutable once constructed; admin reloads
// replace the whole catalog instead of mutating items in place.
type Item struct {
	name   string
	prices []PricePoint
}

// NewItem creates a menu item, validating that the name is non-empty, the
// price table has at least one entry, labels are unique, and amounts are
// positive.
func NewItem(name string, prices []PricePoint) (Item, error) {
	if name == "" {
		return Item{}, errs.NewValueIsRequiredError("name")
	}
	if len(prices) == 0 {
		return Item{}, errs.NewValueIsRequiredError("prices")
	}

	seen := make(map[Size]bool, len(prices))
	for _, p := range prices {
		if p.Label == "" {
			return Item{}, errs.NewValueIsRequiredError("price label")
		}
		if seen[p.Label] {
			return Item{}, errs.NewValueIsInvalidErrorWithCause("prices",
				fmt.Errorf("duplicate label %q", p.Label))
		}
		seen[p.Label] = true
		if p.Amount <= 0 {
			return Item{}, errs.NewValueIsInvalidErrorWithCause("prices",
				fmt.Errorf("%d is not a positive amount for %q", p.Amount, p.Label))
		}
	}

	cp := make([]PricePoint, len(prices))
	copy(cp, prices)
	return Item{name: name, prices: cp}, nil
}

// Name returns the unique item name.
func (i Item) Name() string {
	return i.name
}

// Prices returns a copy of the ordered price table.
func (i Item) Prices() []PricePoint {
	cp := make([]PricePoint, len(i.prices))
	copy(cp, i.prices)
	return cp
}

// PriceFor looks up the exact price for a size label.
func (i Item) PriceFor(size Size) (int, bool) {
	for _, p := range i.prices {
		if p.Label == size {
			return p.Amount, true
		}
	}
	return 0, false
}

// ResolvePrice picks a price for a possibly detected size, reproducing the
// fixed fallback order. With a requested size: exact label, then OneSize, then
// Medium, then the first defined entry. Without one: Medium, then OneSize,
// then the first defined entry.
func (i Item) ResolvePrice(requested Size, hasRequested bool) (Size, int) {
	if hasRequested {
		if amount, ok := i.PriceFor(requested); ok {
			return requested, amount
		}
		if amount, ok := i.PriceFor(SizeOne); ok {
			return SizeOne, amount
		}
		if amount, ok := i.PriceFor(SizeMedium); ok {
			return SizeMedium, amount
		}
		return i.prices[0].Label, i.prices[0].Amount
	}

	if amount, ok := i.PriceFor(SizeMedium); ok {
		return SizeMedium, amount
	}
	if amount, ok := i.PriceFor(SizeOne); ok {
		return SizeOne, amount
	}
	return i.prices[0].Label, i.prices[0].Amount
}
