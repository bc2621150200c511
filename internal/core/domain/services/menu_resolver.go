package services

import (
	"strings"

	"pizzahome/internal/core/domain/model/menu"
	"pizzahome/internal/pkg/errs"
	"pizzahome/internal/pkg/similarity"
)

// matchCutoff is the minimum similarity ratio for a fuzzy match.
const matchCutoff = 0.5

// Resolution is the outcome of matching free text against the catalog: the
// matched item plus the size and price actually resolved for it.
type Resolution struct {
	Item  menu.Item
	Size  menu.Size
	Price int
}

// MenuResolver matches a customer's free-text message against a catalog.
//
// Matching runs in two passes. The first pass scores the whole message
// against each item name with an edit-distance ratio and takes the first
// item at or above the cutoff. The second pass, for messages like
// "large chicken tikka please" that score poorly as a whole, checks whether
// any item name is contained in the message. Pass order matters and is part
// of the observable contract; so is breaking score ties in catalog order.
type MenuResolver struct{}

// NewMenuResolver creates a MenuResolver.
func NewMenuResolver() MenuResolver {
	return MenuResolver{}
}

// Resolve matches text to a catalog item and resolves a size and price for
// it. A size token in the text ("large", "m", ...) is honored when the item
// prices that size; otherwise the item's fallback order applies. Returns an
// ObjectNotFoundError when neither pass matches.
func (r MenuResolver) Resolve(catalog menu.Catalog, text string) (Resolution, error) {
	text = strings.TrimSpace(text)
	requested, hasRequested := menu.DetectSize(text)

	if item, ok := r.closestItem(catalog, text); ok {
		size, price := item.ResolvePrice(requested, hasRequested)
		return Resolution{Item: item, Size: size, Price: price}, nil
	}

	lower := strings.ToLower(text)
	for _, item := range catalog.Items() {
		if strings.Contains(lower, strings.ToLower(item.Name())) {
			size, price := item.ResolvePrice(requested, hasRequested)
			return Resolution{Item: item, Size: size, Price: price}, nil
		}
	}

	return Resolution{}, errs.NewObjectNotFoundError("menu item", text)
}

// closestItem returns the best-scoring item at or above the cutoff. A later
// item replaces an earlier one only on a strictly better score, so ties go
// to the item defined first.
func (r MenuResolver) closestItem(catalog menu.Catalog, text string) (menu.Item, bool) {
	lower := strings.ToLower(text)

	var (
		best      menu.Item
		bestScore = -1.0
		found     bool
	)
	for _, item := range catalog.Items() {
		score := similarity.Ratio(lower, strings.ToLower(item.Name()))
		if score >= matchCutoff && score > bestScore {
			best = item
			bestScore = score
			found = true
		}
	}

	return best, found
}
