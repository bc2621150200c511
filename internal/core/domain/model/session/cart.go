package session

import (
	"fmt"

	"pizzahome/internal/core/domain/model/menu"
	"pizzahome/internal/pkg/errs"
	"pizzahome/internal/pkg/guard"
)

// ErrCartItemIsNotConstructed is returned when attempting to use an improperly
// initialized CartItem. CartItems must be created via NewCartItem.
var ErrCartItemIsNotConstructed = errs.NewValueIsRequiredError(
	"CartItem must be created via NewCartItem constructor")

// CartItem is one resolved menu selection sitting in a customer's cart.
type CartItem struct { //nolint:recvcheck //using for validation
	name      string
	size      menu.Size
	unitPrice int
	qty       int

	guard guard.ConstructorGuard
}

// NewCartItem creates a CartItem with quantity 1.
func NewCartItem(name string, size menu.Size, unitPrice int) (CartItem, error) {
	return NewCartItemWithQty(name, size, unitPrice, 1)
}

// NewCartItemWithQty creates a CartItem with an explicit quantity.
func NewCartItemWithQty(name string, size menu.Size, unitPrice, qty int) (CartItem, error) {
	if name == "" {
		return CartItem{}, errs.NewValueIsRequiredError("name")
	}
	if unitPrice < 0 {
		return CartItem{}, errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("%d is negative", unitPrice))
	}
	if qty < 1 {
		return CartItem{}, errs.NewValueIsInvalidErrorWithCause("qty",
			fmt.Errorf("%d must be at least 1", qty))
	}

	return CartItem{
		name:      name,
		size:      size,
		unitPrice: unitPrice,
		qty:       qty,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Name returns the resolved catalog item name.
func (c CartItem) Name() string {
	return c.name
}

// Size returns the size label the price was resolved at.
func (c CartItem) Size() menu.Size {
	return c.size
}

// UnitPrice returns the price of a single unit in rupees.
func (c CartItem) UnitPrice() int {
	return c.unitPrice
}

// Qty returns the quantity.
func (c CartItem) Qty() int {
	return c.qty
}

// LineTotal returns unit price times quantity.
func (c CartItem) LineTotal() int {
	return c.unitPrice * c.qty
}

// Validate ensures the CartItem was created through a constructor.
func (c CartItem) Validate() error {
	return c.guard.Validate(ErrCartItemIsNotConstructed)
}
