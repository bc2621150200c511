package order

import (
	"fmt"

	"pizzahome/internal/core/domain/model/menu"
	"pizzahome/internal/pkg/errs"
	"pizzahome/internal/pkg/guard"
)

// ErrLineIsNotConstructed is returned when attempting to use an improperly
// initialized Line. Lines must be created via NewLine.
var ErrLineIsNotConstructed = errs.NewValueIsRequiredError(
	"Line must be created via NewLine constructor")

// Line is an immutable value object holding one purchased item: the resolved
// catalog name, the size the price was resolved at, the unit price and the
// quantity. The name and size are stored as plain strings so a stored order
// stays readable even after the catalog it was priced from has been replaced.
type Line struct { //nolint:recvcheck //using for validation
	name      string
	size      menu.Size
	unitPrice int
	qty       int

	guard guard.ConstructorGuard
}

// NewLine creates a Line, validating that the name is non-empty, the unit
// price is non-negative and the quantity is at least one. A zero price is
// allowed so promotional cart items survive checkout.
func NewLine(name string, size menu.Size, unitPrice, qty int) (Line, error) {
	if name == "" {
		return Line{}, errs.NewValueIsRequiredError("name")
	}
	if unitPrice < 0 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("%d is negative", unitPrice))
	}
	if qty < 1 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause("qty",
			fmt.Errorf("%d must be at least 1", qty))
	}

	return Line{
		name:      name,
		size:      size,
		unitPrice: unitPrice,
		qty:       qty,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Name returns the resolved catalog item name.
func (l Line) Name() string {
	return l.name
}

// Size returns the size label the price was resolved at.
func (l Line) Size() menu.Size {
	return l.size
}

// UnitPrice returns the price of a single unit in rupees.
func (l Line) UnitPrice() int {
	return l.unitPrice
}

// Qty returns the quantity.
func (l Line) Qty() int {
	return l.qty
}

// Total returns unit price times quantity.
func (l Line) Total() int {
	return l.unitPrice * l.qty
}

// Validate ensures the Line was created through NewLine.
func (l Line) Validate() error {
	return l.guard.Validate(ErrLineIsNotConstructed)
}
