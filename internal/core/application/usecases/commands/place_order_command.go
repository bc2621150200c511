package commands

import (
	"errors"

	"pizzahome/internal/core/domain/model/kernel"
	"pizzahome/internal/core/domain/model/order"
	"pizzahome/internal/pkg/errs"
	"pizzahome/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand represents a request to place a new order, whether it
// arrives from the conversation flow or from the external order endpoint.
// The lines are already resolved against the catalog; pricing happened
// before the command was built.
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.OrderID
	customerPhone string
	customerName  string
	lines         []order.Line
	deliveryFee   int
	address       string
	coords        *kernel.GeoPoint
	zoneName      string
	method        order.PaymentMethod

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place an order. customerName,
// coords and zoneName are optional; everything else is validated here so the
// handler can assume a well-formed request.
func NewPlaceOrderCommand(
	orderID kernel.OrderID,
	customerPhone string,
	customerName string,
	lines []order.Line,
	deliveryFee int,
	address string,
	coords *kernel.GeoPoint,
	zoneName string,
	method order.PaymentMethod,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		customerName: customerName,
		address:      address,
		coords:       coords,
		zoneName:     zoneName,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerPhone(customerPhone),
		cmd.setLines(lines),
		cmd.setDeliveryFee(deliveryFee),
		cmd.setMethod(method),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the pre-generated identifier for the order.
func (c PlaceOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// CustomerPhone returns the ordering customer's phone number.
func (c PlaceOrderCommand) CustomerPhone() string {
	return c.customerPhone
}

// CustomerName returns the optional customer name.
func (c PlaceOrderCommand) CustomerName() string {
	return c.customerName
}

// Lines returns the resolved order lines.
func (c PlaceOrderCommand) Lines() []order.Line {
	return c.lines
}

// DeliveryFee returns the resolved zone fee, zero for pickup.
func (c PlaceOrderCommand) DeliveryFee() int {
	return c.deliveryFee
}

// Address returns the delivery address.
func (c PlaceOrderCommand) Address() string {
	return c.address
}

// Coords returns optional shared-location coordinates.
func (c PlaceOrderCommand) Coords() *kernel.GeoPoint {
	return c.coords
}

// ZoneName returns the zone the fee was resolved from.
func (c PlaceOrderCommand) ZoneName() string {
	return c.zoneName
}

// Method returns the chosen payment method.
func (c PlaceOrderCommand) Method() order.PaymentMethod {
	return c.method
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setCustomerPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("customerPhone")
	}

	c.customerPhone = phone
	return nil
}

func (c *PlaceOrderCommand) setLines(lines []order.Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("lines")
	}
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}

	c.lines = lines
	return nil
}

func (c *PlaceOrderCommand) setDeliveryFee(fee int) error {
	if fee < 0 {
		return errs.NewValueIsInvalidError("deliveryFee")
	}

	c.deliveryFee = fee
	return nil
}

func (c *PlaceOrderCommand) setMethod(method order.PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}

	c.method = method
	return nil
}
