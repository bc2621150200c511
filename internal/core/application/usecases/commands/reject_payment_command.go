package commands

import (
	"errors"

	"pizzahome/internal/core/domain/model/kernel"
	"pizzahome/internal/pkg/guard"
)

var ErrRejectPaymentCommandIsNotConstructed = errors.New(
	"RejectPaymentCommand must be created via NewRejectPaymentCommand constructor",
)

// RejectPaymentCommand is the admin rejecting an order's payment, typically
// after a screenshot did not check out.
type RejectPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewRejectPaymentCommand creates a command to reject an order's payment.
func NewRejectPaymentCommand(orderID kernel.OrderID) (RejectPaymentCommand, error) {
	if err := orderID.Validate(); err != nil {
		return RejectPaymentCommand{}, err
	}

	return RejectPaymentCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRejectPaymentCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c RejectPaymentCommand) OrderID() kernel.OrderID {
	return c.orderID
}
