package commands

import (
	"errors"

	"pizzahome/internal/core/domain/model/kernel"
	"pizzahome/internal/pkg/guard"
)

var ErrVerifyPaymentCommandIsNotConstructed = errors.New(
	"VerifyPaymentCommand must be created via NewVerifyPaymentCommand constructor",
)

// VerifyPaymentCommand is the admin approving an order's payment after
// checking the uploaded screenshot against the bank account.
type VerifyPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewVerifyPaymentCommand creates a command to approve an order's payment.
func NewVerifyPaymentCommand(orderID kernel.OrderID) (VerifyPaymentCommand, error) {
	if err := orderID.Validate(); err != nil {
		return VerifyPaymentCommand{}, err
	}

	return VerifyPaymentCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c VerifyPaymentCommand) Validate() error {
	return c.guard.Validate(ErrVerifyPaymentCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c VerifyPaymentCommand) OrderID() kernel.OrderID {
	return c.orderID
}
