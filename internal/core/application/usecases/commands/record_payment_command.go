package commands

import (
	"errors"

	"pizzahome/internal/core/domain/model/kernel"
	"pizzahome/internal/core/domain/model/order"
	"pizzahome/internal/pkg/guard"
)

var ErrRecordPaymentCommandIsNotConstructed = errors.New(
	"RecordPaymentCommand must be created via NewRecordPaymentCommand constructor",
)

// RecordPaymentCommand applies a payment signal to an existing order: a
// screenshot upload, a gateway webhook, or any other payment-status change.
// screenshotPath is optional; when present the screenshot branch of the
// status derivation applies.
type RecordPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.OrderID
	paymentStatus  order.PaymentStatus
	screenshotPath string

	guard guard.ConstructorGuard
}

// NewRecordPaymentCommand creates a command to record a payment signal.
func NewRecordPaymentCommand(
	orderID kernel.OrderID,
	paymentStatus order.PaymentStatus,
	screenshotPath string,
) (RecordPaymentCommand, error) {
	cmd := RecordPaymentCommand{
		screenshotPath: screenshotPath,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		paymentStatus.Validate(),
	); err != nil {
		return RecordPaymentCommand{}, err
	}

	cmd.orderID = orderID
	cmd.paymentStatus = paymentStatus
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRecordPaymentCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c RecordPaymentCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// PaymentStatus returns the reported payment state.
func (c RecordPaymentCommand) PaymentStatus() order.PaymentStatus {
	return c.paymentStatus
}

// ScreenshotPath returns the uploaded screenshot reference, empty if none.
func (c RecordPaymentCommand) ScreenshotPath() string {
	return c.screenshotPath
}
