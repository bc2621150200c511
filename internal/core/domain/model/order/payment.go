package order

import (
	"fmt"

	"pizzahome/internal/pkg/errs"
)

// PaymentMethod identifies how a customer pays for an order.
type PaymentMethod string

const (
	// PaymentCOD is cash on delivery (also used for pickup orders).
	PaymentCOD PaymentMethod = "cod"
	// PaymentOnlineManual is a bank transfer verified by an admin from a
	// customer-submitted screenshot.
	PaymentOnlineManual PaymentMethod = "online_manual"
	// PaymentOnlineGateway is an automated payment-gateway flow confirmed by
	// webhook.
	PaymentOnlineGateway PaymentMethod = "online_gateway"
)

// Validate checks the method against the known set.
func (m PaymentMethod) Validate() error {
	switch m {
	case PaymentCOD, PaymentOnlineManual, PaymentOnlineGateway:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("paymentMethod",
			fmt.Errorf("%q is not a valid payment method", string(m)))
	}
}

// String returns the wire label.
func (m PaymentMethod) String() string {
	return string(m)
}

// PaymentStatus tracks the money side of an order independently of its
// fulfillment status.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

// Validate checks the payment status against the known set.
func (p PaymentStatus) Validate() error {
	switch p {
	case PaymentPending, PaymentPaid, PaymentFailed:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("paymentStatus",
			fmt.Errorf("%q is not a valid payment status", string(p)))
	}
}

// String returns the wire label.
func (p PaymentStatus) String() string {
	return string(p)
}
