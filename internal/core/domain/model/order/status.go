package order

import (
	"fmt"

	"pizzahome/internal/pkg/errs"
)

// Status represents the fulfillment state of an order.
//
// Orders are created in one of the initial states and then move through the
// derivation table below as payment signals arrive:
//
//	payment signal            screenshot?   resulting status
//	------------------------  -----------   --------------------
//	pending                   yes           AwaitingVerification
//	paid / failed             yes           Confirmed
//	paid                      no            Confirmed
//	pending / failed          no            Pending
//
// The table couples fulfillment status to payment status on purpose: it is
// shorthand for this shop's process, not a generic rule, and must be
// reproduced exactly for compatibility with the deployed conversation flow.
// Movement is non-monotonic; nothing here rejects a "backwards" transition.
type Status string

const (
	// StatusInitiated is the generic initial state for externally submitted orders.
	StatusInitiated Status = "initiated"
	// StatusAwaitingPayment marks an online order waiting for the customer to pay.
	StatusAwaitingPayment Status = "awaiting_payment"
	// StatusAwaitingVerification marks a screenshot uploaded but not yet
	// verified by an admin.
	StatusAwaitingVerification Status = "awaiting_verification"
	// StatusConfirmed marks an order accepted for fulfillment.
	StatusConfirmed Status = "confirmed"
	// StatusFailed marks a terminally failed order.
	StatusFailed Status = "failed"
	// StatusPending is reachable only through the derivation table, when a
	// gateway reports a non-paid signal without a screenshot.
	StatusPending Status = "pending"
)

// Validate checks the status against the known set.
func (s Status) Validate() error {
	switch s {
	case StatusInitiated, StatusAwaitingPayment, StatusAwaitingVerification,
		StatusConfirmed, StatusFailed, StatusPending:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a valid status", string(s)))
	}
}

// String returns the wire label.
func (s Status) String() string {
	return string(s)
}

// DeriveOnPayment returns the fulfillment status implied by a payment signal,
// per the derivation table documented on Status.
func DeriveOnPayment(p PaymentStatus, hasScreenshot bool) Status {
	if hasScreenshot {
		if p == PaymentPending {
			return StatusAwaitingVerification
		}
		return StatusConfirmed
	}

	if p == PaymentPaid {
		return StatusConfirmed
	}
	return StatusPending
}
