package queries

import (
	"errors"
	"time"

	"pizzahome/internal/core/domain/model/kernel"
	"pizzahome/internal/pkg/errs"
	"pizzahome/internal/pkg/guard"
)

var ErrGetStaleAwaitingPaymentQueryIsNotConstructed = errors.New(
	"GetStaleAwaitingPaymentQuery must be created via NewGetStaleAwaitingPaymentQuery constructor",
)

// GetStaleAwaitingPaymentQuery finds orders that have sat in
// awaiting_payment since before the cutoff. The payment reminder job runs it
// periodically to nudge customers who never transferred the money.
type GetStaleAwaitingPaymentQuery struct {
	cutoff time.Time

	guard guard.ConstructorGuard
}

// NewGetStaleAwaitingPaymentQuery creates a query for orders awaiting
// payment since before cutoff.
func NewGetStaleAwaitingPaymentQuery(cutoff time.Time) (GetStaleAwaitingPaymentQuery, error) {
	if cutoff.IsZero() {
		return GetStaleAwaitingPaymentQuery{}, errs.NewValueIsRequiredError("cutoff")
	}

	return GetStaleAwaitingPaymentQuery{
		cutoff: cutoff,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStaleAwaitingPaymentQuery) Validate() error {
	return q.guard.Validate(ErrGetStaleAwaitingPaymentQueryIsNotConstructed)
}

// Cutoff returns the creation-time threshold.
func (q GetStaleAwaitingPaymentQuery) Cutoff() time.Time {
	return q.cutoff
}

// GetStaleAwaitingPaymentQueryResponse is one order due a payment reminder.
type GetStaleAwaitingPaymentQueryResponse struct {
	OrderID       kernel.OrderID
	CustomerPhone string
	Total         int
	CreatedAt     time.Time
}
