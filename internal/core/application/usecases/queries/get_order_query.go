// Package queries contains read-only operations in the CQRS architecture.
// Query handlers read straight from the database, bypassing the aggregate,
// and return flat response structs shaped for their callers.
package queries

import (
	"errors"
	"time"

	"pizzahome/internal/core/domain/model/kernel"
	"pizzahome/internal/core/domain/model/order"
	"pizzahome/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves the tracking view of one order: what the customer
// asking "where is my order" needs to hear.
type GetOrderQuery struct {
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order by id.
func NewGetOrderQuery(orderID kernel.OrderID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the queried order id.
func (q GetOrderQuery) OrderID() kernel.OrderID {
	return q.orderID
}

// GetOrderQueryResponse is the tracking view of an order.
type GetOrderQueryResponse struct {
	OrderID       kernel.OrderID
	CustomerPhone string
	Status        order.Status
	PaymentStatus order.PaymentStatus
	Total         int
	CreatedAt     time.Time
}
