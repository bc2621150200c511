package ports

import (
	"context"
	"time"

	"pizzahome/internal/core/domain/model/kernel"
	"pizzahome/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are append-only at the row level: rows are added and updated,
// never deleted.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// Fails with a DuplicateIDError when the id already exists; the stored
	// row is left untouched in that case.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its identifier.
	// Returns an ObjectNotFoundError when the id is unknown.
	Get(ctx context.Context, id kernel.OrderID) (*order.Order, error)

	// GetAllAwaitingPaymentBefore retrieves orders still awaiting payment
	// that were created before the cutoff. Used by the payment reminder job.
	GetAllAwaitingPaymentBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
