package queries

import (
	"context"
	"time"

	"pizzahome/internal/core/domain/model/kernel"
	"pizzahome/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetStaleAwaitingPaymentQueryHandler lists orders due a payment reminder.
type GetStaleAwaitingPaymentQueryHandler struct {
	db *gorm.DB
}

// NewGetStaleAwaitingPaymentQueryHandler creates a handler for the payment
// reminder job's query.
func NewGetStaleAwaitingPaymentQueryHandler(db *gorm.DB) GetStaleAwaitingPaymentQueryHandler {
	return GetStaleAwaitingPaymentQueryHandler{db: db}
}

// Handle returns orders still awaiting payment that were created before the
// cutoff, oldest first.
func (h GetStaleAwaitingPaymentQueryHandler) Handle(
	ctx context.Context,
	query GetStaleAwaitingPaymentQuery,
) ([]GetStaleAwaitingPaymentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stale := make([]GetStaleAwaitingPaymentQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_phone,
			total,
			created_at
		FROM orders
		WHERE status = ? AND created_at < ?
		ORDER BY created_at
	`, order.StatusAwaitingPayment, query.Cutoff()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id            string
			customerPhone string
			total         int
			createdAt     time.Time
		)
		if err = rows.Scan(&id, &customerPhone, &total, &createdAt); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.OrderIDFromString(id)
		if idErr != nil {
			return nil, idErr
		}

		stale = append(stale, GetStaleAwaitingPaymentQueryResponse{
			OrderID:       orderID,
			CustomerPhone: customerPhone,
			Total:         total,
			CreatedAt:     createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stale, nil
}
