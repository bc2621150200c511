package queries

import (
	"context"
	"time"

	"pizzahome/internal/core/domain/model/kernel"
	"pizzahome/internal/core/domain/model/order"
	"pizzahome/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler answers order tracking lookups from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for order tracking queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle fetches the tracking view of the order. Returns an
// ObjectNotFoundError when the id is unknown, which callers turn into the
// "order not found" reply rather than a failure.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_phone,
			status,
			payment_status,
			total,
			created_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Rows()
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetOrderQueryResponse{}, err
		}
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
	}

	var (
		id            string
		customerPhone string
		status        string
		paymentStatus string
		total         int
		createdAt     time.Time
	)
	if err = rows.Scan(&id, &customerPhone, &status, &paymentStatus, &total, &createdAt); err != nil {
		return GetOrderQueryResponse{}, err
	}

	orderID, err := kernel.OrderIDFromString(id)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return GetOrderQueryResponse{
		OrderID:       orderID,
		CustomerPhone: customerPhone,
		Status:        order.Status(status),
		PaymentStatus: order.PaymentStatus(paymentStatus),
		Total:         total,
		CreatedAt:     createdAt,
	}, nil
}
