package commands

import (
	"context"
	"time"

	"pizzahome/internal/core/domain/model/order"
)

// PlaceOrderCommandHandler persists a newly placed order.
//
// The handler returns the persisted aggregate so callers can render
// confirmations (totals, status) without a follow-up query.
type PlaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
func NewPlaceOrderCommandHandler(uowFactory OrderUoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle builds the order aggregate from the command and persists it inside
// a transaction. A duplicate id fails closed: the insert errors and the
// existing row is untouched.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerPhone(),
		cmd.CustomerName(),
		cmd.Lines(),
		cmd.DeliveryFee(),
		cmd.Address(),
		cmd.Coords(),
		cmd.ZoneName(),
		cmd.Method(),
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}
