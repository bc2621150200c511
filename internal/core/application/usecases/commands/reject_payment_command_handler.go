package commands

import (
	"context"
	"fmt"

	"pizzahome/internal/core/ports"
)

// RejectPaymentCommandHandler marks an order's payment as failed and tells
// the customer. The fulfillment status follows the derivation table; no
// rider notification is involved.
type RejectPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewRejectPaymentCommandHandler creates a handler for payment rejection.
func NewRejectPaymentCommandHandler(uowFactory OrderUoWFactory, notifier ports.Notifier) RejectPaymentCommandHandler {
	return RejectPaymentCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle rejects the order's payment. Returns an ObjectNotFoundError when
// the order id is unknown.
func (h *RejectPaymentCommandHandler) Handle(ctx context.Context, cmd RejectPaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	aggregate, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	aggregate.FailManual()

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.notifier.Send(ctx, aggregate.CustomerPhone(), fmt.Sprintf(
		"Payment for %s could not be verified. Please try again or contact support.", aggregate.ID()))

	return nil
}
