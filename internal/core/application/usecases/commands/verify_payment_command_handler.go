package commands

import (
	"context"
	"fmt"
	"time"

	"pizzahome/internal/core/domain/services"
	"pizzahome/internal/core/ports"
)

// VerifyPaymentCommandHandler confirms an order after the admin verified the
// payment: the aggregate moves to paid/confirmed with a verification stamp,
// the customer gets a confirmation and the rider gets the order summary.
//
// Both notifications happen after the commit and are fire-and-forget; a
// failed send never rolls back the verification.
type VerifyPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
	dispatcher ports.RiderDispatcher
}

// NewVerifyPaymentCommandHandler creates a handler for payment verification.
func NewVerifyPaymentCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
	dispatcher ports.RiderDispatcher,
) VerifyPaymentCommandHandler {
	return VerifyPaymentCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		dispatcher: dispatcher,
	}
}

// Handle verifies the order's payment. Returns an ObjectNotFoundError when
// the order id is unknown; admin callers surface that to the operator.
func (h *VerifyPaymentCommandHandler) Handle(ctx context.Context, cmd VerifyPaymentCommand) error {
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

	aggregate.ConfirmManual(time.Now().UTC())

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.notifier.Send(ctx, aggregate.CustomerPhone(), fmt.Sprintf(
		"Payment verified for %s. Your order will be delivered in ~45 minutes.", aggregate.ID()))
	h.dispatcher.Schedule(services.RiderSummary(aggregate))

	return nil
}
