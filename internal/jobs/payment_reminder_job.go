package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"pizzahome/internal/core/application/usecases/queries"
	"pizzahome/internal/core/domain/model/kernel"
	"pizzahome/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// PaymentReminderJob nudges customers whose online orders have been sitting
// in awaiting_payment for too long. Runs every minute and reminds each order
// at most once.
type PaymentReminderJob struct {
	handler    queries.GetStaleAwaitingPaymentQueryHandler
	notifier   ports.Notifier
	staleAfter time.Duration
	cron       *cron.Cron
	logger     *slog.Logger

	mu       sync.Mutex
	reminded map[kernel.OrderID]struct{}
}

// NewPaymentReminderJob creates a new job for sending payment reminders.
// staleAfter is how long an order may wait for payment before the reminder.
func NewPaymentReminderJob(
	handler queries.GetStaleAwaitingPaymentQueryHandler,
	notifier ports.Notifier,
	staleAfter time.Duration,
	logger *slog.Logger,
) *PaymentReminderJob {
	return &PaymentReminderJob{
		handler:    handler,
		notifier:   notifier,
		staleAfter: staleAfter,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "payment_reminder_job"),
		reminded:   make(map[kernel.OrderID]struct{}),
	}
}

// Start begins the payment reminder job to run at the top of every minute.
func (j *PaymentReminderJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		if err := j.run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Payment reminder job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Payment reminder job started (running every minute)")
	return nil
}

// Stop stops the payment reminder job.
func (j *PaymentReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Payment reminder job stopped")
}

func (j *PaymentReminderJob) run(ctx context.Context) error {
	query, err := queries.NewGetStaleAwaitingPaymentQuery(time.Now().Add(-j.staleAfter))
	if err != nil {
		return err
	}

	stale, err := j.handler.Handle(ctx, query)
	if err != nil {
		return err
	}

	for _, entry := range stale {
		if !j.markReminded(entry.OrderID) {
			continue
		}

		text := fmt.Sprintf(
			"Reminder: we are still waiting for your payment for order %s (Rs %d). "+
				"Please complete the transfer and upload your screenshot, or reply COD to switch to cash on delivery.",
			entry.OrderID, entry.Total)
		if err = j.notifier.Send(ctx, entry.CustomerPhone, text); err != nil {
			j.logger.ErrorContext(ctx, "Failed to send payment reminder",
				"order_id", entry.OrderID, "error", err)
			continue
		}

		j.logger.InfoContext(ctx, "Payment reminder sent",
			"order_id", entry.OrderID, "customer_phone", entry.CustomerPhone)
	}

	return nil
}

// markReminded records the order and reports whether this is its first
// reminder.
func (j *PaymentReminderJob) markReminded(id kernel.OrderID) bool {
	j.mu.Lock()
	defer j.mu.Unlock()

	if _, seen := j.reminded[id]; seen {
		return false
	}
	j.reminded[id] = struct{}{}
	return true
}
