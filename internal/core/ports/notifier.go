package ports

import "context"

// Notifier sends an outbound message to one recipient over the messaging
// provider. Delivery is fire-and-forget from the caller's point of view: an
// error means the provider rejected the send, not that the message failed to
// reach the phone.
type Notifier interface {
	Send(ctx context.Context, recipient, text string) error
}

// RiderDispatcher schedules an asynchronous rider notification. Schedule
// never blocks the calling request; a notification that cannot be queued is
// dropped and logged, never retried.
type RiderDispatcher interface {
	Schedule(orderSummary string)
}
