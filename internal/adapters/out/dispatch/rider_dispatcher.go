// Package dispatch delivers rider notifications in the background. Order
// placement must never wait on the rider's chat provider, so summaries go
// through a bounded queue drained by worker goroutines.
package dispatch

import (
	"context"
	"log/slog"
	"sync"
)

// sender is the subset of the notifier the dispatcher needs.
type sender interface {
	Send(ctx context.Context, recipient, text string) error
}

// RiderDispatcher queues order summaries for the configured rider number.
// Schedule never blocks: when the queue is full the summary is dropped and
// logged, keeping the customer-facing request path unconditionally fast.
type RiderDispatcher struct {
	notifier   sender
	riderPhone string

	queue  chan string
	wg     sync.WaitGroup
	logger *slog.Logger

	closeOnce sync.Once
}

// NewRiderDispatcher starts workers draining the notification queue.
func NewRiderDispatcher(notifier sender, riderPhone string, workers, queueSize int, logger *slog.Logger) *RiderDispatcher {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 1 {
		queueSize = 1
	}

	d := &RiderDispatcher{
		notifier:   notifier,
		riderPhone: riderPhone,
		queue:      make(chan string, queueSize),
		logger:     logger.With("component", "rider_dispatch"),
	}

	d.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go d.work()
	}
	return d
}

// Schedule enqueues one summary without blocking. Failure to notify the rider
// never propagates back to the caller; a full queue is logged and the summary
// dropped.
func (d *RiderDispatcher) Schedule(orderSummary string) {
	select {
	case d.queue <- orderSummary:
	default:
		d.logger.Warn("rider notification dropped, queue full",
			"rider", d.riderPhone)
	}
}

// Close stops accepting summaries and waits for queued ones to be sent.
func (d *RiderDispatcher) Close() {
	d.closeOnce.Do(func() {
		close(d.queue)
	})
	d.wg.Wait()
}

func (d *RiderDispatcher) work() {
	defer d.wg.Done()

	for summary := range d.queue {
		if err := d.notifier.Send(context.Background(), d.riderPhone, summary); err != nil {
			d.logger.Error("rider notification failed",
				"rider", d.riderPhone, "error", err)
		}
	}
}
