// Package whatsapp sends outbound chat messages. The stub notifier logs each
// message instead of calling a provider; swap it for a Twilio/360dialog/Meta
// client without touching callers, which only see ports.Notifier.
package whatsapp

import (
	"context"
	"log/slog"

	"pizzahome/internal/pkg/errs"
)

// StubNotifier writes every outbound message to the log. Send never fails on
// delivery since there is no delivery; it only rejects empty recipients.
type StubNotifier struct {
	logger *slog.Logger
}

// NewStubNotifier creates a log-backed notifier.
func NewStubNotifier(logger *slog.Logger) *StubNotifier {
	return &StubNotifier{logger: logger.With("component", "whatsapp")}
}

// Send logs the message in the "[WHATSAPP -> recipient] text" shape.
func (n *StubNotifier) Send(ctx context.Context, recipient, text string) error {
	if recipient == "" {
		return errs.NewValueIsRequiredError("recipient")
	}

	n.logger.InfoContext(ctx, "[WHATSAPP -> "+recipient+"] "+text)
	return nil
}
