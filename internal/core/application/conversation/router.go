// Package conversation routes inbound chat messages to intents. The router is
// the only writer of session state: it acquires the sender's session for the
// duration of one message, classifies the message against an ordered rule
// list, and produces the outbound replies. Rule order is part of the contract;
// a message matching an earlier rule never reaches a later one.
package conversation

import (
	"context"
	"log/slog"
	"strings"

	"pizzahome/internal/core/application/usecases/commands"
	"pizzahome/internal/core/application/usecases/queries"
	"pizzahome/internal/core/domain/model/kernel"
	"pizzahome/internal/core/domain/model/session"
	"pizzahome/internal/core/domain/services"
	"pizzahome/internal/core/ports"
	"pizzahome/internal/pkg/errs"
)

// Inbound is one message received from the chat provider. Location-type
// messages carry a point instead of text.
type Inbound struct {
	Sender   string
	Text     string
	Location *kernel.GeoPoint
}

// Router classifies inbound messages and drives the ordering conversation.
type Router struct {
	sessions *session.Store
	catalogs ports.CatalogProvider
	zones    ports.ZoneTableProvider

	menuResolver services.MenuResolver
	zoneResolver services.ZoneResolver

	placeOrder commands.PlaceOrderCommandHandler
	getOrder   queries.GetOrderQueryHandler
	dispatcher ports.RiderDispatcher

	rules  []rule
	logger *slog.Logger
}

// NewRouter wires the conversation router.
func NewRouter(
	sessions *session.Store,
	catalogs ports.CatalogProvider,
	zones ports.ZoneTableProvider,
	placeOrder commands.PlaceOrderCommandHandler,
	getOrder queries.GetOrderQueryHandler,
	dispatcher ports.RiderDispatcher,
	logger *slog.Logger,
) *Router {
	r := &Router{
		sessions:     sessions,
		catalogs:     catalogs,
		zones:        zones,
		menuResolver: services.NewMenuResolver(),
		zoneResolver: services.NewZoneResolver(),
		placeOrder:   placeOrder,
		getOrder:     getOrder,
		dispatcher:   dispatcher,
		logger:       logger.With("component", "conversation"),
	}
	r.rules = r.buildRules()
	return r
}

// IntentPriority returns the intent names in evaluation order. Classification
// depends on this order, so it is exposed for tests to pin down.
func (r *Router) IntentPriority() []string {
	names := make([]string, len(r.rules))
	for i, rl := range r.rules {
		names[i] = rl.intent
	}
	return names
}

// Handle routes one inbound message and returns the replies to send back to
// the customer. The sender's session is held exclusively for the whole call,
// so two rapid messages from the same customer serialize.
func (r *Router) Handle(ctx context.Context, msg Inbound) ([]string, error) {
	if msg.Sender == "" {
		return nil, errs.NewValueIsRequiredError("sender")
	}

	sess, release := r.sessions.Acquire(msg.Sender)
	defer release()

	if msg.Location != nil {
		sess.RememberLocation(*msg.Location)
		return []string{replyLocationReceived}, nil
	}

	lower := strings.ToLower(strings.TrimSpace(msg.Text))
	for _, rl := range r.rules {
		if !rl.matches(sess, lower) {
			continue
		}

		r.logger.DebugContext(ctx, "routing message",
			"sender", msg.Sender, "intent", rl.intent)
		return rl.respond(ctx, sess, msg, lower)
	}

	return []string{replyHelp}, nil
}
