package conversation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pizzahome/internal/core/application/usecases/commands"
	"pizzahome/internal/core/application/usecases/queries"
	"pizzahome/internal/core/domain/model/kernel"
	"pizzahome/internal/core/domain/model/order"
	"pizzahome/internal/core/domain/model/session"
	"pizzahome/internal/core/domain/services"
	"pizzahome/internal/pkg/errs"
)

const (
	replyLocationReceived = "Got your location. Please confirm your address or type the full address."
	replyUsagePrompt      = `Great - send me the item name (e.g., "Large Chicken Tikka") or type MENU to see options.`
	replyItemNotFound     = "Sorry, I couldn't find that item in the menu. Please type the exact name or type MENU to view options."
	replyCartEmptyAdd     = "Your cart is empty. Send an item name to add."
	replyCartEmptyPay     = "Your cart is empty. Add items before choosing payment."
	replyCartEmptyPickup  = "Your cart is empty. Add items before choosing pickup."
	replyShareAddress     = "Please share your delivery address (text) or tap Share Location."
	replyAddressFirst     = "Please share your delivery address first so I can calculate delivery charges."
	replyUploadHint       = "Please use the file upload option in WhatsApp to send your payment screenshot. Use the endpoint /upload/screenshot with your Order-ID in the form data if using REST client."
	replyTrackPrompt      = "Please send your Order ID to track (e.g., PH-12345)."
	replyOrderNotFound    = "Order not found. Please check the Order ID."
	replyHelp             = "Sorry, I didn't understand that. You can: 1) Type MENU 2) Type an item name (e.g., 'Large Pepperoni') 3) Type CHECKOUT to pay or COD 4) Type TRACK and Order ID to track"
)

// greetingKeywords open the ordering flow when present anywhere in the
// message. A bare "menu" is excluded so the catalog rule can answer it, and
// "pizza" only counts alone, otherwise every pizza item message would be
// swallowed before reaching the cart rule.
var greetingKeywords = []string{"order", "menu", "place order", "order karna", "order krna"}

// rule is one (predicate, handler) pair of the intent cascade. Predicates see
// the lower-cased message plus the session, since the address intent depends
// on the awaiting-address flag.
type rule struct {
	intent  string
	matches func(sess *session.Session, lower string) bool
	respond func(ctx context.Context, sess *session.Session, msg Inbound, lower string) ([]string, error)
}

func (r *Router) buildRules() []rule {
	return []rule{
		{
			intent: "greeting",
			matches: func(_ *session.Session, lower string) bool {
				return lower == "pizza" ||
					(lower != "menu" && containsAny(lower, greetingKeywords))
			},
			respond: func(context.Context, *session.Session, Inbound, string) ([]string, error) {
				return []string{replyUsagePrompt}, nil
			},
		},
		{
			intent: "menu",
			matches: func(_ *session.Session, lower string) bool {
				return lower == "menu"
			},
			respond: func(context.Context, *session.Session, Inbound, string) ([]string, error) {
				return []string{r.catalogs.Catalog().Render()}, nil
			},
		},
		{
			intent:  "add-item",
			matches: r.mentionsMenuItem,
			respond: r.addToCart,
		},
		{
			intent: "checkout",
			matches: func(_ *session.Session, lower string) bool {
				return lower == "checkout"
			},
			respond: r.checkout,
		},
		{
			intent: "cod",
			matches: func(_ *session.Session, lower string) bool {
				return lower == "cod" || strings.Contains(lower, "cash")
			},
			respond: r.chooseCOD,
		},
		{
			intent: "pickup",
			matches: func(_ *session.Session, lower string) bool {
				return lower == "pickup"
			},
			respond: r.pickup,
		},
		{
			intent: "address",
			matches: func(sess *session.Session, lower string) bool {
				return sess.AwaitingAddress() ||
					strings.Contains(lower, "confirm address") ||
					strings.Contains(lower, "address")
			},
			respond: r.recordAddress,
		},
		{
			intent: "online",
			matches: func(_ *session.Session, lower string) bool {
				return lower == "online"
			},
			respond: r.chooseOnline,
		},
		{
			intent: "upload",
			matches: func(_ *session.Session, lower string) bool {
				return strings.HasPrefix(lower, "upload") || strings.Contains(lower, "screenshot")
			},
			respond: func(context.Context, *session.Session, Inbound, string) ([]string, error) {
				return []string{replyUploadHint}, nil
			},
		},
		{
			intent: "track",
			matches: func(_ *session.Session, lower string) bool {
				return lower == "track" || strings.Contains(lower, "track order")
			},
			respond: func(context.Context, *session.Session, Inbound, string) ([]string, error) {
				return []string{replyTrackPrompt}, nil
			},
		},
		{
			intent: "order-status",
			matches: func(_ *session.Session, lower string) bool {
				return kernel.OrderTokenPattern.MatchString(strings.ToUpper(lower))
			},
			respond: r.reportOrderStatus,
		},
		{
			intent: "help",
			matches: func(*session.Session, string) bool {
				return true
			},
			respond: func(context.Context, *session.Session, Inbound, string) ([]string, error) {
				return []string{replyHelp}, nil
			},
		},
	}
}

// mentionsMenuItem reports whether the message names a size or anything from
// the current catalog. Single-word containment covers messages like "pepsi"
// against the full item name "Pepsi 1.5L".
func (r *Router) mentionsMenuItem(_ *session.Session, lower string) bool {
	for _, word := range []string{"large", "medium", "small"} {
		if strings.Contains(lower, word) {
			return true
		}
	}

	for _, item := range r.catalogs.Catalog().Items() {
		name := strings.ToLower(item.Name())
		if strings.Contains(lower, name) {
			return true
		}
		if first, _, ok := strings.Cut(name, " "); ok && strings.Contains(lower, first) {
			return true
		}
	}
	return false
}

func (r *Router) addToCart(_ context.Context, sess *session.Session, msg Inbound, _ string) ([]string, error) {
	resolution, err := r.menuResolver.Resolve(r.catalogs.Catalog(), msg.Text)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return []string{replyItemNotFound}, nil
		}
		return nil, err
	}

	item, err := session.NewCartItem(resolution.Item.Name(), resolution.Size, resolution.Price)
	if err != nil {
		return nil, err
	}
	if err = sess.AddToCart(item); err != nil {
		return nil, err
	}

	reply := fmt.Sprintf("Added to cart: %s %s = Rs %d.\nCurrent total: Rs %d.\nReply CHECKOUT to proceed or add more items.",
		resolution.Size, resolution.Item.Name(), resolution.Price, sess.Subtotal())
	return []string{reply}, nil
}

func (r *Router) checkout(_ context.Context, sess *session.Session, _ Inbound, _ string) ([]string, error) {
	if sess.CartIsEmpty() {
		return []string{replyCartEmptyAdd}, nil
	}

	reply := fmt.Sprintf("Your subtotal is Rs %d. Please share delivery address or type PICKUP.\nPayment options: 1) Cash on Delivery 2) Online Payment (send screenshot after transfer). Reply COD or ONLINE.",
		sess.Subtotal())
	return []string{reply}, nil
}

func (r *Router) chooseCOD(_ context.Context, sess *session.Session, _ Inbound, _ string) ([]string, error) {
	if sess.CartIsEmpty() {
		return []string{replyCartEmptyPay}, nil
	}

	sess.MarkAwaitingAddress()
	return []string{replyShareAddress}, nil
}

// pickup places a zero-fee cash order on the spot and resets the
// conversation; pickup needs no address or payment round-trip.
func (r *Router) pickup(ctx context.Context, sess *session.Session, msg Inbound, _ string) ([]string, error) {
	if sess.CartIsEmpty() {
		return []string{replyCartEmptyPickup}, nil
	}

	lines, err := cartLines(sess.Cart())
	if err != nil {
		return nil, err
	}

	cmd, err := commands.NewPlaceOrderCommand(kernel.NewOrderID(), msg.Sender,
		sess.CustomerName(), lines, 0, "PICKUP", sess.LastLocation(), "",
		order.PaymentCOD)
	if err != nil {
		return nil, err
	}

	placed, err := r.placeOrder.Handle(ctx, cmd)
	if err != nil {
		return nil, err
	}

	r.dispatcher.Schedule(services.RiderSummary(placed))
	r.sessions.Remove(msg.Sender)

	reply := fmt.Sprintf("Order %s confirmed for pickup. ETA ~45 minutes. We have notified the kitchen and rider.",
		placed.ID())
	return []string{reply}, nil
}

// recordAddress treats the whole message as the delivery address, prices the
// zone and quotes the grand total.
func (r *Router) recordAddress(_ context.Context, sess *session.Session, msg Inbound, _ string) ([]string, error) {
	address := strings.TrimSpace(msg.Text)
	sess.SetAddress(address)

	matched := r.zoneResolver.Resolve(r.zones.Zones(), address)
	sess.SetDeliveryFee(matched.Fee())

	subtotal := sess.Subtotal()
	reply := fmt.Sprintf("Delivery Charges: Rs %d (Zone: %s)\nSubtotal: Rs %d\nGrand Total: Rs %d\nPayment: COD or ONLINE? Reply COD or ONLINE.",
		matched.Fee(), matched.Name(), subtotal, subtotal+matched.Fee())
	return []string{reply}, nil
}

// chooseOnline opens a bank-transfer order. The order is created up front in
// awaiting_payment so the screenshot upload and the payment webhook have an
// id to attach to; the session keeps it as the pending order and the cart
// empties so a repeated ONLINE cannot place the same items twice.
func (r *Router) chooseOnline(ctx context.Context, sess *session.Session, msg Inbound, _ string) ([]string, error) {
	if sess.CartIsEmpty() {
		return []string{replyCartEmptyPay}, nil
	}

	fee, ok := sess.DeliveryFee()
	if !ok {
		return []string{replyAddressFirst}, nil
	}

	lines, err := cartLines(sess.Cart())
	if err != nil {
		return nil, err
	}

	matched := r.zoneResolver.Resolve(r.zones.Zones(), sess.Address())
	id := kernel.NewOrderID()
	cmd, err := commands.NewPlaceOrderCommand(id, msg.Sender, sess.CustomerName(),
		lines, fee, sess.Address(), sess.LastLocation(), matched.Name(),
		order.PaymentOnlineManual)
	if err != nil {
		return nil, err
	}

	placed, err := r.placeOrder.Handle(ctx, cmd)
	if err != nil {
		return nil, err
	}

	sess.SetPendingOrderID(placed.ID())
	sess.ClearCart()
	return []string{bankInstructions(placed.Total(), placed.ID())}, nil
}

func (r *Router) reportOrderStatus(ctx context.Context, _ *session.Session, msg Inbound, lower string) ([]string, error) {
	token := kernel.OrderTokenPattern.FindString(strings.ToUpper(lower))
	id, err := kernel.OrderIDFromString(token)
	if err != nil {
		return []string{replyOrderNotFound}, nil
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return nil, err
	}

	status, err := r.getOrder.Handle(ctx, query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return []string{replyOrderNotFound}, nil
		}
		return nil, err
	}

	reply := fmt.Sprintf("Order %s status: %s. Payment: %s. Total: Rs %d. Placed at %s UTC.",
		status.OrderID, status.Status, status.PaymentStatus, status.Total,
		status.CreatedAt.UTC().Format("2006-01-02T15:04:05"))
	return []string{reply}, nil
}

func bankInstructions(total int, id kernel.OrderID) string {
	return fmt.Sprintf("Please make payment to:\nBank: XYZ Bank\nAccount: Pizza Home\nAccount Number: 1234-5678-9012\nAccount Title: Pizza Home\nAmount: Rs %d\nAfter payment, please send a screenshot using UPLOAD SCREENSHOT button or by sending the image here.\nYour Order ID: %s",
		total, id)
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

func cartLines(items []session.CartItem) ([]order.Line, error) {
	lines := make([]order.Line, 0, len(items))
	for _, item := range items {
		line, err := order.NewLine(item.Name(), item.Size(), item.UnitPrice(), item.Qty())
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}
