package session

import (
	"pizzahome/internal/core/domain/model/kernel"
)

// Session is the mutable conversational state for one customer. It is only
// ever touched while holding the store's per-customer lock, so the type
// itself carries no synchronization.
type Session struct {
	customerID   string
	customerName string

	cart     []CartItem
	subtotal int

	address         string
	awaitingAddress bool

	deliveryFee    int
	hasDeliveryFee bool

	pendingOrderID *kernel.OrderID
	lastLocation   *kernel.GeoPoint
}

func newSession(customerID string) *Session {
	return &Session{customerID: customerID}
}

// CustomerID returns the provider-level sender id the session is keyed by.
func (s *Session) CustomerID() string {
	return s.customerID
}

// CustomerName returns the optional customer name.
func (s *Session) CustomerName() string {
	return s.customerName
}

// SetCustomerName records the customer's display name when the provider
// supplies one.
func (s *Session) SetCustomerName(name string) {
	s.customerName = name
}

// AddToCart appends an item and recomputes the cached subtotal.
func (s *Session) AddToCart(item CartItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	s.cart = append(s.cart, item)
	s.recomputeSubtotal()
	return nil
}

// Cart returns a copy of the cart contents.
func (s *Session) Cart() []CartItem {
	cart := make([]CartItem, len(s.cart))
	copy(cart, s.cart)
	return cart
}

// CartIsEmpty reports whether nothing has been added yet.
func (s *Session) CartIsEmpty() bool {
	return len(s.cart) == 0
}

// Subtotal returns the cached sum of cart line totals.
func (s *Session) Subtotal() int {
	return s.subtotal
}

// ClearCart empties the cart and resets the subtotal, keeping the rest of
// the session (address, pending order id) intact.
func (s *Session) ClearCart() {
	s.cart = nil
	s.subtotal = 0
}

// Address returns the delivery address the customer last confirmed.
func (s *Session) Address() string {
	return s.address
}

// SetAddress stores the delivery address and clears the awaiting flag.
func (s *Session) SetAddress(address string) {
	s.address = address
	s.awaitingAddress = false
}

// AwaitingAddress reports whether the next free-text message should be
// treated as an address.
func (s *Session) AwaitingAddress() bool {
	return s.awaitingAddress
}

// MarkAwaitingAddress flags the session so the next free-text message is
// read as the delivery address.
func (s *Session) MarkAwaitingAddress() {
	s.awaitingAddress = true
}

// DeliveryFee returns the resolved zone fee and whether one has been
// resolved yet. A fee of zero is a real fee, not "unset".
func (s *Session) DeliveryFee() (int, bool) {
	return s.deliveryFee, s.hasDeliveryFee
}

// SetDeliveryFee caches the fee resolved from the customer's address.
func (s *Session) SetDeliveryFee(fee int) {
	s.deliveryFee = fee
	s.hasDeliveryFee = true
}

// PendingOrderID returns the id of an order created for this session that is
// still waiting for an online payment, or false if none.
func (s *Session) PendingOrderID() (kernel.OrderID, bool) {
	if s.pendingOrderID == nil {
		return kernel.OrderID{}, false
	}
	return *s.pendingOrderID, true
}

// SetPendingOrderID remembers the order created for the online-payment flow.
func (s *Session) SetPendingOrderID(id kernel.OrderID) {
	s.pendingOrderID = &id
}

// LastLocation returns the most recent shared-location message, nil if none.
func (s *Session) LastLocation() *kernel.GeoPoint {
	return s.lastLocation
}

// RememberLocation caches a shared-location message on the session.
func (s *Session) RememberLocation(point kernel.GeoPoint) {
	s.lastLocation = &point
}

func (s *Session) recomputeSubtotal() {
	subtotal := 0
	for _, item := range s.cart {
		subtotal += item.LineTotal()
	}
	s.subtotal = subtotal
}
