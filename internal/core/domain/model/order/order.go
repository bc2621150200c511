package order

import (
	"errors"
	"fmt"
	"time"

	"pizzahome/internal/core/domain/model/kernel"
	"pizzahome/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a placed pizza order. It is the aggregate root that manages
// the order lifecycle from checkout through payment to confirmation.
//
// Order follows these invariants:
//   - Must have a valid PH- identifier
//   - Must contain at least one line
//   - Total always equals subtotal plus delivery fee
//   - Monetary fields and lines never change after creation; only payment
//     state, the screenshot reference and the fulfillment status move
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique PH- identifier for the order
	id kernel.OrderID

	// customerPhone is the ordering customer's phone number
	customerPhone string

	// customerName is optional and may be empty
	customerName string

	// lines are the purchased items, fixed at creation
	lines []Line

	// subtotal is the sum of all line totals in rupees
	subtotal int

	// deliveryFee is the zone fee in rupees (zero allowed)
	deliveryFee int

	// total is always subtotal + deliveryFee
	total int

	// address is the free-text delivery address (may be empty for pickup)
	address string

	// coords are optional shared-location coordinates
	coords *kernel.GeoPoint

	// zoneName is the delivery zone the fee was resolved from
	zoneName string

	// paymentMethod is how the customer chose to pay
	paymentMethod PaymentMethod

	// paymentStatus is the current payment state
	paymentStatus PaymentStatus

	// screenshotPath references an uploaded payment screenshot (empty if none)
	screenshotPath string

	// status is the current fulfillment state
	status Status

	// createdAt is the placement time in UTC
	createdAt time.Time

	// verifiedAt is set when an admin verifies the payment (nil otherwise)
	verifiedAt *time.Time

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order with validation. This is the only way to place
// a valid order.
//
// The subtotal is computed from the lines and the total from subtotal plus
// deliveryFee. Payment starts as pending. The initial fulfillment status is
// derived from the payment method: cash on delivery confirms immediately,
// everything else waits for payment.
//
// customerName may be empty and coords may be nil; both are optional.
func NewOrder(
	id kernel.OrderID,
	customerPhone string,
	customerName string,
	lines []Line,
	deliveryFee int,
	address string,
	coords *kernel.GeoPoint,
	zoneName string,
	method PaymentMethod,
	createdAt time.Time,
) (*Order, error) {
	order := &Order{
		customerName:  customerName,
		address:       address,
		zoneName:      zoneName,
		paymentStatus: PaymentPending,
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerPhone(customerPhone),
		order.setLines(lines),
		order.setDeliveryFee(deliveryFee),
		order.setCoords(coords),
		order.setPaymentMethod(method),
	); err != nil {
		return nil, err
	}

	order.total = order.subtotal + order.deliveryFee

	if method == PaymentCOD {
		order.status = StatusConfirmed
	} else {
		order.status = StatusAwaitingPayment
	}

	return order, nil
}

// RestoreOrder rehydrates an Order from persistence. All fields are taken as
// stored; the only extra check is the monetary invariant, which guards
// against a corrupted row.
func RestoreOrder(
	id kernel.OrderID,
	customerPhone string,
	customerName string,
	lines []Line,
	subtotal int,
	deliveryFee int,
	total int,
	address string,
	coords *kernel.GeoPoint,
	zoneName string,
	method PaymentMethod,
	paymentStatus PaymentStatus,
	screenshotPath string,
	status Status,
	createdAt time.Time,
	verifiedAt *time.Time,
) (*Order, error) {
	order := &Order{
		customerName:   customerName,
		address:        address,
		zoneName:       zoneName,
		screenshotPath: screenshotPath,
		createdAt:      createdAt.UTC(),
		verifiedAt:     verifiedAt,
		isConstructed:  true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerPhone(customerPhone),
		order.setLines(lines),
		order.setDeliveryFee(deliveryFee),
		order.setCoords(coords),
		order.setPaymentMethod(method),
		paymentStatus.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if total != subtotal+deliveryFee {
		return nil, errs.NewValueIsInvalidErrorWithCause("total",
			fmt.Errorf("%d does not equal subtotal %d plus delivery fee %d", total, subtotal, deliveryFee))
	}
	if subtotal != order.subtotal {
		return nil, errs.NewValueIsInvalidErrorWithCause("subtotal",
			fmt.Errorf("stored %d does not match line totals %d", subtotal, order.subtotal))
	}

	order.total = total
	order.paymentStatus = paymentStatus
	order.status = status

	return order, nil
}

// Validate ensures the Order was properly constructed through a factory method.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's PH- identifier.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// CustomerPhone returns the ordering customer's phone number.
func (o *Order) CustomerPhone() string {
	return o.customerPhone
}

// CustomerName returns the optional customer name (may be empty).
func (o *Order) CustomerName() string {
	return o.customerName
}

// Lines returns a copy of the order lines.
func (o *Order) Lines() []Line {
	lines := make([]Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// Subtotal returns the sum of all line totals in rupees.
func (o *Order) Subtotal() int {
	return o.subtotal
}

// DeliveryFee returns the zone delivery fee in rupees.
func (o *Order) DeliveryFee() int {
	return o.deliveryFee
}

// Total returns subtotal plus delivery fee.
func (o *Order) Total() int {
	return o.total
}

// Address returns the free-text delivery address.
func (o *Order) Address() string {
	return o.address
}

// Coords returns optional shared-location coordinates, nil if none were sent.
func (o *Order) Coords() *kernel.GeoPoint {
	return o.coords
}

// ZoneName returns the delivery zone the fee was resolved from.
func (o *Order) ZoneName() string {
	return o.zoneName
}

// PaymentMethod returns how the customer chose to pay.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// PaymentStatus returns the current payment state.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// ScreenshotPath returns the stored payment screenshot reference, empty if none.
func (o *Order) ScreenshotPath() string {
	return o.screenshotPath
}

// Status returns the current fulfillment status.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the placement time in UTC.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// VerifiedAt returns the admin verification time, nil if never verified.
func (o *Order) VerifiedAt() *time.Time {
	return o.verifiedAt
}

// RecordPayment applies a payment signal to the order. When screenshotPath is
// non-empty it is stored and the screenshot branch of the status derivation
// table is taken; otherwise the signal-only branch applies. See the Status
// documentation for the full table.
//
// Lines and monetary fields are never touched.
func (o *Order) RecordPayment(p PaymentStatus, screenshotPath string) error {
	if err := p.Validate(); err != nil {
		return err
	}

	if screenshotPath != "" {
		o.screenshotPath = screenshotPath
	}
	o.paymentStatus = p
	o.status = DeriveOnPayment(p, screenshotPath != "")

	return nil
}

// ConfirmManual records an admin approving the payment: payment becomes paid,
// status becomes confirmed and the verification time is stamped.
func (o *Order) ConfirmManual(now time.Time) {
	o.paymentStatus = PaymentPaid
	o.status = StatusConfirmed
	verifiedAt := now.UTC()
	o.verifiedAt = &verifiedAt
}

// FailManual records an admin rejecting the payment. The payment becomes
// failed and the status follows the signal-only branch of the derivation
// table; nothing forces a separate status here.
func (o *Order) FailManual() {
	o.paymentStatus = PaymentFailed
	o.status = DeriveOnPayment(PaymentFailed, false)
}

// setID validates and sets the order's identifier.
func (o *Order) setID(id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setCustomerPhone validates and sets the customer's phone number.
func (o *Order) setCustomerPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("customerPhone")
	}
	o.customerPhone = phone
	return nil
}

// setLines validates and sets the order lines, computing the subtotal.
func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("lines")
	}

	subtotal := 0
	for i, line := range lines {
		if err := line.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("lines[%d]", i), err)
		}
		subtotal += line.Total()
	}

	o.lines = make([]Line, len(lines))
	copy(o.lines, lines)
	o.subtotal = subtotal
	return nil
}

// setDeliveryFee validates and sets the delivery fee. Zero is a valid fee.
func (o *Order) setDeliveryFee(fee int) error {
	if fee < 0 {
		return errs.NewValueIsInvalidErrorWithCause("deliveryFee",
			fmt.Errorf("%d is negative", fee))
	}
	o.deliveryFee = fee
	return nil
}

// setCoords validates and sets optional coordinates.
func (o *Order) setCoords(coords *kernel.GeoPoint) error {
	if coords == nil {
		return nil
	}
	if err := coords.Validate(); err != nil {
		return err
	}
	o.coords = coords
	return nil
}

// setPaymentMethod validates and sets the payment method.
func (o *Order) setPaymentMethod(method PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	o.paymentMethod = method
	return nil
}
