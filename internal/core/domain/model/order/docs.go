// Package order provides the Order aggregate root and its lifecycle for the
// ordering system. An order is the durable record of a purchase: a frozen copy
// of the cart, the priced totals, and a payment/fulfillment status pair that
// evolves through named transitions.
//
// Key business rules:
//   - Total is fixed at creation as subtotal + delivery fee and never drifts;
//     recomputing it from the lines and fee must always reproduce it
//   - Status follows payment signals through an explicit derivation table
//     (payment status and screenshot presence decide the fulfillment status)
//   - Transitions are deliberately non-monotonic: external signals (admin
//     override, gateway webhook) can arrive in any order, and the aggregate
//     does not reject "backwards" movement such as paid to failed
//   - Orders are never deleted; manual verification stamps a timestamp instead
package order
