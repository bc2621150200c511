// Package session holds the per-customer conversational state: the cart
// being built, the cached address and delivery fee, and the id of an order
// waiting for an online payment.
//
// Sessions are transient. They live in an in-process store and are lost on
// restart; a customer can always rebuild a cart, while placed orders stay
// durable in the order store. The store serializes access per customer so two
// rapid messages from the same phone cannot interleave cart updates.
package session
