// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the pizza shop. It implements logic that
// doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - MenuResolver: fuzzy matching of free-text messages to catalog items
//   - ZoneResolver: mapping a delivery address to a zone and its fee
//   - RiderSummary: the fixed-format order summary sent to the rider
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
