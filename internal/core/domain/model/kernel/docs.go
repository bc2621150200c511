// Package kernel provides core domain primitives shared across the ordering
// system's domain model.
//
// The package includes:
//   - OrderID: a value object for the human-shareable order token (PH- prefix
//     plus 8 uppercase hex characters) with validation and text scanning support
//   - GeoPoint: a value object for validated latitude/longitude coordinates
//     attached to orders and shared-location messages
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are immutable and
// thread-safe, making them suitable for concurrent use.
package kernel
