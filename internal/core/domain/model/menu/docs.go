// Package menu provides the catalog side of the domain model: menu items with
// their per-size price tables, the enumerated size type with its token
// detection and fallback rules, and the immutable catalog loaded at startup
// and replaceable wholesale by an admin operation.
//
// Key business rules:
//   - Every item carries at least one price entry; entry order is significant
//     because the last price fallback is "first defined entry"
//   - Size detection scans free text for size tokens and normalizes them to a
//     canonical label (Small, Medium, Large)
//   - Price resolution falls back in a fixed, tested order: requested size,
//     OneSize, Medium, first defined entry
package menu
