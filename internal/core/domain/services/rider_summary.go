package services

import (
	"fmt"
	"strings"

	"pizzahome/internal/core/domain/model/order"
)

// riderETAMinutes is the constant delivery estimate quoted to the rider.
const riderETAMinutes = 45

// RiderSummary renders the fixed-format order summary sent to the rider
// when an order is confirmed. The line format is part of the rider-facing
// contract and mirrors what the kitchen staff are used to reading.
func RiderSummary(o *order.Order) string {
	var b strings.Builder

	fmt.Fprintf(&b, "New Order: %s\n", o.ID())
	fmt.Fprintf(&b, "Customer: %s\n", o.CustomerPhone())
	fmt.Fprintf(&b, "Address: %s\n", o.Address())
	b.WriteString("Items:\n")
	for _, line := range o.Lines() {
		fmt.Fprintf(&b, "- %dx %s %s = Rs %d\n", line.Qty(), line.Size(), line.Name(), line.UnitPrice())
	}
	fmt.Fprintf(&b, "Total: Rs %d\n", o.Total())
	fmt.Fprintf(&b, "Delivery Time: approx %d minutes", riderETAMinutes)

	return b.String()
}
