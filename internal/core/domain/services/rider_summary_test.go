package services_test

import (
	"testing"
	"time"

	"pizzahome/internal/core/domain/model/kernel"
	"pizzahome/internal/core/domain/model/menu"
	"pizzahome/internal/core/domain/model/order"
	"pizzahome/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRiderSummary(t *testing.T) {
	id, err := kernel.OrderIDFromString("PH-1234ABCD")
	require.NoError(t, err)

	line1, err := order.NewLine("Chicken Tikka", menu.SizeLarge, 950, 2)
	require.NoError(t, err)
	line2, err := order.NewLine("Pepsi 1.5L", menu.SizeOne, 250, 1)
	require.NoError(t, err)

	o, err := order.NewOrder(id, "+923001234567", "", []order.Line{line1, line2},
		120, "House 9, Near DHQ", nil, "Near DHQ", order.PaymentCOD, time.Now())
	require.NoError(t, err)

	got := services.RiderSummary(o)

	want := "New Order: PH-1234ABCD\n" +
		"Customer: +923001234567\n" +
		"Address: House 9, Near DHQ\n" +
		"Items:\n" +
		"- 2x Large Chicken Tikka = Rs 950\n" +
		"- 1x OneSize Pepsi 1.5L = Rs 250\n" +
		"Total: Rs 2170\n" +
		"Delivery Time: approx 45 minutes"
	assert.Equal(t, want, got)
}
