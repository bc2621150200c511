package menu_test

import (
	"testing"

	"pizzahome/internal/core/domain/model/menu"
	"pizzahome/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, name string, prices []menu.PricePoint) menu.Item {
	t.Helper()
	it, err := menu.NewItem(name, prices)
	require.NoError(t, err)
	return it
}

func TestNewItem_Validation(t *testing.T) {
	_, err := menu.NewItem("", []menu.PricePoint{{Label: menu.SizeOne, Amount: 100}})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = menu.NewItem("Fries", nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = menu.NewItem("Fries", []menu.PricePoint{{Label: menu.SizeOne, Amount: 0}})
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = menu.NewItem("Fries", []menu.PricePoint{
		{Label: menu.SizeOne, Amount: 100},
		{Label: menu.SizeOne, Amount: 120},
	})
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestDetectSize(t *testing.T) {
	tests := []struct {
		text  string
		size  menu.Size
		found bool
	}{
		{"Large Chicken Tikka", menu.SizeLarge, true},
		{"large chicken tikka", menu.SizeLarge, true},
		{"MEDIUM pepperoni", menu.SizeMedium, true},
		{"small margherita", menu.SizeSmall, true},
		{"L chicken tikka", menu.SizeLarge, true},
		{"fries", "", false},
		// Full words win over single-letter abbreviations buried in other words.
		{"medium cola", menu.SizeMedium, true},
	}

	for _, tc := range tests {
		size, found := menu.DetectSize(tc.text)
		assert.Equal(t, tc.found, found, "text %q", tc.text)
		if tc.found {
			assert.Equal(t, tc.size, size, "text %q", tc.text)
		}
	}
}

func TestItem_ResolvePrice_FallbackOrder(t *testing.T) {
	pizza := mustItem(t, "Margherita Pizza", []menu.PricePoint{
		{Label: menu.SizeSmall, Amount: 300},
		{Label: menu.SizeMedium, Amount: 550},
		{Label: menu.SizeLarge, Amount: 800},
	})
	fries := mustItem(t, "Fries", []menu.PricePoint{
		{Label: menu.SizeOne, Amount: 120},
	})
	custom := mustItem(t, "Family Deal", []menu.PricePoint{
		{Label: "Solo", Amount: 500},
		{Label: "Duo", Amount: 900},
	})

	t.Run("requested_size_present", func(t *testing.T) {
		size, amount := pizza.ResolvePrice(menu.SizeLarge, true)
		assert.Equal(t, menu.SizeLarge, size)
		assert.Equal(t, 800, amount)
	})

	t.Run("requested_size_missing_falls_back_to_one_size", func(t *testing.T) {
		size, amount := fries.ResolvePrice(menu.SizeLarge, true)
		assert.Equal(t, menu.SizeOne, size)
		assert.Equal(t, 120, amount)
	})

	t.Run("requested_size_missing_falls_back_to_medium", func(t *testing.T) {
		threeSizes := mustItem(t, "Deal", []menu.PricePoint{
			{Label: menu.SizeSmall, Amount: 100},
			{Label: menu.SizeMedium, Amount: 200},
		})
		size, amount := threeSizes.ResolvePrice(menu.SizeLarge, true)
		assert.Equal(t, menu.SizeMedium, size)
		assert.Equal(t, 200, amount)
	})

	t.Run("requested_size_missing_falls_back_to_first_entry", func(t *testing.T) {
		size, amount := custom.ResolvePrice(menu.SizeLarge, true)
		assert.Equal(t, menu.Size("Solo"), size)
		assert.Equal(t, 500, amount)
	})

	t.Run("no_size_prefers_medium", func(t *testing.T) {
		size, amount := pizza.ResolvePrice("", false)
		assert.Equal(t, menu.SizeMedium, size)
		assert.Equal(t, 550, amount)
	})

	t.Run("no_size_one_size_item", func(t *testing.T) {
		size, amount := fries.ResolvePrice("", false)
		assert.Equal(t, menu.SizeOne, size)
		assert.Equal(t, 120, amount)
	})

	t.Run("no_size_custom_labels_first_entry", func(t *testing.T) {
		size, amount := custom.ResolvePrice("", false)
		assert.Equal(t, menu.Size("Solo"), size)
		assert.Equal(t, 500, amount)
	})
}

func TestNewCatalog(t *testing.T) {
	fries := mustItem(t, "Fries", []menu.PricePoint{{Label: menu.SizeOne, Amount: 120}})

	t.Run("rejects_empty", func(t *testing.T) {
		_, err := menu.NewCatalog(nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_duplicate_names", func(t *testing.T) {
		_, err := menu.NewCatalog([]menu.Item{fries, fries})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("preserves_definition_order", func(t *testing.T) {
		pepsi := mustItem(t, "Pepsi 1.5L", []menu.PricePoint{{Label: menu.SizeOne, Amount: 250}})
		c, err := menu.NewCatalog([]menu.Item{fries, pepsi})
		require.NoError(t, err)

		items := c.Items()
		require.Len(t, items, 2)
		assert.Equal(t, "Fries", items[0].Name())
		assert.Equal(t, "Pepsi 1.5L", items[1].Name())
	})
}

func TestCatalog_Render(t *testing.T) {
	pizza := mustItem(t, "Margherita Pizza", []menu.PricePoint{
		{Label: menu.SizeSmall, Amount: 300},
		{Label: menu.SizeMedium, Amount: 550},
	})
	fries := mustItem(t, "Fries", []menu.PricePoint{{Label: menu.SizeOne, Amount: 120}})

	c, err := menu.NewCatalog([]menu.Item{pizza, fries})
	require.NoError(t, err)

	assert.Equal(t,
		"Menu:\n- Margherita Pizza (Small: Rs 300, Medium: Rs 550)\n- Fries (OneSize: Rs 120)",
		c.Render())
}
