package services_test

import (
	"errors"
	"testing"

	"pizzahome/internal/core/domain/model/menu"
	"pizzahome/internal/core/domain/services"
	"pizzahome/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultCatalog(t *testing.T) menu.Catalog {
	t.Helper()

	pizza := func(name string, s, m, l int) menu.Item {
		item, err := menu.NewItem(name, []menu.PricePoint{
			{Label: menu.SizeSmall, Amount: s},
			{Label: menu.SizeMedium, Amount: m},
			{Label: menu.SizeLarge, Amount: l},
		})
		require.NoError(t, err)
		return item
	}
	oneSize := func(name string, price int) menu.Item {
		item, err := menu.NewItem(name, []menu.PricePoint{
			{Label: menu.SizeOne, Amount: price},
		})
		require.NoError(t, err)
		return item
	}

	catalog, err := menu.NewCatalog([]menu.Item{
		pizza("Chicken Tikka", 350, 650, 950),
		pizza("Pepperoni", 400, 700, 1000),
		pizza("Margherita", 300, 550, 800),
		oneSize("Fries", 120),
		oneSize("Pepsi 1.5L", 250),
	})
	require.NoError(t, err)
	return catalog
}

func TestMenuResolver_SizedPizzas(t *testing.T) {
	resolver := services.NewMenuResolver()
	catalog := defaultCatalog(t)

	tests := []struct {
		text      string
		wantName  string
		wantSize  menu.Size
		wantPrice int
	}{
		{"Small Chicken Tikka", "Chicken Tikka", menu.SizeSmall, 350},
		{"Medium Chicken Tikka", "Chicken Tikka", menu.SizeMedium, 650},
		{"Large Chicken Tikka", "Chicken Tikka", menu.SizeLarge, 950},
		{"Small Pepperoni", "Pepperoni", menu.SizeSmall, 400},
		{"Medium Pepperoni", "Pepperoni", menu.SizeMedium, 700},
		{"Large Pepperoni", "Pepperoni", menu.SizeLarge, 1000},
		{"Small Margherita", "Margherita", menu.SizeSmall, 300},
		{"Medium Margherita", "Margherita", menu.SizeMedium, 550},
		{"Large Margherita", "Margherita", menu.SizeLarge, 800},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			res, err := resolver.Resolve(catalog, tt.text)

			require.NoError(t, err)
			assert.Equal(t, tt.wantName, res.Item.Name())
			assert.Equal(t, tt.wantSize, res.Size)
			assert.Equal(t, tt.wantPrice, res.Price)
		})
	}
}

func TestMenuResolver_SizeFallbacks(t *testing.T) {
	resolver := services.NewMenuResolver()
	catalog := defaultCatalog(t)

	t.Run("no size token falls back to Medium", func(t *testing.T) {
		res, err := resolver.Resolve(catalog, "Chicken Tikka")

		require.NoError(t, err)
		assert.Equal(t, menu.SizeMedium, res.Size)
		assert.Equal(t, 650, res.Price)
	})

	t.Run("one-size item always resolves its single price", func(t *testing.T) {
		res, err := resolver.Resolve(catalog, "Fries")

		require.NoError(t, err)
		assert.Equal(t, menu.SizeOne, res.Size)
		assert.Equal(t, 120, res.Price)
	})

	t.Run("requested size absent from one-size item resolves OneSize", func(t *testing.T) {
		res, err := resolver.Resolve(catalog, "Small Pepsi 1.5L")

		require.NoError(t, err)
		assert.Equal(t, "Pepsi 1.5L", res.Item.Name())
		assert.Equal(t, menu.SizeOne, res.Size)
		assert.Equal(t, 250, res.Price)
	})
}

func TestMenuResolver_SubstringFallback(t *testing.T) {
	resolver := services.NewMenuResolver()
	catalog := defaultCatalog(t)

	t.Run("long message containing an item name still matches", func(t *testing.T) {
		res, err := resolver.Resolve(catalog,
			"salam bhai please send one large chicken tikka to my place")

		require.NoError(t, err)
		assert.Equal(t, "Chicken Tikka", res.Item.Name())
		assert.Equal(t, menu.SizeLarge, res.Size)
		assert.Equal(t, 950, res.Price)
	})

	t.Run("substring pass walks the catalog in definition order", func(t *testing.T) {
		alpha, err := menu.NewItem("Alpha Roll", []menu.PricePoint{{Label: menu.SizeOne, Amount: 200}})
		require.NoError(t, err)
		beta, err := menu.NewItem("Beta Roll", []menu.PricePoint{{Label: menu.SizeOne, Amount: 300}})
		require.NoError(t, err)
		catalog, err := menu.NewCatalog([]menu.Item{alpha, beta})
		require.NoError(t, err)

		// Both names appear; the text is long enough that neither clears the
		// fuzzy cutoff, and Beta Roll appears first in the text.
		res, err := resolver.Resolve(catalog,
			"qqqq qqqq beta roll qqqq qqqq alpha roll qqqq qqqq qqqq")

		require.NoError(t, err)
		assert.Equal(t, "Alpha Roll", res.Item.Name())
	})
}

func TestMenuResolver_NotFound(t *testing.T) {
	resolver := services.NewMenuResolver()
	catalog := defaultCatalog(t)

	_, err := resolver.Resolve(catalog, "sushi platter")

	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrObjectNotFound))
}
