package checkout_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrii-maglovanyi/mandrii-sub004/internal/catalog"
	"github.com/andrii-maglovanyi/mandrii-sub004/internal/checkout"
	"github.com/andrii-maglovanyi/mandrii-sub004/internal/shipping"
)

type fakeCatalog struct {
	products map[string]*catalog.Product
	err      error
}

func (f *fakeCatalog) ProductByID(_ context.Context, id string) (*catalog.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.products[id], nil
}

func i64(v int64) *int64 { return &v }
func i32(v int32) *int32 { return &v }

func newCatalog() *fakeCatalog {
	return &fakeCatalog{products: map[string]*catalog.Product{
		"tee": {
			ID:         "tee",
			Name:       "Mandrii Tee",
			Currency:   "EUR",
			PriceMinor: i64(2500),
			Status:     catalog.StatusActive,
			Variants: []catalog.Variant{
				{ID: "tee-l", Size: "L", AgeGroup: "adult", Gender: "unisex", Stock: i32(5)},
				{ID: "tee-xl", Size: "XL", AgeGroup: "adult", Gender: "unisex", PriceMinor: i64(2700)},
			},
		},
		"mug": {
			ID:         "mug",
			Name:       "Mandrii Mug",
			Currency:   "EUR",
			PriceMinor: i64(1200),
			Status:     catalog.StatusActive,
			Stock:      i32(3),
		},
		"print": {
			ID:       "print",
			Name:     "City Print",
			Currency: "EUR",
			Status:   catalog.StatusActive,
		},
		"hoodie-uah": {
			ID:         "hoodie-uah",
			Name:       "Hoodie",
			Currency:   "UAH",
			PriceMinor: i64(150000),
			Status:     catalog.StatusActive,
		},
		"archived": {
			ID:         "archived",
			Name:       "Old Tee",
			Currency:   "EUR",
			PriceMinor: i64(2000),
			Status:     catalog.StatusArchived,
		},
	}}
}

func TestValidateCart(t *testing.T) {
	ctx := context.Background()
	cat := newCatalog()

	t.Run("total_from_catalog_prices_only", func(t *testing.T) {
		lines := []checkout.CartLine{
			// Client-supplied prices are lies and must be ignored.
			{ProductID: "tee", VariantID: "tee-l", Quantity: 2, PriceMinor: 1},
			{ProductID: "mug", Quantity: 3, PriceMinor: 1},
		}

		cart, err := checkout.ValidateCart(ctx, lines, shipping.ZoneEU, cat)
		require.NoError(t, err)

		assert.EqualValues(t, 2*2500+3*1200, cart.TotalMinor)
		assert.Equal(t, "EUR", cart.Currency)
		require.Len(t, cart.Items, 2)
		assert.EqualValues(t, 2500, cart.Items[0].UnitPriceMinor)
		assert.Equal(t, "Mandrii Tee", cart.Items[0].Name)
		assert.Equal(t, "L / adult / unisex", cart.Items[0].VariantLabel)
	})

	t.Run("variant_price_overrides_base", func(t *testing.T) {
		cart, err := checkout.ValidateCart(ctx, []checkout.CartLine{
			{ProductID: "tee", VariantID: "tee-xl", Quantity: 1},
		}, shipping.ZoneEU, cat)
		require.NoError(t, err)
		assert.EqualValues(t, 2700, cart.TotalMinor)
	})

	t.Run("product_not_found_names_line", func(t *testing.T) {
		_, err := checkout.ValidateCart(ctx, []checkout.CartLine{
			{ProductID: "mug", Quantity: 1},
			{ProductID: "ghost", Quantity: 1},
		}, shipping.ZoneEU, cat)

		var lineErr *checkout.LineError
		require.ErrorAs(t, err, &lineErr)
		assert.Equal(t, checkout.KindProductNotFound, lineErr.Kind)
		assert.Equal(t, 1, lineErr.Line)
		assert.Equal(t, "ghost", lineErr.ProductID)
	})

	t.Run("archived_product_is_not_orderable", func(t *testing.T) {
		_, err := checkout.ValidateCart(ctx, []checkout.CartLine{
			{ProductID: "archived", Quantity: 1},
		}, shipping.ZoneEU, cat)

		var lineErr *checkout.LineError
		require.ErrorAs(t, err, &lineErr)
		assert.Equal(t, checkout.KindProductNotFound, lineErr.Kind)
	})

	t.Run("variant_not_found", func(t *testing.T) {
		_, err := checkout.ValidateCart(ctx, []checkout.CartLine{
			{ProductID: "tee", VariantID: "tee-xs", Quantity: 1},
		}, shipping.ZoneEU, cat)

		var lineErr *checkout.LineError
		require.ErrorAs(t, err, &lineErr)
		assert.Equal(t, checkout.KindVariantNotFound, lineErr.Kind)
		assert.Equal(t, 0, lineErr.Line)
	})

	t.Run("price_unavailable", func(t *testing.T) {
		_, err := checkout.ValidateCart(ctx, []checkout.CartLine{
			{ProductID: "print", Quantity: 1},
		}, shipping.ZoneEU, cat)

		var lineErr *checkout.LineError
		require.ErrorAs(t, err, &lineErr)
		assert.Equal(t, checkout.KindPriceUnavailable, lineErr.Kind)
	})

	t.Run("invalid_quantity", func(t *testing.T) {
		for _, qty := range []int{0, -1} {
			_, err := checkout.ValidateCart(ctx, []checkout.CartLine{
				{ProductID: "mug", Quantity: qty},
			}, shipping.ZoneEU, cat)

			var lineErr *checkout.LineError
			require.ErrorAs(t, err, &lineErr)
			assert.Equal(t, checkout.KindInvalidQuantity, lineErr.Kind)
		}
	})

	t.Run("insufficient_stock_tracked", func(t *testing.T) {
		_, err := checkout.ValidateCart(ctx, []checkout.CartLine{
			{ProductID: "mug", Quantity: 4},
		}, shipping.ZoneEU, cat)

		var lineErr *checkout.LineError
		require.ErrorAs(t, err, &lineErr)
		assert.Equal(t, checkout.KindInsufficientStock, lineErr.Kind)
	})

	t.Run("oversized_quantity_cannot_wrap_past_stock_guard", func(t *testing.T) {
		// (1<<32)+1 truncates to 1 in 32 bits, which would slip under
		// the mug's tracked stock of 3.
		_, err := checkout.ValidateCart(ctx, []checkout.CartLine{
			{ProductID: "mug", Quantity: (1 << 32) + 1},
		}, shipping.ZoneEU, cat)

		var lineErr *checkout.LineError
		require.ErrorAs(t, err, &lineErr)
		assert.Equal(t, checkout.KindInvalidQuantity, lineErr.Kind)

		// At the cap itself the quantity is valid but still has to beat
		// the stock figure honestly.
		_, err = checkout.ValidateCart(ctx, []checkout.CartLine{
			{ProductID: "mug", Quantity: checkout.MaxLineQuantity},
		}, shipping.ZoneEU, cat)

		require.ErrorAs(t, err, &lineErr)
		assert.Equal(t, checkout.KindInsufficientStock, lineErr.Kind)
	})

	t.Run("quantity_cap_applies_to_untracked_stock_too", func(t *testing.T) {
		_, err := checkout.ValidateCart(ctx, []checkout.CartLine{
			{ProductID: "tee", VariantID: "tee-xl", Quantity: checkout.MaxLineQuantity + 1},
		}, shipping.ZoneEU, cat)

		var lineErr *checkout.LineError
		require.ErrorAs(t, err, &lineErr)
		assert.Equal(t, checkout.KindInvalidQuantity, lineErr.Kind)
	})

	t.Run("variant_stock_governs_when_variant_selected", func(t *testing.T) {
		_, err := checkout.ValidateCart(ctx, []checkout.CartLine{
			{ProductID: "tee", VariantID: "tee-l", Quantity: 6},
		}, shipping.ZoneEU, cat)

		var lineErr *checkout.LineError
		require.ErrorAs(t, err, &lineErr)
		assert.Equal(t, checkout.KindInsufficientStock, lineErr.Kind)
	})

	t.Run("untracked_stock_allows_any_positive_quantity", func(t *testing.T) {
		cart, err := checkout.ValidateCart(ctx, []checkout.CartLine{
			{ProductID: "tee", VariantID: "tee-xl", Quantity: 500},
		}, shipping.ZoneEU, cat)
		require.NoError(t, err)
		assert.EqualValues(t, 500*2700, cart.TotalMinor)
	})

	t.Run("currency_mismatch", func(t *testing.T) {
		_, err := checkout.ValidateCart(ctx, []checkout.CartLine{
			{ProductID: "mug", Quantity: 1},
			{ProductID: "hoodie-uah", Quantity: 1},
		}, shipping.ZoneEU, cat)

		var lineErr *checkout.LineError
		require.ErrorAs(t, err, &lineErr)
		assert.Equal(t, checkout.KindCurrencyMismatch, lineErr.Kind)
		assert.Equal(t, 1, lineErr.Line)
	})

	t.Run("empty_cart", func(t *testing.T) {
		_, err := checkout.ValidateCart(ctx, nil, shipping.ZoneEU, cat)

		var lineErr *checkout.LineError
		require.ErrorAs(t, err, &lineErr)
		assert.Equal(t, checkout.KindEmptyCart, lineErr.Kind)
		assert.Equal(t, -1, lineErr.Line)
	})

	t.Run("lookup_failure_propagates_untyped", func(t *testing.T) {
		broken := &fakeCatalog{err: errors.New("connection reset")}
		_, err := checkout.ValidateCart(ctx, []checkout.CartLine{
			{ProductID: "mug", Quantity: 1},
		}, shipping.ZoneEU, broken)

		require.Error(t, err)
		var lineErr *checkout.LineError
		assert.False(t, errors.As(err, &lineErr))
	})
}

func TestIdempotencyKey(t *testing.T) {
	ctx := context.Background()
	cat := newCatalog()

	lines := []checkout.CartLine{
		{ProductID: "tee", VariantID: "tee-l", Quantity: 2},
		{ProductID: "mug", Quantity: 1},
	}

	base, err := checkout.ValidateCart(ctx, lines, shipping.ZoneEU, cat)
	require.NoError(t, err)
	require.NotEmpty(t, base.IdempotencyKey)
	assert.Len(t, base.IdempotencyKey, 64)

	t.Run("stable_across_line_order", func(t *testing.T) {
		reordered, err := checkout.ValidateCart(ctx, []checkout.CartLine{
			{ProductID: "mug", Quantity: 1},
			{ProductID: "tee", VariantID: "tee-l", Quantity: 2},
		}, shipping.ZoneEU, cat)
		require.NoError(t, err)
		assert.Equal(t, base.IdempotencyKey, reordered.IdempotencyKey)
	})

	t.Run("quantity_changes_key", func(t *testing.T) {
		changed, err := checkout.ValidateCart(ctx, []checkout.CartLine{
			{ProductID: "tee", VariantID: "tee-l", Quantity: 3},
			{ProductID: "mug", Quantity: 1},
		}, shipping.ZoneEU, cat)
		require.NoError(t, err)
		assert.NotEqual(t, base.IdempotencyKey, changed.IdempotencyKey)
	})

	t.Run("variant_changes_key", func(t *testing.T) {
		changed, err := checkout.ValidateCart(ctx, []checkout.CartLine{
			{ProductID: "tee", VariantID: "tee-xl", Quantity: 2},
			{ProductID: "mug", Quantity: 1},
		}, shipping.ZoneEU, cat)
		require.NoError(t, err)
		assert.NotEqual(t, base.IdempotencyKey, changed.IdempotencyKey)
	})

	t.Run("item_set_changes_key", func(t *testing.T) {
		changed, err := checkout.ValidateCart(ctx, []checkout.CartLine{
			{ProductID: "tee", VariantID: "tee-l", Quantity: 2},
		}, shipping.ZoneEU, cat)
		require.NoError(t, err)
		assert.NotEqual(t, base.IdempotencyKey, changed.IdempotencyKey)
	})

	t.Run("destination_changes_key", func(t *testing.T) {
		changed, err := checkout.ValidateCart(ctx, lines, shipping.ZoneROW, cat)
		require.NoError(t, err)
		assert.NotEqual(t, base.IdempotencyKey, changed.IdempotencyKey)
	})

	t.Run("client_price_field_does_not_affect_key", func(t *testing.T) {
		withLies, err := checkout.ValidateCart(ctx, []checkout.CartLine{
			{ProductID: "tee", VariantID: "tee-l", Quantity: 2, PriceMinor: 1},
			{ProductID: "mug", Quantity: 1, PriceMinor: 99999},
		}, shipping.ZoneEU, cat)
		require.NoError(t, err)
		assert.Equal(t, base.IdempotencyKey, withLies.IdempotencyKey)
	})
}
