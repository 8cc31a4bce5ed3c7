// Package checkout re-derives authoritative prices for untrusted cart
// submissions and computes the deterministic order identity used to
// de-duplicate retried checkouts.
package checkout

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/andrii-maglovanyi/mandrii-sub004/internal/catalog"
	"github.com/andrii-maglovanyi/mandrii-sub004/internal/shipping"
)

// MaxLineQuantity bounds a single cart line. Stock figures and the order
// items column are int32, and line totals multiply into int64; quantities
// past this bound could truncate on either path.
const MaxLineQuantity = math.MaxInt32

// ValidateCart transforms untrusted cart lines into trusted ValidatedItems.
// Prices always come from the catalog snapshot; client price fields are
// ignored. The function is pure apart from the lookup calls: it mutates no
// stock, persists nothing, and calls no gateway.
func ValidateCart(ctx context.Context, lines []CartLine, dest shipping.Zone, lookup CatalogLookup) (*ValidatedCart, error) {
	if len(lines) == 0 {
		return nil, &LineError{Kind: KindEmptyCart, Line: -1}
	}

	cart := &ValidatedCart{
		Items: make([]ValidatedItem, 0, len(lines)),
	}

	for i, line := range lines {
		product, err := lookup.ProductByID(ctx, line.ProductID)
		if err != nil {
			return nil, fmt.Errorf("catalog lookup for %q: %w", line.ProductID, err)
		}
		if product == nil || !product.Orderable() {
			return nil, &LineError{Kind: KindProductNotFound, Line: i, ProductID: line.ProductID}
		}

		var resolved *catalog.Variant
		var variantLabel string
		if line.VariantID != "" {
			resolved = product.VariantByID(line.VariantID)
			if resolved == nil {
				return nil, &LineError{Kind: KindVariantNotFound, Line: i, ProductID: line.ProductID}
			}
			variantLabel = resolved.Label()
		}

		price := product.PriceMinor
		if resolved != nil && resolved.PriceMinor != nil {
			price = resolved.PriceMinor
		}
		if price == nil {
			return nil, &LineError{Kind: KindPriceUnavailable, Line: i, ProductID: line.ProductID}
		}

		if line.Quantity <= 0 || line.Quantity > MaxLineQuantity {
			return nil, &LineError{Kind: KindInvalidQuantity, Line: i, ProductID: line.ProductID}
		}

		// Stock is governed by the variant when one is selected, by the
		// product otherwise; a nil figure means untracked. Compare in
		// int64 so an oversized quantity can never wrap past the guard.
		stock := product.Stock
		if resolved != nil {
			stock = resolved.Stock
		}
		if stock != nil && int64(line.Quantity) > int64(*stock) {
			return nil, &LineError{Kind: KindInsufficientStock, Line: i, ProductID: line.ProductID}
		}

		if cart.Currency == "" {
			cart.Currency = product.Currency
		} else if cart.Currency != product.Currency {
			return nil, &LineError{Kind: KindCurrencyMismatch, Line: i, ProductID: line.ProductID}
		}

		cart.Items = append(cart.Items, ValidatedItem{
			Currency:       product.Currency,
			Name:           product.Name,
			UnitPriceMinor: *price,
			Product:        product,
			ProductID:      product.ID,
			Quantity:       line.Quantity,
			Variant:        resolved,
			VariantLabel:   variantLabel,
		})
		cart.TotalMinor += *price * int64(line.Quantity)
	}

	cart.IdempotencyKey = idempotencyKey(cart.Items, cart.Currency, dest)
	return cart, nil
}

// idempotencyKey digests a canonical serialization of the cart: entries
// sorted by (productId, variantId), so two logically identical carts
// submitted in different order share the same key, while any change in
// item set, quantity, resolved price, currency or destination changes it.
func idempotencyKey(items []ValidatedItem, currency string, dest shipping.Zone) string {
	entries := make([]string, 0, len(items))
	for _, item := range items {
		variantID := ""
		if item.Variant != nil {
			variantID = item.Variant.ID
		}
		entries = append(entries, fmt.Sprintf("%s:%s:%d:%d",
			item.ProductID, variantID, item.Quantity, item.UnitPriceMinor))
	}
	sort.Strings(entries)

	payload := strings.Join(entries, "|") + "|" + currency + "|" + string(dest)
	sum := sha256.Sum256([]byte(payload))
	return hex.EncodeToString(sum[:])
}
