package checkout

import (
	"context"

	"github.com/andrii-maglovanyi/mandrii-sub004/internal/catalog"
)

// CartLine is the untrusted client request for one cart position.
type CartLine struct {
	ProductID string `json:"productId" validate:"required"`
	VariantID string `json:"variantId"`
	Quantity  int    `json:"quantity"`

	// Some storefront builds still send a price with each line. It is
	// decoded so older clients do not break, and never read.
	PriceMinor int64 `json:"price,omitempty"`
}

// ValidatedItem is a trusted cart position: every field is resolved from
// catalog data, never from the client request.
type ValidatedItem struct {
	Currency       string
	Name           string
	UnitPriceMinor int64
	Product        *catalog.Product
	ProductID      string
	Quantity       int
	Variant        *catalog.Variant
	VariantLabel   string
}

type ValidatedCart struct {
	Items          []ValidatedItem
	TotalMinor     int64
	Currency       string
	IdempotencyKey string
}

// CatalogLookup supplies the catalog snapshot the engine prices against.
// Implementations return (nil, nil) for an unknown product id.
type CatalogLookup interface {
	ProductByID(ctx context.Context, id string) (*catalog.Product, error)
}
