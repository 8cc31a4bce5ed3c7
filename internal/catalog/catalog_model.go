package catalog

import "strings"

// Product status values as stored in the catalog.
const (
	StatusActive   = "ACTIVE"
	StatusArchived = "ARCHIVED"
	StatusDraft    = "DRAFT"
)

// Product is the authoritative catalog entry. Pricing code treats it as a
// read-only snapshot; a nil PriceMinor means the product is priced only via
// variants, a nil Stock means stock is not tracked.
type Product struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Slug       string    `json:"slug"`
	Currency   string    `json:"currency"`
	PriceMinor *int64    `json:"price,omitempty"`
	Status     string    `json:"status"`
	Stock      *int32    `json:"stock,omitempty"`
	Variants   []Variant `json:"variants,omitempty"`
}

// Variant is a purchasable configuration of a Product. PriceMinor, when
// set, overrides the parent product's base price.
type Variant struct {
	ID         string `json:"id"`
	Size       string `json:"size"`
	Color      string `json:"color,omitempty"`
	AgeGroup   string `json:"ageGroup"`
	Gender     string `json:"gender"`
	PriceMinor *int64 `json:"price,omitempty"`
	Stock      *int32 `json:"stock,omitempty"`
}

func (p *Product) Orderable() bool {
	return p.Status == StatusActive
}

func (p *Product) VariantByID(id string) *Variant {
	for i := range p.Variants {
		if p.Variants[i].ID == id {
			return &p.Variants[i]
		}
	}
	return nil
}

// Label renders a human-readable variant description, skipping empty parts,
// e.g. "L / Black / adult / unisex".
func (v *Variant) Label() string {
	parts := make([]string, 0, 4)
	for _, s := range []string{v.Size, v.Color, v.AgeGroup, v.Gender} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " / ")
}
