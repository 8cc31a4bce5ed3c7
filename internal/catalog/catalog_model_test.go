package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrii-maglovanyi/mandrii-sub004/internal/catalog"
)

func TestVariantLabel(t *testing.T) {
	v := catalog.Variant{Size: "L", Color: "Black", AgeGroup: "adult", Gender: "unisex"}
	assert.Equal(t, "L / Black / adult / unisex", v.Label())

	noColor := catalog.Variant{Size: "M", AgeGroup: "kids", Gender: "female"}
	assert.Equal(t, "M / kids / female", noColor.Label())

	empty := catalog.Variant{}
	assert.Equal(t, "", empty.Label())
}

func TestProductOrderable(t *testing.T) {
	assert.True(t, (&catalog.Product{Status: catalog.StatusActive}).Orderable())
	assert.False(t, (&catalog.Product{Status: catalog.StatusArchived}).Orderable())
	assert.False(t, (&catalog.Product{Status: catalog.StatusDraft}).Orderable())
}

func TestVariantByID(t *testing.T) {
	p := catalog.Product{
		Variants: []catalog.Variant{
			{ID: "v1", Size: "S"},
			{ID: "v2", Size: "M"},
		},
	}

	found := p.VariantByID("v2")
	assert.NotNil(t, found)
	assert.Equal(t, "M", found.Size)

	assert.Nil(t, p.VariantByID("v9"))
}
