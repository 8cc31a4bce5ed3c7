package catalog_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrii-maglovanyi/mandrii-sub004/internal/catalog"
)

func TestRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := catalog.NewRepository(db)
	ctx := context.Background()

	t.Run("product_with_variants", func(t *testing.T) {
		productRows := sqlmock.NewRows([]string{"id", "name", "slug", "currency", "price_minor", "status", "stock"}).
			AddRow("tshirt-1", "Mandrii Tee", "mandrii-tee", "EUR", 2500, "ACTIVE", nil)
		mock.ExpectQuery("SELECT id, name, slug, currency, price_minor, status, stock").
			WithArgs("tshirt-1").
			WillReturnRows(productRows)

		variantRows := sqlmock.NewRows([]string{"id", "size", "color", "age_group", "gender", "price_minor", "stock"}).
			AddRow("v1", "L", "Black", "adult", "unisex", nil, 10).
			AddRow("v2", "XL", nil, "adult", "unisex", 2700, nil)
		mock.ExpectQuery("SELECT id, size, color, age_group, gender, price_minor, stock").
			WithArgs("tshirt-1").
			WillReturnRows(variantRows)

		p, err := repo.GetByID(ctx, "tshirt-1")
		require.NoError(t, err)
		require.NotNil(t, p)

		assert.Equal(t, "Mandrii Tee", p.Name)
		require.NotNil(t, p.PriceMinor)
		assert.EqualValues(t, 2500, *p.PriceMinor)
		assert.Nil(t, p.Stock)

		require.Len(t, p.Variants, 2)
		assert.Equal(t, "Black", p.Variants[0].Color)
		assert.Nil(t, p.Variants[0].PriceMinor)
		require.NotNil(t, p.Variants[0].Stock)
		assert.EqualValues(t, 10, *p.Variants[0].Stock)

		assert.Equal(t, "", p.Variants[1].Color)
		require.NotNil(t, p.Variants[1].PriceMinor)
		assert.EqualValues(t, 2700, *p.Variants[1].PriceMinor)
		assert.Nil(t, p.Variants[1].Stock)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("absent_product_is_nil_nil", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name, slug, currency, price_minor, status, stock").
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug", "currency", "price_minor", "status", "stock"}))

		p, err := repo.GetByID(ctx, "missing")
		require.NoError(t, err)
		assert.Nil(t, p)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}
