package catalog

import (
	"context"
	"database/sql"
	"fmt"
)

type Repository interface {
	// GetByID returns (nil, nil) when no product exists under id.
	GetByID(ctx context.Context, id string) (*Product, error)
	List(ctx context.Context, status string) ([]Product, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByID(ctx context.Context, id string) (*Product, error) {
	var p Product
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, slug, currency, price_minor, status, stock
		 FROM products WHERE id = $1`,
		id,
	).Scan(&p.ID, &p.Name, &p.Slug, &p.Currency, &nullInt64{&p.PriceMinor}, &p.Status, &nullInt32{&p.Stock})
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, size, color, age_group, gender, price_minor, stock
		 FROM product_variants WHERE product_id = $1 ORDER BY id`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query variants: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var v Variant
		var color sql.NullString
		if err := rows.Scan(&v.ID, &v.Size, &color, &v.AgeGroup, &v.Gender, &nullInt64{&v.PriceMinor}, &nullInt32{&v.Stock}); err != nil {
			return nil, fmt.Errorf("failed to scan variant: %w", err)
		}
		v.Color = color.String
		p.Variants = append(p.Variants, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read variants: %w", err)
	}

	return &p, nil
}

func (r *repository) List(ctx context.Context, status string) ([]Product, error) {
	query := `SELECT id, name, slug, currency, price_minor, status, stock
		 FROM products`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Slug, &p.Currency, &nullInt64{&p.PriceMinor}, &p.Status, &nullInt32{&p.Stock}); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// nullInt64 scans a nullable column into a *int64 field, keeping nil for NULL.
type nullInt64 struct {
	dest **int64
}

func (n *nullInt64) Scan(src any) error {
	var v sql.NullInt64
	if err := v.Scan(src); err != nil {
		return err
	}
	if v.Valid {
		*n.dest = &v.Int64
	} else {
		*n.dest = nil
	}
	return nil
}

type nullInt32 struct {
	dest **int32
}

func (n *nullInt32) Scan(src any) error {
	var v sql.NullInt32
	if err := v.Scan(src); err != nil {
		return err
	}
	if v.Valid {
		*n.dest = &v.Int32
	} else {
		*n.dest = nil
	}
	return nil
}
