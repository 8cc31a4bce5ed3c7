package order

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
)

type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Repository interface {
	WithTx(tx *sql.Tx) Repository

	CreateOrder(ctx context.Context, o *Order) error
	CreateOrderItem(ctx context.Context, item *OrderItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*Order, error)
	GetByIdempotencyKey(ctx context.Context, key string) (*Order, error)
	GetItems(ctx context.Context, orderID uuid.UUID) ([]OrderItem, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Order, error)
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, paymentStatus, status string, paidAt, cancelledAt sql.NullTime) error

	DecrementProductStock(ctx context.Context, productID string, qty int32) (bool, error)
	DecrementVariantStock(ctx context.Context, variantID string, qty int32) (bool, error)
}

type orderRepository struct {
	db dbtx
}

func NewRepository(db *sql.DB) Repository {
	return &orderRepository{db: db}
}

func (r *orderRepository) WithTx(tx *sql.Tx) Repository {
	return &orderRepository{db: tx}
}

const orderColumns = `
	id, order_number, user_id, email, status, payment_status, currency,
	subtotal_minor, shipping_minor, total_minor, country, shipping_zone,
	idempotency_key, payment_session_id, payment_url, paid_at, cancelled_at, placed_at`

func (r *orderRepository) CreateOrder(ctx context.Context, o *Order) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO orders (
			id, order_number, user_id, email, status, payment_status, currency,
			subtotal_minor, shipping_minor, total_minor, country, shipping_zone,
			idempotency_key, payment_session_id, payment_url, placed_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NOW())
		RETURNING placed_at
	`,
		o.ID, o.OrderNumber, o.UserID, o.Email, o.Status, o.PaymentStatus, o.Currency,
		o.SubtotalMinor, o.ShippingMinor, o.TotalMinor, o.Country, o.ShippingZone,
		o.IdempotencyKey, o.PaymentSessionID, o.PaymentURL,
	).Scan(&o.PlacedAt)
}

func (r *orderRepository) CreateOrderItem(ctx context.Context, item *OrderItem) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO order_items (
			id, order_id, product_id, variant_id, name_snapshot, variant_label,
			unit_price_minor, quantity, total_minor
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`,
		item.ID, item.OrderID, item.ProductID, item.VariantID, item.NameSnapshot,
		item.VariantLabel, item.UnitPriceMinor, item.Quantity, item.TotalMinor,
	)
	return err
}

func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*Order, error) {
	row := r.db.QueryRowContext(ctx, `SELECT`+orderColumns+` FROM orders WHERE id = $1`, id)
	return scanOrder(row)
}

// GetByIdempotencyKey returns (nil, nil) when no order carries the key, so
// the caller can distinguish "first submission" from a database failure.
func (r *orderRepository) GetByIdempotencyKey(ctx context.Context, key string) (*Order, error) {
	row := r.db.QueryRowContext(ctx, `SELECT`+orderColumns+` FROM orders WHERE idempotency_key = $1`, key)
	o, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return o, err
}

func (r *orderRepository) GetItems(ctx context.Context, orderID uuid.UUID) ([]OrderItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, order_id, product_id, variant_id, name_snapshot, variant_label,
		       unit_price_minor, quantity, total_minor
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []OrderItem
	for rows.Next() {
		var it OrderItem
		if err := rows.Scan(
			&it.ID, &it.OrderID, &it.ProductID, &it.VariantID, &it.NameSnapshot,
			&it.VariantLabel, &it.UnitPriceMinor, &it.Quantity, &it.TotalMinor,
		); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *orderRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]Order, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT`+orderColumns+` FROM orders WHERE user_id = $1 ORDER BY placed_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []Order
	for rows.Next() {
		o, err := scanOrderRows(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}
	return orders, rows.Err()
}

func (r *orderRepository) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, paymentStatus, status string, paidAt, cancelledAt sql.NullTime) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE orders
		SET payment_status = $2, status = $3, paid_at = $4, cancelled_at = $5
		WHERE id = $1
	`, id, paymentStatus, status, paidAt, cancelledAt)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

// DecrementProductStock is guarded: the update applies only while enough
// stock remains, so two concurrent checkouts cannot oversell.
func (r *orderRepository) DecrementProductStock(ctx context.Context, productID string, qty int32) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE products
		SET stock = stock - $2
		WHERE id = $1 AND stock >= $2
	`, productID, qty)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *orderRepository) DecrementVariantStock(ctx context.Context, variantID string, qty int32) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE product_variants
		SET stock = stock - $2
		WHERE id = $1 AND stock >= $2
	`, variantID, qty)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row *sql.Row) (*Order, error) {
	return scanOrderRows(row)
}

func scanOrderRows(row rowScanner) (*Order, error) {
	var o Order
	err := row.Scan(
		&o.ID, &o.OrderNumber, &o.UserID, &o.Email, &o.Status, &o.PaymentStatus, &o.Currency,
		&o.SubtotalMinor, &o.ShippingMinor, &o.TotalMinor, &o.Country, &o.ShippingZone,
		&o.IdempotencyKey, &o.PaymentSessionID, &o.PaymentURL, &o.PaidAt, &o.CancelledAt, &o.PlacedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}
