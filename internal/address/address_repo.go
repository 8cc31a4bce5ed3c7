package address

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Address struct {
	ID        uuid.UUID
	UserID    string
	Label     sql.NullString
	Address   string
	Country   string
	CreatedAt time.Time
}

type Repository interface {
	Create(ctx context.Context, userID, label, address, country string) (*Address, error)
	ListByUser(ctx context.Context, userID string) ([]Address, error)
	Delete(ctx context.Context, id uuid.UUID, userID string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, userID, label, address, country string) (*Address, error) {
	a := Address{
		ID:      uuid.New(),
		UserID:  userID,
		Address: address,
		Country: country,
	}
	if label != "" {
		a.Label = sql.NullString{String: label, Valid: true}
	}

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO addresses (id, user_id, label, address, country)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at`,
		a.ID, a.UserID, a.Label, a.Address, a.Country,
	).Scan(&a.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert address: %w", err)
	}
	return &a, nil
}

func (r *repository) ListByUser(ctx context.Context, userID string) ([]Address, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, label, address, country, created_at
		 FROM addresses WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query addresses: %w", err)
	}
	defer rows.Close()

	var out []Address
	for rows.Next() {
		var a Address
		if err := rows.Scan(&a.ID, &a.UserID, &a.Label, &a.Address, &a.Country, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan address: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID, userID string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM addresses WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete address: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrAddressNotFound
	}
	return nil
}
