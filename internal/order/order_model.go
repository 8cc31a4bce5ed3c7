package order

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending   = "PENDING"
	StatusPaid      = "PAID"
	StatusCancelled = "CANCELLED"

	PaymentUnpaid   = "UNPAID"
	PaymentPaid     = "PAID"
	PaymentRefunded = "REFUNDED"
)

type Order struct {
	ID               uuid.UUID
	OrderNumber      string
	UserID           uuid.NullUUID
	Email            string
	Status           string
	PaymentStatus    string
	Currency         string
	SubtotalMinor    int64
	ShippingMinor    int64
	TotalMinor       int64
	Country          string
	ShippingZone     string
	IdempotencyKey   string
	PaymentSessionID sql.NullString
	PaymentURL       sql.NullString
	PaidAt           sql.NullTime
	CancelledAt      sql.NullTime
	PlacedAt         time.Time
}

type OrderItem struct {
	ID             uuid.UUID
	OrderID        uuid.UUID
	ProductID      string
	VariantID      sql.NullString
	NameSnapshot   string
	VariantLabel   sql.NullString
	UnitPriceMinor int64
	Quantity       int32
	TotalMinor     int64
}
