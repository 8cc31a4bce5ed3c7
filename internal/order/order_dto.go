package order

import (
	"time"

	"github.com/andrii-maglovanyi/mandrii-sub004/internal/checkout"
)

type CheckoutRequest struct {
	Items        []checkout.CartLine `json:"items" validate:"required,dive"`
	Country      string              `json:"country" validate:"required"`
	Email        string              `json:"email" validate:"required,email"`
	CaptchaToken string              `json:"captchaToken" validate:"required"`
	SuccessURL   string              `json:"successUrl" validate:"omitempty,url"`
	CancelURL    string              `json:"cancelUrl" validate:"omitempty,url"`
}

type OrderItemResponse struct {
	ProductID    string `json:"productId"`
	VariantID    string `json:"variantId,omitempty"`
	Name         string `json:"name"`
	VariantLabel string `json:"variantLabel,omitempty"`
	UnitPrice    int64  `json:"unitPrice"`
	Quantity     int32  `json:"quantity"`
	Total        int64  `json:"total"`
}

type OrderResponse struct {
	ID            string              `json:"id"`
	OrderNumber   string              `json:"orderNumber"`
	Status        string              `json:"status"`
	PaymentStatus string              `json:"paymentStatus"`
	Currency      string              `json:"currency"`
	Subtotal      int64               `json:"subtotal"`
	Shipping      int64               `json:"shipping"`
	Total         int64               `json:"total"`
	TotalDisplay  string              `json:"totalDisplay,omitempty"`
	PaymentURL    string              `json:"paymentUrl,omitempty"`
	PlacedAt      time.Time           `json:"placedAt"`
	Items         []OrderItemResponse `json:"items"`
}

type UpdatePaymentStatusInput struct {
	PaymentStatus string     `json:"paymentStatus" validate:"required"`
	PaidAt        *time.Time `json:"paidAt,omitempty"`
	CancelledAt   *time.Time `json:"cancelledAt,omitempty"`
}

// OrderCreatedPayload is the outbox event body consumed by the
// notification worker.
type OrderCreatedPayload struct {
	OrderID      string `json:"order_id"`
	OrderNumber  string `json:"order_number"`
	Email        string `json:"email"`
	Currency     string `json:"currency"`
	TotalMinor   int64  `json:"total_minor"`
	PaymentURL   string `json:"payment_url"`
	ShippingZone string `json:"shipping_zone"`
}
