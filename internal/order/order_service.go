package order

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/andrii-maglovanyi/mandrii-sub004/internal/captcha"
	"github.com/andrii-maglovanyi/mandrii-sub004/internal/checkout"
	"github.com/andrii-maglovanyi/mandrii-sub004/internal/outbox"
	"github.com/andrii-maglovanyi/mandrii-sub004/internal/payments"
	"github.com/andrii-maglovanyi/mandrii-sub004/internal/pkg/money"
	"github.com/andrii-maglovanyi/mandrii-sub004/internal/shipping"
)

const (
	captchaAction     = "checkout"
	checkoutLockTTL   = 60 * time.Second
	eventOrderCreated = "ORDER_CREATED"
)

type Service interface {
	Checkout(ctx context.Context, userID string, req CheckoutRequest, locale string) (*OrderResponse, error)
	Detail(ctx context.Context, orderID string, locale string) (*OrderResponse, error)
	List(ctx context.Context, userID string, locale string) ([]OrderResponse, error)
	UpdatePaymentStatus(ctx context.Context, orderID string, input UpdatePaymentStatusInput) (*OrderResponse, error)
}

type Deps struct {
	DB         *sql.DB
	Repo       Repository
	OutboxRepo outbox.Repository
	Catalog    checkout.CatalogLookup
	Captcha    captcha.Verifier
	Payments   payments.Service
	Redis      *redis.Client
	Logger     *zap.Logger
}

type service struct {
	db         *sql.DB
	repo       Repository
	outboxRepo outbox.Repository
	catalog    checkout.CatalogLookup
	captcha    captcha.Verifier
	payments   payments.Service
	redis      *redis.Client
	logger     *zap.Logger
}

var paymentStatusTransitions = map[string]map[string]struct{}{
	PaymentUnpaid: {
		PaymentPaid:     {},
		PaymentRefunded: {},
	},
	PaymentPaid: {
		PaymentUnpaid:   {},
		PaymentRefunded: {},
	},
	PaymentRefunded: {},
}

func NewService(deps Deps) Service {
	if deps.DB == nil {
		panic("db cannot be nil")
	}
	if deps.Repo == nil {
		panic("order repository cannot be nil")
	}
	if deps.OutboxRepo == nil {
		panic("outbox repository cannot be nil")
	}
	if deps.Catalog == nil {
		panic("catalog lookup cannot be nil")
	}
	if deps.Captcha == nil {
		panic("captcha verifier cannot be nil")
	}
	if deps.Payments == nil {
		panic("payments service cannot be nil")
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	return &service{
		db:         deps.DB,
		repo:       deps.Repo,
		outboxRepo: deps.OutboxRepo,
		catalog:    deps.Catalog,
		captcha:    deps.Captcha,
		payments:   deps.Payments,
		redis:      deps.Redis,
		logger:     deps.Logger,
	}
}

func (s *service) Checkout(ctx context.Context, userID string, req CheckoutRequest, locale string) (*OrderResponse, error) {
	logger := s.logger.With(zap.String("email", req.Email))

	if !s.captcha.Verify(ctx, req.CaptchaToken, captchaAction) {
		logger.Warn("checkout rejected: captcha failed")
		return nil, ErrCaptchaFailed
	}

	zone, err := shipping.Classify(req.Country)
	if err != nil {
		return nil, ErrInvalidCountry
	}

	cart, err := checkout.ValidateCart(ctx, req.Items, zone, s.catalog)
	if err != nil {
		return nil, err
	}

	// A resubmission of the same cart returns the already placed order
	// instead of charging twice.
	existing, err := s.repo.GetByIdempotencyKey(ctx, cart.IdempotencyKey)
	if err != nil {
		logger.Error("idempotency lookup failed", zap.Error(err))
		return nil, ErrOrderFailed
	}
	if existing != nil {
		logger.Info("returning existing order for idempotency key",
			zap.String("order_number", existing.OrderNumber))
		return s.buildResponse(ctx, existing, locale)
	}

	release, err := s.acquireLock(ctx, cart.IdempotencyKey)
	if err != nil {
		return nil, err
	}
	defer release()

	shippingMinor, ok := shipping.RateMinor(zone, cart.Currency)
	if !ok {
		return nil, ErrShippingUnavailable
	}
	total := cart.TotalMinor + shippingMinor

	orderNumber := fmt.Sprintf("MND-%d-%s", time.Now().Unix(), strings.ToUpper(uuid.New().String()[:4]))
	logger = logger.With(zap.String("order_number", orderNumber))

	session, err := s.payments.CreateCheckoutSession(ctx, paymentRequest(orderNumber, cart, shippingMinor, req))
	if err != nil {
		logger.Error("failed to create payment session", zap.Error(err))
		return nil, ErrOrderFailed
	}

	o := &Order{
		ID:             uuid.New(),
		OrderNumber:    orderNumber,
		Email:          req.Email,
		Status:         StatusPending,
		PaymentStatus:  PaymentUnpaid,
		Currency:       cart.Currency,
		SubtotalMinor:  cart.TotalMinor,
		ShippingMinor:  shippingMinor,
		TotalMinor:     total,
		Country:        strings.ToUpper(req.Country),
		ShippingZone:   string(zone),
		IdempotencyKey: cart.IdempotencyKey,
	}
	if uid, err := uuid.Parse(userID); err == nil {
		o.UserID = uuid.NullUUID{UUID: uid, Valid: true}
	}
	if session != nil {
		o.PaymentSessionID = sql.NullString{String: session.ID, Valid: session.ID != ""}
		o.PaymentURL = sql.NullString{String: session.URL, Valid: session.URL != ""}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		logger.Error("failed to begin transaction", zap.Error(err))
		return nil, ErrOrderFailed
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	qtx := s.repo.WithTx(tx)

	if err := qtx.CreateOrder(ctx, o); err != nil {
		logger.Error("failed to create order record", zap.Error(err))
		return nil, ErrOrderFailed
	}

	items := make([]OrderItem, 0, len(cart.Items))
	for _, it := range cart.Items {
		item := OrderItem{
			ID:             uuid.New(),
			OrderID:        o.ID,
			ProductID:      it.ProductID,
			NameSnapshot:   it.Name,
			UnitPriceMinor: it.UnitPriceMinor,
			Quantity:       int32(it.Quantity),
			TotalMinor:     it.UnitPriceMinor * int64(it.Quantity),
		}
		if it.Variant != nil {
			item.VariantID = sql.NullString{String: it.Variant.ID, Valid: true}
			item.VariantLabel = sql.NullString{String: it.VariantLabel, Valid: it.VariantLabel != ""}
		}
		if err := qtx.CreateOrderItem(ctx, &item); err != nil {
			logger.Error("failed to create order item", zap.String("product_id", it.ProductID), zap.Error(err))
			return nil, ErrOrderFailed
		}
		items = append(items, item)

		if err := s.reserveStock(ctx, qtx, it); err != nil {
			return nil, err
		}
	}

	if err := s.publishOrderCreated(ctx, tx, o); err != nil {
		logger.Error("failed to create outbox event", zap.Error(err))
		return nil, ErrOrderFailed
	}

	if err := tx.Commit(); err != nil {
		logger.Error("failed to commit transaction", zap.Error(err))
		return nil, ErrOrderFailed
	}
	committed = true

	logger.Info("order placed",
		zap.String("order_id", o.ID.String()),
		zap.Int64("total_minor", total),
		zap.String("currency", cart.Currency))

	return s.mapOrderToResponse(o, items, locale), nil
}

// acquireLock holds a short redis lock keyed by the cart digest so two
// in-flight submissions of the same cart cannot both reach the gateway.
// Redis being down degrades to no lock rather than blocking checkout.
func (s *service) acquireLock(ctx context.Context, key string) (func(), error) {
	if s.redis == nil {
		return func() {}, nil
	}

	lockKey := "checkout:lock:" + key
	ok, err := s.redis.SetNX(ctx, lockKey, "1", checkoutLockTTL).Result()
	if err != nil {
		s.logger.Warn("checkout lock unavailable", zap.Error(err))
		return func() {}, nil
	}
	if !ok {
		return nil, ErrCheckoutInProgress
	}
	return func() {
		_ = s.redis.Del(context.WithoutCancel(ctx), lockKey).Err()
	}, nil
}

// reserveStock decrements only tracked stock. A nil stock field means the
// product is not stock-managed and sells without limit.
func (s *service) reserveStock(ctx context.Context, qtx Repository, it checkout.ValidatedItem) error {
	qty := int32(it.Quantity)

	if it.Variant != nil {
		if it.Variant.Stock == nil {
			return nil
		}
		ok, err := qtx.DecrementVariantStock(ctx, it.Variant.ID, qty)
		if err != nil {
			return ErrOrderFailed
		}
		if !ok {
			return ErrOutOfStock
		}
		return nil
	}

	if it.Product.Stock == nil {
		return nil
	}
	ok, err := qtx.DecrementProductStock(ctx, it.ProductID, qty)
	if err != nil {
		return ErrOrderFailed
	}
	if !ok {
		return ErrOutOfStock
	}
	return nil
}

func (s *service) publishOrderCreated(ctx context.Context, tx *sql.Tx, o *Order) error {
	payload, err := json.Marshal(OrderCreatedPayload{
		OrderID:      o.ID.String(),
		OrderNumber:  o.OrderNumber,
		Email:        o.Email,
		Currency:     o.Currency,
		TotalMinor:   o.TotalMinor,
		PaymentURL:   o.PaymentURL.String,
		ShippingZone: o.ShippingZone,
	})
	if err != nil {
		return err
	}

	return s.outboxRepo.WithTx(tx).CreateEvent(ctx, outbox.Event{
		ID:            uuid.New(),
		AggregateType: "ORDER",
		AggregateID:   o.ID,
		EventType:     eventOrderCreated,
		Payload:       payload,
	})
}

func paymentRequest(orderNumber string, cart *checkout.ValidatedCart, shippingMinor int64, req CheckoutRequest) payments.CreateSessionRequest {
	items := make([]payments.SessionItem, 0, len(cart.Items)+1)
	for _, it := range cart.Items {
		name := it.Name
		if it.VariantLabel != "" {
			name = name + " (" + it.VariantLabel + ")"
		}
		items = append(items, payments.SessionItem{
			Name:            name,
			UnitAmountMinor: it.UnitPriceMinor,
			Quantity:        it.Quantity,
		})
	}
	if shippingMinor > 0 {
		items = append(items, payments.SessionItem{
			Name:            "Shipping",
			UnitAmountMinor: shippingMinor,
			Quantity:        1,
		})
	}

	return payments.CreateSessionRequest{
		OrderNumber:   orderNumber,
		Currency:      cart.Currency,
		Items:         items,
		CustomerEmail: req.Email,
		SuccessURL:    req.SuccessURL,
		CancelURL:     req.CancelURL,
	}
}

func (s *service) Detail(ctx context.Context, orderID string, locale string) (*OrderResponse, error) {
	oid, err := uuid.Parse(orderID)
	if err != nil {
		return nil, ErrInvalidOrderID
	}

	o, err := s.repo.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	return s.buildResponse(ctx, o, locale)
}

func (s *service) List(ctx context.Context, userID string, locale string) ([]OrderResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, ErrInvalidOrderID
	}

	orders, err := s.repo.ListByUser(ctx, uid)
	if err != nil {
		return nil, err
	}

	res := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		res = append(res, *s.mapOrderToResponse(&orders[i], nil, locale))
	}
	return res, nil
}

func (s *service) UpdatePaymentStatus(ctx context.Context, orderID string, input UpdatePaymentStatusInput) (*OrderResponse, error) {
	oid, err := uuid.Parse(orderID)
	if err != nil {
		return nil, ErrInvalidOrderID
	}

	nextStatus := strings.ToUpper(strings.TrimSpace(input.PaymentStatus))
	if nextStatus == "" {
		return nil, ErrInvalidPaymentStatus
	}

	o, err := s.repo.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	current := o.PaymentStatus
	if current == nextStatus {
		return s.buildResponse(ctx, o, "en")
	}

	allowed, exists := paymentStatusTransitions[current]
	if !exists {
		return nil, ErrInvalidPaymentStatus
	}
	if _, ok := allowed[nextStatus]; !ok {
		return nil, ErrInvalidPaymentTransition
	}

	now := time.Now()
	paidAt := o.PaidAt
	cancelledAt := o.CancelledAt
	orderStatus := o.Status

	switch nextStatus {
	case PaymentPaid:
		if input.PaidAt != nil {
			paidAt = sql.NullTime{Time: *input.PaidAt, Valid: true}
		} else if !paidAt.Valid {
			paidAt = sql.NullTime{Time: now, Valid: true}
		}
		if orderStatus == StatusPending {
			orderStatus = StatusPaid
		}
	case PaymentRefunded:
		if input.CancelledAt != nil {
			cancelledAt = sql.NullTime{Time: *input.CancelledAt, Valid: true}
		} else if !cancelledAt.Valid {
			cancelledAt = sql.NullTime{Time: now, Valid: true}
		}
		orderStatus = StatusCancelled
	case PaymentUnpaid:
		paidAt = sql.NullTime{}
		if orderStatus == StatusPaid {
			orderStatus = StatusPending
		}
	default:
		return nil, ErrInvalidPaymentStatus
	}

	if err := s.repo.UpdatePaymentStatus(ctx, oid, nextStatus, orderStatus, paidAt, cancelledAt); err != nil {
		return nil, err
	}

	s.logger.Info("payment status updated",
		zap.String("order_number", o.OrderNumber),
		zap.String("from", current),
		zap.String("to", nextStatus))

	return s.Detail(ctx, orderID, "en")
}

func (s *service) buildResponse(ctx context.Context, o *Order, locale string) (*OrderResponse, error) {
	items, err := s.repo.GetItems(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	return s.mapOrderToResponse(o, items, locale), nil
}

func (s *service) mapOrderToResponse(o *Order, items []OrderItem, locale string) *OrderResponse {
	res := &OrderResponse{
		ID:            o.ID.String(),
		OrderNumber:   o.OrderNumber,
		Status:        o.Status,
		PaymentStatus: o.PaymentStatus,
		Currency:      o.Currency,
		Subtotal:      o.SubtotalMinor,
		Shipping:      o.ShippingMinor,
		Total:         o.TotalMinor,
		PaymentURL:    o.PaymentURL.String,
		PlacedAt:      o.PlacedAt,
		Items:         make([]OrderItemResponse, 0, len(items)),
	}

	if display, err := money.Format(o.TotalMinor, o.Currency, locale); err == nil {
		res.TotalDisplay = display
	}

	for _, it := range items {
		res.Items = append(res.Items, OrderItemResponse{
			ProductID:    it.ProductID,
			VariantID:    it.VariantID.String,
			Name:         it.NameSnapshot,
			VariantLabel: it.VariantLabel.String,
			UnitPrice:    it.UnitPriceMinor,
			Quantity:     it.Quantity,
			Total:        it.TotalMinor,
		})
	}
	return res
}
