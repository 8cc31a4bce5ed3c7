package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Service creates hosted checkout sessions at the payment gateway. Amounts
// stay in integer minor units end to end.
type Service interface {
	CreateCheckoutSession(ctx context.Context, req CreateSessionRequest) (*Session, error)
}

type stripeService struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewStripeServiceFromEnv() (Service, error) {
	apiKey := strings.TrimSpace(os.Getenv("STRIPE_SECRET_KEY"))
	if apiKey == "" {
		return nil, fmt.Errorf("STRIPE_SECRET_KEY is not configured")
	}

	baseURL := strings.TrimSpace(os.Getenv("STRIPE_BASE_URL"))
	if baseURL == "" {
		baseURL = "https://api.stripe.com"
	}

	return NewStripeService(apiKey, baseURL), nil
}

func NewStripeService(apiKey, baseURL string) Service {
	return &stripeService{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

func (s *stripeService) CreateCheckoutSession(ctx context.Context, req CreateSessionRequest) (*Session, error) {
	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("client_reference_id", req.OrderNumber)
	if req.CustomerEmail != "" {
		form.Set("customer_email", req.CustomerEmail)
	}
	if req.SuccessURL != "" {
		form.Set("success_url", req.SuccessURL)
	}
	if req.CancelURL != "" {
		form.Set("cancel_url", req.CancelURL)
	}

	currency := strings.ToLower(req.Currency)
	for i, item := range req.Items {
		prefix := fmt.Sprintf("line_items[%d]", i)
		form.Set(prefix+"[quantity]", strconv.Itoa(item.Quantity))
		form.Set(prefix+"[price_data][currency]", currency)
		form.Set(prefix+"[price_data][unit_amount]", strconv.FormatInt(item.UnitAmountMinor, 10))
		form.Set(prefix+"[price_data][product_data][name]", item.Name)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		s.baseURL+"/v1/checkout/sessions", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.SetBasicAuth(s.apiKey, "")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("checkout session request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("payment gateway returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var session struct {
		ID  string `json:"id"`
		URL string `json:"url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, fmt.Errorf("failed to decode session response: %w", err)
	}

	return &Session{ID: session.ID, URL: session.URL}, nil
}

type noopService struct{}

// NewNoopService returns a gateway stub for local dev and tests.
func NewNoopService() Service {
	return &noopService{}
}

func (noopService) CreateCheckoutSession(_ context.Context, req CreateSessionRequest) (*Session, error) {
	return &Session{
		ID:  "cs_test_" + req.OrderNumber,
		URL: "https://checkout.local/" + req.OrderNumber,
	}, nil
}
