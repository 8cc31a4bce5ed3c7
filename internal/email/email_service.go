package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

type Service interface {
	SendContactMessage(ctx context.Context, fromName, fromEmail, message string) error
	SendOrderReceipt(ctx context.Context, to, orderNumber, totalDisplay, paymentURL string) error
}

type resendService struct {
	apiKey    string
	fromEmail string
	inboxTo   string
	baseURL   string
	client    *http.Client
}

func NewResendServiceFromEnv() (Service, error) {
	apiKey := strings.Trim(os.Getenv("RESEND_API_KEY"), "\"")
	if apiKey == "" {
		return nil, fmt.Errorf("RESEND_API_KEY is not configured")
	}

	from := strings.TrimSpace(strings.Trim(os.Getenv("RESEND_FROM_EMAIL"), "\""))
	if from == "" {
		from = "no-reply@mandrii.com"
	}

	inbox := strings.TrimSpace(os.Getenv("CONTACT_INBOX_EMAIL"))
	if inbox == "" {
		inbox = "hello@mandrii.com"
	}

	return &resendService{
		apiKey:    apiKey,
		fromEmail: from,
		inboxTo:   inbox,
		baseURL:   "https://api.resend.com",
		client:    &http.Client{Timeout: 15 * time.Second},
	}, nil
}

func (s *resendService) SendContactMessage(ctx context.Context, fromName, fromEmail, message string) error {
	body := fmt.Sprintf(
		"<p><strong>%s</strong> (%s) wrote:</p><blockquote>%s</blockquote>",
		html.EscapeString(fromName),
		html.EscapeString(fromEmail),
		html.EscapeString(message),
	)
	subject := fmt.Sprintf("Contact form: %s", fromName)
	return s.send(ctx, s.inboxTo, subject, body, fromEmail)
}

func (s *resendService) SendOrderReceipt(ctx context.Context, to, orderNumber, totalDisplay, paymentURL string) error {
	body := fmt.Sprintf(
		"<p>Thank you for your order <strong>%s</strong>.</p><p>Total: %s</p>",
		html.EscapeString(orderNumber),
		html.EscapeString(totalDisplay),
	)
	if paymentURL != "" {
		body += fmt.Sprintf("<p><a href=\"%s\">Complete your payment</a></p>", paymentURL)
	}
	subject := fmt.Sprintf("Your Mandrii order %s", orderNumber)
	return s.send(ctx, to, subject, body, "")
}

func (s *resendService) send(ctx context.Context, to, subject, htmlBody, replyTo string) error {
	payload := map[string]any{
		"from":    s.fromEmail,
		"to":      []string{to},
		"subject": subject,
		"html":    htmlBody,
	}
	if replyTo != "" {
		payload["reply_to"] = replyTo
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/emails", bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("email request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("email provider returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return nil
}

type noopService struct{}

func NewNoopService() Service {
	return &noopService{}
}

func (noopService) SendContactMessage(context.Context, string, string, string) error {
	return nil
}

func (noopService) SendOrderReceipt(context.Context, string, string, string, string) error {
	return nil
}
