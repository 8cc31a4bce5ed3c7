package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
)

type Service interface {
	Notify(ctx context.Context, topic, url string) error
	// NotifyAsync fires the notification in the background and never blocks
	// or fails the caller.
	NotifyAsync(topic, url string)
}

type webhookService struct {
	webhookURL string
	client     *http.Client
	logger     *zap.Logger
}

func NewWebhookServiceFromEnv(logger *zap.Logger) (Service, error) {
	webhookURL := strings.TrimSpace(os.Getenv("SLACK_WEBHOOK_URL"))
	if webhookURL == "" {
		return nil, fmt.Errorf("SLACK_WEBHOOK_URL is not configured")
	}
	return NewWebhookService(webhookURL, logger), nil
}

func NewWebhookService(webhookURL string, logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &webhookService{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: 10 * time.Second},
		logger:     logger.Named("slack"),
	}
}

func (s *webhookService) Notify(ctx context.Context, topic, url string) error {
	text := topic
	if url != "" {
		text = fmt.Sprintf("%s\n%s", topic, url)
	}

	raw, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.webhookURL, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("slack request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("slack returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return nil
}

func (s *webhookService) NotifyAsync(topic, url string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.Notify(ctx, topic, url); err != nil {
			s.logger.Warn("slack notification failed", zap.String("topic", topic), zap.Error(err))
		}
	}()
}

type noopService struct{}

func NewNoopService() Service {
	return &noopService{}
}

func (noopService) Notify(context.Context, string, string) error { return nil }
func (noopService) NotifyAsync(string, string)                   {}
