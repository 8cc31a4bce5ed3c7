package consumer

import (
	"context"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/andrii-maglovanyi/mandrii-sub004/internal/email"
	"github.com/andrii-maglovanyi/mandrii-sub004/internal/slack"
)

const eventOrderCreated = "ORDER_CREATED"

func getHeader(headers []kafka.Header, key string) string {
	for _, h := range headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

// ConsumeMessages processes order events until the context is cancelled.
// Messages commit only after their handler succeeds, so a crashed
// notification is redelivered.
func ConsumeMessages(ctx context.Context, reader *kafka.Reader, emailSvc email.Service, slackSvc slack.Service, logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("consumer")

	logger.Info("started consuming messages")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Error("failed to fetch message", zap.Error(err))
			continue
		}

		eventType := getHeader(msg.Headers, "event_type")

		switch eventType {
		case eventOrderCreated:
			if err := handleOrderCreated(ctx, msg.Value, emailSvc, slackSvc, logger); err != nil {
				logger.Error("failed to handle order created event", zap.Error(err))
				continue
			}
			if err := reader.CommitMessages(ctx, msg); err != nil {
				logger.Error("failed to commit message", zap.Error(err))
			}
		default:
			// Unknown event types are committed and skipped.
			_ = reader.CommitMessages(ctx, msg)
		}
	}
}
