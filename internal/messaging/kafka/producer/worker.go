package producer

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/andrii-maglovanyi/mandrii-sub004/internal/outbox"
)

const (
	pollInterval = 5 * time.Second
	batchSize    = 10
)

// ProcessOutboxEvents drains pending outbox rows onto the event topic.
// Publish failures mark the row FAILED rather than blocking the batch.
func ProcessOutboxEvents(ctx context.Context, repo outbox.Repository, writer *kafka.Writer, logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("outbox")

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	logger.Info("outbox processor started", zap.Duration("poll_interval", pollInterval))

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := processPendingEvents(ctx, repo, writer, logger); err != nil {
				logger.Error("failed to process pending events", zap.Error(err))
			}
		}
	}
}

func processPendingEvents(ctx context.Context, repo outbox.Repository, writer *kafka.Writer, logger *zap.Logger) error {
	events, err := repo.ListPending(ctx, batchSize)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		return nil
	}

	logger.Info("processing pending events", zap.Int("count", len(events)))

	for _, event := range events {
		if err := publishEvent(ctx, writer, event); err != nil {
			logger.Error("failed to publish event",
				zap.String("event_id", event.ID.String()),
				zap.String("event_type", event.EventType),
				zap.Error(err))
			_ = repo.MarkFailed(ctx, event.ID)
			continue
		}

		if err := repo.MarkSent(ctx, event.ID); err != nil {
			logger.Error("failed to mark event sent",
				zap.String("event_id", event.ID.String()),
				zap.Error(err))
			continue
		}

		logger.Info("event published",
			zap.String("event_id", event.ID.String()),
			zap.String("event_type", event.EventType))
	}

	return nil
}
