package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/andrii-maglovanyi/mandrii-sub004/internal/email"
	"github.com/andrii-maglovanyi/mandrii-sub004/internal/messaging/kafka/consumer"
	"github.com/andrii-maglovanyi/mandrii-sub004/internal/slack"
)

// RunConsumer handles order events: receipts to the buyer, notifications
// to the team channel.
func RunConsumer(logger *zap.Logger) error {
	logger.Info("starting notifications consumer")

	emailService, err := email.NewResendServiceFromEnv()
	if err != nil {
		logger.Warn("outbound email disabled", zap.Error(err))
		emailService = email.NewNoopService()
	}

	slackService, err := slack.NewWebhookServiceFromEnv(logger)
	if err != nil {
		logger.Warn("slack notifications disabled", zap.Error(err))
		slackService = slack.NewNoopService()
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{os.Getenv("KAFKA_BROKER")},
		Topic:   orderEventsTopic,
		GroupID: "notifications-consumer-group",
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeMessages(ctx, reader, emailService, slackService, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down notifications consumer")
	cancel()
	logger.Info("notifications consumer stopped")

	return nil
}
