package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/andrii-maglovanyi/mandrii-sub004/internal/messaging/kafka/producer"
	"github.com/andrii-maglovanyi/mandrii-sub004/internal/outbox"
)

// RunWorker relays pending outbox rows onto the order events topic until
// it receives a shutdown signal.
func RunWorker(logger *zap.Logger) error {
	logger.Info("starting outbox processor")

	db, err := connectDBWithRetry(os.Getenv("DB_URL"), 5, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	kafkaWriter, err := connectKafkaWithRetry(os.Getenv("KAFKA_BROKER"), 5, logger)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	outboxRepo := outbox.NewRepository(db)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go producer.ProcessOutboxEvents(ctx, outboxRepo, kafkaWriter, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down outbox processor")
	cancel()
	time.Sleep(1 * time.Second)
	logger.Info("outbox processor stopped")

	return nil
}
