package main

import (
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/andrii-maglovanyi/mandrii-sub004/internal/app"
)

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := app.RunWorker(logger.Named("worker")); err != nil {
		logger.Fatal("worker failed", zap.Error(err))
	}
}
