package app

import (
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/andrii-maglovanyi/mandrii-sub004/internal/captcha"
	"github.com/andrii-maglovanyi/mandrii-sub004/internal/email"
	"github.com/andrii-maglovanyi/mandrii-sub004/internal/middleware"
	"github.com/andrii-maglovanyi/mandrii-sub004/internal/observability"
	"github.com/andrii-maglovanyi/mandrii-sub004/internal/payments"
	"github.com/andrii-maglovanyi/mandrii-sub004/internal/slack"
)

const orderEventsTopic = "order.events"

// BuildApp connects the infrastructure and mounts every module on the
// router. Optional third-party services fall back to no-ops when their
// credentials are absent, so a local instance runs without any of them.
func BuildApp(router *gin.Engine, logger *zap.Logger) error {
	db, err := connectDBWithRetry(os.Getenv("DB_URL"), 5, logger)
	if err != nil {
		return err
	}

	redisClient, err := connectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5, logger)
	if err != nil {
		logger.Warn("running without redis", zap.Error(err))
		redisClient = nil
	}

	captchaVerifier, err := captcha.NewRecaptchaVerifierFromEnv(logger)
	if err != nil {
		logger.Warn("captcha verification disabled", zap.Error(err))
		captchaVerifier = captcha.NewNoopVerifier()
	}

	paymentsService, err := payments.NewStripeServiceFromEnv()
	if err != nil {
		logger.Warn("payment sessions disabled", zap.Error(err))
		paymentsService = payments.NewNoopService()
	}

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

	reporter := observability.NewLogReporter(logger)
	router.Use(middleware.RequestID(), middleware.Recovery(reporter))

	registerModules(router, moduleDeps{
		db:       db,
		redis:    redisClient,
		captcha:  captchaVerifier,
		payments: paymentsService,
		email:    emailService,
		slack:    slackService,
		logger:   logger,
	})

	return nil
}
