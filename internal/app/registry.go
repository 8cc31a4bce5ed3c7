package app

import (
	"database/sql"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/andrii-maglovanyi/mandrii-sub004/internal/account"
	"github.com/andrii-maglovanyi/mandrii-sub004/internal/address"
	"github.com/andrii-maglovanyi/mandrii-sub004/internal/captcha"
	"github.com/andrii-maglovanyi/mandrii-sub004/internal/catalog"
	"github.com/andrii-maglovanyi/mandrii-sub004/internal/contact"
	"github.com/andrii-maglovanyi/mandrii-sub004/internal/email"
	"github.com/andrii-maglovanyi/mandrii-sub004/internal/order"
	"github.com/andrii-maglovanyi/mandrii-sub004/internal/outbox"
	"github.com/andrii-maglovanyi/mandrii-sub004/internal/payments"
	"github.com/andrii-maglovanyi/mandrii-sub004/internal/slack"
)

type moduleDeps struct {
	db       *sql.DB
	redis    *redis.Client
	captcha  captcha.Verifier
	payments payments.Service
	email    email.Service
	slack    slack.Service
	logger   *zap.Logger
}

func registerModules(router *gin.Engine, deps moduleDeps) {
	// --- Repositories ---
	catalogRepo := catalog.NewRepository(deps.db)
	orderRepo := order.NewRepository(deps.db)
	outboxRepo := outbox.NewRepository(deps.db)
	addressRepo := address.NewRepository(deps.db)
	accountRepo := account.NewRepository(deps.db)

	// --- Services ---
	catalogService := catalog.NewService(catalog.Deps{
		Repo:   catalogRepo,
		Redis:  deps.redis,
		Logger: deps.logger,
	})
	orderService := order.NewService(order.Deps{
		DB:         deps.db,
		Repo:       orderRepo,
		OutboxRepo: outboxRepo,
		Catalog:    catalogService,
		Captcha:    deps.captcha,
		Payments:   deps.payments,
		Redis:      deps.redis,
		Logger:     deps.logger,
	})
	contactService := contact.NewService(contact.Deps{
		Captcha: deps.captcha,
		Email:   deps.email,
		Slack:   deps.slack,
		Logger:  deps.logger,
	})
	addressService := address.NewService(addressRepo)
	accountService := account.NewService(accountRepo)

	// --- Handlers ---
	catalogHandler := catalog.NewHandler(catalogService)
	orderHandler := order.NewHandler(orderService)
	contactHandler := contact.NewHandler(contactService)
	addressHandler := address.NewHandler(addressService)
	accountHandler := account.NewHandler(accountService)
	slackHandler := slack.NewHandler(deps.slack, deps.logger)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		catalog.RegisterRoutes(api, catalogHandler)
		order.RegisterRoutes(api, orderHandler)
		contact.RegisterRoutes(api, contactHandler)
		address.RegisterRoutes(api, addressHandler)
		account.RegisterRoutes(api, accountHandler)
		slack.RegisterRoutes(api, slackHandler)
	}
}
