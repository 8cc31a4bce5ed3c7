package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/andrii-maglovanyi/mandrii-sub004/internal/email"
	"github.com/andrii-maglovanyi/mandrii-sub004/internal/order"
	"github.com/andrii-maglovanyi/mandrii-sub004/internal/pkg/money"
	"github.com/andrii-maglovanyi/mandrii-sub004/internal/slack"
)

// handleOrderCreated sends the buyer their receipt and pings the team
// channel about the new order.
func handleOrderCreated(ctx context.Context, payload []byte, emailSvc email.Service, slackSvc slack.Service, logger *zap.Logger) error {
	var data order.OrderCreatedPayload
	if err := json.Unmarshal(payload, &data); err != nil {
		return err
	}

	totalDisplay, err := money.Format(data.TotalMinor, data.Currency, "en")
	if err != nil {
		totalDisplay = fmt.Sprintf("%d %s", data.TotalMinor, data.Currency)
	}

	logger.Info("handling order created event",
		zap.String("order_number", data.OrderNumber),
		zap.String("total", totalDisplay))

	if err := emailSvc.SendOrderReceipt(ctx, data.Email, data.OrderNumber, totalDisplay, data.PaymentURL); err != nil {
		return err
	}

	topic := fmt.Sprintf("New order %s for %s (%s zone)", data.OrderNumber, totalDisplay, data.ShippingZone)
	if err := slackSvc.Notify(ctx, topic, data.PaymentURL); err != nil {
		// The receipt already went out. A missed channel ping is not
		// worth replaying the event for.
		logger.Warn("slack notification failed", zap.Error(err))
	}

	return nil
}
