package contact

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/andrii-maglovanyi/mandrii-sub004/internal/captcha"
	"github.com/andrii-maglovanyi/mandrii-sub004/internal/email"
	"github.com/andrii-maglovanyi/mandrii-sub004/internal/slack"
)

const captchaAction = "contact"

type Service interface {
	// Submit assumes a structurally valid request; field validation happens
	// at the handler. It gates on captcha before any delivery side effect.
	Submit(ctx context.Context, req ContactRequest) error
}

type service struct {
	captcha captcha.Verifier
	email   email.Service
	slack   slack.Service
	logger  *zap.Logger
}

type Deps struct {
	Captcha captcha.Verifier
	Email   email.Service
	Slack   slack.Service
	Logger  *zap.Logger
}

func NewService(deps Deps) Service {
	if deps.Captcha == nil {
		panic("captcha verifier cannot be nil")
	}
	if deps.Email == nil {
		panic("email service cannot be nil")
	}
	if deps.Slack == nil {
		deps.Slack = slack.NewNoopService()
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	return &service{
		captcha: deps.Captcha,
		email:   deps.Email,
		slack:   deps.Slack,
		logger:  deps.Logger.Named("contact.service"),
	}
}

func (s *service) Submit(ctx context.Context, req ContactRequest) error {
	if !s.captcha.Verify(ctx, req.CaptchaToken, captchaAction) {
		s.logger.Info("contact submission rejected by captcha")
		return ErrCaptchaFailed
	}

	if err := s.email.SendContactMessage(ctx, req.Name, req.Email, req.Message); err != nil {
		s.logger.Error("contact message delivery failed", zap.Error(err))
		return ErrDeliveryFailed
	}

	s.slack.NotifyAsync(fmt.Sprintf("New contact form message from %s", req.Name), "")

	s.logger.Info("contact message delivered", zap.String("from", req.Email))
	return nil
}
