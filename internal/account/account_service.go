package account

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/andrii-maglovanyi/mandrii-sub004/internal/i18n"
	"github.com/andrii-maglovanyi/mandrii-sub004/internal/pkg/validate"
)

type Service interface {
	Profile(ctx context.Context, userID string) (*ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest, msg i18n.MessageFunc) (*ProfileResponse, []validate.FieldError, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	if repo == nil {
		panic("account repository cannot be nil")
	}
	return &service{repo: repo}
}

func (s *service) Profile(ctx context.Context, userID string) (*ProfileResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapToResponse(u), nil
}

func (s *service) UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest, msg i18n.MessageFunc) (*ProfileResponse, []validate.FieldError, error) {
	name := ""
	if req.Name != nil {
		name = strings.TrimSpace(*req.Name)
	}

	if violations := ValidateUser(userID, name, msg); len(violations) > 0 {
		return nil, violations, nil
	}

	u, err := s.repo.UpdateName(ctx, uuid.MustParse(userID), name)
	if err != nil {
		return nil, nil, err
	}
	return mapToResponse(u), nil, nil
}

func mapToResponse(u *User) *ProfileResponse {
	return &ProfileResponse{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		UpdatedAt: u.UpdatedAt,
	}
}
