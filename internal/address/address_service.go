package address

import (
	"context"

	"github.com/google/uuid"

	"github.com/andrii-maglovanyi/mandrii-sub004/internal/i18n"
	"github.com/andrii-maglovanyi/mandrii-sub004/internal/pkg/validate"
	"github.com/andrii-maglovanyi/mandrii-sub004/internal/shipping"
)

type Service interface {
	// Create returns field violations for user-correctable input, an error
	// only for infrastructure failures.
	Create(ctx context.Context, userID string, req CreateAddressRequest, msg i18n.MessageFunc) (*AddressResponse, []validate.FieldError, error)
	List(ctx context.Context, userID string) ([]AddressResponse, error)
	Delete(ctx context.Context, id, userID string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	if repo == nil {
		panic("address repository cannot be nil")
	}
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, userID string, req CreateAddressRequest, msg i18n.MessageFunc) (*AddressResponse, []validate.FieldError, error) {
	violations := ValidateAddress(req.Address, msg)
	if _, err := shipping.Classify(req.Country); err != nil {
		violations = append(violations, validate.FieldError{
			Field:   "country",
			Rule:    "country",
			Message: err.Error(),
		})
	}
	if len(violations) > 0 {
		return nil, violations, nil
	}

	a, err := s.repo.Create(ctx, userID, req.Label, req.Address, req.Country)
	if err != nil {
		return nil, nil, err
	}

	resp := mapToResponse(a)
	return &resp, nil, nil
}

func (s *service) List(ctx context.Context, userID string) ([]AddressResponse, error) {
	rows, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]AddressResponse, 0, len(rows))
	for i := range rows {
		out = append(out, mapToResponse(&rows[i]))
	}
	return out, nil
}

func (s *service) Delete(ctx context.Context, id, userID string) error {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return ErrInvalidAddressID
	}
	return s.repo.Delete(ctx, parsed, userID)
}

func mapToResponse(a *Address) AddressResponse {
	resp := AddressResponse{
		ID:        a.ID.String(),
		Address:   a.Address,
		Country:   a.Country,
		CreatedAt: a.CreatedAt,
	}
	if a.Label.Valid {
		resp.Label = a.Label.String
	}
	return resp
}
