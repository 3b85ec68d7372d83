// Package service implements buyer profile use cases.
package service

import (
	"context"
	"errors"

	"dealflow_backend/internal/buyers/domain"
	"dealflow_backend/internal/buyers/repository"
	"dealflow_backend/platform/apperr"

	"github.com/google/uuid"
	"github.com/nyaruka/phonenumbers"
)

const defaultPhoneRegion = "US"

// Store is the persistence collaborator for buyer profiles.
type Store interface {
	Create(ctx context.Context, p *domain.Profile) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	List(ctx context.Context, filter domain.ListFilter) ([]domain.Profile, int64, error)
}

type Service struct {
	store Store
}

func New(store Store) *Service {
	return &Service{store: store}
}

// Create registers the caller's buyer profile. Each user carries at most one
// profile; a second attempt conflicts.
func (s *Service) Create(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
	p.ID = uuid.New()

	if p.Phone != "" {
		normalized, err := NormalizePhone(p.Phone)
		if err != nil {
			return nil, apperr.Validation("invalid phone number").WithDetails(err.Error())
		}
		p.Phone = normalized
	}

	if err := s.store.Create(ctx, p); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperr.Conflict("buyer profile already exists for this user")
		}
		appErr := apperr.Internal("failed to create buyer profile").WithOp("buyers.Create")
		appErr.Err = err
		return nil, appErr
	}
	return p, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	p, err := s.store.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.NotFound("buyer profile not found")
	}
	if err != nil {
		appErr := apperr.Internal("failed to load buyer profile").WithOp("buyers.Get")
		appErr.Err = err
		return nil, appErr
	}
	return p, nil
}

// GetMine returns the caller's own profile.
func (s *Service) GetMine(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	p, err := s.store.GetByUserID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.NotFound("buyer profile not found")
	}
	if err != nil {
		appErr := apperr.Internal("failed to load buyer profile").WithOp("buyers.GetMine")
		appErr.Err = err
		return nil, appErr
	}
	return p, nil
}

func (s *Service) List(ctx context.Context, filter domain.ListFilter) ([]domain.Profile, int64, error) {
	items, total, err := s.store.List(ctx, filter)
	if err != nil {
		appErr := apperr.Internal("failed to list buyer profiles").WithOp("buyers.List")
		appErr.Err = err
		return nil, 0, appErr
	}
	if items == nil {
		items = []domain.Profile{}
	}
	return items, total, nil
}

// NormalizePhone parses a contact number and formats it as E.164. Numbers
// without a country code are assumed to be US.
func NormalizePhone(raw string) (string, error) {
	num, err := phonenumbers.Parse(raw, defaultPhoneRegion)
	if err != nil {
		return "", err
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", errors.New("not a valid phone number")
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}
