// Package service implements property listing use cases.
package service

import (
	"context"
	"errors"

	appevents "dealflow_backend/internal/events"
	"dealflow_backend/internal/properties/domain"
	"dealflow_backend/internal/properties/repository"
	"dealflow_backend/platform/apperr"

	"github.com/google/uuid"
)

// Store is the persistence collaborator for property listings.
type Store interface {
	Create(ctx context.Context, p *domain.Property) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Property, error)
	List(ctx context.Context, filter domain.ListFilter) ([]domain.Property, int64, error)
	Update(ctx context.Context, p *domain.Property) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	store Store
	bus   appevents.Bus
}

func New(store Store, bus appevents.Bus) *Service {
	return &Service{store: store, bus: bus}
}

func (s *Service) Create(ctx context.Context, p *domain.Property) (*domain.Property, error) {
	p.ID = uuid.New()
	if p.Status == "" {
		p.Status = domain.StatusActive
	}

	if err := s.store.Create(ctx, p); err != nil {
		appErr := apperr.Internal("failed to create property").WithOp("properties.Create")
		appErr.Err = err
		return nil, appErr
	}

	if s.bus != nil {
		s.bus.Publish(ctx, appevents.PropertyCreated{
			BaseEvent:  appevents.NewBaseEvent(),
			PropertyID: p.ID,
			Address:    p.Address,
			State:      p.State,
		})
	}

	return p, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	p, err := s.store.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.NotFound("property not found")
	}
	if err != nil {
		appErr := apperr.Internal("failed to load property").WithOp("properties.Get")
		appErr.Err = err
		return nil, appErr
	}
	return p, nil
}

func (s *Service) List(ctx context.Context, filter domain.ListFilter) ([]domain.Property, int64, error) {
	items, total, err := s.store.List(ctx, filter)
	if err != nil {
		appErr := apperr.Internal("failed to list properties").WithOp("properties.List")
		appErr.Err = err
		return nil, 0, appErr
	}
	if items == nil {
		items = []domain.Property{}
	}
	return items, total, nil
}

// Update applies the given mutation to an existing property owned by userID.
func (s *Service) Update(ctx context.Context, id, userID uuid.UUID, apply func(*domain.Property)) (*domain.Property, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.UserID != userID {
		return nil, apperr.NotFound("property not found")
	}

	apply(p)

	if err := s.store.Update(ctx, p); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("property not found")
		}
		appErr := apperr.Internal("failed to update property").WithOp("properties.Update")
		appErr.Err = err
		return nil, appErr
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id, userID uuid.UUID) error {
	p, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if p.UserID != userID {
		return apperr.NotFound("property not found")
	}

	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound("property not found")
		}
		appErr := apperr.Internal("failed to delete property").WithOp("properties.Delete")
		appErr.Err = err
		return appErr
	}
	return nil
}
