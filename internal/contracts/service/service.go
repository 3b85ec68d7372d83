// Package service implements the contract generation workflow: a draft is
// persisted synchronously and the document itself is rendered by the worker.
package service

import (
	"context"
	"errors"

	"dealflow_backend/internal/contracts/domain"
	"dealflow_backend/internal/contracts/repository"
	appevents "dealflow_backend/internal/events"
	"dealflow_backend/platform/apperr"
	"dealflow_backend/platform/logger"

	"github.com/google/uuid"
)

// Store is the persistence collaborator for contracts.
type Store interface {
	Create(ctx context.Context, c *domain.Contract) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Contract, error)
	SetDocument(ctx context.Context, id uuid.UUID, document string, status domain.Status) error
	SetStatus(ctx context.Context, id uuid.UUID, status domain.Status) error
}

// Enqueuer schedules background contract generation.
type Enqueuer interface {
	EnqueueContractGenerate(ctx context.Context, contractID uuid.UUID) error
}

type Service struct {
	store    Store
	enqueuer Enqueuer
	bus      appevents.Bus
	log      *logger.Logger
}

func New(store Store, enqueuer Enqueuer, bus appevents.Bus, log *logger.Logger) *Service {
	return &Service{store: store, enqueuer: enqueuer, bus: bus, log: log}
}

// Create persists a draft contract and enqueues its generation. A failed
// enqueue is not fatal; the draft stays retrievable and can be regenerated.
func (s *Service) Create(ctx context.Context, c *domain.Contract) (*domain.Contract, error) {
	if c.SalePrice < c.PurchasePrice {
		return nil, apperr.Validation("sale price must not be below purchase price")
	}

	c.ID = uuid.New()
	c.Status = domain.StatusDraft

	if err := s.store.Create(ctx, c); err != nil {
		appErr := apperr.Internal("failed to create contract").WithOp("contracts.Create")
		appErr.Err = err
		return nil, appErr
	}

	if s.enqueuer != nil {
		if err := s.enqueuer.EnqueueContractGenerate(ctx, c.ID); err != nil {
			s.log.Error("failed to enqueue contract generation", "contractId", c.ID, "error", err)
		}
	}

	if s.bus != nil {
		s.bus.Publish(ctx, appevents.ContractRequested{
			BaseEvent:  appevents.NewBaseEvent(),
			ContractID: c.ID,
			SellerName: c.SellerName,
		})
	}

	return c, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Contract, error) {
	c, err := s.store.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.NotFound("contract not found")
	}
	if err != nil {
		appErr := apperr.Internal("failed to load contract").WithOp("contracts.Get")
		appErr.Err = err
		return nil, appErr
	}
	return c, nil
}

// Generate renders the contract document and marks it generated. Called from
// the worker; already-generated contracts are left untouched.
func (s *Service) Generate(ctx context.Context, id uuid.UUID) error {
	c, err := s.store.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c.Status == domain.StatusGenerated {
		return nil
	}

	document, err := domain.Render(c)
	if err != nil {
		if statusErr := s.store.SetStatus(ctx, id, domain.StatusFailed); statusErr != nil {
			s.log.Error("failed to mark contract failed", "contractId", id, "error", statusErr)
		}
		return err
	}

	if err := s.store.SetDocument(ctx, id, document, domain.StatusGenerated); err != nil {
		return err
	}

	if s.bus != nil {
		s.bus.Publish(ctx, appevents.ContractGenerated{
			BaseEvent:  appevents.NewBaseEvent(),
			ContractID: id,
			SellerName: c.SellerName,
		})
	}

	return nil
}
