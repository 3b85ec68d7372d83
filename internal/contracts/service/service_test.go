package service

import (
	"context"
	"testing"
	"time"

	"dealflow_backend/internal/contracts/domain"
	"dealflow_backend/internal/contracts/repository"
	appevents "dealflow_backend/internal/events"
	"dealflow_backend/platform/apperr"
	"dealflow_backend/platform/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	byID map[uuid.UUID]*domain.Contract
}

func newFakeStore() *fakeStore {
	return &fakeStore{byID: make(map[uuid.UUID]*domain.Contract)}
}

func (f *fakeStore) Create(_ context.Context, c *domain.Contract) error {
	clone := *c
	f.byID[c.ID] = &clone
	return nil
}

func (f *fakeStore) GetByID(_ context.Context, id uuid.UUID) (*domain.Contract, error) {
	c, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	clone := *c
	return &clone, nil
}

func (f *fakeStore) SetDocument(_ context.Context, id uuid.UUID, document string, status domain.Status) error {
	c, ok := f.byID[id]
	if !ok {
		return repository.ErrNotFound
	}
	c.Document = document
	c.Status = status
	return nil
}

func (f *fakeStore) SetStatus(_ context.Context, id uuid.UUID, status domain.Status) error {
	c, ok := f.byID[id]
	if !ok {
		return repository.ErrNotFound
	}
	c.Status = status
	return nil
}

type fakeEnqueuer struct {
	enqueued []uuid.UUID
	err      error
}

func (f *fakeEnqueuer) EnqueueContractGenerate(_ context.Context, id uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	f.enqueued = append(f.enqueued, id)
	return nil
}

func draft() *domain.Contract {
	return &domain.Contract{
		UserID:          uuid.New(),
		PropertyAddress: "12 Birch Ln",
		SellerName:      "Seller",
		BuyerName:       "Buyer",
		DealType:        domain.DealCash,
		PurchasePrice:   180000,
		SalePrice:       195000,
		EarnestMoney:    1000,
		ClosingDate:     time.Now().AddDate(0, 1, 0),
	}
}

func TestCreate_PersistsDraftAndEnqueues(t *testing.T) {
	store := newFakeStore()
	enq := &fakeEnqueuer{}
	svc := New(store, enq, nil, logger.New("development"))

	created, err := svc.Create(context.Background(), draft())
	require.NoError(t, err)

	assert.Equal(t, domain.StatusDraft, created.Status)
	assert.Empty(t, created.Document)
	require.Len(t, enq.enqueued, 1)
	assert.Equal(t, created.ID, enq.enqueued[0])
}

func TestCreate_RejectsNegativeAssignmentFee(t *testing.T) {
	svc := New(newFakeStore(), &fakeEnqueuer{}, nil, logger.New("development"))

	c := draft()
	c.SalePrice = c.PurchasePrice - 1

	_, err := svc.Create(context.Background(), c)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindValidation))
}

func TestGenerate_RendersDocumentAndPublishes(t *testing.T) {
	store := newFakeStore()
	bus := appevents.NewInMemoryBus(logger.New("development"))

	var generated []uuid.UUID
	done := make(chan struct{}, 1)
	bus.Subscribe(appevents.ContractGenerated{}.EventName(), appevents.HandlerFunc(
		func(_ context.Context, e appevents.Event) error {
			generated = append(generated, e.(appevents.ContractGenerated).ContractID)
			done <- struct{}{}
			return nil
		}))

	svc := New(store, nil, bus, logger.New("development"))

	created, err := svc.Create(context.Background(), draft())
	require.NoError(t, err)

	require.NoError(t, svc.Generate(context.Background(), created.ID))

	stored, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusGenerated, stored.Status)
	assert.Contains(t, stored.Document, "Assignment Fee: $15000.00")

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("contract generated event was not published")
	}
	assert.Equal(t, []uuid.UUID{created.ID}, generated)
}

func TestGenerate_AlreadyGeneratedIsIdempotent(t *testing.T) {
	store := newFakeStore()
	svc := New(store, nil, nil, logger.New("development"))

	created, err := svc.Create(context.Background(), draft())
	require.NoError(t, err)
	require.NoError(t, svc.Generate(context.Background(), created.ID))

	first, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Generate(context.Background(), created.ID))

	second, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, first.Document, second.Document)
}

func TestCreate_EnqueueFailureKeepsDraft(t *testing.T) {
	store := newFakeStore()
	enq := &fakeEnqueuer{err: assert.AnError}
	svc := New(store, enq, nil, logger.New("development"))

	created, err := svc.Create(context.Background(), draft())
	require.NoError(t, err, "enqueue failure must not lose the draft")

	stored, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDraft, stored.Status)
}
