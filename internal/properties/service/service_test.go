package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	appevents "dealflow_backend/internal/events"
	"dealflow_backend/internal/properties/domain"
	"dealflow_backend/internal/properties/repository"
	"dealflow_backend/platform/apperr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	mu      sync.Mutex
	byID    map[uuid.UUID]*domain.Property
	failure error
}

func newFakeStore() *fakeStore {
	return &fakeStore{byID: make(map[uuid.UUID]*domain.Property)}
}

func (f *fakeStore) Create(_ context.Context, p *domain.Property) error {
	if f.failure != nil {
		return f.failure
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	clone := *p
	f.byID[p.ID] = &clone
	return nil
}

func (f *fakeStore) GetByID(_ context.Context, id uuid.UUID) (*domain.Property, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	clone := *p
	return &clone, nil
}

func (f *fakeStore) List(_ context.Context, _ domain.ListFilter) ([]domain.Property, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Property
	for _, p := range f.byID {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (f *fakeStore) Update(_ context.Context, p *domain.Property) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[p.ID]; !ok {
		return repository.ErrNotFound
	}
	clone := *p
	f.byID[p.ID] = &clone
	return nil
}

func (f *fakeStore) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

type recordingBus struct {
	mu     sync.Mutex
	events []appevents.Event
}

func (b *recordingBus) Publish(_ context.Context, e appevents.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, e)
}

func (b *recordingBus) PublishSync(_ context.Context, e appevents.Event) error {
	b.Publish(context.Background(), e)
	return nil
}

func (b *recordingBus) Subscribe(string, appevents.Handler) {}

func (b *recordingBus) published() []appevents.Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]appevents.Event(nil), b.events...)
}

func TestCreate_AssignsIDAndPublishesEvent(t *testing.T) {
	store := newFakeStore()
	bus := &recordingBus{}
	svc := New(store, bus)

	created, err := svc.Create(context.Background(), &domain.Property{
		UserID:  uuid.New(),
		Address: "123 Main St",
		State:   "TX",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, domain.StatusActive, created.Status)

	events := bus.published()
	require.Len(t, events, 1)
	evt, ok := events[0].(appevents.PropertyCreated)
	require.True(t, ok)
	assert.Equal(t, created.ID, evt.PropertyID)
	assert.Equal(t, "123 Main St", evt.Address)
}

func TestCreate_StoreFailureIsInternal(t *testing.T) {
	store := newFakeStore()
	store.failure = errors.New("connection reset")
	svc := New(store, nil)

	_, err := svc.Create(context.Background(), &domain.Property{Address: "1 Elm"})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindInternal))
}

func TestGet_UnknownIDIsNotFound(t *testing.T) {
	svc := New(newFakeStore(), nil)

	_, err := svc.Get(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestUpdate_OtherUsersPropertyLooksAbsent(t *testing.T) {
	store := newFakeStore()
	svc := New(store, nil)

	owner := uuid.New()
	created, err := svc.Create(context.Background(), &domain.Property{UserID: owner, Address: "9 Oak"})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), created.ID, uuid.New(), func(p *domain.Property) {
		p.Address = "hijacked"
	})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindNotFound), "ownership failures must not reveal existence")

	kept, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "9 Oak", kept.Address)
}

func TestDelete_RemovesOwnedProperty(t *testing.T) {
	store := newFakeStore()
	svc := New(store, nil)

	owner := uuid.New()
	created, err := svc.Create(context.Background(), &domain.Property{UserID: owner, Address: "5 Pine"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID, owner))

	_, err = svc.Get(context.Background(), created.ID)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
}

func TestList_NilPageBecomesEmptySlice(t *testing.T) {
	svc := New(newFakeStore(), nil)

	items, total, err := svc.List(context.Background(), domain.ListFilter{Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
	assert.Zero(t, total)
}
