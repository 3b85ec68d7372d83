package notification

import (
	"context"
	"testing"
	"time"

	buyersdomain "dealflow_backend/internal/buyers/domain"
	contractsdomain "dealflow_backend/internal/contracts/domain"
	"dealflow_backend/internal/events"
	"dealflow_backend/platform/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentAlert struct {
	to      string
	address string
	score   int
}

type fakeSender struct {
	alerts  chan sentAlert
	notices chan string
}

func newFakeSender() *fakeSender {
	return &fakeSender{
		alerts:  make(chan sentAlert, 10),
		notices: make(chan string, 10),
	}
}

func (f *fakeSender) SendDealAlertEmail(_ context.Context, toEmail, _ string, propertyAddress string, matchScore int) error {
	f.alerts <- sentAlert{to: toEmail, address: propertyAddress, score: matchScore}
	return nil
}

func (f *fakeSender) SendContractReadyEmail(_ context.Context, toEmail, _, _ string) error {
	f.notices <- toEmail
	return nil
}

type fakeBuyerReader struct {
	profiles map[uuid.UUID]*buyersdomain.Profile
}

func (f *fakeBuyerReader) GetByID(_ context.Context, id uuid.UUID) (*buyersdomain.Profile, error) {
	if p, ok := f.profiles[id]; ok {
		return p, nil
	}
	return nil, assertNotFound{}
}

type assertNotFound struct{}

func (assertNotFound) Error() string { return "not found" }

type fakeContractReader struct {
	contracts map[uuid.UUID]*contractsdomain.Contract
}

func (f *fakeContractReader) GetByID(_ context.Context, id uuid.UUID) (*contractsdomain.Contract, error) {
	if c, ok := f.contracts[id]; ok {
		return c, nil
	}
	return nil, assertNotFound{}
}

func TestMatchingCompleted_AlertsTopBuyers(t *testing.T) {
	log := logger.New("development")
	bus := events.NewInMemoryBus(log)
	sender := newFakeSender()

	buyerID := uuid.New()
	buyers := &fakeBuyerReader{profiles: map[uuid.UUID]*buyersdomain.Profile{
		buyerID: {ID: buyerID, Name: "Cash Buyer LLC", Email: "buy@example.com"},
	}}

	NewModule(bus, sender, buyers, &fakeContractReader{}, log)

	bus.Publish(context.Background(), events.MatchingCompleted{
		BaseEvent:       events.NewBaseEvent(),
		PropertyAddress: "12 Birch Ln",
		MatchCount:      1,
		TopMatches:      []events.BuyerMatch{{BuyerID: buyerID, Score: 65}},
	})

	select {
	case alert := <-sender.alerts:
		assert.Equal(t, "buy@example.com", alert.to)
		assert.Equal(t, "12 Birch Ln", alert.address)
		assert.Equal(t, 65, alert.score)
	case <-time.After(time.Second):
		t.Fatal("expected a deal alert email")
	}
}

func TestMatchingCompleted_SkipsUnknownBuyers(t *testing.T) {
	log := logger.New("development")
	bus := events.NewInMemoryBus(log)
	sender := newFakeSender()

	known := uuid.New()
	buyers := &fakeBuyerReader{profiles: map[uuid.UUID]*buyersdomain.Profile{
		known: {ID: known, Name: "Known", Email: "known@example.com"},
	}}

	NewModule(bus, sender, buyers, &fakeContractReader{}, log)

	require.NoError(t, bus.PublishSync(context.Background(), events.MatchingCompleted{
		BaseEvent: events.NewBaseEvent(),
		TopMatches: []events.BuyerMatch{
			{BuyerID: uuid.New(), Score: 80},
			{BuyerID: known, Score: 60},
		},
	}))

	alert := <-sender.alerts
	assert.Equal(t, "known@example.com", alert.to)
	assert.Empty(t, sender.alerts, "unknown buyers must be skipped, not retried")
}

func TestContractRequested_LogsWithoutEmailing(t *testing.T) {
	log := logger.New("development")
	bus := events.NewInMemoryBus(log)
	sender := newFakeSender()

	NewModule(bus, sender, &fakeBuyerReader{}, &fakeContractReader{}, log)

	require.NoError(t, bus.PublishSync(context.Background(), events.ContractRequested{
		BaseEvent:  events.NewBaseEvent(),
		ContractID: uuid.New(),
		SellerName: "Seller",
	}))

	// The seller hears from us when the document is ready, not before.
	assert.Empty(t, sender.alerts)
	assert.Empty(t, sender.notices)
}

func TestContractGenerated_NotifiesSeller(t *testing.T) {
	log := logger.New("development")
	bus := events.NewInMemoryBus(log)
	sender := newFakeSender()

	contractID := uuid.New()
	contracts := &fakeContractReader{contracts: map[uuid.UUID]*contractsdomain.Contract{
		contractID: {
			ID:              contractID,
			SellerName:      "Seller",
			SellerEmail:     "seller@example.com",
			PropertyAddress: "12 Birch Ln",
		},
	}}

	NewModule(bus, sender, &fakeBuyerReader{}, contracts, log)

	require.NoError(t, bus.PublishSync(context.Background(), events.ContractGenerated{
		BaseEvent:  events.NewBaseEvent(),
		ContractID: contractID,
	}))

	assert.Equal(t, "seller@example.com", <-sender.notices)
}

func TestNilSender_ConsumesEventsQuietly(t *testing.T) {
	log := logger.New("development")
	bus := events.NewInMemoryBus(log)

	NewModule(bus, nil, &fakeBuyerReader{}, &fakeContractReader{}, log)

	require.NoError(t, bus.PublishSync(context.Background(), events.MatchingCompleted{
		BaseEvent:  events.NewBaseEvent(),
		TopMatches: []events.BuyerMatch{{BuyerID: uuid.New(), Score: 90}},
	}))
}
