// Package notification reacts to domain events by sending email alerts.
// Domain modules publish events and stay unaware of mail providers; this
// module owns the delivery side. Deliveries are best effort, failures are
// logged and not retried.
package notification

import (
	"context"

	buyersdomain "dealflow_backend/internal/buyers/domain"
	contractsdomain "dealflow_backend/internal/contracts/domain"
	"dealflow_backend/internal/email"
	"dealflow_backend/internal/events"
	"dealflow_backend/platform/logger"

	"github.com/google/uuid"
)

// BuyerReader loads buyer profiles for alert delivery.
type BuyerReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*buyersdomain.Profile, error)
}

// ContractReader loads contracts for completion notices.
type ContractReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*contractsdomain.Contract, error)
}

type Module struct {
	sender    email.Sender
	buyers    BuyerReader
	contracts ContractReader
	log       *logger.Logger
}

// NewModule registers the event subscriptions. A nil sender disables email;
// events are still consumed and logged.
func NewModule(bus events.Bus, sender email.Sender, buyers BuyerReader, contracts ContractReader, log *logger.Logger) *Module {
	m := &Module{
		sender:    sender,
		buyers:    buyers,
		contracts: contracts,
		log:       log,
	}

	bus.Subscribe(events.MatchingCompleted{}.EventName(), events.HandlerFunc(m.handleMatchingCompleted))
	bus.Subscribe(events.ContractRequested{}.EventName(), events.HandlerFunc(m.handleContractRequested))
	bus.Subscribe(events.ContractGenerated{}.EventName(), events.HandlerFunc(m.handleContractGenerated))

	return m
}

func (m *Module) handleMatchingCompleted(ctx context.Context, event events.Event) error {
	evt, ok := event.(events.MatchingCompleted)
	if !ok {
		return nil
	}

	m.log.Info("matching completed",
		"propertyAddress", evt.PropertyAddress,
		"matchCount", evt.MatchCount,
	)

	if m.sender == nil {
		return nil
	}

	for _, match := range evt.TopMatches {
		buyer, err := m.buyers.GetByID(ctx, match.BuyerID)
		if err != nil {
			m.log.Error("failed to load buyer for deal alert", "buyerId", match.BuyerID, "error", err)
			continue
		}
		if buyer.Email == "" {
			continue
		}
		if err := m.sender.SendDealAlertEmail(ctx, buyer.Email, buyer.Name, evt.PropertyAddress, match.Score); err != nil {
			m.log.Error("failed to send deal alert", "buyerId", match.BuyerID, "error", err)
		}
	}

	return nil
}

// handleContractRequested records the request for the audit trail. The seller
// is only emailed once generation finishes.
func (m *Module) handleContractRequested(_ context.Context, event events.Event) error {
	evt, ok := event.(events.ContractRequested)
	if !ok {
		return nil
	}

	m.log.Info("contract requested", "contractId", evt.ContractID, "sellerName", evt.SellerName)
	return nil
}

func (m *Module) handleContractGenerated(ctx context.Context, event events.Event) error {
	evt, ok := event.(events.ContractGenerated)
	if !ok {
		return nil
	}

	m.log.Info("contract generated", "contractId", evt.ContractID)

	if m.sender == nil {
		return nil
	}

	contract, err := m.contracts.GetByID(ctx, evt.ContractID)
	if err != nil {
		m.log.Error("failed to load contract for notice", "contractId", evt.ContractID, "error", err)
		return nil
	}
	if contract.SellerEmail == "" {
		return nil
	}

	if err := m.sender.SendContractReadyEmail(ctx, contract.SellerEmail, contract.SellerName, contract.PropertyAddress); err != nil {
		m.log.Error("failed to send contract notice", "contractId", evt.ContractID, "error", err)
	}

	return nil
}
