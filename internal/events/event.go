// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"dealflow_backend/platform/events"

	"github.com/google/uuid"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
	InMemoryBus = events.InMemoryBus
)

// Re-export platform functions
var (
	NewBaseEvent   = events.NewBaseEvent
	NewInMemoryBus = events.NewInMemoryBus
)

// =============================================================================
// Property Domain Events
// =============================================================================

// PropertyCreated is published when a new property is listed.
type PropertyCreated struct {
	BaseEvent
	PropertyID uuid.UUID `json:"propertyId"`
	Address    string    `json:"address"`
	State      string    `json:"state"`
}

func (e PropertyCreated) EventName() string { return "properties.created" }

// =============================================================================
// Matching Domain Events
// =============================================================================

// BuyerMatch identifies one matched buyer and the score it matched at.
type BuyerMatch struct {
	BuyerID uuid.UUID `json:"buyerId"`
	Score   int       `json:"score"`
}

// MatchingCompleted is published after a buyer match run finishes.
type MatchingCompleted struct {
	BaseEvent
	PropertyAddress string       `json:"propertyAddress"`
	MatchCount      int          `json:"matchCount"`
	TopMatches      []BuyerMatch `json:"topMatches"`
}

func (e MatchingCompleted) EventName() string { return "matching.completed" }

// =============================================================================
// Contract Domain Events
// =============================================================================

// ContractRequested is published when a contract draft is submitted for generation.
type ContractRequested struct {
	BaseEvent
	ContractID uuid.UUID `json:"contractId"`
	SellerName string    `json:"sellerName"`
}

func (e ContractRequested) EventName() string { return "contracts.requested" }

// ContractGenerated is published when the worker finishes rendering a contract.
type ContractGenerated struct {
	BaseEvent
	ContractID uuid.UUID `json:"contractId"`
	SellerName string    `json:"sellerName"`
}

func (e ContractGenerated) EventName() string { return "contracts.generated" }
