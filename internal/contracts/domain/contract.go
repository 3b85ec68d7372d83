// Package domain holds the assignment contract model and document rendering.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Status is the generation lifecycle of a contract.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusGenerated Status = "generated"
	StatusFailed    Status = "failed"
)

// DealType is how the deal is being closed.
type DealType string

const (
	DealCash          DealType = "CASH"
	DealCreative      DealType = "CREATIVE"
	DealSubjectTo     DealType = "SUBJECT_TO"
	DealSellerFinance DealType = "SELLER_FINANCE"
)

// Contract captures the wizard payload for an assignment contract. PurchasePrice
// is what the wholesaler pays the seller; SalePrice is what the end buyer pays.
type Contract struct {
	ID                   uuid.UUID `json:"id"`
	UserID               uuid.UUID `json:"userId"`
	PropertyAddress      string    `json:"propertyAddress"`
	SellerName           string    `json:"sellerName"`
	SellerEmail          string    `json:"sellerEmail,omitempty"`
	BuyerName            string    `json:"buyerName"`
	BuyerEmail           string    `json:"buyerEmail,omitempty"`
	AgentName            string    `json:"agentName,omitempty"`
	DealType             DealType  `json:"dealType"`
	PurchasePrice        float64   `json:"purchasePrice"`
	SalePrice            float64   `json:"salePrice"`
	EarnestMoney         float64   `json:"earnestMoney"`
	InspectionPeriodDays int       `json:"inspectionPeriodDays"`
	ClosingDate          time.Time `json:"closingDate"`
	HasLiens             bool      `json:"hasLiens"`
	LienAmount           *float64  `json:"lienAmount,omitempty"`
	BalloonPayment       *float64  `json:"balloonPayment,omitempty"`
	Status               Status    `json:"status"`
	Document             string    `json:"document,omitempty"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

// AssignmentFee is the wholesaler's spread on the deal.
func (c *Contract) AssignmentFee() float64 {
	return c.SalePrice - c.PurchasePrice
}
