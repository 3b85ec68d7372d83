package transport

import (
	"time"

	"dealflow_backend/internal/contracts/domain"

	"github.com/google/uuid"
)

// CreateContractRequest is the wizard payload for generating an assignment
// contract.
type CreateContractRequest struct {
	PropertyAddress      string   `json:"propertyAddress" validate:"required,max=255"`
	SellerName           string   `json:"sellerName" validate:"required,max=200"`
	SellerEmail          string   `json:"sellerEmail" validate:"omitempty,email"`
	BuyerName            string   `json:"buyerName" validate:"required,max=200"`
	BuyerEmail           string   `json:"buyerEmail" validate:"omitempty,email"`
	AgentName            string   `json:"agentName" validate:"omitempty,max=200"`
	DealType             string   `json:"dealType" validate:"required,oneof=CASH CREATIVE SUBJECT_TO SELLER_FINANCE"`
	PurchasePrice        float64  `json:"purchasePrice" validate:"required,gt=0"`
	SalePrice            float64  `json:"salePrice" validate:"required,gt=0"`
	EarnestMoney         float64  `json:"earnestMoney" validate:"min=0"`
	InspectionPeriodDays int      `json:"inspectionPeriodDays" validate:"min=0,max=90"`
	ClosingDate          string   `json:"closingDate" validate:"required,datetime=2006-01-02"`
	HasLiens             bool     `json:"hasLiens"`
	LienAmount           *float64 `json:"lienAmount" validate:"omitempty,min=0"`
	BalloonPayment       *float64 `json:"balloonPayment" validate:"omitempty,min=0"`
}

// ToDomain converts the wizard payload to a contract owned by userID.
func (r *CreateContractRequest) ToDomain(userID uuid.UUID) (*domain.Contract, error) {
	closing, err := time.Parse("2006-01-02", r.ClosingDate)
	if err != nil {
		return nil, err
	}
	return &domain.Contract{
		UserID:               userID,
		PropertyAddress:      r.PropertyAddress,
		SellerName:           r.SellerName,
		SellerEmail:          r.SellerEmail,
		BuyerName:            r.BuyerName,
		BuyerEmail:           r.BuyerEmail,
		AgentName:            r.AgentName,
		DealType:             domain.DealType(r.DealType),
		PurchasePrice:        r.PurchasePrice,
		SalePrice:            r.SalePrice,
		EarnestMoney:         r.EarnestMoney,
		InspectionPeriodDays: r.InspectionPeriodDays,
		ClosingDate:          closing,
		HasLiens:             r.HasLiens,
		LienAmount:           r.LienAmount,
		BalloonPayment:       r.BalloonPayment,
	}, nil
}

// ContractResponse augments the stored contract with the derived fee.
type ContractResponse struct {
	*domain.Contract
	AssignmentFee float64 `json:"assignmentFee"`
}

// FromDomain wraps a contract for the response envelope.
func FromDomain(c *domain.Contract) ContractResponse {
	return ContractResponse{Contract: c, AssignmentFee: c.AssignmentFee()}
}
