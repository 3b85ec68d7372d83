package transport

import (
	"dealflow_backend/internal/matching/domain"

	"github.com/google/uuid"
)

// MatchRequest identifies the subject either by a stored property ID or by an
// inline attribute payload. Exactly one of the two must be present.
type MatchRequest struct {
	PropertyID   string              `json:"propertyId" validate:"omitempty,uuid4"`
	PropertyData *SubjectPropertyDTO `json:"propertyData"`
}

// SubjectPropertyDTO carries the deal attributes the scorer evaluates.
type SubjectPropertyDTO struct {
	Address      string   `json:"address" validate:"omitempty,max=255"`
	City         string   `json:"city" validate:"omitempty,max=100"`
	State        string   `json:"state" validate:"omitempty,len=2"`
	ZipCode      string   `json:"zipCode" validate:"omitempty,min=5,max=10"`
	PropertyType string   `json:"propertyType" validate:"omitempty,oneof=SINGLE_FAMILY MULTI_FAMILY CONDO TOWNHOUSE LAND COMMERCIAL"`
	Bedrooms     *int     `json:"bedrooms" validate:"omitempty,min=0,max=50"`
	Bathrooms    *float64 `json:"bathrooms" validate:"omitempty,min=0,max=50"`
	ListPrice    *float64 `json:"listPrice" validate:"omitempty,min=0"`
}

// ToDomain converts the DTO to the domain subject.
func (dto *SubjectPropertyDTO) ToDomain() domain.SubjectProperty {
	return domain.SubjectProperty{
		Address:      dto.Address,
		City:         dto.City,
		State:        dto.State,
		ZipCode:      dto.ZipCode,
		PropertyType: dto.PropertyType,
		Bedrooms:     dto.Bedrooms,
		Bathrooms:    dto.Bathrooms,
		ListPrice:    dto.ListPrice,
	}
}

// BuyerSummary is the contact surface returned with a match.
type BuyerSummary struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone,omitempty"`
	BusinessName    string    `json:"businessName,omitempty"`
	HasProofOfFunds bool      `json:"hasProofOfFunds"`
}

// MatchResultDTO is one ranked buyer in the match response.
type MatchResultDTO struct {
	Buyer        BuyerSummary `json:"buyer"`
	MatchScore   int          `json:"matchScore"`
	MatchReasons []string     `json:"matchReasons"`
}

// FromDomain maps ranked matches to the response shape.
func FromDomain(results []domain.MatchResult) []MatchResultDTO {
	out := make([]MatchResultDTO, len(results))
	for i, r := range results {
		out[i] = MatchResultDTO{
			Buyer: BuyerSummary{
				ID:              r.Buyer.ID,
				Name:            r.Buyer.Name,
				Email:           r.Buyer.Email,
				Phone:           r.Buyer.Phone,
				BusinessName:    r.Buyer.BusinessName,
				HasProofOfFunds: r.Buyer.HasProofOfFunds,
			},
			MatchScore:   r.MatchScore,
			MatchReasons: r.MatchReasons,
		}
	}
	return out
}
