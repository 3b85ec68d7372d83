package transport

import (
	"dealflow_backend/internal/buyers/domain"

	"github.com/google/uuid"
)

// CreateProfileRequest is the payload for registering a buyer profile.
type CreateProfileRequest struct {
	Name            string   `json:"name" validate:"required,max=200"`
	Email           string   `json:"email" validate:"required,email"`
	Phone           string   `json:"phone" validate:"omitempty,max=30"`
	BusinessName    string   `json:"businessName" validate:"omitempty,max=200"`
	PropertyTypes   []string `json:"propertyTypes" validate:"omitempty,dive,oneof=SINGLE_FAMILY MULTI_FAMILY CONDO TOWNHOUSE LAND COMMERCIAL"`
	MinPrice        *float64 `json:"minPrice" validate:"omitempty,min=0"`
	MaxPrice        *float64 `json:"maxPrice" validate:"omitempty,min=0"`
	MinBedrooms     *int     `json:"minBedrooms" validate:"omitempty,min=0,max=50"`
	MaxBedrooms     *int     `json:"maxBedrooms" validate:"omitempty,min=0,max=50"`
	MinBathrooms    *float64 `json:"minBathrooms" validate:"omitempty,min=0,max=50"`
	MaxBathrooms    *float64 `json:"maxBathrooms" validate:"omitempty,min=0,max=50"`
	States          []string `json:"states" validate:"omitempty,dive,len=2"`
	Cities          []string `json:"cities" validate:"omitempty,dive,max=100"`
	ZipCodes        []string `json:"zipCodes" validate:"omitempty,dive,min=5,max=10"`
	DealTypes       []string `json:"dealTypes" validate:"omitempty,dive,oneof=CASH CREATIVE SUBJECT_TO SELLER_FINANCE"`
	HasProofOfFunds bool     `json:"hasProofOfFunds"`
}

// ToDomain converts the create payload to a profile owned by userID.
// Geography slices default to empty, which the matcher reads as "anywhere".
func (r *CreateProfileRequest) ToDomain(userID uuid.UUID) *domain.Profile {
	return &domain.Profile{
		UserID:          userID,
		Name:            r.Name,
		Email:           r.Email,
		Phone:           r.Phone,
		BusinessName:    r.BusinessName,
		PropertyTypes:   orEmpty(r.PropertyTypes),
		MinPrice:        r.MinPrice,
		MaxPrice:        r.MaxPrice,
		MinBedrooms:     r.MinBedrooms,
		MaxBedrooms:     r.MaxBedrooms,
		MinBathrooms:    r.MinBathrooms,
		MaxBathrooms:    r.MaxBathrooms,
		States:          orEmpty(r.States),
		Cities:          orEmpty(r.Cities),
		ZipCodes:        orEmpty(r.ZipCodes),
		DealTypes:       orEmpty(r.DealTypes),
		HasProofOfFunds: r.HasProofOfFunds,
	}
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// ListQuery holds list endpoint query parameters.
type ListQuery struct {
	Page         int    `form:"page,default=1" validate:"min=1"`
	Limit        int    `form:"limit,default=20" validate:"min=1,max=100"`
	Search       string `form:"search" validate:"omitempty,max=200"`
	PropertyType string `form:"propertyType" validate:"omitempty,oneof=SINGLE_FAMILY MULTI_FAMILY CONDO TOWNHOUSE LAND COMMERCIAL"`
	State        string `form:"state" validate:"omitempty,len=2"`
	Verified     bool   `form:"verified"`
}

// ToFilter converts the query to a domain list filter.
func (q ListQuery) ToFilter() domain.ListFilter {
	return domain.ListFilter{
		Search:       q.Search,
		PropertyType: q.PropertyType,
		State:        q.State,
		VerifiedOnly: q.Verified,
		Page:         q.Page,
		Limit:        q.Limit,
	}
}
