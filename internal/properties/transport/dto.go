package transport

import (
	"dealflow_backend/internal/properties/domain"

	"github.com/google/uuid"
)

// CreatePropertyRequest is the payload for listing a new property.
type CreatePropertyRequest struct {
	Address      string   `json:"address" validate:"required,max=255"`
	City         string   `json:"city" validate:"required,max=100"`
	State        string   `json:"state" validate:"required,len=2"`
	ZipCode      string   `json:"zipCode" validate:"required,min=5,max=10"`
	PropertyType string   `json:"propertyType" validate:"required,oneof=SINGLE_FAMILY MULTI_FAMILY CONDO TOWNHOUSE LAND COMMERCIAL"`
	Bedrooms     *int     `json:"bedrooms" validate:"omitempty,min=0,max=50"`
	Bathrooms    *float64 `json:"bathrooms" validate:"omitempty,min=0,max=50"`
	SquareFeet   *int     `json:"squareFeet" validate:"omitempty,min=1,max=1000000"`
	YearBuilt    *int     `json:"yearBuilt" validate:"omitempty,min=1800,max=2100"`
	ListPrice    *float64 `json:"listPrice" validate:"omitempty,min=0"`
	Description  string   `json:"description" validate:"omitempty,max=5000"`
}

// ToDomain converts the create payload to a property owned by userID.
func (r *CreatePropertyRequest) ToDomain(userID uuid.UUID) *domain.Property {
	return &domain.Property{
		UserID:       userID,
		Address:      r.Address,
		City:         r.City,
		State:        r.State,
		ZipCode:      r.ZipCode,
		PropertyType: r.PropertyType,
		Bedrooms:     r.Bedrooms,
		Bathrooms:    r.Bathrooms,
		SquareFeet:   r.SquareFeet,
		YearBuilt:    r.YearBuilt,
		ListPrice:    r.ListPrice,
		Description:  r.Description,
	}
}

// UpdatePropertyRequest carries partial updates; nil fields are left unchanged.
type UpdatePropertyRequest struct {
	Address      *string  `json:"address" validate:"omitempty,max=255"`
	City         *string  `json:"city" validate:"omitempty,max=100"`
	State        *string  `json:"state" validate:"omitempty,len=2"`
	ZipCode      *string  `json:"zipCode" validate:"omitempty,min=5,max=10"`
	PropertyType *string  `json:"propertyType" validate:"omitempty,oneof=SINGLE_FAMILY MULTI_FAMILY CONDO TOWNHOUSE LAND COMMERCIAL"`
	Bedrooms     *int     `json:"bedrooms" validate:"omitempty,min=0,max=50"`
	Bathrooms    *float64 `json:"bathrooms" validate:"omitempty,min=0,max=50"`
	SquareFeet   *int     `json:"squareFeet" validate:"omitempty,min=1,max=1000000"`
	YearBuilt    *int     `json:"yearBuilt" validate:"omitempty,min=1800,max=2100"`
	ListPrice    *float64 `json:"listPrice" validate:"omitempty,min=0"`
	Description  *string  `json:"description" validate:"omitempty,max=5000"`
	Status       *string  `json:"status" validate:"omitempty,oneof=ACTIVE PENDING SOLD"`
}

// Apply copies the non-nil fields onto the property.
func (r *UpdatePropertyRequest) Apply(p *domain.Property) {
	if r.Address != nil {
		p.Address = *r.Address
	}
	if r.City != nil {
		p.City = *r.City
	}
	if r.State != nil {
		p.State = *r.State
	}
	if r.ZipCode != nil {
		p.ZipCode = *r.ZipCode
	}
	if r.PropertyType != nil {
		p.PropertyType = *r.PropertyType
	}
	if r.Bedrooms != nil {
		p.Bedrooms = r.Bedrooms
	}
	if r.Bathrooms != nil {
		p.Bathrooms = r.Bathrooms
	}
	if r.SquareFeet != nil {
		p.SquareFeet = r.SquareFeet
	}
	if r.YearBuilt != nil {
		p.YearBuilt = r.YearBuilt
	}
	if r.ListPrice != nil {
		p.ListPrice = r.ListPrice
	}
	if r.Description != nil {
		p.Description = *r.Description
	}
	if r.Status != nil {
		p.Status = domain.Status(*r.Status)
	}
}

// ListQuery holds list endpoint query parameters.
type ListQuery struct {
	Page         int    `form:"page,default=1" validate:"min=1"`
	Limit        int    `form:"limit,default=20" validate:"min=1,max=100"`
	PropertyType string `form:"propertyType" validate:"omitempty,oneof=SINGLE_FAMILY MULTI_FAMILY CONDO TOWNHOUSE LAND COMMERCIAL"`
	State        string `form:"state" validate:"omitempty,len=2"`
	City         string `form:"city" validate:"omitempty,max=100"`
	Status       string `form:"status" validate:"omitempty,oneof=ACTIVE PENDING SOLD"`
}

// ToFilter converts the query to a domain list filter.
func (q ListQuery) ToFilter() domain.ListFilter {
	return domain.ListFilter{
		PropertyType: q.PropertyType,
		State:        q.State,
		City:         q.City,
		Status:       q.Status,
		Page:         q.Page,
		Limit:        q.Limit,
	}
}
