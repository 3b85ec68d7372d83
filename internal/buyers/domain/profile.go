// Package domain holds the buyer profile model.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Profile is a cash buyer's buy-box: the criteria their deal flow is matched
// against. Bound fields are optional; a nil bound is open on that side.
type Profile struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"userId"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone,omitempty"`
	BusinessName    string    `json:"businessName,omitempty"`
	PropertyTypes   []string  `json:"propertyTypes"`
	MinPrice        *float64  `json:"minPrice,omitempty"`
	MaxPrice        *float64  `json:"maxPrice,omitempty"`
	MinBedrooms     *int      `json:"minBedrooms,omitempty"`
	MaxBedrooms     *int      `json:"maxBedrooms,omitempty"`
	MinBathrooms    *float64  `json:"minBathrooms,omitempty"`
	MaxBathrooms    *float64  `json:"maxBathrooms,omitempty"`
	States          []string  `json:"states"`
	Cities          []string  `json:"cities"`
	ZipCodes        []string  `json:"zipCodes"`
	DealTypes       []string  `json:"dealTypes"`
	HasProofOfFunds bool      `json:"hasProofOfFunds"`
	IsVerified      bool      `json:"isVerified"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ListFilter narrows a buyer profile listing query.
type ListFilter struct {
	Search       string
	PropertyType string
	State        string
	VerifiedOnly bool
	Page         int
	Limit        int
}

// Offset returns the row offset for the filter's page window.
func (f ListFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}
