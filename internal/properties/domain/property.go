// Package domain holds the property listing model.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a listed property.
type Status string

const (
	StatusActive  Status = "ACTIVE"
	StatusPending Status = "PENDING"
	StatusSold    Status = "SOLD"
)

// Property is a deal listed by a wholesaler. Numeric attributes are optional;
// downstream analysis substitutes policy defaults for missing values.
type Property struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"userId"`
	Address      string    `json:"address"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	ZipCode      string    `json:"zipCode"`
	PropertyType string    `json:"propertyType"`
	Bedrooms     *int      `json:"bedrooms,omitempty"`
	Bathrooms    *float64  `json:"bathrooms,omitempty"`
	SquareFeet   *int      `json:"squareFeet,omitempty"`
	YearBuilt    *int      `json:"yearBuilt,omitempty"`
	ListPrice    *float64  `json:"listPrice,omitempty"`
	Description  string    `json:"description,omitempty"`
	Status       Status    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ListFilter narrows a property listing query.
type ListFilter struct {
	PropertyType string
	State        string
	City         string
	Status       string
	Page         int
	Limit        int
}

// Offset returns the row offset for the filter's page window.
func (f ListFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}
