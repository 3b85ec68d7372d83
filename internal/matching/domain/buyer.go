// Package domain holds the pure buyer-matching model: the subject property,
// buyer acquisition criteria, and the match scorer.
package domain

import "github.com/google/uuid"

// SubjectProperty is the deal being shopped to buyers. Optional numeric
// attributes stay nil when unknown; the scorer only credits criteria it can
// actually evaluate.
type SubjectProperty struct {
	Address      string
	City         string
	State        string
	ZipCode      string
	PropertyType string
	Bedrooms     *int
	Bathrooms    *float64
	ListPrice    *float64
}

// BuyerCriteria is a buyer's declared buy box plus the contact summary
// surfaced on a match. A nil bound means unbounded on that side.
type BuyerCriteria struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Name            string
	Email           string
	Phone           string
	BusinessName    string
	PropertyTypes   []string
	MinPrice        *float64
	MaxPrice        *float64
	MinBedrooms     *int
	MaxBedrooms     *int
	MinBathrooms    *float64
	MaxBathrooms    *float64
	States          []string
	Cities          []string
	ZipCodes        []string
	DealTypes       []string
	HasProofOfFunds bool
	IsVerified      bool
}

// MatchResult pairs a buyer with the score and explanation for one subject
// property. Produced fresh per match request, never persisted.
type MatchResult struct {
	Buyer        BuyerCriteria `json:"buyer"`
	MatchScore   int           `json:"matchScore"`
	MatchReasons []string      `json:"matchReasons"`
}
