// Package domain holds the pure property-analysis model: the subject property,
// comparable sales, and the deal estimator. Nothing in here touches storage or
// transport.
package domain

import "time"

// Condition classifies the physical state of a property.
type Condition string

const (
	ConditionExcellent  Condition = "EXCELLENT"
	ConditionGood       Condition = "GOOD"
	ConditionFair       Condition = "FAIR"
	ConditionPoor       Condition = "POOR"
	ConditionNeedsRehab Condition = "NEEDS_REHAB"
)

// SubjectProperty is the property under analysis. Numeric fields are optional;
// the estimator substitutes policy defaults for absent values rather than
// rejecting the input.
type SubjectProperty struct {
	Address      string
	City         string
	State        string
	ZipCode      string
	PropertyType string
	Bedrooms     *int
	Bathrooms    *float64
	SquareFeet   *int
	YearBuilt    *int
	Condition    Condition
	ListPrice    *float64
}

// ComparableSale is a recently sold nearby property used as a valuation
// reference. Comps are transient: fetched fresh per analysis request, no
// identity beyond the current request. Bedrooms, bathrooms, and distance are
// optional sales-data fields; a comp missing them is still a valid comp and
// must not fail an analysis.
type ComparableSale struct {
	Address            string    `json:"address"`
	SalePrice          float64   `json:"salePrice"`
	SaleDate           time.Time `json:"saleDate"`
	Bedrooms           *int      `json:"bedrooms,omitempty"`
	Bathrooms          *float64  `json:"bathrooms,omitempty"`
	SquareFeet         int       `json:"squareFeet"`
	DistanceMiles      *float64  `json:"distance,omitempty"`
	PricePerSquareFoot float64   `json:"pricePerSqFt"`
}

// AnalysisResult is the derived deal picture for a subject property.
// Dollar figures are whole dollars; ROI is a percentage.
type AnalysisResult struct {
	ARV             int64            `json:"arv"`
	RehabCost       int64            `json:"rehabCost"`
	MaxOffer        int64            `json:"maxOffer"`
	ProfitPotential int64            `json:"profitPotential"`
	ROI             float64          `json:"roi"`
	Comps           []ComparableSale `json:"comps"`
}
