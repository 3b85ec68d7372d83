package transport

import "dealflow_backend/internal/analysis/domain"

// AnalyzeRequest identifies the subject property either by address or by an
// inline attribute payload. Exactly one of the two must be present.
type AnalyzeRequest struct {
	Address      string              `json:"address" validate:"omitempty,min=3,max=255"`
	PropertyData *SubjectPropertyDTO `json:"propertyData"`
}

// SubjectPropertyDTO carries subject attributes over the wire. All numeric
// fields are optional; the estimator applies its documented defaults.
type SubjectPropertyDTO struct {
	Address      string   `json:"address" validate:"omitempty,max=255"`
	City         string   `json:"city" validate:"omitempty,max=100"`
	State        string   `json:"state" validate:"omitempty,len=2"`
	ZipCode      string   `json:"zipCode" validate:"omitempty,min=5,max=10"`
	PropertyType string   `json:"propertyType" validate:"omitempty,oneof=SINGLE_FAMILY MULTI_FAMILY CONDO TOWNHOUSE LAND COMMERCIAL"`
	Bedrooms     *int     `json:"bedrooms" validate:"omitempty,min=0,max=50"`
	Bathrooms    *float64 `json:"bathrooms" validate:"omitempty,min=0,max=50"`
	SquareFeet   *int     `json:"squareFeet" validate:"omitempty,min=1"`
	YearBuilt    *int     `json:"yearBuilt" validate:"omitempty,min=1800,max=2100"`
	Condition    string   `json:"condition" validate:"omitempty,oneof=EXCELLENT GOOD FAIR POOR NEEDS_REHAB"`
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
		SquareFeet:   dto.SquareFeet,
		YearBuilt:    dto.YearBuilt,
		Condition:    domain.Condition(dto.Condition),
		ListPrice:    dto.ListPrice,
	}
}
