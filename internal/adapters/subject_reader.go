// Package adapters bridges module boundaries. Each adapter satisfies a
// consumer module's port using another module's service, so modules never
// import each other's internals directly.
package adapters

import (
	"context"

	matchingdomain "dealflow_backend/internal/matching/domain"
	"dealflow_backend/internal/matching/ports"
	propertysvc "dealflow_backend/internal/properties/service"

	"github.com/google/uuid"
)

// PropertySubjectReader resolves stored properties into matching subjects.
type PropertySubjectReader struct {
	properties *propertysvc.Service
}

func NewPropertySubjectReader(properties *propertysvc.Service) *PropertySubjectReader {
	return &PropertySubjectReader{properties: properties}
}

func (a *PropertySubjectReader) SubjectByID(ctx context.Context, id uuid.UUID) (matchingdomain.SubjectProperty, error) {
	p, err := a.properties.Get(ctx, id)
	if err != nil {
		return matchingdomain.SubjectProperty{}, err
	}
	return matchingdomain.SubjectProperty{
		Address:      p.Address,
		City:         p.City,
		State:        p.State,
		ZipCode:      p.ZipCode,
		PropertyType: p.PropertyType,
		Bedrooms:     p.Bedrooms,
		Bathrooms:    p.Bathrooms,
		ListPrice:    p.ListPrice,
	}, nil
}

var _ ports.SubjectReader = (*PropertySubjectReader)(nil)
