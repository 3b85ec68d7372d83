package service

import (
	"context"
	"errors"
	"testing"

	"dealflow_backend/internal/analysis/domain"
	"dealflow_backend/internal/analysis/repository"
	"dealflow_backend/platform/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCompSource struct {
	comps []domain.ComparableSale
	err   error
	query repository.CompQuery
}

func (f *fakeCompSource) FindComparables(_ context.Context, q repository.CompQuery) ([]domain.ComparableSale, error) {
	f.query = q
	return f.comps, f.err
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestAnalyze_UsesResolvedComps(t *testing.T) {
	source := &fakeCompSource{comps: []domain.ComparableSale{
		{Address: "123 Similar St", PricePerSquareFoot: 158.33},
		{Address: "456 Nearby Ave", PricePerSquareFoot: 155.26},
	}}
	svc := New(source, domain.DefaultPolicy())

	subject := domain.SubjectProperty{
		Address:    "789 Subject Rd",
		City:       "Austin",
		State:      "TX",
		ZipCode:    "78701",
		SquareFeet: intPtr(1800),
		Condition:  domain.ConditionNeedsRehab,
	}

	result, err := svc.Analyze(context.Background(), subject)
	require.NoError(t, err)

	assert.Equal(t, int64(282231), result.ARV)
	assert.Len(t, result.Comps, 2)
	assert.Equal(t, "Austin", source.query.City)
	assert.Equal(t, "78701", source.query.ZipCode)
}

func TestAnalyze_NoComps_DegradesToListPrice(t *testing.T) {
	source := &fakeCompSource{comps: []domain.ComparableSale{}}
	svc := New(source, domain.DefaultPolicy())

	result, err := svc.Analyze(context.Background(), domain.SubjectProperty{ListPrice: floatPtr(300000)})
	require.NoError(t, err)

	assert.Equal(t, int64(300000), result.ARV)
	assert.Empty(t, result.Comps)
}

func TestAnalyze_LookupFailureSurfacesAsAnalysisFailed(t *testing.T) {
	source := &fakeCompSource{err: errors.New("sales feed timeout")}
	svc := New(source, domain.DefaultPolicy())

	result, err := svc.Analyze(context.Background(), domain.SubjectProperty{ListPrice: floatPtr(300000)})

	require.Error(t, err)
	assert.Nil(t, result, "a failed lookup must not produce a partial result")
	assert.True(t, apperr.Is(err, apperr.KindInternal))
	assert.ErrorContains(t, err, "analysis failed")
}
