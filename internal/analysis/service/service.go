// Package service orchestrates property analysis: comp resolution followed by
// the pure estimator.
package service

import (
	"context"

	"dealflow_backend/internal/analysis/domain"
	"dealflow_backend/internal/analysis/repository"
	"dealflow_backend/platform/apperr"
)

type Service struct {
	comps     repository.CompSource
	estimator *domain.Estimator
}

func New(comps repository.CompSource, policy domain.Policy) *Service {
	return &Service{
		comps:     comps,
		estimator: domain.NewEstimator(policy),
	}
}

// Analyze resolves comparable sales for the subject and runs the estimator.
// A failed comp lookup surfaces as an analysis-failed error; it is never
// masked as a zeroed result. An empty comp set is not an error — the
// estimator degrades to the list price.
func (s *Service) Analyze(ctx context.Context, subject domain.SubjectProperty) (*domain.AnalysisResult, error) {
	comps, err := s.comps.FindComparables(ctx, repository.CompQuery{
		Address: subject.Address,
		City:    subject.City,
		State:   subject.State,
		ZipCode: subject.ZipCode,
	})
	if err != nil {
		appErr := apperr.Internal("analysis failed").WithOp("analysis.Analyze")
		appErr.Err = err
		return nil, appErr
	}

	result := s.estimator.Estimate(subject, comps)
	return &result, nil
}
