// Package service orchestrates buyer matching: loose candidate retrieval
// followed by strict score-based acceptance.
package service

import (
	"context"

	appevents "dealflow_backend/internal/events"
	"dealflow_backend/internal/matching/domain"
	"dealflow_backend/platform/apperr"
)

// CandidateSource is the buyer-profile collaborator the matcher depends on.
type CandidateSource interface {
	FindCandidates(ctx context.Context, subject domain.SubjectProperty) ([]domain.BuyerCriteria, error)
}

type Service struct {
	candidates CandidateSource
	scorer     *domain.Scorer
	bus        appevents.Bus
}

func New(candidates CandidateSource, weights domain.Weights, bus appevents.Bus) *Service {
	return &Service{
		candidates: candidates,
		scorer:     domain.NewScorer(weights),
		bus:        bus,
	}
}

// FindMatches retrieves the candidate superset and ranks it. A failed
// candidate lookup surfaces as a matching-failed error, never as an empty
// result set.
func (s *Service) FindMatches(ctx context.Context, subject domain.SubjectProperty) ([]domain.MatchResult, error) {
	candidates, err := s.candidates.FindCandidates(ctx, subject)
	if err != nil {
		appErr := apperr.Internal("matching failed").WithOp("matching.FindMatches")
		appErr.Err = err
		return nil, appErr
	}

	results := s.scorer.Rank(subject, candidates)

	if s.bus != nil {
		s.bus.Publish(ctx, appevents.MatchingCompleted{
			BaseEvent:       appevents.NewBaseEvent(),
			PropertyAddress: subject.Address,
			MatchCount:      len(results),
			TopMatches:      topMatches(results, 5),
		})
	}

	return results, nil
}

func topMatches(results []domain.MatchResult, n int) []appevents.BuyerMatch {
	if len(results) < n {
		n = len(results)
	}
	top := make([]appevents.BuyerMatch, 0, n)
	for _, r := range results[:n] {
		top = append(top, appevents.BuyerMatch{BuyerID: r.Buyer.ID, Score: r.MatchScore})
	}
	return top
}
