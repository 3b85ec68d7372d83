package domain

import "sort"

// Weights is the additive score contribution of each criterion. The weights
// are independent and sum to at most 100; the final score is clamped anyway.
type Weights struct {
	PropertyType  int
	State         int
	City          int
	ZipCode       int
	PriceRange    int
	BedroomRange  int
	BathroomRange int

	// Cutoff is the strict lower bound a buyer must exceed to be returned.
	Cutoff int
}

// DefaultWeights returns the standard match-score weighting.
func DefaultWeights() Weights {
	return Weights{
		PropertyType:  30,
		State:         15,
		City:          5,
		ZipCode:       5,
		PriceRange:    20,
		BedroomRange:  15,
		BathroomRange: 10,
		Cutoff:        50,
	}
}

// Match reason strings, appended in this fixed order when their condition holds.
const (
	ReasonPropertyType = "Property type match"
	ReasonLocation     = "Location preference"
	ReasonPriceRange   = "Price range match"
	ReasonProofOfFunds = "Verified buyer with proof of funds"
)

// Scorer computes match scores and reasons. Pure and stateless; safe for
// concurrent use.
type Scorer struct {
	weights Weights
}

// NewScorer creates a scorer with the given weights.
func NewScorer(weights Weights) *Scorer {
	return &Scorer{weights: weights}
}

// Score returns the 0-100 match score of a buyer for the subject.
//
// Price credit treats a missing bound as unbounded on that side. Bedroom and
// bathroom credit require BOTH bounds to be set on the buyer profile.
func (s *Scorer) Score(subject SubjectProperty, buyer BuyerCriteria) int {
	score := 0

	if contains(buyer.PropertyTypes, subject.PropertyType) {
		score += s.weights.PropertyType
	}

	if contains(buyer.States, subject.State) {
		score += s.weights.State
	}
	if contains(buyer.Cities, subject.City) {
		score += s.weights.City
	}
	if contains(buyer.ZipCodes, subject.ZipCode) {
		score += s.weights.ZipCode
	}

	if subject.ListPrice != nil {
		inMinRange := buyer.MinPrice == nil || *subject.ListPrice >= *buyer.MinPrice
		inMaxRange := buyer.MaxPrice == nil || *subject.ListPrice <= *buyer.MaxPrice
		if inMinRange && inMaxRange {
			score += s.weights.PriceRange
		}
	}

	if subject.Bedrooms != nil && buyer.MinBedrooms != nil && buyer.MaxBedrooms != nil {
		if *subject.Bedrooms >= *buyer.MinBedrooms && *subject.Bedrooms <= *buyer.MaxBedrooms {
			score += s.weights.BedroomRange
		}
	}

	if subject.Bathrooms != nil && buyer.MinBathrooms != nil && buyer.MaxBathrooms != nil {
		if *subject.Bathrooms >= *buyer.MinBathrooms && *subject.Bathrooms <= *buyer.MaxBathrooms {
			score += s.weights.BathroomRange
		}
	}

	return clamp(score, 0, 100)
}

// Reasons returns the human-readable explanation lines for a match, in fixed
// order. The price reason intentionally applies a stricter both-bounds check
// than the score contribution: it is an explanation gate, not a score gate.
// The proof-of-funds line is independent of the score.
func (s *Scorer) Reasons(subject SubjectProperty, buyer BuyerCriteria) []string {
	reasons := []string{}

	if contains(buyer.PropertyTypes, subject.PropertyType) {
		reasons = append(reasons, ReasonPropertyType)
	}

	if contains(buyer.States, subject.State) {
		reasons = append(reasons, ReasonLocation)
	}

	if subject.ListPrice != nil && buyer.MinPrice != nil && buyer.MaxPrice != nil {
		if *subject.ListPrice >= *buyer.MinPrice && *subject.ListPrice <= *buyer.MaxPrice {
			reasons = append(reasons, ReasonPriceRange)
		}
	}

	if buyer.HasProofOfFunds {
		reasons = append(reasons, ReasonProofOfFunds)
	}

	return reasons
}

// Rank scores every candidate, keeps buyers scoring strictly above the
// cutoff, and sorts descending by score. Ties keep the candidates' retrieval
// order via an explicit secondary key rather than relying on sort stability.
// Unverified buyers never surface, whatever their score.
func (s *Scorer) Rank(subject SubjectProperty, candidates []BuyerCriteria) []MatchResult {
	type ranked struct {
		result MatchResult
		index  int
	}

	kept := make([]ranked, 0, len(candidates))
	for i, buyer := range candidates {
		if !buyer.IsVerified {
			continue
		}
		score := s.Score(subject, buyer)
		if score <= s.weights.Cutoff {
			continue
		}
		kept = append(kept, ranked{
			result: MatchResult{
				Buyer:        buyer,
				MatchScore:   score,
				MatchReasons: s.Reasons(subject, buyer),
			},
			index: i,
		})
	}

	sort.Slice(kept, func(a, b int) bool {
		if kept[a].result.MatchScore != kept[b].result.MatchScore {
			return kept[a].result.MatchScore > kept[b].result.MatchScore
		}
		return kept[a].index < kept[b].index
	})

	results := make([]MatchResult, len(kept))
	for i, r := range kept {
		results[i] = r.result
	}
	return results
}

func contains(haystack []string, needle string) bool {
	if needle == "" {
		return false
	}
	for _, item := range haystack {
		if item == needle {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
