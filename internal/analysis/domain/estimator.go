package domain

import "math"

// Policy collects the estimator's fixed fallbacks and rate table so default
// behavior is auditable and overridable per deployment instead of being
// scattered as inline literals.
type Policy struct {
	// Defaults substituted for absent subject fields. These are deliberate
	// simplifications carried over from the product's pricing model, not
	// data-quality safeguards.
	DefaultBedrooms   int
	DefaultBathrooms  float64
	DefaultSquareFeet int

	// Rehab cost per square foot, keyed by condition.
	RehabPerSqFt map[Condition]float64
	// Rehab cost per square foot when the condition is unknown or missing.
	RehabPerSqFtUnknown float64

	// MaxOfferRatio is the 70%-rule constant. Industry convention; the ratio
	// and the subtraction order in MaxOffer must not be changed.
	MaxOfferRatio float64
}

// DefaultPolicy returns the standard wholesaling estimator policy.
func DefaultPolicy() Policy {
	return Policy{
		DefaultBedrooms:   3,
		DefaultBathrooms:  2,
		DefaultSquareFeet: 1800,
		RehabPerSqFt: map[Condition]float64{
			ConditionExcellent:  0,
			ConditionGood:       5,
			ConditionFair:       15,
			ConditionPoor:       25,
			ConditionNeedsRehab: 40,
		},
		RehabPerSqFtUnknown: 20,
		MaxOfferRatio:       0.70,
	}
}

// Estimator computes deal figures for a subject property from comparable
// sales. It is pure and stateless; safe for concurrent use.
type Estimator struct {
	policy Policy
}

// NewEstimator creates an estimator with the given policy.
func NewEstimator(policy Policy) *Estimator {
	return &Estimator{policy: policy}
}

// Estimate derives ARV, rehab cost, max offer, profit potential, and ROI.
// Missing numeric inputs fall back to policy defaults; an empty comp set
// degrades ARV to the list price (or zero) rather than failing.
func (e *Estimator) Estimate(subject SubjectProperty, comps []ComparableSale) AnalysisResult {
	arv := e.estimateARV(subject, comps)
	rehabCost := e.estimateRehabCost(subject)

	maxOffer := int64(math.Round(float64(arv)*e.policy.MaxOfferRatio)) - rehabCost
	profitPotential := arv - maxOffer - rehabCost

	var roi float64
	if maxOffer > 0 {
		roi = float64(profitPotential) / float64(maxOffer) * 100
	}

	if comps == nil {
		comps = []ComparableSale{}
	}

	return AnalysisResult{
		ARV:             arv,
		RehabCost:       rehabCost,
		MaxOffer:        maxOffer,
		ProfitPotential: profitPotential,
		ROI:             roi,
		Comps:           comps,
	}
}

// estimateARV averages price per square foot across comps and applies it to
// the subject's square footage. The mean is unweighted: comp distance and
// recency are carried on the comp but do not influence the estimate.
func (e *Estimator) estimateARV(subject SubjectProperty, comps []ComparableSale) int64 {
	if len(comps) == 0 {
		if subject.ListPrice != nil {
			return int64(math.Round(*subject.ListPrice))
		}
		return 0
	}

	var sum float64
	for _, comp := range comps {
		sum += comp.PricePerSquareFoot
	}
	avgPricePerSqFt := sum / float64(len(comps))

	return int64(math.Round(avgPricePerSqFt * float64(e.squareFeet(subject))))
}

func (e *Estimator) estimateRehabCost(subject SubjectProperty) int64 {
	costPerSqFt, ok := e.policy.RehabPerSqFt[subject.Condition]
	if !ok {
		costPerSqFt = e.policy.RehabPerSqFtUnknown
	}
	return int64(math.Round(float64(e.squareFeet(subject)) * costPerSqFt))
}

func (e *Estimator) squareFeet(subject SubjectProperty) int {
	if subject.SquareFeet != nil {
		return *subject.SquareFeet
	}
	return e.policy.DefaultSquareFeet
}
