package domain

import (
	"math"
	"testing"
)

func newTestEstimator() *Estimator {
	return NewEstimator(DefaultPolicy())
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestEstimate_NoComps_FallsBackToListPrice(t *testing.T) {
	est := newTestEstimator()

	result := est.Estimate(SubjectProperty{ListPrice: floatPtr(250000)}, nil)

	if result.ARV != 250000 {
		t.Fatalf("expected ARV 250000, got %d", result.ARV)
	}
	if len(result.Comps) != 0 {
		t.Fatalf("expected empty comps, got %d", len(result.Comps))
	}
}

func TestEstimate_NoCompsNoListPrice_ARVZero(t *testing.T) {
	est := newTestEstimator()

	result := est.Estimate(SubjectProperty{}, nil)

	if result.ARV != 0 {
		t.Fatalf("expected ARV 0, got %d", result.ARV)
	}
	if result.ROI != 0 {
		t.Fatalf("expected ROI 0 for non-positive max offer, got %f", result.ROI)
	}
}

func TestEstimate_ARVFromCompAverage(t *testing.T) {
	est := newTestEstimator()

	comps := []ComparableSale{
		{Address: "123 Similar St", SalePrice: 285000, SquareFeet: 1800, PricePerSquareFoot: 158.33},
		{Address: "456 Nearby Ave", SalePrice: 295000, SquareFeet: 1900, PricePerSquareFoot: 155.26},
	}
	subject := SubjectProperty{
		SquareFeet: intPtr(1800),
		Condition:  ConditionNeedsRehab,
	}

	result := est.Estimate(subject, comps)

	// avg $/sqft = (158.33+155.26)/2 = 156.795; 156.795 * 1800 = 282231
	if result.ARV != 282231 {
		t.Fatalf("expected ARV 282231, got %d", result.ARV)
	}
	if result.RehabCost != 72000 {
		t.Fatalf("expected rehab 72000 (1800 sqft * $40), got %d", result.RehabCost)
	}

	wantMaxOffer := int64(math.Round(282231*0.7)) - 72000
	if result.MaxOffer != wantMaxOffer {
		t.Fatalf("expected max offer %d, got %d", wantMaxOffer, result.MaxOffer)
	}

	wantProfit := result.ARV - result.MaxOffer - result.RehabCost
	if result.ProfitPotential != wantProfit {
		t.Fatalf("expected profit %d, got %d", wantProfit, result.ProfitPotential)
	}

	wantROI := float64(wantProfit) / float64(wantMaxOffer) * 100
	if math.Abs(result.ROI-wantROI) > 1e-9 {
		t.Fatalf("expected ROI %f, got %f", wantROI, result.ROI)
	}
}

func TestEstimate_RehabCostByCondition(t *testing.T) {
	est := newTestEstimator()

	cases := []struct {
		name      string
		condition Condition
		sqft      int
		want      int64
	}{
		{"excellent is free", ConditionExcellent, 2000, 0},
		{"good", ConditionGood, 2000, 10000},
		{"fair", ConditionFair, 2000, 30000},
		{"poor", ConditionPoor, 2000, 50000},
		{"needs rehab", ConditionNeedsRehab, 2000, 80000},
		{"unknown defaults to $20", Condition(""), 2000, 40000},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := est.Estimate(SubjectProperty{SquareFeet: intPtr(tc.sqft), Condition: tc.condition}, nil)
			if result.RehabCost != tc.want {
				t.Fatalf("expected rehab %d, got %d", tc.want, result.RehabCost)
			}
		})
	}
}

func TestEstimate_MissingSquareFeet_UsesDefault(t *testing.T) {
	est := newTestEstimator()

	comps := []ComparableSale{{PricePerSquareFoot: 100}}
	result := est.Estimate(SubjectProperty{}, comps)

	// default 1800 sqft * $100/sqft
	if result.ARV != 180000 {
		t.Fatalf("expected ARV 180000 from default square footage, got %d", result.ARV)
	}
}

func TestEstimate_NonPositiveMaxOffer_ROIZero(t *testing.T) {
	est := newTestEstimator()

	// list price 10000, unknown condition: rehab = 1800 * 20 = 36000,
	// max offer = 7000 - 36000 < 0
	result := est.Estimate(SubjectProperty{ListPrice: floatPtr(10000)}, nil)

	if result.MaxOffer > 0 {
		t.Fatalf("expected non-positive max offer, got %d", result.MaxOffer)
	}
	if result.ROI != 0 {
		t.Fatalf("expected ROI 0, got %f", result.ROI)
	}
}

func TestEstimate_MaxOfferRoundingOrder(t *testing.T) {
	est := newTestEstimator()

	// ARV*0.7 is rounded before the rehab subtraction; rehab itself is not
	// re-rounded.
	comps := []ComparableSale{{PricePerSquareFoot: 156.795}}
	subject := SubjectProperty{SquareFeet: intPtr(2000), Condition: ConditionNeedsRehab}

	result := est.Estimate(subject, comps)

	if result.ARV != 313590 {
		t.Fatalf("expected ARV 313590, got %d", result.ARV)
	}
	if result.RehabCost != 80000 {
		t.Fatalf("expected rehab 80000, got %d", result.RehabCost)
	}
	if want := int64(math.Round(313590*0.7)) - 80000; result.MaxOffer != want {
		t.Fatalf("expected max offer %d, got %d", want, result.MaxOffer)
	}
}
