package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignmentFee(t *testing.T) {
	c := &Contract{PurchasePrice: 180000, SalePrice: 195000}
	assert.Equal(t, float64(15000), c.AssignmentFee())
}

func TestRender_IncludesCoreTerms(t *testing.T) {
	lien := 12500.0
	c := &Contract{
		PropertyAddress:      "742 Evergreen Terrace, Springfield, IL 62704",
		SellerName:           "Homer S.",
		BuyerName:            "Cash Buyer LLC",
		DealType:             DealCash,
		PurchasePrice:        180000,
		SalePrice:            195000,
		EarnestMoney:         2500,
		InspectionPeriodDays: 7,
		ClosingDate:          time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC),
		HasLiens:             true,
		LienAmount:           &lien,
	}

	doc, err := Render(c)
	require.NoError(t, err)

	assert.Contains(t, doc, "742 Evergreen Terrace")
	assert.Contains(t, doc, "Assignor (Seller): Homer S.")
	assert.Contains(t, doc, "Assignee (Buyer): Cash Buyer LLC")
	assert.Contains(t, doc, "Assignment Fee: $15000.00")
	assert.Contains(t, doc, "Earnest Money Deposit: $2500.00")
	assert.Contains(t, doc, "Inspection Period: 7 days")
	assert.Contains(t, doc, "Closing Date: October 15, 2026")
	assert.Contains(t, doc, "Known Liens: $12500.00")
	assert.NotContains(t, doc, "Balloon Payment")
	assert.NotContains(t, doc, "Agent:")
}
