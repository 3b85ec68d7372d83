package domain

import (
	"fmt"
	"strings"
	"text/template"
	"time"
)

const contractTemplate = `ASSIGNMENT OF REAL ESTATE PURCHASE AGREEMENT

Property: {{.PropertyAddress}}
Date: {{.Date}}

PARTIES
Assignor (Seller): {{.SellerName}}
Assignee (Buyer): {{.BuyerName}}
{{- if .AgentName}}
Agent: {{.AgentName}}
{{- end}}

TERMS
Deal Type: {{.DealType}}
Purchase Price: {{.PurchasePrice}}
Sale Price: {{.SalePrice}}
Assignment Fee: {{.AssignmentFee}}
Earnest Money Deposit: {{.EarnestMoney}}
Inspection Period: {{.InspectionPeriodDays}} days
Closing Date: {{.ClosingDate}}
{{- if .HasLiens}}
Known Liens: {{.LienAmount}}
{{- end}}
{{- if .BalloonPayment}}
Balloon Payment: {{.BalloonPayment}}
{{- end}}

The Assignor hereby assigns all rights and interest in the purchase agreement
for the property identified above to the Assignee, for the assignment fee
stated, subject to the terms above.

Assignor: ______________________    Date: __________

Assignee: ______________________    Date: __________
`

var contractTmpl = template.Must(template.New("contract").Parse(contractTemplate))

// Render produces the contract document text.
func Render(c *Contract) (string, error) {
	data := struct {
		PropertyAddress      string
		Date                 string
		SellerName           string
		BuyerName            string
		AgentName            string
		DealType             DealType
		PurchasePrice        string
		SalePrice            string
		AssignmentFee        string
		EarnestMoney         string
		InspectionPeriodDays int
		ClosingDate          string
		HasLiens             bool
		LienAmount           string
		BalloonPayment       string
	}{
		PropertyAddress:      c.PropertyAddress,
		Date:                 time.Now().Format("January 2, 2006"),
		SellerName:           c.SellerName,
		BuyerName:            c.BuyerName,
		AgentName:            c.AgentName,
		DealType:             c.DealType,
		PurchasePrice:        formatUSD(c.PurchasePrice),
		SalePrice:            formatUSD(c.SalePrice),
		AssignmentFee:        formatUSD(c.AssignmentFee()),
		EarnestMoney:         formatUSD(c.EarnestMoney),
		InspectionPeriodDays: c.InspectionPeriodDays,
		ClosingDate:          c.ClosingDate.Format("January 2, 2006"),
		HasLiens:             c.HasLiens,
	}
	if c.LienAmount != nil {
		data.LienAmount = formatUSD(*c.LienAmount)
	}
	if c.BalloonPayment != nil {
		data.BalloonPayment = formatUSD(*c.BalloonPayment)
	}

	var sb strings.Builder
	if err := contractTmpl.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func formatUSD(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}
