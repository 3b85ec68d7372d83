package email

import (
	"fmt"
	"html"
)

const (
	subjectDealAlert     = "New deal matching your buy box"
	subjectContractReady = "Your assignment contract is ready"
)

func renderDealAlert(buyerName, propertyAddress string, matchScore int) string {
	return fmt.Sprintf(`<html><body>
<p>Hi %s,</p>
<p>A new deal just hit the market that matches your buy box:</p>
<p><strong>%s</strong></p>
<p>Match score: <strong>%d</strong></p>
<p>Log in to review the numbers and claim the deal.</p>
</body></html>`,
		html.EscapeString(buyerName), html.EscapeString(propertyAddress), matchScore)
}

func renderContractReady(sellerName, propertyAddress string) string {
	return fmt.Sprintf(`<html><body>
<p>Hi %s,</p>
<p>The assignment contract for <strong>%s</strong> has been generated and is
ready for review.</p>
</body></html>`,
		html.EscapeString(sellerName), html.EscapeString(propertyAddress))
}
