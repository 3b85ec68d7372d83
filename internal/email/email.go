// Package email sends outbound notification mail over SMTP.
package email

import "context"

// Sender delivers notification emails. Implementations must be safe for
// concurrent use.
type Sender interface {
	SendDealAlertEmail(ctx context.Context, toEmail, buyerName, propertyAddress string, matchScore int) error
	SendContractReadyEmail(ctx context.Context, toEmail, sellerName, propertyAddress string) error
}
