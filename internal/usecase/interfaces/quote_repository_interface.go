package interfaces

import (
	"context"
	"time"
	"translation_backoffice/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for Quote.
//
// GetByID returns a zero Quote and nil error when the quote does not exist.
type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	List(ctx context.Context, status entities.QuoteStatus) ([]entities.Quote, error)
	UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error)
	UpdateActiveRun(ctx context.Context, id string, runID string) (entities.Quote, error)
	// ClaimForPayment atomically marks a sent or accepted quote as being paid by claimID until
	// until. It reports false when the quote is not payable or another claim is still live at now.
	ClaimForPayment(ctx context.Context, id, claimID string, now, until time.Time) (bool, error)
	// ReleasePaymentClaim drops claimID; a claim held by another checkout is left untouched.
	ReleasePaymentClaim(ctx context.Context, id, claimID string) error
}
