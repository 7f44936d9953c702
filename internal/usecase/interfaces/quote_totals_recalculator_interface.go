package interfaces

import (
	"context"
	"translation_backoffice/internal/domain/entities"
)

// IQuoteTotalsRecalculator recomputes and persists the totals row of a quote.
// runID pins the analysis run to price; empty means "resolve from the quote".
type IQuoteTotalsRecalculator interface {
	Recalculate(ctx context.Context, quoteID string, runID string) (entities.QuoteTotals, error)
}
