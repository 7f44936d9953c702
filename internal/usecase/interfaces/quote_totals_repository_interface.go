package interfaces

import (
	"context"
	"errors"
	"translation_backoffice/internal/domain/entities"
)

// ErrTotalsVersionConflict is returned by Upsert when the stored version moved since it was read.
var ErrTotalsVersionConflict = errors.New("quote totals version conflict")

// IQuoteTotalsRepository abstracts the one-row-per-quote totals store.
//
// Upsert writes t with Version = expectedVersion+1 only if the stored row is still at
// expectedVersion (0 means "no row yet").
type IQuoteTotalsRepository interface {
	GetByQuoteID(ctx context.Context, quoteID string) (entities.QuoteTotals, error)
	Upsert(ctx context.Context, t entities.QuoteTotals, expectedVersion int64) (entities.QuoteTotals, error)
}

// ITotalsCache is an optional read cache in front of IQuoteTotalsRepository.
// A miss is reported as ok=false with a nil error.
//
// Set never replaces a cached entry whose Version is equal or higher, so a slow reader
// filling the cache with an old row cannot hide a newer one.
type ITotalsCache interface {
	Get(ctx context.Context, quoteID string) (t entities.QuoteTotals, ok bool, err error)
	Set(ctx context.Context, t entities.QuoteTotals) error
	Invalidate(ctx context.Context, quoteID string) error
}
