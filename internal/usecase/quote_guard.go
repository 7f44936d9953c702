package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"translation_backoffice/internal/domain/entities"
	"translation_backoffice/internal/usecase/interfaces"
)

// ErrQuoteLocked is returned for pricing writes on converted, abandoned or expired quotes.
var ErrQuoteLocked = errors.New("quote is locked")

func loadQuote(ctx context.Context, quotes interfaces.IQuoteRepository, quoteID string) (entities.Quote, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	q, err := quotes.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, fmt.Errorf("load quote: %w", err)
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

// loadWritableQuote is loadQuote plus the terminal status check applied before pricing writes.
func loadWritableQuote(ctx context.Context, quotes interfaces.IQuoteRepository, quoteID string) (entities.Quote, error) {
	q, err := loadQuote(ctx, quotes, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.Status.Terminal() {
		return entities.Quote{}, ErrQuoteLocked
	}
	return q, nil
}

func logActivity(ctx context.Context, logger interfaces.IActivityLogger, e entities.ActivityLogEntry) {
	if logger == nil {
		return
	}
	logger.Log(ctx, e)
}
