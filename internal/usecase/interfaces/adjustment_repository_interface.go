package interfaces

import (
	"context"
	"translation_backoffice/internal/domain/entities"
)

type IAdjustmentRepository interface {
	Create(ctx context.Context, a entities.Adjustment) (entities.Adjustment, error)
	GetByID(ctx context.Context, quoteID, id string) (entities.Adjustment, error)
	// ListByQuoteID must include every write that returned before the call.
	ListByQuoteID(ctx context.Context, quoteID string) ([]entities.Adjustment, error)
	Update(ctx context.Context, a entities.Adjustment) (entities.Adjustment, error)
	Delete(ctx context.Context, quoteID, id string) error
}
