package interfaces

import (
	"context"
	"translation_backoffice/internal/domain/entities"
)

// ILineItemRepository abstracts persistence for quote line items.
type ILineItemRepository interface {
	Create(ctx context.Context, li entities.LineItem) (entities.LineItem, error)
	GetByID(ctx context.Context, quoteID, id string) (entities.LineItem, error)
	// ListByQuoteID must include every write that returned before the call.
	ListByQuoteID(ctx context.Context, quoteID string) ([]entities.LineItem, error)
	Update(ctx context.Context, li entities.LineItem) (entities.LineItem, error)
	Delete(ctx context.Context, quoteID, id string) error
}
