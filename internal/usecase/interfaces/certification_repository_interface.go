package interfaces

import (
	"context"
	"translation_backoffice/internal/domain/entities"
)

type ICertificationRepository interface {
	Create(ctx context.Context, c entities.Certification) (entities.Certification, error)
	GetByID(ctx context.Context, quoteID, id string) (entities.Certification, error)
	// ListByQuoteID must include every write that returned before the call.
	ListByQuoteID(ctx context.Context, quoteID string) ([]entities.Certification, error)
	Update(ctx context.Context, c entities.Certification) (entities.Certification, error)
	Delete(ctx context.Context, quoteID, id string) error
}
