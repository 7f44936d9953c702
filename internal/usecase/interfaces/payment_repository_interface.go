package interfaces

import (
	"context"
	"translation_backoffice/internal/domain/entities"
)

// IPaymentRepository abstracts DynamoDB persistence for checkout payments.
type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, quoteID, id string) (entities.Payment, error)
	ListByQuoteID(ctx context.Context, quoteID string) ([]entities.Payment, error)
}
