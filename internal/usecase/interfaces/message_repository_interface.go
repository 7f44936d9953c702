package interfaces

import (
	"context"
	"time"
	"translation_backoffice/internal/domain/entities"
)

type IMessageRepository interface {
	Create(ctx context.Context, m entities.Message) (entities.Message, error)
	ListByQuoteID(ctx context.Context, quoteID string, limit int) ([]entities.Message, error)
	MarkRead(ctx context.Context, quoteID string, senderType entities.SenderType, at time.Time) (int64, error)
}

// IMessagePublisher pushes persisted messages to live chat subscribers.
type IMessagePublisher interface {
	Publish(m entities.Message)
}

// ISystemNotifier posts back office authored messages into a quote conversation.
type ISystemNotifier interface {
	PostSystem(ctx context.Context, quoteID, body string) (entities.Message, error)
}
