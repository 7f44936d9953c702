package usecase

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"translation_backoffice/internal/domain/entities"
	"translation_backoffice/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	maxMessageBodyLen   = 5000
	defaultMessageLimit = 200
	maxMessageLimit     = 500
)

var ErrInvalidMessage = errors.New("invalid message")

// IMessageUseCase is the chat panel attached to each quote.
type IMessageUseCase interface {
	Post(ctx context.Context, actor entities.Actor, quoteID, body string) (entities.Message, error)
	PostSystem(ctx context.Context, quoteID, body string) (entities.Message, error)
	List(ctx context.Context, quoteID string, limit int) ([]entities.Message, error)
	MarkRead(ctx context.Context, actor entities.Actor, quoteID string) (int64, error)
}

type MessageUseCase struct {
	repo      interfaces.IMessageRepository
	quotes    interfaces.IQuoteRepository
	publisher interfaces.IMessagePublisher
	activity  interfaces.IActivityLogger
	now       func() time.Time
	log       zerolog.Logger
}

var _ IMessageUseCase = (*MessageUseCase)(nil)

func NewMessageUseCase(
	repo interfaces.IMessageRepository,
	quotes interfaces.IQuoteRepository,
	publisher interfaces.IMessagePublisher,
	activity interfaces.IActivityLogger,
) *MessageUseCase {
	return &MessageUseCase{
		repo:      repo,
		quotes:    quotes,
		publisher: publisher,
		activity:  activity,
		now:       func() time.Time { return time.Now().UTC() },
		log:       log.With().Str("component", "chat").Str("layer", "usecase").Logger(),
	}
}

// Post stores an admin message, pushes it to live subscribers and logs message_sent.
func (u *MessageUseCase) Post(ctx context.Context, actor entities.Actor, quoteID, body string) (entities.Message, error) {
	m, err := u.post(ctx, quoteID, entities.SenderTypeAdmin, actor.AdminID, body)
	if err != nil {
		return entities.Message{}, err
	}
	logActivity(ctx, u.activity, actor.Entry("message_sent", m.ID, map[string]any{
		"quote_id": m.QuoteID,
		"length":   utf8.RuneCountInString(m.Body),
	}))
	return m, nil
}

// PostSystem stores a message authored by the back office itself (payment notices and the like).
func (u *MessageUseCase) PostSystem(ctx context.Context, quoteID, body string) (entities.Message, error) {
	return u.post(ctx, quoteID, entities.SenderTypeSystem, "", body)
}

func (u *MessageUseCase) post(ctx context.Context, quoteID string, sender entities.SenderType, senderID, body string) (entities.Message, error) {
	body = strings.TrimSpace(body)
	if n := utf8.RuneCountInString(body); n == 0 || n > maxMessageBodyLen {
		return entities.Message{}, ErrInvalidMessage
	}
	q, err := loadQuote(ctx, u.quotes, quoteID)
	if err != nil {
		return entities.Message{}, err
	}

	m := entities.Message{
		ID:         uuid.NewString(),
		QuoteID:    q.ID,
		SenderType: sender,
		SenderID:   strings.TrimSpace(senderID),
		Body:       body,
		CreatedAt:  u.now(),
	}
	created, err := u.repo.Create(ctx, m)
	if err != nil {
		return entities.Message{}, err
	}
	if u.publisher != nil {
		u.publisher.Publish(created)
	}
	u.log.Debug().Str("quote_id", q.ID).Str("message_id", created.ID).Str("sender_type", string(sender)).Msg("message posted")
	return created, nil
}

func (u *MessageUseCase) List(ctx context.Context, quoteID string, limit int) ([]entities.Message, error) {
	if limit <= 0 {
		limit = defaultMessageLimit
	}
	if limit > maxMessageLimit {
		limit = maxMessageLimit
	}
	q, err := loadQuote(ctx, u.quotes, quoteID)
	if err != nil {
		return nil, err
	}
	return u.repo.ListByQuoteID(ctx, q.ID, limit)
}

// MarkRead stamps the customer's unread messages as read by the back office.
func (u *MessageUseCase) MarkRead(ctx context.Context, actor entities.Actor, quoteID string) (int64, error) {
	q, err := loadQuote(ctx, u.quotes, quoteID)
	if err != nil {
		return 0, err
	}
	n, err := u.repo.MarkRead(ctx, q.ID, entities.SenderTypeCustomer, u.now())
	if err != nil {
		return 0, err
	}
	if n > 0 {
		logActivity(ctx, u.activity, actor.Entry("message_read", q.ID, map[string]any{"count": n}))
	}
	return n, nil
}
