package repository

import (
	"context"
	"time"

	"translation_backoffice/internal/domain/entities"
	"translation_backoffice/internal/usecase/interfaces"
)

// MessagePostgresRepository stores the chat panel of each quote in quote_messages.
type MessagePostgresRepository struct {
	pool PgxAPI
}

var _ interfaces.IMessageRepository = (*MessagePostgresRepository)(nil)

func NewMessagePostgresRepository(pool PgxAPI) *MessagePostgresRepository {
	return &MessagePostgresRepository{pool: pool}
}

func (r *MessagePostgresRepository) Create(ctx context.Context, m entities.Message) (entities.Message, error) {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO quote_messages (id, quote_id, sender_type, sender_id, body, created_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6)`,
		m.ID, m.QuoteID, string(m.SenderType), m.SenderID, m.Body, m.CreatedAt,
	)
	if err != nil {
		return entities.Message{}, err
	}
	return m, nil
}

// ListByQuoteID returns the last limit messages of the quote in chronological order.
func (r *MessagePostgresRepository) ListByQuoteID(ctx context.Context, quoteID string, limit int) ([]entities.Message, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, quote_id, sender_type, COALESCE(sender_id, ''), body, read_at, created_at
		FROM (
			SELECT * FROM quote_messages WHERE quote_id = $1 ORDER BY created_at DESC LIMIT $2
		) recent
		ORDER BY created_at ASC`,
		quoteID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entities.Message, 0)
	for rows.Next() {
		var (
			m          entities.Message
			senderType string
		)
		if err := rows.Scan(&m.ID, &m.QuoteID, &senderType, &m.SenderID, &m.Body, &m.ReadAt, &m.CreatedAt); err != nil {
			return nil, err
		}
		m.SenderType = entities.SenderType(senderType)
		out = append(out, m)
	}
	return out, rows.Err()
}

// MarkRead stamps every unread message sent by senderType and returns how many rows changed.
func (r *MessagePostgresRepository) MarkRead(ctx context.Context, quoteID string, senderType entities.SenderType, at time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE quote_messages SET read_at = $3
		WHERE quote_id = $1 AND sender_type = $2 AND read_at IS NULL`,
		quoteID, string(senderType), at,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
