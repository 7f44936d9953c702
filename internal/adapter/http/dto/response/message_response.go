package response

import (
	"time"

	"translation_backoffice/internal/domain/entities"
)

type MessageResponse struct {
	ID         string     `json:"id"`
	QuoteID    string     `json:"quote_id"`
	SenderType string     `json:"sender_type"`
	SenderID   string     `json:"sender_id,omitempty"`
	Body       string     `json:"body"`
	ReadAt     *time.Time `json:"read_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

func FromMessage(m entities.Message) MessageResponse {
	return MessageResponse{
		ID:         m.ID,
		QuoteID:    m.QuoteID,
		SenderType: string(m.SenderType),
		SenderID:   m.SenderID,
		Body:       m.Body,
		ReadAt:     m.ReadAt,
		CreatedAt:  m.CreatedAt,
	}
}

func FromMessages(ms []entities.Message) []MessageResponse {
	out := make([]MessageResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromMessage(m))
	}
	return out
}

type MarkReadResponse struct {
	Updated int64 `json:"updated"`
}
