package entities

import "time"

type SenderType string

const (
	SenderTypeAdmin    SenderType = "admin"
	SenderTypeCustomer SenderType = "customer"
	SenderTypeSystem   SenderType = "system"
)

func (s SenderType) Valid() bool {
	return s == SenderTypeAdmin || s == SenderTypeCustomer || s == SenderTypeSystem
}

// Message is one entry of the chat panel attached to a quote.
type Message struct {
	ID         string     `json:"id"`
	QuoteID    string     `json:"quote_id"`
	SenderType SenderType `json:"sender_type"`
	SenderID   string     `json:"sender_id,omitempty"`
	Body       string     `json:"body"`
	ReadAt     *time.Time `json:"read_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}
