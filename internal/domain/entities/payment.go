package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the payment processing outcome.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusRejected PaymentStatus = "rejected"
)

// Payment is a checkout payment for a quote.
//
// Storage model (DynamoDB):
//   - PK: quote_id
//   - SK: id
//
// ProviderPayloadRaw keeps the provider response body for reconciliation; ProviderPayload is its
// parsed form when it is a JSON object.
type Payment struct {
	ID                 string         `json:"id"`
	QuoteID            string         `json:"quote_id"`
	Amount             float64        `json:"amount"`
	Date               time.Time      `json:"date"`
	Status             PaymentStatus  `json:"status"`
	ProviderPayloadRaw json.RawMessage `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]any `json:"provider_payload,omitempty"`
}
