package response

import (
	"time"

	"translation_backoffice/internal/domain/entities"
)

type QuoteResponse struct {
	ID             string    `json:"id"`
	QuoteNumber    string    `json:"quote_number"`
	CustomerName   string    `json:"customer_name"`
	CustomerEmail  string    `json:"customer_email"`
	SourceLanguage string    `json:"source_language,omitempty"`
	TargetLanguage string    `json:"target_language,omitempty"`
	Status         string    `json:"status"`
	Workflow       string    `json:"workflow"`
	ActiveRunID    string    `json:"active_run_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ID:             q.ID,
		QuoteNumber:    q.QuoteNumber,
		CustomerName:   q.CustomerName,
		CustomerEmail:  q.CustomerEmail,
		SourceLanguage: q.SourceLang,
		TargetLanguage: q.TargetLang,
		Status:         string(q.Status),
		Workflow:       string(q.Workflow),
		ActiveRunID:    q.ActiveRunID,
		CreatedAt:      q.CreatedAt,
		UpdatedAt:      q.UpdatedAt,
	}
}

func FromQuotes(qs []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(qs))
	for _, q := range qs {
		out = append(out, FromQuote(q))
	}
	return out
}

type ActiveRunResponse struct {
	Quote  QuoteResponse  `json:"quote"`
	Totals TotalsResponse `json:"totals"`
}
