package entities

import "time"

// Certification is a certification service (sworn, notarized, ...) priced on a quote.
// LineItemID optionally ties it to a specific document.
type Certification struct {
	ID           string    `json:"id"`
	QuoteID      string    `json:"quote_id"`
	LineItemID   string    `json:"line_item_id,omitempty"`
	TypeCode     string    `json:"type_code"`
	Name         string    `json:"name"`
	DefaultRate  float64   `json:"default_rate"`
	OverrideRate *float64  `json:"override_rate,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (c Certification) EffectiveAmount() float64 {
	if c.OverrideRate != nil {
		return *c.OverrideRate
	}
	return c.DefaultRate
}
