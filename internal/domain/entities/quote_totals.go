package entities

import "time"

// TotalsBreakdown is the persisted pricing breakdown of a quote.
// All amounts are rounded to cents; TaxRate is a fraction (0.05 = 5%).
type TotalsBreakdown struct {
	Translation           float64 `json:"translation"`
	Certification         float64 `json:"certification"`
	AdditionalItems       float64 `json:"additional_items"`
	DiscountsOrSurcharges float64 `json:"discounts_or_surcharges"`
	Subtotal              float64 `json:"subtotal"`
	Tax                   float64 `json:"tax"`
	Total                 float64 `json:"total"`
	TaxRate               float64 `json:"taxRate"`
}

// QuoteTotals is the current totals row of a quote. It is a cache over the line items,
// certifications and adjustments and is overwritten on every recalculation.
//
// Storage model (DynamoDB):
//   - PK: quote_id
//
// Version increases by one on every write and guards the upsert against lost updates.
type QuoteTotals struct {
	QuoteID      string          `json:"quote_id"`
	Scope        string          `json:"scope"`
	RunID        string          `json:"run_id,omitempty"`
	Breakdown    TotalsBreakdown `json:"breakdown"`
	Version      int64           `json:"version"`
	CalculatedAt time.Time       `json:"calculated_at"`
}
